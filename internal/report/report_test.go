package report_test

import (
	"testing"

	"github.com/iliyamo/coworking-room-reservation/internal/model"
	"github.com/iliyamo/coworking-room-reservation/internal/report"
	"github.com/iliyamo/coworking-room-reservation/internal/repository"
)

func TestDaily(t *testing.T) {
	details := []repository.Detail{
		{Folio: 7, ClientName: "Pérez, Ana", RoomName: "Sala A", Capacity: 10, Date: "03-20-2024", Shift: model.ShiftMorning, Event: "Taller"},
		{Folio: 9, ClientName: "García, Luis", RoomName: "Sala B", Capacity: 4, Date: "03-20-2024", Shift: model.ShiftNight, Event: "Curso"},
	}

	entries := report.Daily("03-20-2024", details)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	want := report.Entry{Folio: 7, Client: "Pérez, Ana", Room: "Sala A", Capacity: 10, Shift: "Matutino", Event: "Taller", Date: "03-20-2024"}
	if entries[0] != want {
		t.Errorf("first entry = %+v, want %+v", entries[0], want)
	}
	if entries[1].Folio != 9 || entries[1].Shift != "Nocturno" || entries[1].Date != "03-20-2024" {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestDailyEmpty(t *testing.T) {
	entries := report.Daily("03-20-2024", nil)
	if entries == nil || len(entries) != 0 {
		t.Fatalf("empty day must yield an empty, non-nil slice, got %#v", entries)
	}
}
