package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/coworking-room-reservation/internal/schedule"
)

// ErrPolicy is the base kind for business-rule rejections.  Every
// policy sentinel below wraps it, so handlers can match the whole
// family with a single errors.Is.
var ErrPolicy = errors.New("policy violation")

// ErrLeadTime rejects a create whose date is closer than the minimum
// lead time from today.
var ErrLeadTime = fmt.Errorf("%w: reservations require at least %d days of lead time", ErrPolicy, schedule.MinimumLeadDays)

// ErrCancelWindow rejects a cancellation once the reservation's date is
// closer than the minimum lead time from today.
var ErrCancelWindow = fmt.Errorf("%w: cannot cancel with less than %d days of lead time", ErrPolicy, schedule.MinimumLeadDays)

// ErrInvalidRange rejects a date range whose start is after its end.
var ErrInvalidRange = fmt.Errorf("%w: range start is after range end", ErrPolicy)

// ErrRestDay is the sentinel matched by RestDayError.
var ErrRestDay = fmt.Errorf("%w: no reservations on the weekly rest day", ErrPolicy)

// RestDayError rejects a create on the weekly rest day when the caller
// has not accepted the substitution.  Suggested carries the following
// day so the presentation layer can offer it; the core never applies it
// silently.
type RestDayError struct {
	Suggested time.Time
}

func (e *RestDayError) Error() string {
	return fmt.Sprintf("no reservations on the weekly rest day; next day is %s", schedule.FormatDate(e.Suggested))
}

// Unwrap makes the error match ErrRestDay and ErrPolicy via errors.Is.
func (e *RestDayError) Unwrap() error { return ErrRestDay }
