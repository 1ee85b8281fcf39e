package main // Entry point package

import (
	"log" // Logging library
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/coworking-room-reservation/internal/booking"
	"github.com/iliyamo/coworking-room-reservation/internal/config"
	"github.com/iliyamo/coworking-room-reservation/internal/database"
	"github.com/iliyamo/coworking-room-reservation/internal/handler"
	"github.com/iliyamo/coworking-room-reservation/internal/middleware"
	"github.com/iliyamo/coworking-room-reservation/internal/repository"
	"github.com/iliyamo/coworking-room-reservation/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	_, statErr := os.Stat(cfg.DBPath)
	fresh := os.IsNotExist(statErr)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if fresh {
		log.Printf("no previous state found at %s, starting empty", cfg.DBPath)
	} else {
		log.Printf("loaded existing state from %s", cfg.DBPath)
	}

	clientRepo := repository.NewClientRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	svc := booking.NewService(clientRepo, roomRepo, reservationRepo, nil)

	// Redis is optional; with no reachable server the cache middleware
	// becomes a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterDirectory(e, handler.NewDirectoryHandler(clientRepo, roomRepo))
	router.RegisterReservations(e, handler.NewReservationHandler(svc, roomRepo), cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
