package main

import (
	"log"

	"github.com/PratikDhanave/event-registration-service/internal/clock"
	"github.com/PratikDhanave/event-registration-service/internal/config"
	"github.com/PratikDhanave/event-registration-service/internal/httpserver"
	"github.com/PratikDhanave/event-registration-service/internal/service"
	"github.com/PratikDhanave/event-registration-service/internal/store"
)

// main boots the service: config → DB → schema → services → HTTP server.
func main() {
	// Load runtime config from environment (DB_URL, PORT).
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.DBURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Ensure required tables/indexes exist so `docker compose up --build` is enough.
	if err := db.EnsureSchema(); err != nil {
		log.Fatal(err)
	}

	events := service.NewEventService(db, clock.NewSystem())
	registrations := service.NewRegistrationService(db)
	checkins := service.NewCheckinService(db)

	router := httpserver.NewRouter(db, events, registrations, checkins)

	log.Println("server started on :" + cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
