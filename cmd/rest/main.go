package main

import (
	"context"
	"log"

	"tenant-notes-be/internal/bootstrap"
	"tenant-notes-be/internal/config"
	"tenant-notes-be/internal/server"
	"tenant-notes-be/internal/tracer"
	"tenant-notes-be/pkg/database"
)

func main() {
	// 0. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Configuration
	cfg := config.Load()

	// 2. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Dependencies
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
