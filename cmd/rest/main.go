package main

import (
	"context"
	"log"

	"salesdesk-be/internal/bootstrap"
	"salesdesk-be/internal/config"
	"salesdesk-be/internal/server"
	"salesdesk-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.SessionService.Shutdown()

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Notifier Service...")
		if err := container.NotifierService.Consume(context.Background()); err != nil {
			log.Printf("Background Notifier Error: %v", err)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
