// Package main implements the entry point for the MemBuddy API server,
// a study-aid backend that stores users' memory items, schedules review
// reminders, and serves generated mnemonic content.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; the environment stays authoritative either way.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.run(context.Background()); err != nil {
		slog.Error("server exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server failed: %v", err)
	}
}
