// Package main implements the entry point for the HBnB API server,
// which manages vacation-rental listings: users, places, reviews,
// amenities, states, and cities.
package main

import (
	"context"
	"log"
	"log/slog"
)

// main is the entry point for the hbnb-api server. It loads
// configuration, sets up logging and storage, wires the service facade
// and handlers, and runs the HTTP server until a shutdown signal.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", app.config.Server.Port,
		"log_level", app.config.Server.LogLevel,
		"storage_backend", app.config.Storage.Backend)

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
