package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/membuddy/membuddy-api/internal/api"
	apiMiddleware "github.com/membuddy/membuddy-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   app.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordHasher, app.passwordHasher)
	memoryHandler := api.NewMemoryHandler(app.itemStore, app.generator)
	reviewHandler := api.NewReviewHandler(app.scheduleStore, app.itemStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Memory endpoints
			r.Post("/memory/generate", memoryHandler.Generate)
			r.Get("/memory/items", memoryHandler.ListItems)
			r.Post("/memory/items", memoryHandler.CreateItem)
			r.Get("/memory/items/{id}", memoryHandler.GetItem)
			r.Put("/memory/items/{id}", memoryHandler.UpdateItem)
			r.Delete("/memory/items/{id}", memoryHandler.DeleteItem)

			// Review endpoints
			r.Post("/review/schedule", reviewHandler.CreateSchedule)
			r.Get("/review/schedule", reviewHandler.ListSchedules)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
