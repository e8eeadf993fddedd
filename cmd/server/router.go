package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hbnb-crew/hbnb-api/internal/api"
	apiMiddleware "github.com/hbnb-crew/hbnb-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.facade, app.jwtService)
	userHandler := api.NewUserHandler(app.facade)
	placeHandler := api.NewPlaceHandler(app.facade)
	reviewHandler := api.NewReviewHandler(app.facade)
	amenityHandler := api.NewAmenityHandler(app.facade)
	stateHandler := api.NewStateHandler(app.facade)
	cityHandler := api.NewCityHandler(app.facade)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints: registration, login, and reads
		r.Post("/auth/login", authHandler.Login)
		r.Post("/users", userHandler.Create)

		r.Get("/users", userHandler.List)
		r.Get("/users/{id}", userHandler.Get)
		r.Get("/places", placeHandler.List)
		r.Get("/places/{id}", placeHandler.Get)
		r.Get("/places/{id}/reviews", placeHandler.ListReviews)
		r.Get("/reviews", reviewHandler.List)
		r.Get("/reviews/{id}", reviewHandler.Get)
		r.Get("/amenities", amenityHandler.List)
		r.Get("/amenities/{id}", amenityHandler.Get)
		r.Get("/states", stateHandler.List)
		r.Get("/states/{id}", stateHandler.Get)
		r.Get("/states/{id}/cities", stateHandler.ListCities)
		r.Get("/cities", cityHandler.List)
		r.Get("/cities/{id}", cityHandler.Get)
		r.Get("/cities/{id}/places", cityHandler.ListPlaces)

		// Protected endpoints: everything that mutates state
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Put("/users/{id}", userHandler.Update)
			r.Put("/users/{id}/password", userHandler.ChangePassword)
			r.Delete("/users/{id}", userHandler.Delete)

			r.Post("/places", placeHandler.Create)
			r.Put("/places/{id}", placeHandler.Update)
			r.Delete("/places/{id}", placeHandler.Delete)

			r.Post("/reviews", reviewHandler.Create)
			r.Put("/reviews/{id}", reviewHandler.Update)
			r.Delete("/reviews/{id}", reviewHandler.Delete)

			r.Post("/amenities", amenityHandler.Create)
			r.Put("/amenities/{id}", amenityHandler.Update)
			r.Delete("/amenities/{id}", amenityHandler.Delete)

			r.Post("/states", stateHandler.Create)
			r.Put("/states/{id}", stateHandler.Update)
			r.Delete("/states/{id}", stateHandler.Delete)

			r.Post("/cities", cityHandler.Create)
			r.Put("/cities/{id}", cityHandler.Update)
			r.Delete("/cities/{id}", cityHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
