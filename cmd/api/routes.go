package main

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedRequest)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// Match Endpoints
	router.Route("/v1/matches", func(router chi.Router) {
		router.With(app.requireToken).Post("/simulate", app.SimulateMatch)
		router.Get("/feed", app.WatchFeed)
		router.Get("/{pin}", app.GetMatch)
	})
	router.With(app.requireToken).Post("/v1/matchdays/simulate", app.SimulateMatchday)

	return router
}
