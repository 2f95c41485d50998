// Package server wires the HTTP handlers of the link service into a chi router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/app/handler"
	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/middleware"
)

// Deps groups what the router needs.
type Deps struct {
	Links    service.LinkServiceIface
	Resolver service.ResolverIface
	Stats    service.StatsIface
	Auth     service.AuthIface

	// Limiter throttles link creation per client; nil disables it.
	Limiter       *middleware.IPRateLimiter
	TrustedSubnet string
	Logger        *zap.Logger
}

// Init returns the router serving redirects, the owner API and the
// internal stats endpoint.
func Init(d Deps) *chi.Mux {
	post := handler.NewPost(d.Links, d.Logger)
	get := handler.NewGet(d.Resolver, d.Links, d.Stats, d.Logger)
	del := handler.NewDelete(d.Links, d.Logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(d.Logger))

	r.Get("/ping", get.PingDB)
	r.Get("/{code}", get.ByCode)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.WithGzip)

		r.With(middleware.WithSubnet(d.TrustedSubnet)).Get("/internal/stats", get.InternalStats)

		r.Group(func(r chi.Router) {
			r.Use(middleware.WithJWT(d.Auth))

			r.With(middleware.WithRateLimit(d.Limiter)).Post("/links", post.CreateLink)
			r.Get("/links", get.Links)
			r.Get("/links/{id}", get.Link)
			r.Delete("/links/{id}", del.DeleteLink)
			r.Get("/links/{id}/stats", get.LinkStats)
			r.Get("/user/summary", get.Summary)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Short code is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
