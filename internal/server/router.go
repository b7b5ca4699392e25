// internal/server/router.go
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/auth/send-otp", handler.SendOTP)
	r.Post("/auth/login", handler.Login)
	r.Post("/orders", handler.CreateOrder)

	r.Get("/healthz", handler.Healthz)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
