// Package httptransport is the thin HTTP layer over the gateway service. It
// parses requests, builds the per-request authorization context from the
// verified token claims, and delegates; no business logic lives here.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"medgate/internal/platform/health"
	"medgate/internal/platform/middleware"
)

// NewRouter wires all public endpoints with the middleware stack. Health and
// metrics endpoints stay outside the authenticated group.
func NewRouter(h *Handler, verifier *middleware.Verifier, healthHandler *health.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(verifier, logger))
		r.Use(middleware.ContentTypeJSON)

		r.Route("/tenants/{mnemonic}", func(r chi.Router) {
			r.Get("/patients", h.handleFindPatients)
			r.Get("/appointments", h.handleFindAppointments)
			r.Get("/patients/{patientID}/conditions", h.handleFindConditions)
			r.Get("/practitioners/{practitionerID}", h.handleGetPractitioner)
			r.Get("/practitioners", h.handleGetPractitionerByProvider)
			r.Post("/messages", h.handleSendMessage)
			r.Post("/notes", h.handleSendNote)
		})
	})

	return r
}
