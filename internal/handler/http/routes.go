package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withCORS, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withTimeout)

		r.Get("/", h.root)
		r.Get("/version", h.getServerVersion)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Get("/webhook", h.verifyWebhook)
		r.With(h.webhookSignature).Post("/webhook", h.receiveWebhook)

		r.With(h.cronAuth).Post("/cron/check-in", h.checkIn)
	})

	// authorized REST routes
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withTimeout, h.auth)

		r.Route("/api/patients", func(r chi.Router) {
			r.Get("/", h.listPatients)
			r.Put("/{patientId}", h.updatePatient)
			r.Post("/{patientId}/assume-control", h.assumeControl)
			r.Post("/{patientId}/release-control", h.releaseControl)
			r.Get("/{patientId}/metrics", h.listMetrics)
		})

		r.Route("/api/messages", func(r chi.Router) {
			r.Get("/{patientId}", h.listMessages)
			r.Post("/send/{patientId}", h.sendMessage)
			r.Post("/{patientId}/summarize", h.summarize)
		})
	})

	// the live channel hijacks the connection: no gzip, no timeout
	router.With(h.auth).Get("/ws/{patientId}", h.live)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
