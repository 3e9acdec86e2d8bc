package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/vaughan-dsouza/feedback/internal/middleware"
)

type RouterOptions struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
}

func NewRouter(h *Handler, resolver middleware.Resolver, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public
	r.Get("/", h.Health.Root)
	r.Get("/healthz", h.Health.Healthz)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
	})

	// Protected
	r.Route("/feedback", func(r chi.Router) {
		r.Use(middleware.Auth(resolver))

		r.Post("/", h.Feedback.CreateFeedback)
		r.Get("/", h.Feedback.ListFeedback)
		r.Get("/{id}", h.Feedback.GetFeedback)
		r.Put("/{id}", h.Feedback.UpdateFeedback)
		r.Delete("/{id}", h.Feedback.DeleteFeedback)
	})

	return r
}
