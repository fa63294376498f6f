package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/portfolio-be/internal/api/handlers"
	"github.com/isdelr/portfolio-be/internal/auth"
	"github.com/isdelr/portfolio-be/internal/metrics"
	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/isdelr/portfolio-be/internal/websocket"
)

// Services bundles everything the handlers depend on.
type Services struct {
	Users     services.UserServiceProvider
	Projects  services.ProjectServiceProvider
	Skills    services.SkillServiceProvider
	Offerings services.OfferingServiceProvider
	Messages  services.MessageServiceProvider
	Stats     services.StatsServiceProvider
	Events    services.EventFeedProvider
}

// NewRouter creates and configures a new Chi router.
func NewRouter(svc Services, issuer *auth.Issuer, hub *websocket.Hub, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     allowedOrigins,
		AllowedMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials:   false,
		OptionsPassthrough: true,
		MaxAge:             300,
	}))
	r.Use(preflight)

	// Set before any Route call so sub-routers inherit them.
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(svc.Users, issuer)
	projectHandler := handlers.NewProjectHandler(svc.Projects)
	skillHandler := handlers.NewSkillHandler(svc.Skills)
	offeringHandler := handlers.NewOfferingHandler(svc.Offerings)
	messageHandler := handlers.NewMessageHandler(svc.Messages)
	statsHandler := handlers.NewStatsHandler(svc.Stats)
	eventHandler := handlers.NewEventHandler(svc.Events)
	wsHandler := handlers.NewWebSocketHandler(hub)

	requireAuth := auth.Middleware(issuer, svc.Users)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.With(requireAuth).Post("/auth/verify", authHandler.Verify)

		// Public site content
		r.Get("/projects", projectHandler.GetAll)
		r.Get("/projects/{id}", projectHandler.Get)
		r.Get("/skills", skillHandler.GetAll)
		r.Get("/services", offeringHandler.GetAll)
		r.Post("/messages", messageHandler.Create)

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/stats", statsHandler.Get)
			r.Get("/events", eventHandler.GetRecent)
			r.Get("/ws", wsHandler.Serve)

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", messageHandler.GetAll)
				r.Patch("/{id}/read", messageHandler.MarkRead)
				r.Delete("/{id}", messageHandler.Delete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.GetAll)
				r.Post("/", projectHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", projectHandler.Get)
					r.Put("/", projectHandler.Update)
					r.Delete("/", projectHandler.Delete)
				})
			})

			r.Route("/skills", func(r chi.Router) {
				r.Get("/", skillHandler.GetAll)
				r.Post("/", skillHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", skillHandler.Get)
					r.Put("/", skillHandler.Update)
					r.Delete("/", skillHandler.Delete)
				})
			})

			r.Route("/services", func(r chi.Router) {
				r.Get("/", offeringHandler.GetAll)
				r.Post("/", offeringHandler.Create)
				r.Put("/{id}", offeringHandler.Update)
				r.Delete("/{id}", offeringHandler.Delete)
			})
		})
	})

	return r
}
