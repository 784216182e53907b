package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cyberguard-lab/internal/api/handlers"
	apimiddleware "cyberguard-lab/internal/api/middleware"
	"cyberguard-lab/internal/config"
	"cyberguard-lab/internal/infrastructure/cache"
	"cyberguard-lab/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting needs the cache to count requests
	if r.config.RateLimit.Enabled && r.cache != nil {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Health checks
	router.Get("/health", r.handlers.Health.Check)
	router.Get("/ready", r.handlers.Health.Ready)

	router.Route("/api", func(api chi.Router) {
		// Ingestion endpoints guarded by the shared API key
		api.Group(func(protected chi.Router) {
			protected.Use(apimiddleware.APIKeyAuth(r.config.Auth.APIKey))
			protected.Post("/honeypot", r.handlers.Honeypot.Handle)
			protected.Post("/voice-detection", r.handlers.Voice.Handle)
		})

		// Targeted reputation lookups
		api.Post("/check", r.handlers.Check.Handle)

		// Advisory agent
		api.Route("/police", func(police chi.Router) {
			police.Post("/analyze-email", r.handlers.Advisor.AnalyzeEmail)
			police.Post("/chat", r.handlers.Advisor.Chat)
			police.Get("/statistics", r.handlers.Advisor.Statistics)
			police.Get("/prevention-tips", r.handlers.Advisor.PreventionTips)
			police.Get("/emergency-contacts", r.handlers.Advisor.EmergencyContacts)
		})
	})

	// Dashboard assets, when a static dir is configured
	if dir := r.config.Server.StaticDir; dir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
		router.Handle("/static/*", fs)
		router.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, dir+"/index.html")
		})
	}

	return router
}
