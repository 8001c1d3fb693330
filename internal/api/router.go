package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fightboard/internal/combat"
	"fightboard/internal/eventlog"
)

// RouterConfig contains all dependencies needed to construct the HTTP
// router. Designed for dependency injection and testability.
//
// Example usage in tests:
//
//	cfg := api.RouterConfig{
//	    Catalog: catalog.New(),
//	    Log:     eventlog.New(64),
//	    RateLimitConfig: &api.RateLimitConfig{
//	        RequestsPerSecond: 1000, // High limit for tests
//	        Burst:             1000,
//	    },
//	}
//	router := api.NewRouter(cfg)
//	ts := httptest.NewServer(router)
type RouterConfig struct {
	// Catalog resolves hero/spell/effect ids for ExecuteRound (required).
	Catalog combat.Catalog

	// EngineOptions are the caller-tunable round delays passed to every
	// ExecuteRound call this router makes.
	EngineOptions combat.RoundOptions

	// Log archives completed rounds for replay/board lookup. If nil, a
	// small default-capacity log is created (not started: no disk
	// persistence unless the caller calls Start separately).
	Log *eventlog.Log

	// RateLimiter is an optional pre-configured rate limiter. If nil, a
	// new one is created using RateLimitConfig.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is optional configuration for the rate limiter.
	// Only used if RateLimiter is nil.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins is an optional list of allowed CORS origins. If nil,
	// uses AllowedOrigins.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware (useful for
	// benchmarks).
	DisableLogging bool
}

// routerHandlers holds the handler functions for the router.
type routerHandlers struct {
	catalog    combat.Catalog
	engineOpts combat.RoundOptions
	log        *eventlog.Log
	boards     *boardCache
	hub        *WebSocketHub
}

// NewRouter constructs the HTTP router with all middleware and routes.
//
// IMPORTANT: This function is PURE - it has no side effects:
//   - No goroutines are started beyond the rate limiter's cleanup loop
//   - No network listeners are opened
//
// This makes it safe to use in tests with httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	// Rate limiting (BEFORE CORS to reject early and save CPU)
	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = AllowedOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	log := cfg.Log
	if log == nil {
		log = eventlog.New(512)
	}

	h := &routerHandlers{
		catalog:    cfg.Catalog,
		engineOpts: cfg.EngineOptions,
		log:        log,
		boards:     newBoardCache(512),
		hub:        NewWebSocketHub(),
	}

	r.Route("/rounds", func(r chi.Router) {
		r.Post("/", h.handleCreateRound)
		r.Get("/{id}", h.handleGetRound)
		r.Get("/{id}/replay", h.handleGetReplay)
		r.Get("/{id}/board.png", h.handleGetBoardPNG)
		r.Get("/{id}/stream", h.handleRoundStream)
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
