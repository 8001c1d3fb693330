package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fightboard/internal/combat"
	"fightboard/internal/eventlog"
)

// Server is the round-resolution HTTP API server.
type Server struct {
	router      *chi.Mux
	rateLimiter *IPRateLimiter
	log         *eventlog.Log
}

// NewServer creates a new API server with default production configuration.
//
// The rate limiter's cleanup goroutine starts here, in NewIPRateLimiter;
// Stop ends it. The event log's writer loop does not start until the
// caller calls Start() on the eventlog.Log.
func NewServer(catalog combat.Catalog, engineOpts combat.RoundOptions, log *eventlog.Log) *Server {
	rl := NewIPRateLimiter(DefaultRateLimitConfig)
	s := &Server{
		rateLimiter: rl,
		log:         log,
	}
	s.router = NewRouter(RouterConfig{
		Catalog:       catalog,
		EngineOptions: engineOpts,
		Log:           log,
		RateLimiter:   rl,
	})
	return s
}

// Start begins listening on addr. This is the only method that opens a
// network listener.
func (s *Server) Start(addr string) error {
	log.Printf("round server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Router returns the HTTP handler for use with httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// Stop performs graceful shutdown of background workers.
func (s *Server) Stop() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.log != nil {
		s.log.Stop()
	}
}
