package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"priofeed/pkg/aggregator"
	"priofeed/pkg/domain"
	"priofeed/pkg/scoring"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/reports.go -pkg mocks -skip-ensure -fmt goimports . ReportService
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . HistoryProvider

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	reports ReportService
	history HistoryProvider
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ReportService runs the priority aggregation pipeline
type ReportService interface {
	GenerateReport(ctx context.Context, scope domain.Scope, opts aggregator.Options) (*domain.Report, error)
	GetUrgentOnly(ctx context.Context, scope domain.Scope, levels []domain.UrgencyLevel) (*domain.Report, error)
	Greeting(scope domain.Scope, summary domain.Summary) string
	Recommendations(summary domain.Summary) []domain.Recommendation
	UpdateScoringConfig(partial scoring.Weights) error
	ClearCache()
}

// HistoryProvider serves stored report snapshots
type HistoryProvider interface {
	Recent(ctx context.Context, limit int) ([]domain.ReportSnapshot, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetReportDefaults() (minScore, maxItems int)
}

// New initializes a new server instance. History may be nil when snapshot
// storage is disabled.
func New(cfg ConfigProvider, reports ReportService, history HistoryProvider, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		reports: reports,
		history: history,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("priofeed", "priofeed", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /report", s.reportHandler)
		r.HandleFunc("GET /urgent", s.urgentHandler)
		r.HandleFunc("PUT /weights", s.weightsHandler)
		r.HandleFunc("DELETE /cache", s.cacheHandler)
		r.HandleFunc("GET /history", s.historyHandler)
		r.HandleFunc("GET /status", s.statusHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
