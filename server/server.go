// Package server exposes the content pipeline over a small ops API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/history"
	"github.com/pdtriglav/alpcontent/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/content.go -pkg mocks -skip-ensure -fmt goimports . ContentService

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	content ContentService
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ContentService is the content pipeline exposed by the server
type ContentService interface {
	GetOrCreateTodaysEvent(ctx context.Context) (domain.HistoricalEvent, error)
	RegenerateEvent(ctx context.Context, id int64) (history.RegenerateResult, error)
	GetCachedNewsForToday(ctx context.Context) []domain.Article
	TestServices(ctx context.Context) map[string]bool
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
	LastDailyRun(ctx context.Context) (domain.GenerationStats, bool)
	Trigger(kind string) (*service.Task, bool, error)
	Task(id string) (*service.Task, error)
	CancelTask(id string) error
	InFlight() map[string]bool
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, content ContentService, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		content: content,
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
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
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
	s.router.Use(rest.AppInfo("alpcontent", "pdtriglav", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(log.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /history/today", s.todayEventHandler)
		r.HandleFunc("POST /history/{id}/regenerate", s.regenerateHandler)
		r.HandleFunc("GET /news/today", s.todayNewsHandler)
		r.HandleFunc("POST /tasks/{kind}", s.triggerHandler)
		r.HandleFunc("GET /tasks/{id}", s.taskHandler)
		r.HandleFunc("DELETE /tasks/{id}", s.cancelTaskHandler)
		r.HandleFunc("GET /selftest", s.selfTestHandler)
		r.HandleFunc("GET /stats", s.statsHandler)
	})
	s.router.Handle("GET /metrics", promhttp.Handler())
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
