package server

import (
	"context"
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

	"github.com/umputun/azupdates/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/updates.go -pkg mocks -skip-ensure -fmt goimports . UpdatesProvider

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	mcp       http.Handler
	updates   UpdatesProvider
	generator RSSGenerator
	metrics   http.Handler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// UpdatesProvider gives access to cached updates
type UpdatesProvider interface {
	Updates(ctx context.Context) ([]domain.Update, error)
	Refresh(ctx context.Context) ([]domain.Update, error)
	FetchedAt() time.Time
}

// RSSGenerator renders updates as RSS document
type RSSGenerator interface {
	GenerateRSS(updates []domain.Update, filter, selfPath string) (string, error)
}

// Deps are the server collaborators, MCP serves streamable http transport, Metrics is optional
type Deps struct {
	MCP       http.Handler
	Updates   UpdatesProvider
	Generator RSSGenerator
	Metrics   http.Handler
}

// New initializes a new server instance
func New(cfg ConfigProvider, deps Deps, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		mcp:       deps.MCP,
		updates:   deps.Updates,
		generator: deps.Generator,
		metrics:   deps.Metrics,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
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
		ReadHeaderTimeout: timeout,
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
	s.router.Use(rest.AppInfo("azupdates", "umputun", s.version))
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
	s.router.Handle("POST /mcp", s.mcp)
	s.router.HandleFunc("GET /mcp", s.mcpStreamHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /updates", s.searchHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)

	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics)
	}
}
