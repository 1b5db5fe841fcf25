package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/umputun/viralscope/pkg/domain"
	"github.com/umputun/viralscope/pkg/studio"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/studio.go -pkg mocks -skip-ensure -fmt goimports . Studio

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	studio  Studio
	version string
	debug   bool

	refreshLimiters map[domain.Language]*rate.Limiter

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Studio is the feed and script producer used by handlers
type Studio interface {
	FetchFeed(ctx context.Context, lang domain.Language) (studio.FeedResult, error)
	Refresh(ctx context.Context, lang domain.Language) (studio.FeedResult, error)
	NextRefreshTime(ctx context.Context, lang domain.Language) time.Time
	SynthesizeScript(ctx context.Context, item domain.NewsItem, lang domain.Language) (domain.ViralScript, error)
	Configured() bool
	CacheTTL() time.Duration
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
	GetRefreshInterval() time.Duration
}

// New initializes a new server instance
func New(cfg ConfigProvider, st Studio, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		studio:  st,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	// forced refresh costs a model call, allow one per interval for each language
	s.refreshLimiters = map[domain.Language]*rate.Limiter{}
	for _, lang := range []domain.Language{domain.LangPT, domain.LangEN} {
		s.refreshLimiters[lang] = rate.NewLimiter(rate.Every(cfg.GetRefreshInterval()), 1)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

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
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("viralscope", "umputun", s.version))
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
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /feed/{lang}", s.feedHandler)
		r.HandleFunc("POST /feed/{lang}/refresh", s.refreshHandler)
		r.HandleFunc("GET /feed/{lang}/next-refresh", s.nextRefreshHandler)

		r.HandleFunc("POST /script/{lang}", s.scriptHandler)
	})

	s.router.HandleFunc("GET /rss/{lang}", s.rssHandler)
	s.router.Handle("GET /metrics", promhttp.Handler())
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
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
