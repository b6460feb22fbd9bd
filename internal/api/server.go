// Package api serves the prediction contract over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/winequality/internal/config"
)

// Server wires the gin router to an http.Server.
type Server struct {
	cfg        config.Config
	logger     *zap.Logger
	version    string
	router     *gin.Engine
	httpServer *http.Server
	metrics    *metrics
	gatherer   prometheus.Gatherer
}

// Options are the Server dependencies. A nil Registry gets a fresh one.
type Options struct {
	Config   config.Config
	Logger   *zap.Logger
	Version  string
	Registry *prometheus.Registry
}

// New builds a server and registers its routes.
func New(opts Options) *Server {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		version:  opts.Version,
		router:   router,
		metrics:  newMetrics(reg, cfg.Metrics.Namespace),
		gatherer: reg,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(RequestID(), AccessLog(s.logger), s.metrics.middleware(), Recovery(s.logger))

	s.router.GET("/health", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	api := s.router.Group("/api")
	if s.cfg.RateLimit.RPS > 0 {
		api.Use(NewRateLimit(s.logger, s.cfg.RateLimit.RPS, s.cfg.RateLimit.Burst).Middleware())
	}
	api.POST("/predict", s.handlePredict)
	api.GET("/features", s.handleFeatures)
}

// Handler returns the router (useful for testing).
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("api.Run: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("HTTP server starting", zap.String("address", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api.Serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("api.Serve: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
