package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/viant/idgen/internal/batch"
	"github.com/viant/idgen/internal/config"
	"github.com/viant/idgen/internal/metrics"
)

// MaxBatch caps the number of identifiers returned by one request.
const MaxBatch = 1000

// Server exposes identifier generation over HTTP.
type Server struct {
	router          *gin.Engine
	httpServer      *stdhttp.Server
	batch           *batch.Service
	metrics         *metrics.Metrics
	strategy        string
	format          string
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// NewServer builds the router and the underlying http.Server.
func NewServer(cfg config.Config, svc *batch.Service, logger *zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router:          gin.New(),
		batch:           svc,
		metrics:         metrics.New(),
		strategy:        cfg.Generator.Strategy,
		format:          cfg.Format,
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}
	s.router.Use(gin.Recovery(), s.metrics.Middleware())
	s.router.GET("/health", healthHandler)
	s.router.GET("/metrics", s.metrics.Handler())
	s.router.GET("/v1/ids", s.handleIDs)

	s.httpServer = &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() stdhttp.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Str("strategy", s.strategy).Msg("serving identifiers")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Info().Msg("server stopped")
		return <-serverErr
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}

func (s *Server) handleIDs(c *gin.Context) {
	count := 1
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxBatch {
			c.JSON(stdhttp.StatusBadRequest, gin.H{"error": "count must be between 1 and " + strconv.Itoa(MaxBatch)})
			return
		}
		count = n
	}

	ids, err := s.batch.Generate(c.Request.Context(), count, c.DefaultQuery("format", s.format))
	if err != nil {
		c.JSON(stdhttp.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.metrics.Generated(s.strategy, len(ids))
	c.JSON(stdhttp.StatusOK, gin.H{"ids": ids})
}
