// Package server exposes the rewrite pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meltemi-labs/reviewboost/internal/config"
	"github.com/meltemi-labs/reviewboost/internal/rewrite"
)

// Server wires the rewrite pipeline to the HTTP surface.
type Server struct {
	cfg      config.Config
	logger   *zap.Logger
	rewriter *rewrite.Rewriter
}

// New creates a Server. The rewriter and config are read-only after this.
func New(cfg config.Config, logger *zap.Logger, rewriter *rewrite.Rewriter) *Server {
	return &Server{cfg: cfg, logger: logger, rewriter: rewriter}
}

// Handler builds the gin engine with CORS, request IDs, access logging, and
// the API routes.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(accessLog(s.logger))
	engine.Use(secureHeaders())

	corsConfig := cors.DefaultConfig()
	if len(s.cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = s.cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	// Preflight answers 200, not gin-contrib's default 204.
	corsConfig.OptionsResponseStatusCode = http.StatusOK
	engine.Use(cors.New(corsConfig))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "endpoint not found",
			"availableEndpoints": []string{
				"GET /api/health",
				"POST /api/rewrite",
			},
		})
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":          "method not allowed",
			"allowedMethods": allowedMethodsFor(c.Request.URL.Path),
		})
	})

	api := engine.Group("/api", rateLimit(newIPLimiter(rateLimitMax, rateLimitWindow)))
	api.GET("/health", s.handleHealth)
	api.POST("/rewrite", s.handleRewrite)

	return engine
}

// allowedMethodsFor names the methods the endpoint actually serves, for the
// 405 hint.
func allowedMethodsFor(path string) []string {
	switch path {
	case "/api/health":
		return []string{http.MethodGet}
	case "/api/rewrite":
		return []string{http.MethodPost}
	default:
		return []string{http.MethodGet, http.MethodPost}
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.logger.Info("server listening",
		zap.Int("port", s.cfg.Port),
		zap.Bool("credential_configured", s.cfg.APIKey != ""),
	)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
