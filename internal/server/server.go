package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatdb/config"
	"chatdb/internal/handler"
	"chatdb/internal/middleware"
	"chatdb/internal/services"
	"chatdb/internal/transport/httpdto"
	"chatdb/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Message *handler.MessageHandler
}

// HealthFunc reports whether the store is reachable.
type HealthFunc func(ctx context.Context) error

func New(cfg *config.Config, l *logger.Logger) *Server {
	if l == nil {
		l = logger.NewNop()
	}
	switch cfg.AppMode {
	case ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers, tokens *services.TokenService, health HealthFunc) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
				return
			}
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	channels := s.engine.Group("/v1/channels/:channelID", middleware.AuthMiddleware(tokens))
	{
		channels.POST("/messages", handlers.Message.Send)
		channels.GET("/messages", handlers.Message.List)
		channels.GET("/last-message", handlers.Message.LastMessage)
	}
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests for
// up to five seconds.
func (s *Server) Start() error {
	go func() {
		s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("Error in starting the server: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Error in the graceful shutdown of the server: %s", err)
		return err
	}

	s.logger.Infof("Server stopped gracefully")
	return nil
}
