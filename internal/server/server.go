// Package server is the HTTP upload shell: a form that accepts a .docx file
// and footer text and returns the reformatted document as a download.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tsawler/paperlayout"
	"github.com/tsawler/paperlayout/internal/config"
)

// Server is the paperlayout HTTP server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	configMgr  *config.Manager
	settings   *config.Config
	altText    paperlayout.AltTexter
	logger     *slog.Logger

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// ConfigManager provides settings with hot-reload support. When nil,
	// Settings is used as is.
	ConfigManager *config.Manager
	// Settings is the static configuration used without a ConfigManager
	// (default: config.DefaultConfig())
	Settings *config.Config
	// AltText describes inserted pictures. Calls are serialized.
	AltText paperlayout.AltTexter
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Settings == nil {
		cfg.Settings = config.DefaultConfig()
	}
	if cfg.ConfigManager != nil {
		cfg.Settings = cfg.ConfigManager.Get()
	}
	if cfg.Host == "" {
		cfg.Host = cfg.Settings.Server.Host
	}
	if cfg.Port == "" {
		cfg.Port = cfg.Settings.Server.Port
	}
	if cfg.Settings.Server.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("invalid upload limit %dMB", cfg.Settings.Server.MaxUploadMB)
	}

	s := &Server{
		configMgr: cfg.ConfigManager,
		settings:  cfg.Settings,
		logger:    cfg.Logger,
	}
	if cfg.AltText != nil {
		s.altText = &serialAltText{next: cfg.AltText}
	}

	if cfg.ConfigManager != nil {
		cfg.ConfigManager.OnChange(func(c *config.Config) {
			cfg.Logger.Info("settings reloaded from config", "footer_text", c.FooterText, "max_pixels", c.Images.MaxPixels)
		})
	}

	s.echo = s.newEcho()
	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.echo,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// newEcho sets up middleware and routes.
func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	s.registerRoutes(e)
	return e
}

// current returns the active settings.
func (s *Server) current() *config.Config {
	if s.configMgr != nil {
		return s.configMgr.Get()
	}
	return s.settings
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the server.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown drains in-flight requests.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return err
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// serialAltText serializes calls to an AltTexter that is not safe for
// concurrent use, such as a single OCR engine.
type serialAltText struct {
	mu   sync.Mutex
	next paperlayout.AltTexter
}

func (a *serialAltText) AltText(data []byte) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next.AltText(data)
}
