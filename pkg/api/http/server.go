package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aescanero/bookshelf/internal/application/catalog"
	"github.com/aescanero/bookshelf/pkg/domain"
)

// defaultMaxBodyBytes caps request bodies when Config.MaxBodyBytes is unset
const defaultMaxBodyBytes int64 = 1 << 20

// BookStore is the storage the handlers need
type BookStore interface {
	List(ctx context.Context) []domain.Book
	Create(ctx context.Context, nb domain.NewBook) domain.Book
	Get(ctx context.Context, id int) (domain.Book, error)
	Update(ctx context.Context, id int, update domain.BookUpdate) (domain.Book, error)
	Delete(ctx context.Context, id int) error
	Count() int
}

// MetricsCollector records tracked requests and serves the exposition
type MetricsCollector interface {
	RecordRequest(method, path string, status int, duration time.Duration)
	Handler() http.Handler
}

// Server represents the HTTP API server
type Server struct {
	router       *gin.Engine
	server       *http.Server
	store        BookStore
	validator    *catalog.Validator
	metrics      MetricsCollector
	logger       *zap.Logger
	maxBodyBytes int64
}

// Config holds HTTP server configuration
type Config struct {
	Port          int
	Mode          string
	AllowedOrigin string
	MaxBodyBytes  int64
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration

	Store     BookStore
	Validator *catalog.Validator
	Metrics   MetricsCollector
	Logger    *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	mode := cfg.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	validator := cfg.Validator
	if validator == nil {
		validator = catalog.NewValidator()
	}

	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	router := gin.New()
	// Trailing-slash redirects are written before any middleware runs and
	// would go out without X-Request-ID
	router.RedirectTrailingSlash = false
	router.HandleMethodNotAllowed = true
	router.Use(requestID(), recovery(logger))
	if cfg.AllowedOrigin != "" {
		router.Use(corsMiddleware(cfg.AllowedOrigin))
	}

	s := &Server{
		router:       router,
		store:        cfg.Store,
		validator:    validator,
		metrics:      cfg.Metrics,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	s.router.NoRoute(handleNoRoute)
	s.router.NoMethod(handleNoMethod)

	// Metrics stay untracked so scrapes do not count themselves
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	// Probes
	probes := s.router.Group("", s.track())
	{
		probes.GET("/health", s.handleHealth)
		probes.GET("/ready", s.handleReady)
	}

	// API v1
	books := s.router.Group("/api/v1/books")
	{
		books.GET("", s.track(), s.handleListBooks)
		books.POST("", s.track(), s.handleCreateBook)

		book := books.Group("/:id", bookIDParam(), s.track())
		book.GET("", s.handleGetBook)
		book.PUT("", s.handleUpdateBook)
		book.DELETE("", s.handleDeleteBook)
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
