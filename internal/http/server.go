// Package http provides the HTTP server, router setup and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/employees/internal/auth/http"
	authService "github.com/allisson/employees/internal/auth/service"
	"github.com/allisson/employees/internal/config"
	employeeHTTP "github.com/allisson/employees/internal/employee/http"
	employeeUseCase "github.com/allisson/employees/internal/employee/usecase"
	"github.com/allisson/employees/internal/metrics"
)

// Server represents the HTTP server for the employees API.
type Server struct {
	db     *sql.DB
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server.
// The db parameter may be nil when the application runs with the in-memory
// store; in that case the readiness check skips the database component.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter configures the Gin router with all routes and middleware.
//
// Routes:
//   - GET  /health                Liveness check (no auth)
//   - GET  /ready                 Readiness check (no auth)
//   - POST /token                 Issue an access token (no auth)
//   - POST /employees/            Create an employee (auth required)
//   - GET  /employees/            List employees (auth required)
//   - GET  /employees/:id         Get an employee (auth required)
//   - PUT  /employees/:id         Update an employee (auth required)
//   - DELETE /employees/:id       Delete an employee (auth required)
func (s *Server) SetupRouter(
	cfg *config.Config,
	tokenService authService.TokenService,
	useCase employeeUseCase.EmployeeUseCase,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Token issuance does not require authentication
	tokenHandler := authHTTP.NewTokenHandler(tokenService, s.logger)
	router.POST("/token", tokenHandler.IssueTokenHandler)

	// Employee routes require a valid Bearer token
	employeeHandler := employeeHTTP.NewEmployeeHandler(useCase, s.logger)
	employees := router.Group("/employees")
	employees.Use(authHTTP.AuthenticationMiddleware(tokenService, s.logger))
	{
		employees.POST("/", employeeHandler.CreateHandler)
		employees.GET("/", employeeHandler.ListHandler)
		employees.GET("/:id", employeeHandler.GetHandler)
		employees.PUT("/:id", employeeHandler.UpdateHandler)
		employees.DELETE("/:id", employeeHandler.DeleteHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic.
// With a SQL store this pings the database; the in-memory store has no
// external dependency and is always ready.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"components": components,
			})
			return
		}
		components["database"] = "ok"
	} else {
		components["store"] = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
