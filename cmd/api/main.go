package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/ai"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/handlers"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/routes"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/insights"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/stats"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/user"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/infrastructure/persistence/sheets"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/config"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/logger"
)

// @title           HabitFlow AI API
// @version         1.0
// @description     Habit tracking API backed by Google Sheets with AI insights.

// @host      localhost:8000
// @BasePath

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		log.Info("Request started",
			zap.String("path", path),
			zap.String("method", method),
			zap.String("client_ip", c.ClientIP()),
		)

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLoggerWithLevel(cfg.Logging.Level)
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Encoding",
			"Content-Type",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Encoding",
			"Content-Type",
			"Vary",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Add Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ctx := context.Background()

	// Connect to the spreadsheet
	store, err := sheets.NewClient(ctx, cfg.Sheets, log.Logger)
	if err != nil {
		log.Fatal("Failed to connect to Google Sheets", zap.Error(err))
	}

	// Connect to Gemini
	aiClient, err := ai.NewClient(ctx, cfg.Gemini, log.Logger)
	if err != nil {
		log.Fatal("Failed to create Gemini client", zap.Error(err))
	}
	defer aiClient.Close()

	// Initialize repositories
	userRepo := user.NewRepository(store)
	habitsRepo := habits.NewRepository(store)
	entriesRepo := entries.NewRepository(store)

	// Initialize services
	userService := user.NewService(userRepo, log.Logger)
	habitsService := habits.NewService(habitsRepo, log.Logger)
	entriesService := entries.NewService(entriesRepo, log.Logger)
	statsService := stats.NewService(habitsRepo, entriesRepo, cfg.Stats, log.Logger)
	insightsService := insights.NewService(habitsRepo, entriesRepo, statsService, aiClient, cfg.Stats, log.Logger)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	habitsHandler := handlers.NewHabitsHandler(habitsService)
	entriesHandler := handlers.NewEntriesHandler(entriesService)
	statsHandler := handlers.NewStatsHandler(statsService)
	insightsHandler := handlers.NewInsightsHandler(insightsService, habitsService)
	dashboardHandler := handlers.NewDashboardHandler(userService, habitsService, entriesService, statsService, insightsService)

	// Health check and banner routes (no /api prefix)
	routes.SetupHealthRoutes(router)
	log.Info("Registered health check routes at /health and /health/ready")

	// Set up user routes
	userRoutes := routes.NewUserRoutes(userHandler)
	userRoutes.RegisterRoutes(router)
	log.Info("Registered user routes at /api/users")

	// Set up habits routes (includes /api/habits/track)
	habitsRoutes := routes.NewHabitsRoutes(habitsHandler, entriesHandler)
	habitsRoutes.RegisterRoutes(router)
	log.Info("Registered habits routes at /api/habits")

	// Set up entries routes
	entriesRoutes := routes.NewEntriesRoutes(entriesHandler)
	entriesRoutes.RegisterRoutes(router)
	log.Info("Registered entries routes at /api/entries")

	// Set up stats routes
	statsRoutes := routes.NewStatsRoutes(statsHandler)
	statsRoutes.RegisterRoutes(router)
	log.Info("Registered stats routes at /api/stats")

	// Set up insights and recommendation routes
	insightsRoutes := routes.NewInsightsRoutes(insightsHandler)
	insightsRoutes.RegisterRoutes(router)
	log.Info("Registered insights routes at /api/insights and /api/recommendations")

	// Set up dashboard routes
	dashboardRoutes := routes.NewDashboardRoutes(dashboardHandler)
	dashboardRoutes.RegisterRoutes(router)
	log.Info("Registered dashboard routes at /api/dashboard")

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
