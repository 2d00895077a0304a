package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/auth"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/cache"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/commentinfo"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/config"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/database"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/health"
	httpHandler "github.com/consensuslabs/pavilion-network/commentinfo/internal/http"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/http/middleware"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/logger"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/notification"
	"github.com/consensuslabs/pavilion-network/commentinfo/migrations"
)

// App holds all application dependencies
type App struct {
	config    *config.Config
	logger    logger.Logger
	database  *database.DatabaseService
	db        *gorm.DB
	cache     *cache.RedisService
	publisher *notification.Publisher
	tokens    auth.TokenService
	service   commentinfo.Service
	registry  *prometheus.Registry
	router    *gin.Engine
	server    *http.Server
}

// NewApp creates a new application instance with all dependencies
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{
		config:   cfg,
		logger:   log,
		database: database.NewDatabaseService(&cfg.Database, log),
		tokens:   auth.NewJWTService(auth.NewConfigFromAuthConfig(&cfg.Auth)),
		registry: prometheus.NewRegistry(),
	}

	// Initialize database
	db, err := app.database.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}
	app.db = db

	if cfg.Database.AutoMigrate {
		migrationConfig := database.NewMigrationConfig(db, log, cfg.Environment, true, false)
		if err := migrations.RunMigrations(migrationConfig, db, migrations.DirectionUp); err != nil {
			app.close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	repo := commentinfo.NewRepository(db)

	// Initialize cache
	if cfg.Redis.Enabled {
		redisService, err := cache.NewRedisService(&cache.Config{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: 5 * time.Second,
		})
		if err != nil {
			app.close()
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		app.cache = redisService
		repo = commentinfo.NewCachedRepository(repo, redisService, cfg.Redis.LikesTTL, log)
	}

	// Initialize event publisher
	var events commentinfo.EventPublisher = notification.NoopPublisher{}
	if cfg.Notification.Enabled {
		publisher, err := notification.NewPulsarPublisher(cfg.Notification, log)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("failed to initialize notification publisher: %w", err)
		}
		app.publisher = publisher
		events = publisher
	} else {
		log.LogInfo("Notification publisher is disabled", nil)
	}

	app.service = commentinfo.NewService(repo, log, events)

	if err := app.setupRoutes(); err != nil {
		app.close()
		return nil, err
	}

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.router,
	}
	return app, nil
}

func (a *App) setupRoutes() error {
	if a.config.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics, err := middleware.NewMetrics(a.registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	responseHandler := httpHandler.NewResponseHandler(a.logger)

	a.router = gin.New()
	a.router.Use(
		middleware.RequestLoggerMiddleware(a.logger),
		metrics.Middleware(),
		httpHandler.RecoveryMiddleware(responseHandler, a.logger),
		httpHandler.CORSMiddleware(),
	)

	// Health check
	healthHandler := health.NewHandler(responseHandler)
	healthHandler.AddCheck("database", a.database)
	if a.cache != nil {
		healthHandler.AddCheck("redis", a.cache)
	}
	a.router.GET("/health", healthHandler.HandleHealthCheck)

	a.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	// Swagger UI for the annotated handlers
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := a.router.Group("/api/v1")
	commentinfo.NewHandler(a.service, responseHandler).RegisterRoutes(v1, a.tokens)

	return nil
}

// Run starts the HTTP server and blocks until it stops
func (a *App) Run() error {
	a.logger.LogInfo("Starting server", map[string]interface{}{
		"port": a.config.Server.Port,
	})
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return a.logger.LogError(err, "server failed to start")
	}
	return nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.LogInfo("Initiating graceful shutdown", nil)

	var shutdownErr error
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.LogWarn("Error shutting down HTTP server", map[string]interface{}{
				"error": err.Error(),
			})
			shutdownErr = err
		}
	}

	a.close()

	a.logger.LogInfo("Application shutdown complete", nil)
	return shutdownErr
}

// close releases the publisher, cache and database connections
func (a *App) close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.LogWarn("Error closing notification publisher", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.LogWarn("Error closing cache connections", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if err := a.database.Close(); err != nil {
		a.logger.LogWarn("Error closing database connections", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
