package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/access"
	"github.com/mmnete/bimasoft-backend/internal/config"
	"github.com/mmnete/bimasoft-backend/internal/database"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/mmnete/bimasoft-backend/internal/identity/kratos"
	"github.com/mmnete/bimasoft-backend/internal/identity/local"
	"github.com/mmnete/bimasoft-backend/internal/middleware"
	"github.com/mmnete/bimasoft-backend/internal/shared/connection"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// App owns the API process resources. Close releases them.
type App struct {
	Router  *gin.Engine
	Config  *config.Config
	GormDB  *gorm.DB
	DB      *sql.DB
	Redis   *redis.Client
	Metrics *prometheus.Registry
	logger  *zap.Logger
}

func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.DB.MaxRetries, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	log.Info("database connection established")

	if cfg.App.RunMigrations {
		if err := database.MigrateUp(sqlDB, logger); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	rdb, err := connection.ConnectRedisWithRetry(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	}, cfg.DB.MaxRetries, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info("redis connection established")

	a := &App{
		Config: cfg,
		GormDB: gormDB,
		DB:     sqlDB,
		Redis:  rdb,
		logger: log,
	}
	if err := a.buildRouter(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) buildRouter() error {
	cfg := a.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.Metrics = prometheus.NewRegistry()
	a.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(a.logger.Named("http")),
		middleware.Metrics(middleware.NewHTTPMetrics(a.Metrics)),
		middleware.CORS(cfg.HTTP.CORSAllowedOrigins),
		middleware.RateLimitByIP(rate.Limit(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateLimitBurst),
	)

	router.GET("/healthz", a.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.Metrics, promhttp.HandlerOpts{})))

	accessService, err := access.NewService(map[string]string{
		cfg.Auth.APIKey:       access.ClientBackoffice,
		cfg.Auth.LookupAPIKey: access.ClientLookup,
	}, a.logger)
	if err != nil {
		return err
	}

	api := router.Group("/api/v1")
	api.Use(middleware.APIKey(accessService))

	if err := registerModules(api, a, newIdentityProvider(a)); err != nil {
		return err
	}

	a.Router = router
	return nil
}

func newIdentityProvider(a *App) identity.Provider {
	cfg := a.Config
	if cfg.Identity.Provider == "kratos" {
		return kratos.NewProvider(cfg.Identity.KratosPublic, cfg.Identity.KratosAdmin, cfg.Identity.KratosSchemaID, a.logger)
	}
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		a.logger.Warn("JWT_SECRET is empty, using an insecure development secret")
		secret = "bimasoft-development-secret"
	}
	return local.NewProvider(a.GormDB, a.Redis, secret, cfg.Auth.JWTTTL, a.logger)
}

func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"database": "up", "redis": "up"}
	healthy := true
	if err := a.DB.PingContext(ctx); err != nil {
		status["database"] = "down"
		healthy = false
	}
	if err := a.Redis.Ping(ctx).Err(); err != nil {
		status["redis"] = "down"
		healthy = false
	}

	if !healthy {
		response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Service is unhealthy", status)
		return
	}
	response.Success(c, http.StatusOK, status, nil)
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.logger.Warn("close redis failed", zap.Error(err))
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.logger.Warn("close database failed", zap.Error(err))
		}
	}
}
