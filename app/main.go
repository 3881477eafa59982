package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gym-maintenance/internal/repositories"
	"gym-maintenance/internal/routes"
	"gym-maintenance/pkg/config"
	"gym-maintenance/pkg/customvalidator"
	"gym-maintenance/pkg/eventbus"
	applogger "gym-maintenance/pkg/logger"
	"gym-maintenance/pkg/metrics"
	appmiddleware "gym-maintenance/pkg/middleware"
	"gym-maintenance/pkg/service"
	"gym-maintenance/pkg/utils"
	"gym-maintenance/pkg/websocket"
	"gym-maintenance/seeders"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.MustLoad()

	logger, err := applogger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("cannot build logger: %s", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(appmiddleware.RecoverConfig(logger)))
	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("custom validation rules not registered", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	storage := repositories.NewStorage()
	if err := seeders.Seed(ctx, storage, cfg.Seed, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	cacheRepo := repositories.NewMemoryCacheRepository(time.Now)
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logger.Fatal("cannot connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
		logger.Info("login lockout counters stored in Redis", zap.String("address", cfg.Redis.Address))
	}

	hub := websocket.NewHub(logger)
	deps := routes.Dependencies{
		Storage: storage,
		Cache:   cacheRepo,
		JWT:     service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger),
		Bus:     eventbus.New(logger),
		Hub:     hub,
		Metrics: metrics.New(),
		Config:  cfg,
		Clock:   storage.Now,
		Logger:  logger,
	}
	if err := routes.InitRouter(e, deps); err != nil {
		logger.Fatal("router setup failed", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("server started", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down server")
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
	logger.Info("server stopped")
}
