package routes

import (
	"context"
	"time"

	"gym-maintenance/internal/controllers"
	"gym-maintenance/internal/listeners"
	"gym-maintenance/internal/query"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/internal/services"
	"gym-maintenance/pkg/config"
	"gym-maintenance/pkg/eventbus"
	"gym-maintenance/pkg/filestorage"
	"gym-maintenance/pkg/metrics"
	"gym-maintenance/pkg/middleware"
	"gym-maintenance/pkg/service"
	"gym-maintenance/pkg/websocket"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dependencies are the long-lived components shared by every router.
type Dependencies struct {
	Storage *repositories.Storage
	Cache   repositories.CacheRepositoryInterface
	JWT     service.JWTService
	Bus     *eventbus.Bus
	Hub     *websocket.Hub
	Metrics *metrics.Collector
	Config  *config.Config
	Clock   func() time.Time
	Logger  *zap.Logger
}

func InitRouter(e *echo.Echo, deps Dependencies) error {
	logger := deps.Logger
	logger.Info("InitRouter: registering routes")

	api := e.Group("/api")
	fileStorage := filestorage.NewPlaceholderStorage(deps.Config.Media.PhotoPlaceholderURL, deps.Config.Media.VideoBaseURL)

	// repositories
	userRepo := repositories.NewUserRepository(deps.Storage, logger)
	unitRepo := repositories.NewUnitRepository(deps.Storage)
	equipmentRepo := repositories.NewEquipmentRepository(deps.Storage)
	callRepo := repositories.NewTechnicalCallRepository(deps.Storage)
	notificationRepo := repositories.NewNotificationRepository(deps.Storage)

	// services
	authService := services.NewAuthService(userRepo, deps.Cache, deps.JWT, deps.Metrics, deps.Clock, logger, &deps.Config.Auth)
	equipmentService := services.NewEquipmentService(equipmentRepo, unitRepo, deps.Bus, deps.Clock, logger)
	unitService := services.NewUnitService(unitRepo, equipmentRepo, callRepo, logger)
	callService := services.NewTechnicalCallService(callRepo, equipmentRepo, unitRepo, deps.Bus, logger)
	checklistService := services.NewChecklistService(deps.Storage, deps.Bus, logger)
	lifecycleService := services.NewLifecycleService(equipmentRepo, unitRepo, logger)
	dashboardService := services.NewDashboardService(deps.Storage, deps.Clock, logger)
	reportService := services.NewReportService(deps.Storage, deps.Clock, logger)
	userService := services.NewUserService(userRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, deps.Hub, logger)
	mediaService := services.NewMediaService(fileStorage, logger)

	// listeners
	listeners.NewNotificationListener(notificationService, userRepo, unitRepo, logger).Register(deps.Bus)
	listeners.NewMetricsListener(deps.Metrics).Register(deps.Bus)

	// gauges read the store at scrape time
	if err := deps.Metrics.RegisterOpenCalls(func() int {
		return len(query.FilterCalls(callRepo.GetCalls(context.Background()), query.CallFilter{OpenOnly: true}))
	}); err != nil {
		return err
	}
	if err := deps.Metrics.RegisterLifecycle(func() map[string]int {
		return lifecycleService.StatusCounts(context.Background())
	}); err != nil {
		return err
	}

	authMW := middleware.NewAuthMiddleware(deps.JWT, userRepo, logger)
	secureGroup := api.Group("", authMW.Auth)

	e.GET("/health", controllers.Health)
	e.GET("/metrics", echo.WrapHandler(deps.Metrics.Handler()))

	runAuthRouter(api, controllers.NewAuthController(authService, logger), authMW)
	runEquipmentRouter(secureGroup, controllers.NewEquipmentController(equipmentService, logger), authMW)
	runUnitRouter(secureGroup, controllers.NewUnitController(unitService, logger), authMW)
	runTechnicalCallRouter(secureGroup, controllers.NewTechnicalCallController(callService, logger), authMW)
	runChecklistRouter(secureGroup, controllers.NewChecklistController(checklistService, logger), authMW)
	runDashboardRouter(secureGroup, controllers.NewDashboardController(dashboardService, lifecycleService, logger), authMW)
	runReportRouter(secureGroup, controllers.NewReportController(reportService, deps.Clock, logger), authMW)
	runUserRouter(secureGroup, controllers.NewUserController(userService, logger), authMW)
	runNotificationRouter(secureGroup, controllers.NewNotificationController(notificationService, logger), authMW)
	runMediaRouter(secureGroup, controllers.NewMediaController(mediaService, logger), authMW)
	runWebSocketRouter(api, controllers.NewWebSocketController(deps.Hub, deps.JWT, userRepo, logger))

	logger.Info("InitRouter: routes registered")
	return nil
}
