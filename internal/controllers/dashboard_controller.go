package controllers

import (
	"net/http"

	"gym-maintenance/internal/services"
	"gym-maintenance/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	lifecycleService services.LifecycleServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	lifecycleService services.LifecycleServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		lifecycleService: lifecycleService,
		logger:           logger,
	}
}

func (c *DashboardController) GetDashboard(ctx echo.Context) error {
	res, err := c.dashboardService.GetDashboard(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetDashboard: failed to build dashboard", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Painel obtido com sucesso", http.StatusOK)
}

// GetLifecycle lists annotated equipment; sort_by picks the order
// (remaining_life, depreciation, acquisition_date or name).
func (c *DashboardController) GetLifecycle(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.lifecycleService.GetOverview(ctx.Request().Context(), filter, ctx.QueryParam("sort_by"))
	if err != nil {
		c.logger.Error("GetLifecycle: failed to build lifecycle overview", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if filter.WithPagination {
		return utils.SuccessResponse(ctx, res.Items, "Ciclo de vida obtido com sucesso", http.StatusOK, total)
	}
	return utils.SuccessResponse(ctx, res, "Ciclo de vida obtido com sucesso", http.StatusOK)
}
