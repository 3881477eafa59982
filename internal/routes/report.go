package routes

import (
	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/controllers"
	"gym-maintenance/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(secureGroup *echo.Group, ctrl *controllers.DashboardController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/dashboard", ctrl.GetDashboard, authMW.Authorize(authz.DashboardView))
	secureGroup.GET("/lifecycle", ctrl.GetLifecycle, authMW.Authorize(authz.LifecycleView))
}

func runReportRouter(secureGroup *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/reports/:kind", ctrl.GetReport, authMW.Authorize(authz.ReportsView))
}
