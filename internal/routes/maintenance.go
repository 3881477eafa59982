package routes

import (
	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/controllers"
	"gym-maintenance/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runTechnicalCallRouter(secureGroup *echo.Group, ctrl *controllers.TechnicalCallController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/calls", ctrl.GetCalls, authMW.Authorize(authz.CallsView))
	secureGroup.GET("/calls/:id", ctrl.FindCall, authMW.Authorize(authz.CallsView))
	secureGroup.POST("/calls", ctrl.CreateCall, authMW.Authorize(authz.CallsCreate))
	secureGroup.PUT("/calls/:id", ctrl.UpdateCall, authMW.Authorize(authz.CallsUpdate))
}

func runChecklistRouter(secureGroup *echo.Group, ctrl *controllers.ChecklistController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/checklists", ctrl.GetChecklists, authMW.Authorize(authz.ChecklistsView))
	secureGroup.GET("/checklists/:id", ctrl.FindChecklist, authMW.Authorize(authz.ChecklistsView))
	secureGroup.POST("/checklists", ctrl.SubmitChecklist, authMW.Authorize(authz.ChecklistsCreate))
}
