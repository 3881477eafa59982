package routes

import (
	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/controllers"
	"gym-maintenance/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(secureGroup *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/equipment", ctrl.GetEquipments, authMW.Authorize(authz.EquipmentView))
	secureGroup.GET("/equipment/:id", ctrl.FindEquipment, authMW.Authorize(authz.EquipmentView))
	secureGroup.POST("/equipment", ctrl.CreateEquipment, authMW.Authorize(authz.EquipmentCreate))
	secureGroup.PUT("/equipment/:id", ctrl.UpdateEquipment, authMW.Authorize(authz.EquipmentUpdate))
	secureGroup.DELETE("/equipment/:id", ctrl.DeleteEquipment, authMW.Authorize(authz.EquipmentDelete))
}

func runUnitRouter(secureGroup *echo.Group, ctrl *controllers.UnitController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/units", ctrl.GetUnits, authMW.Authorize(authz.UnitsView))
	secureGroup.GET("/units/:id", ctrl.FindUnit, authMW.Authorize(authz.UnitsView))
	secureGroup.POST("/units", ctrl.CreateUnit, authMW.Authorize(authz.UnitsManage))
	secureGroup.PUT("/units/:id", ctrl.UpdateUnit, authMW.Authorize(authz.UnitsManage))
	secureGroup.DELETE("/units/:id", ctrl.DeleteUnit, authMW.Authorize(authz.UnitsManage))
}
