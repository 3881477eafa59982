package routes

import (
	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/controllers"
	"gym-maintenance/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runNotificationRouter(secureGroup *echo.Group, ctrl *controllers.NotificationController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/notifications", ctrl.GetNotifications, authMW.Authorize(authz.NotificationsView))
	secureGroup.PUT("/notifications/:id/read", ctrl.MarkRead, authMW.Authorize(authz.NotificationsView))
}

func runMediaRouter(secureGroup *echo.Group, ctrl *controllers.MediaController, authMW *middleware.AuthMiddleware) {
	secureGroup.POST("/media/:context", ctrl.Upload, authMW.Authorize(authz.MediaUpload))
}

// The websocket handshake authenticates through the token query parameter.
func runWebSocketRouter(api *echo.Group, ctrl *controllers.WebSocketController) {
	api.GET("/ws", ctrl.ServeWs)
}
