package controllers

import (
	"net/http"

	"gym-maintenance/internal/repositories"
	"gym-maintenance/pkg/service"
	appwebsocket "gym-maintenance/pkg/websocket"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketController struct {
	hub        *appwebsocket.Hub
	jwtService service.JWTService
	userRepo   repositories.UserRepositoryInterface
	logger     *zap.Logger
}

func NewWebSocketController(hub *appwebsocket.Hub, jwtService service.JWTService, userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		hub:        hub,
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// ServeWs authenticates with the access token in the token query parameter,
// since browsers cannot set headers on a websocket handshake.
func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	tokenString := ctx.QueryParam("token")
	if tokenString == "" {
		return ctx.String(http.StatusUnauthorized, "Token ausente")
	}

	claims, err := c.jwtService.ValidateToken(tokenString)
	if err != nil || claims.IsRefreshToken {
		return ctx.String(http.StatusUnauthorized, "Token inválido")
	}
	user, err := c.userRepo.FindUser(ctx.Request().Context(), claims.UserID)
	if err != nil || !user.Active {
		return ctx.String(http.StatusUnauthorized, "Usuário inválido")
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", zap.Error(err))
		return err
	}

	client := appwebsocket.NewClient(c.hub, conn, user.ID)
	if !c.hub.Register(client) {
		_ = conn.Close()
		return nil
	}

	go client.WritePump()
	go client.ReadPump()

	c.logger.Info("websocket client connected", zap.String("user_id", user.ID))
	return nil
}
