package middleware

import (
	"strings"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/service"
	"gym-maintenance/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	userRepo   repositories.UserRepositoryInterface
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Auth validates the bearer access token, loads the user and stores it with its
// role permissions in the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("auth: token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := c.Request().Context()
		actor, err := m.userRepo.FindUser(ctx, claims.UserID)
		if err != nil {
			m.logger.Warn("auth: token owner no longer exists", zap.String("user_id", claims.UserID))
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}
		if !actor.Active {
			return utils.ErrorResponse(c, apperrors.ErrUserDisabled, m.logger)
		}

		c.SetRequest(c.Request().WithContext(utils.WithActor(ctx, actor, authz.PermissionsFor(actor.Role))))
		return next(c)
	}
}

// Authorize rejects requests whose actor lacks permission. It must run after Auth.
func (m *AuthMiddleware) Authorize(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			actor, err := utils.GetActorFromCtx(ctx)
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}
			permissions, err := utils.GetPermissionsMapFromCtx(ctx)
			if err != nil || !authz.CanDo(permission, authz.Context{Actor: actor, Permissions: permissions}) {
				m.logger.Warn("auth: permission denied",
					zap.String("user_id", actor.ID),
					zap.String("permission", permission),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
