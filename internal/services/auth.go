package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/pkg/config"
	"gym-maintenance/pkg/constants"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/metrics"
	"gym-maintenance/pkg/service"
	"gym-maintenance/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error)
	Me(ctx context.Context) (*dto.UserDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	metrics    *metrics.Collector
	clock      func() time.Time
	logger     *zap.Logger
	cfg        *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	metrics *metrics.Collector,
	clock func() time.Time,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
		cfg:        cfg,
	}
}

// Login checks the credentials of an active user. After MaxLoginAttempts
// consecutive failures the account is locked for LockoutDuration.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	logger := s.logger.With(zap.String("email", strings.ToLower(payload.Email)))

	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		s.metrics.LoginFailed()
		logger.Warn("login for unknown email")
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := s.checkLockout(ctx, user.ID); err != nil {
		logger.Warn("login attempt on locked account", zap.String("user_id", user.ID))
		return nil, err
	}
	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		s.metrics.LoginFailed()
		s.handleFailedLoginAttempt(ctx, user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, apperrors.ErrUserDisabled
	}
	s.resetLoginAttempts(ctx, user.ID)

	now := s.clock()
	s.userRepo.TouchLastLogin(ctx, user.ID, now)
	user.LastLogin = &now
	logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	return s.issueTokens(user)
}

func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindUser(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !user.Active {
		return nil, apperrors.ErrUserDisabled
	}
	return s.issueTokens(user)
}

func (s *AuthService) Me(ctx context.Context) (*dto.UserDTO, error) {
	actor, err := utils.GetActorFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	res := toUserDTO(*actor)
	return &res, nil
}

func (s *AuthService) issueTokens(user *entities.User) (*dto.AuthResponseDTO, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		s.logger.Error("token generation failed", zap.String("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	return &dto.AuthResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserDTO(*user),
	}, nil
}

func (s *AuthService) checkLockout(ctx context.Context, userID string) error {
	if _, err := s.cacheRepo.Get(ctx, lockoutKey(userID)); err == nil {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, userID string) {
	key := attemptsKey(userID)
	attempts, err := s.cacheRepo.Incr(ctx, key)
	if err != nil {
		s.logger.Error("login attempt counter failed", zap.String("user_id", userID), zap.Error(err))
		return
	}
	if attempts == 1 {
		_, _ = s.cacheRepo.Expire(ctx, key, s.cfg.LockoutDuration)
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		s.logger.Warn("account locked after failed logins", zap.String("user_id", userID), zap.Int64("attempts", attempts))
		_ = s.cacheRepo.Set(ctx, lockoutKey(userID), "locked", s.cfg.LockoutDuration)
		_ = s.cacheRepo.Del(ctx, key)
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, userID string) {
	_ = s.cacheRepo.Del(ctx, attemptsKey(userID), lockoutKey(userID))
}

func attemptsKey(userID string) string { return fmt.Sprintf(constants.CacheKeyLoginAttempts, userID) }
func lockoutKey(userID string) string  { return fmt.Sprintf(constants.CacheKeyLockout, userID) }
