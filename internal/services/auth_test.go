package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/pkg/config"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/metrics"
	"gym-maintenance/pkg/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	svc      AuthServiceInterface
	jwt      service.JWTService
	metrics  *metrics.Collector
	userRepo repositories.UserRepositoryInterface
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	storage := newFixtureStorage(t)
	userRepo := repositories.NewUserRepository(storage, zap.NewNop())

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	for _, u := range userRepo.GetUsers(context.Background()) {
		_, err := userRepo.UpdateUser(context.Background(), u.ID, dto.UpdateUserDTO{}, string(hash))
		require.NoError(t, err)
	}

	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	collector := metrics.New()
	cache := repositories.NewMemoryCacheRepository(time.Now)
	svc := NewAuthService(userRepo, cache, jwtSvc, collector, fixedClock, zap.NewNop(), &config.AuthConfig{
		MaxLoginAttempts: 3,
		LockoutDuration:  time.Minute,
	})
	return authFixture{svc: svc, jwt: jwtSvc, metrics: collector, userRepo: userRepo}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue tokens and stamp last login", func(t *testing.T) {
		f := newAuthFixture(t)
		res, err := f.svc.Login(ctx, dto.LoginDTO{Email: "ADMIN@gavioes.com", Password: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "1", res.User.ID)
		assert.Equal(t, "Administrador", res.User.RoleLabel)

		claims, err := f.jwt.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "1", claims.UserID)
		assert.False(t, claims.IsRefreshToken)

		stored, err := f.userRepo.FindUser(ctx, "1")
		require.NoError(t, err)
		require.NotNil(t, stored.LastLogin)
		assert.Equal(t, testNow, *stored.LastLogin)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.Login(ctx, dto.LoginDTO{Email: "admin@gavioes.com", Password: "errada"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		_, err = f.svc.Login(ctx, dto.LoginDTO{Email: "ninguem@gavioes.com", Password: "123456"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

		expected := `
# HELP gym_login_failures_total Rejected login attempts.
# TYPE gym_login_failures_total counter
gym_login_failures_total 2
`
		assert.NoError(t, testutil.GatherAndCompare(f.metrics.Registry(), strings.NewReader(expected), "gym_login_failures_total"))
	})

	t.Run("account locks after repeated failures", func(t *testing.T) {
		f := newAuthFixture(t)
		for i := 0; i < 3; i++ {
			_, err := f.svc.Login(ctx, dto.LoginDTO{Email: "tecnico@gavioes.com", Password: "errada"})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		}
		_, err := f.svc.Login(ctx, dto.LoginDTO{Email: "tecnico@gavioes.com", Password: "123456"})
		assert.ErrorIs(t, err, apperrors.ErrAccountLocked)

		_, err = f.svc.Login(ctx, dto.LoginDTO{Email: "admin@gavioes.com", Password: "123456"})
		assert.NoError(t, err)
	})

	t.Run("inactive user cannot log in", func(t *testing.T) {
		f := newAuthFixture(t)
		inactive := false
		_, err := f.userRepo.UpdateUser(ctx, "3", dto.UpdateUserDTO{Active: &inactive}, "")
		require.NoError(t, err)

		_, err = f.svc.Login(ctx, dto.LoginDTO{Email: "inspetor@gavioes.com", Password: "123456"})
		assert.ErrorIs(t, err, apperrors.ErrUserDisabled)
	})
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	login, err := f.svc.Login(ctx, dto.LoginDTO{Email: "admin@gavioes.com", Password: "123456"})
	require.NoError(t, err)

	refreshed, err := f.svc.RefreshTokens(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = f.svc.RefreshTokens(ctx, login.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)

	_, err = f.svc.RefreshTokens(ctx, "garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestMe(t *testing.T) {
	f := newAuthFixture(t)
	me, err := f.svc.Me(actorCtx(technicianUser))
	require.NoError(t, err)
	assert.Equal(t, []string{"Unit-001"}, me.Units)

	_, err = f.svc.Me(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
