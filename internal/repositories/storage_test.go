package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeClock returns a fixed instant until moved.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func newTestStorage(t *testing.T) (*Storage, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)}
	s := NewStorage(WithClock(clock.Now))
	s.Load(Snapshot{
		Units: []entities.Unit{
			{ID: "Unit-001", Name: "Academia Gaviões - Centro", Address: "Rua das Flores, 123", Technician: "João Silva", EquipmentCount: 45},
		},
		Equipments: []entities.Equipment{
			{ID: "EQ-001", Name: "Esteira Ergométrica", Tag: "EST-001", UnitID: "Unit-001", Status: entities.EquipmentStatusOK, LifeExpectancy: 10, CurrentAge: 1},
		},
	})
	return s, clock
}

func TestEquipmentRepository(t *testing.T) {
	ctx := context.Background()
	storage, _ := newTestStorage(t)
	repo := NewEquipmentRepository(storage)

	t.Run("create assigns a prefixed id and tolerates unknown units", func(t *testing.T) {
		created := repo.CreateEquipment(ctx, entities.Equipment{Name: "Remo", UnitID: "Unit-404"})
		assert.Equal(t, fmt.Sprintf("EQ-%d", time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC).UnixMilli()), created.ID)

		found, err := repo.FindEquipment(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Unit-404", found.UnitID)
	})

	t.Run("update merges only the given fields", func(t *testing.T) {
		status := entities.EquipmentStatusWarning
		updated, ok := repo.UpdateEquipment(ctx, "EQ-001", dto.UpdateEquipmentDTO{Status: &status})
		require.True(t, ok)
		assert.Equal(t, entities.EquipmentStatusWarning, updated.Status)
		assert.Equal(t, "Esteira Ergométrica", updated.Name)
		assert.Equal(t, 10, updated.LifeExpectancy)
	})

	t.Run("update of unknown id is a silent no-op", func(t *testing.T) {
		before := repo.GetEquipments(ctx)
		name := "x"
		_, ok := repo.UpdateEquipment(ctx, "EQ-404", dto.UpdateEquipmentDTO{Name: &name})
		assert.False(t, ok)
		assert.Equal(t, before, repo.GetEquipments(ctx))
	})

	t.Run("delete removes and does not cascade", func(t *testing.T) {
		calls := NewTechnicalCallRepository(storage)
		calls.CreateCall(ctx, entities.TechnicalCall{EquipmentID: "EQ-001", EquipmentName: "Esteira Ergométrica"})

		assert.True(t, repo.DeleteEquipment(ctx, "EQ-001"))
		assert.False(t, repo.DeleteEquipment(ctx, "EQ-001"))

		_, err := repo.FindEquipment(ctx, "EQ-001")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		require.Len(t, calls.GetCalls(ctx), 1)
		assert.Equal(t, "EQ-001", calls.GetCalls(ctx)[0].EquipmentID)
	})
}

func TestIDsAreUniqueWithinTheSameMillisecond(t *testing.T) {
	ctx := context.Background()
	storage, _ := newTestStorage(t)
	repo := NewChecklistRepository(storage)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c := repo.CreateChecklist(ctx, entities.Checklist{EquipmentID: "EQ-001"})
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestTechnicalCallRepository_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	storage, clock := newTestStorage(t)
	repo := NewTechnicalCallRepository(storage)

	created := repo.CreateCall(ctx, entities.TechnicalCall{
		EquipmentID: "EQ-001",
		Status:      entities.CallStatusPending,
		Photos:      []string{"a.jpg"},
	})
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	clock.Set(created.CreatedAt.Add(2 * time.Hour))
	status := entities.CallStatusResolved
	updated, ok := repo.UpdateCall(ctx, created.ID, dto.UpdateTechnicalCallDTO{
		Status:     &status,
		Resolution: null.StringFrom("Correia substituída"),
	})
	require.True(t, ok)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.CreatedAt.Add(2*time.Hour), updated.UpdatedAt)
	assert.Equal(t, "Correia substituída", updated.Resolution)
	assert.Equal(t, []string{"a.jpg"}, updated.Photos)

	t.Run("a clock behind createdAt never produces updatedAt before it", func(t *testing.T) {
		clock.Set(created.CreatedAt.Add(-time.Hour))
		again, ok := repo.UpdateCall(ctx, created.ID, dto.UpdateTechnicalCallDTO{})
		require.True(t, ok)
		assert.False(t, again.UpdatedAt.Before(again.CreatedAt))
	})

	t.Run("reads do not alias stored slices", func(t *testing.T) {
		found, err := repo.FindCall(ctx, created.ID)
		require.NoError(t, err)
		found.Photos[0] = "changed.jpg"

		fresh, err := repo.FindCall(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "a.jpg", fresh.Photos[0])
	})

	_, ok = repo.UpdateCall(ctx, "CALL-404", dto.UpdateTechnicalCallDTO{Status: &status})
	assert.False(t, ok)
}

func TestUnitRepository(t *testing.T) {
	ctx := context.Background()
	storage, _ := newTestStorage(t)
	repo := NewUnitRepository(storage)

	created := repo.CreateUnit(ctx, entities.Unit{Name: "Academia Gaviões - Leste", Address: "Rua Nova, 1"})
	assert.Contains(t, created.ID, "UNIT-")

	updated, ok := repo.UpdateUnit(ctx, created.ID, dto.UpdateUnitDTO{
		Manager:  null.StringFrom("Ana"),
		Capacity: null.IntFrom(300),
	})
	require.True(t, ok)
	assert.Equal(t, "Ana", updated.Manager)
	assert.Equal(t, 300, updated.Capacity)
	assert.Equal(t, "Rua Nova, 1", updated.Address)

	assert.True(t, repo.DeleteUnit(ctx, "Unit-001"))
	eq, err := NewEquipmentRepository(storage).FindEquipment(ctx, "EQ-001")
	require.NoError(t, err)
	assert.Equal(t, "Unit-001", eq.UnitID)

	_, ok = repo.UpdateUnit(ctx, "Unit-001", dto.UpdateUnitDTO{})
	assert.False(t, ok)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	storage, clock := newTestStorage(t)
	repo := NewUserRepository(storage, zap.NewNop())

	admin, err := repo.CreateUser(ctx, entities.User{Name: "Admin", Email: "admin@gavioes.com", Role: entities.RoleAdmin, Units: []string{entities.AllUnits}, Active: true})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, entities.User{Email: "ADMIN@gavioes.com"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)

	found, err := repo.FindByEmail(ctx, " Admin@Gavioes.com ")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)

	name := "Administrador"
	updated, err := repo.UpdateUser(ctx, admin.ID, dto.UpdateUserDTO{Name: &name}, "new-hash")
	require.NoError(t, err)
	assert.Equal(t, "Administrador", updated.Name)
	assert.Equal(t, "new-hash", updated.PasswordHash)

	_, err = repo.UpdateUser(ctx, "USR-404", dto.UpdateUserDTO{}, "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	repo.TouchLastLogin(ctx, admin.ID, clock.Now())
	found, err = repo.FindUser(ctx, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLogin)
	assert.True(t, found.LastLogin.Equal(clock.Now()))

	assert.True(t, repo.DeleteUser(ctx, admin.ID))
	_, err = repo.FindUser(ctx, admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	storage, clock := newTestStorage(t)
	repo := NewNotificationRepository(storage)

	first := repo.CreateNotification(ctx, entities.Notification{UserID: "1", Title: "primeira"})
	clock.Set(clock.Now().Add(time.Minute))
	repo.CreateNotification(ctx, entities.Notification{UserID: "1", Title: "segunda"})
	repo.CreateNotification(ctx, entities.Notification{UserID: "2", Title: "outra"})

	feed := repo.GetNotifications(ctx, "1")
	require.Len(t, feed, 2)
	assert.Equal(t, "segunda", feed[0].Title)
	assert.Equal(t, 2, repo.CountUnread(ctx, "1"))

	_, ok := repo.MarkRead(ctx, first.ID, "2")
	assert.False(t, ok)

	read, ok := repo.MarkRead(ctx, first.ID, "1")
	require.True(t, ok)
	assert.True(t, read.Read)
	assert.Equal(t, 1, repo.CountUnread(ctx, "1"))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	storage, _ := newTestStorage(t)
	boom := errors.New("boom")

	err := WithTx(ctx, storage, func(tx Querier) error {
		status := entities.EquipmentStatusError
		_, ok := NewEquipmentRepository(tx).UpdateEquipment(ctx, "EQ-001", dto.UpdateEquipmentDTO{Status: &status})
		require.True(t, ok)
		NewChecklistRepository(tx).CreateChecklist(ctx, entities.Checklist{EquipmentID: "EQ-001"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	eq, err := NewEquipmentRepository(storage).FindEquipment(ctx, "EQ-001")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusOK, eq.Status)
	assert.Empty(t, NewChecklistRepository(storage).GetChecklists(ctx))

	err = WithTx(ctx, storage, func(tx Querier) error {
		NewChecklistRepository(tx).CreateChecklist(ctx, entities.Checklist{EquipmentID: "EQ-001"})
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, NewChecklistRepository(storage).GetChecklists(ctx), 1)
}

func TestWithTxHonoursCancelledContext(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, storage, func(tx Querier) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStorageIsSafeForConcurrentUse(t *testing.T) {
	ctx := context.Background()
	storage, _ := newTestStorage(t)
	repo := NewEquipmentRepository(storage)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			repo.CreateEquipment(ctx, entities.Equipment{Name: "Bike", UnitID: "Unit-001"})
		}()
		go func() {
			defer wg.Done()
			_ = repo.GetEquipments(ctx)
		}()
	}
	wg.Wait()

	list := repo.GetEquipments(ctx)
	assert.Len(t, list, 21)
	ids := make(map[string]bool)
	for _, e := range list {
		ids[e.ID] = true
	}
	assert.Len(t, ids, 21)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	storage, _ := newTestStorage(t)
	NewChecklistRepository(storage).CreateChecklist(context.Background(), entities.Checklist{Photos: []string{"p.jpg"}})

	snap := storage.Snapshot()
	snap.Checklists[0].Photos[0] = "changed.jpg"
	snap.Equipments[0].Name = "changed"

	again := storage.Snapshot()
	assert.Equal(t, "p.jpg", again.Checklists[0].Photos[0])
	assert.Equal(t, "Esteira Ergométrica", again.Equipments[0].Name)
	assert.Equal(t, "2024-01-20", utils.FormatDate(storage.Now()))
}

func TestMemoryCacheRepository(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)}
	cache := NewMemoryCacheRepository(clock.Now)

	_, err := cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	n, err := cache.Incr(ctx, "login:a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	ok, err := cache.Expire(ctx, "login:a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err = cache.Incr(ctx, "login:a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	clock.Set(clock.Now().Add(time.Minute))
	_, err = cache.Get(ctx, "login:a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "lock", true, 0))
	v, err := cache.Get(ctx, "lock")
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	require.NoError(t, cache.Del(ctx, "lock"))
	_, err = cache.Get(ctx, "lock")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "word", "abc", 0))
	_, err = cache.Incr(ctx, "word")
	assert.Error(t, err)
}
