package repositories

import (
	"context"
	"slices"
	"strings"
	"time"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	apperrors "gym-maintenance/pkg/errors"

	"go.uber.org/zap"
)

const userIDPrefix = "USR"

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context) []entities.User
	FindUser(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, patch dto.UpdateUserDTO, passwordHash string) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) bool
	TouchLastLogin(ctx context.Context, id string, at time.Time)
}

type UserRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewUserRepository(storage Querier, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func (r *UserRepository) GetUsers(ctx context.Context) []entities.User {
	var list []entities.User
	r.storage.view(func(d *dataset) {
		list = make([]entities.User, len(d.users))
		for i, u := range d.users {
			list[i] = u.Clone()
		}
	})
	return list
}

func (r *UserRepository) FindUser(ctx context.Context, id string) (*entities.User, error) {
	return r.findBy(func(u entities.User) bool { return u.ID == id })
}

// FindByEmail compares emails case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	email = strings.TrimSpace(email)
	return r.findBy(func(u entities.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepository) findBy(match func(entities.User) bool) (*entities.User, error) {
	var (
		user  entities.User
		found bool
	)
	r.storage.view(func(d *dataset) {
		if i := slices.IndexFunc(d.users, match); i >= 0 {
			user, found = d.users[i].Clone(), true
		}
	})
	if !found {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	user = user.Clone()
	err := r.storage.update(func(d *dataset) error {
		if emailTaken(d, user.Email, "") {
			return apperrors.ErrAlreadyExists
		}
		user.ID = r.storage.nextID(userIDPrefix)
		d.users = append(d.users, user)
		return nil
	})
	if err != nil {
		r.logger.Warn("user email already registered", zap.String("email", user.Email))
		return nil, err
	}
	out := user.Clone()
	return &out, nil
}

// UpdateUser merges the patch; a non-empty passwordHash replaces the stored one.
// An unknown id yields ErrNotFound, a duplicate email ErrAlreadyExists.
func (r *UserRepository) UpdateUser(ctx context.Context, id string, patch dto.UpdateUserDTO, passwordHash string) (*entities.User, error) {
	var updated entities.User
	err := r.storage.update(func(d *dataset) error {
		i := slices.IndexFunc(d.users, func(u entities.User) bool { return u.ID == id })
		if i < 0 {
			return apperrors.ErrNotFound
		}
		if patch.Email != nil && emailTaken(d, *patch.Email, id) {
			return apperrors.ErrAlreadyExists
		}
		u := &d.users[i]
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Units != nil {
			u.Units = slices.Clone(*patch.Units)
		}
		if patch.Avatar != nil {
			u.Avatar = *patch.Avatar
		}
		if patch.Active != nil {
			u.Active = *patch.Active
		}
		if passwordHash != "" {
			u.PasswordHash = passwordHash
		}
		updated = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) bool {
	var found bool
	_ = r.storage.update(func(d *dataset) error {
		i := slices.IndexFunc(d.users, func(u entities.User) bool { return u.ID == id })
		if i < 0 {
			return nil
		}
		d.users = slices.Delete(d.users, i, i+1)
		found = true
		return nil
	})
	return found
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) {
	_ = r.storage.update(func(d *dataset) error {
		if i := slices.IndexFunc(d.users, func(u entities.User) bool { return u.ID == id }); i >= 0 {
			d.users[i].LastLogin = &at
		}
		return nil
	})
}

func emailTaken(d *dataset, email, exceptID string) bool {
	return slices.ContainsFunc(d.users, func(u entities.User) bool {
		return u.ID != exceptID && strings.EqualFold(u.Email, strings.TrimSpace(email))
	})
}
