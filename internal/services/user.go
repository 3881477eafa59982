package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/query"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/types"
	"gym-maintenance/pkg/utils"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.UserDTO], error)
	FindUser(ctx context.Context, id string) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id string, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.UserDTO], error) {
	if _, err := authorize(ctx, authz.UsersManage); err != nil {
		return nil, err
	}

	list := query.FilterUsers(s.userRepo.GetUsers(ctx), query.UserFilter{Search: filter.Search, Role: filter.Value("role")})
	out := make([]dto.UserDTO, 0, len(list))
	for _, u := range list {
		out = append(out, toUserDTO(u))
	}
	return pageOf(out, filter), nil
}

func (s *UserService) FindUser(ctx context.Context, id string) (*dto.UserDTO, error) {
	if _, err := authorize(ctx, authz.UsersManage); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toUserDTO(*user)
	return &res, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	authContext, err := authorize(ctx, authz.UsersManage)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return nil, err
	}
	user := entities.User{
		Name:         payload.Name,
		Email:        strings.ToLower(strings.TrimSpace(payload.Email)),
		Role:         payload.Role,
		Units:        payload.Units,
		Avatar:       payload.Avatar,
		Active:       true,
		PasswordHash: hash,
	}
	if payload.Active != nil {
		user.Active = *payload.Active
	}
	if user.Role == entities.RoleAdmin && len(user.Units) == 0 {
		user.Units = []string{entities.AllUnits}
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.NewHttpError(http.StatusConflict, "Já existe um usuário com este e-mail", nil, nil)
		}
		return nil, err
	}
	s.logger.Info("user created",
		zap.String("user_id", created.ID),
		zap.String("role", string(created.Role)),
		zap.String("by", authContext.Actor.ID),
	)

	res := toUserDTO(*created)
	return &res, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	authContext, err := authorize(ctx, authz.UsersManage)
	if err != nil {
		return nil, err
	}
	if id == authContext.Actor.ID && payload.Active != nil && !*payload.Active {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Você não pode desativar o próprio usuário", nil, nil)
	}

	var hash string
	if payload.Password != nil {
		if hash, err = utils.HashPassword(*payload.Password); err != nil {
			s.logger.Error("password hashing failed", zap.Error(err))
			return nil, err
		}
	}
	if payload.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*payload.Email))
		payload.Email = &email
	}

	updated, err := s.userRepo.UpdateUser(ctx, id, payload, hash)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.NewHttpError(http.StatusConflict, "Já existe um usuário com este e-mail", nil, nil)
		}
		return nil, err
	}
	s.logger.Info("user updated", zap.String("user_id", id), zap.String("by", authContext.Actor.ID))

	res := toUserDTO(*updated)
	return &res, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	authContext, err := authorize(ctx, authz.UsersManage)
	if err != nil {
		return err
	}
	if id == authContext.Actor.ID {
		return apperrors.NewHttpError(http.StatusBadRequest, "Você não pode excluir o próprio usuário", nil, nil)
	}
	if !s.userRepo.DeleteUser(ctx, id) {
		return apperrors.ErrNotFound
	}
	s.logger.Info("user deleted", zap.String("user_id", id), zap.String("by", authContext.Actor.ID))
	return nil
}
