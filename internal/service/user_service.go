package service

import (
	"context"
	"errors"
	"time"

	"shelflink/internal/domain"
	"shelflink/internal/repository"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService логика входа и справочные выборки пользователей и магазинов
type UserService struct {
	users  repository.UserRepository
	stores repository.StoreRepository
}

func NewUserService(users repository.UserRepository, stores repository.StoreRepository) *UserService {
	return &UserService{users: users, stores: stores}
}

// Login ищет пользователя по логину и роли и сверяет пароль.
// Несуществующий логин и неверный пароль неразличимы для клиента.
func (s *UserService) Login(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if username == "" || password == "" || role == "" {
		return nil, ErrInvalidInput
	}
	u, err := s.users.GetUserByCredentials(ctx, username, role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.UpdateUserLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLogin = now
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.users.GetUser(ctx, id)
}

func (s *UserService) GetStore(ctx context.Context, id int64) (*domain.Store, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.stores.GetStore(ctx, id)
}

// StoresBySupplier возвращает магазины, с которыми поставщик работает по заявкам
func (s *UserService) StoresBySupplier(ctx context.Context, supplierID int64) ([]domain.Store, error) {
	if supplierID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.stores.ListStoresBySupplier(ctx, supplierID)
}
