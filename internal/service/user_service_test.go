package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelflink/internal/domain"
	"shelflink/internal/repository"
)

func newUserFixture(t *testing.T) (*UserService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewUserService(store, store), store
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	svc, store := newUserFixture(t)

	before := time.Now().UTC().Add(-time.Hour)
	u := domain.User{Username: "1234567890", Password: "password123",
		Email: "store@example.com", Role: domain.RoleStoreManager, LastLogin: before}
	require.NoError(t, store.CreateUser(ctx, &u))

	got, err := svc.Login(ctx, "1234567890", "password123", domain.RoleStoreManager)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStoreManager, got.Role)
	assert.True(t, got.LastLogin.After(before), "lastLogin must be refreshed")

	stored, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.LastLogin.After(before))
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()
	svc, store := newUserFixture(t)

	u := domain.User{Username: "1234567890", Password: "password123",
		Email: "store@example.com", Role: domain.RoleStoreManager}
	require.NoError(t, store.CreateUser(ctx, &u))

	// неверный пароль и неизвестный логин неразличимы
	_, err := svc.Login(ctx, "1234567890", "wrong", domain.RoleStoreManager)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "0000000000", "password123", domain.RoleStoreManager)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	// та же пара логин-пароль, но другая роль
	_, err = svc.Login(ctx, "1234567890", "password123", domain.RoleSupplier)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "password123", domain.RoleStoreManager)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStoresBySupplier(t *testing.T) {
	ctx := context.Background()
	svc, store := newUserFixture(t)

	s := domain.Store{Name: "Store #1423", Location: "Dallas, TX", Address: "123 Central Mall Ave"}
	require.NoError(t, store.CreateStore(ctx, &s))
	p := domain.Product{Name: "Apples", Category: "Produce", SupplierID: 2, Quantity: 5,
		Status: domain.ProductStatusRequested, RequestDate: time.Now().UTC(), StoreID: s.ID}
	require.NoError(t, store.CreateProduct(ctx, &p))

	list, err := svc.StoresBySupplier(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s.ID, list[0].ID)

	list, err = svc.StoresBySupplier(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, list)
}
