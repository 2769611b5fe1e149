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

func newProductFixture(t *testing.T) (*ProductService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewProductService(store), store
}

func TestRequest_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductFixture(t)

	base := domain.Product{Name: "Apples", Category: "Produce", SupplierID: 2, Quantity: 5,
		Status: domain.ProductStatusRequested, StoreID: 1}

	p := base
	p.Name = ""
	_, err := svc.Request(ctx, p)
	assert.ErrorIs(t, err, ErrInvalidInput)

	p = base
	p.Status = "shipped"
	_, err = svc.Request(ctx, p)
	assert.ErrorIs(t, err, ErrInvalidInput)

	p = base
	p.Quantity = 0
	_, err = svc.Request(ctx, p)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRequest_DefaultsRequestDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductFixture(t)

	created, err := svc.Request(ctx, domain.Product{
		Name: "Apples", Category: "Produce", SupplierID: 2, Quantity: 5,
		Status: domain.ProductStatusRequested, StoreID: 1,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.RequestDate.IsZero())
}

func TestUpdateStatus_OnlyStatusChanges(t *testing.T) {
	ctx := context.Background()
	svc, store := newProductFixture(t)

	p := domain.Product{Name: "Milk", Category: "Dairy", SupplierID: 2, Quantity: 10,
		Status: domain.ProductStatusRequested, RequestDate: time.Now().UTC(), StoreID: 1}
	require.NoError(t, store.CreateProduct(ctx, &p))

	updated, err := svc.UpdateStatus(ctx, p.ID, domain.ProductStatusInTransit)
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusInTransit, updated.Status)

	want := p
	want.Status = domain.ProductStatusInTransit
	assert.Equal(t, want, *updated)
}

func TestUpdateStatus_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductFixture(t)

	_, err := svc.UpdateStatus(ctx, 999, domain.ProductStatusDelayed)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.UpdateStatus(ctx, 1, "shipped")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestByStatus_RejectsUnknownLabel(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductFixture(t)

	_, err := svc.ByStatus(ctx, "shipped", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
