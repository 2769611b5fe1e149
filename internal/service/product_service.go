package service

import (
	"context"
	"time"

	"shelflink/internal/domain"
	"shelflink/internal/repository"
)

// ProductService инкапсулирует логику заявок на поставку товаров
type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Request создаёт заявку с указанным статусом. Переходы статусов не
// ограничены, это ярлык, а не workflow.
func (s *ProductService) Request(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Name == "" || p.Category == "" || p.SupplierID <= 0 || p.StoreID <= 0 || p.Quantity <= 0 {
		return nil, ErrInvalidInput
	}
	if !domain.ValidProductStatus(p.Status) {
		return nil, ErrInvalidInput
	}
	if p.RequestDate.IsZero() {
		p.RequestDate = time.Now().UTC()
	}
	cp := p
	if err := s.repo.CreateProduct(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// UpdateStatus заменяет только статус, остальные поля заявки не меняются
func (s *ProductService) UpdateStatus(ctx context.Context, id int64, status domain.ProductStatus) (*domain.Product, error) {
	if id <= 0 || !domain.ValidProductStatus(status) {
		return nil, ErrInvalidInput
	}
	return s.repo.UpdateProductStatus(ctx, id, status)
}

// ByStatus возвращает заявки со статусом, опционально суженные по поставщику и магазину
func (s *ProductService) ByStatus(ctx context.Context, status domain.ProductStatus, supplierID, storeID *int64) ([]domain.Product, error) {
	if !domain.ValidProductStatus(status) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListProducts(ctx, repository.ProductFilter{
		Status:     status,
		SupplierID: supplierID,
		StoreID:    storeID,
	})
}

func (s *ProductService) ByStore(ctx context.Context, storeID int64) ([]domain.Product, error) {
	if storeID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListProductsByStore(ctx, storeID)
}
