package service

import (
	"context"

	"shelflink/internal/domain"
	"shelflink/internal/repository"
)

// Упрощённая оценка склада: фиксированная стоимость за позицию,
// не настоящая переоценка запасов.
const inventoryUnitValue = 10000

// StoreManagerStats агрегаты дашборда менеджера магазина
type StoreManagerStats struct {
	TotalSales           int64 `json:"totalSales"`
	InventoryValue       int64 `json:"inventoryValue"`
	WasteValue           int64 `json:"wasteValue"`
	ActiveSupplierOrders int   `json:"activeSupplierOrders"`
}

// SupplierStats агрегаты дашборда поставщика
type SupplierStats struct {
	TotalRequestedProducts int `json:"totalRequestedProducts"`
	TotalInTransitProducts int `json:"totalInTransitProducts"`
	TotalDelayedProducts   int `json:"totalDelayedProducts"`
}

// StatsService считает агрегаты на лету поверх базовых выборок, своего состояния не хранит
type StatsService struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	waste    repository.WasteRepository
}

func NewStatsService(products repository.ProductRepository, sales repository.SaleRepository, waste repository.WasteRepository) *StatsService {
	return &StatsService{products: products, sales: sales, waste: waste}
}

func (s *StatsService) StoreManagerStats(ctx context.Context, storeID int64) (*StoreManagerStats, error) {
	if storeID <= 0 {
		return nil, ErrInvalidInput
	}

	sales, err := s.sales.ListSalesByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	var totalSales int64
	for _, sale := range sales {
		totalSales += sale.Amount
	}

	wastes, err := s.waste.ListWasteByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	var wasteValue int64
	for _, w := range wastes {
		wasteValue += w.Amount
	}

	products, err := s.products.ListProductsByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	active := 0
	for _, p := range products {
		if p.Status == domain.ProductStatusRequested || p.Status == domain.ProductStatusInTransit {
			active++
		}
	}

	return &StoreManagerStats{
		TotalSales:           totalSales,
		InventoryValue:       int64(len(products)) * inventoryUnitValue,
		WasteValue:           wasteValue,
		ActiveSupplierOrders: active,
	}, nil
}

func (s *StatsService) SupplierStats(ctx context.Context, supplierID int64) (*SupplierStats, error) {
	if supplierID <= 0 {
		return nil, ErrInvalidInput
	}

	stats := &SupplierStats{}
	counts := []struct {
		status domain.ProductStatus
		dst    *int
	}{
		{domain.ProductStatusRequested, &stats.TotalRequestedProducts},
		{domain.ProductStatusInTransit, &stats.TotalInTransitProducts},
		{domain.ProductStatusDelayed, &stats.TotalDelayedProducts},
	}
	for _, c := range counts {
		products, err := s.products.ListProducts(ctx, repository.ProductFilter{
			Status:     c.status,
			SupplierID: &supplierID,
		})
		if err != nil {
			return nil, err
		}
		*c.dst = len(products)
	}
	return stats, nil
}

func (s *StatsService) SalesByCategory(ctx context.Context, storeID int64) ([]repository.CategorySales, error) {
	if storeID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.sales.SalesByCategory(ctx, storeID)
}

func (s *StatsService) WasteByStore(ctx context.Context, storeID int64) ([]domain.Waste, error) {
	if storeID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.waste.ListWasteByStore(ctx, storeID)
}
