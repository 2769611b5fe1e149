package repository

import (
	"context"
	"errors"
	"time"

	"shelflink/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// ProductFilter параметры выборки заявок по статусу
type ProductFilter struct {
	Status     domain.ProductStatus
	SupplierID *int64
	StoreID    *int64
}

// CategorySales суммарные продажи магазина по одной категории
type CategorySales struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByCredentials(ctx context.Context, username string, role domain.Role) (*domain.User, error)
	UpdateUserLastLogin(ctx context.Context, id int64, at time.Time) error
}

// StoreRepository интерфейс репозитория магазинов
type StoreRepository interface {
	CreateStore(ctx context.Context, s *domain.Store) error
	GetStore(ctx context.Context, id int64) (*domain.Store, error)
	ListStores(ctx context.Context) ([]domain.Store, error)
	ListStoresBySupplier(ctx context.Context, supplierID int64) ([]domain.Store, error)
}

// ProductRepository интерфейс репозитория заявок на поставку
type ProductRepository interface {
	CreateProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	UpdateProductStatus(ctx context.Context, id int64, status domain.ProductStatus) (*domain.Product, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]domain.Product, error)
	ListProductsByStore(ctx context.Context, storeID int64) ([]domain.Product, error)
}

// ChatRepository интерфейс репозитория чатов
type ChatRepository interface {
	CreateChat(ctx context.Context, c *domain.Chat) error
	GetChat(ctx context.Context, id int64) (*domain.Chat, error)
	UpdateChat(ctx context.Context, c *domain.Chat) error
	ListChatsBySupplier(ctx context.Context, supplierID int64) ([]domain.Chat, error)
	ListChatsByStoreManager(ctx context.Context, storeManagerID int64) ([]domain.Chat, error)
}

// MessageRepository интерфейс репозитория сообщений
type MessageRepository interface {
	CreateMessage(ctx context.Context, m *domain.Message) error
	UpdateMessage(ctx context.Context, m *domain.Message) error
	ListMessagesByChat(ctx context.Context, chatID int64) ([]domain.Message, error)
}

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	CreateSale(ctx context.Context, s *domain.Sale) error
	ListSalesByStore(ctx context.Context, storeID int64) ([]domain.Sale, error)
	SalesByCategory(ctx context.Context, storeID int64) ([]CategorySales, error)
}

// WasteRepository интерфейс репозитория списаний
type WasteRepository interface {
	CreateWaste(ctx context.Context, w *domain.Waste) error
	ListWasteByStore(ctx context.Context, storeID int64) ([]domain.Waste, error)
}

// TxManager абстракция транзакции. Для in-memory — глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// порядок месяцев для сортировки списаний
var monthOrder = map[string]int{
	"Jan": 0, "Feb": 1, "Mar": 2, "Apr": 3, "May": 4, "Jun": 5,
	"Jul": 6, "Aug": 7, "Sep": 8, "Oct": 9, "Nov": 10, "Dec": 11,
}
