package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"shelflink/internal/domain"
)

// MemoryStore объединённое in-memory хранилище и простой генератор ID
type MemoryStore struct {
	mu            sync.RWMutex
	nextUserID    int64
	nextStoreID   int64
	nextProdID    int64
	nextChatID    int64
	nextMessageID int64
	nextSaleID    int64
	nextWasteID   int64
	usersByID     map[int64]domain.User
	storesByID    map[int64]domain.Store
	productsByID  map[int64]domain.Product
	chatsByID     map[int64]domain.Chat
	messagesByID  map[int64]domain.Message
	salesByID     map[int64]domain.Sale
	wastesByID    map[int64]domain.Waste
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextUserID:    1,
		nextStoreID:   1,
		nextProdID:    1,
		nextChatID:    1,
		nextMessageID: 1,
		nextSaleID:    1,
		nextWasteID:   1,
		usersByID:     make(map[int64]domain.User),
		storesByID:    make(map[int64]domain.Store),
		productsByID:  make(map[int64]domain.Product),
		chatsByID:     make(map[int64]domain.Chat),
		messagesByID:  make(map[int64]domain.Message),
		salesByID:     make(map[int64]domain.Sale),
		wastesByID:    make(map[int64]domain.Waste),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var (
	_ UserRepository    = (*MemoryStore)(nil)
	_ StoreRepository   = (*MemoryStore)(nil)
	_ ProductRepository = (*MemoryStore)(nil)
	_ SaleRepository    = (*MemoryStore)(nil)
	_ WasteRepository   = (*MemoryStore)(nil)
)

// ChatRepository и MessageRepository реализованы отдельным типом MemoryChats

// UserRepository implementation
func (m *MemoryStore) CreateUser(ctx context.Context, u *domain.User) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	u.ID = m.nextUserID
	m.nextUserID++
	m.usersByID[u.ID] = *u
	return nil
}

func (m *MemoryStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	u, ok := m.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := u
	return &cp, nil
}

func (m *MemoryStore) GetUserByCredentials(ctx context.Context, username string, role domain.Role) (*domain.User, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, u := range m.usersByID {
		if u.Username == username && u.Role == role {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpdateUserLastLogin(ctx context.Context, id int64, at time.Time) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	u, ok := m.usersByID[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLogin = at
	m.usersByID[id] = u
	return nil
}

// StoreRepository implementation
func (m *MemoryStore) CreateStore(ctx context.Context, s *domain.Store) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	s.ID = m.nextStoreID
	m.nextStoreID++
	m.storesByID[s.ID] = *s
	return nil
}

func (m *MemoryStore) GetStore(ctx context.Context, id int64) (*domain.Store, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	s, ok := m.storesByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := s
	return &cp, nil
}

func (m *MemoryStore) ListStores(ctx context.Context) ([]domain.Store, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Store, 0, len(m.storesByID))
	for _, s := range m.storesByID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListStoresBySupplier возвращает магазины, в которых у поставщика есть хотя бы одна заявка
func (m *MemoryStore) ListStoresBySupplier(ctx context.Context, supplierID int64) ([]domain.Store, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	seen := make(map[int64]bool)
	for _, p := range m.productsByID {
		if p.SupplierID == supplierID {
			seen[p.StoreID] = true
		}
	}
	out := make([]domain.Store, 0, len(seen))
	for id := range seen {
		if s, ok := m.storesByID[id]; ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ProductRepository implementation
func (m *MemoryStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p.ID = m.nextProdID
	m.nextProdID++
	m.productsByID[p.ID] = *p
	return nil
}

func (m *MemoryStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.productsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

// UpdateProductStatus меняет только поле статуса, остальные поля не трогает
func (m *MemoryStore) UpdateProductStatus(ctx context.Context, id int64, status domain.ProductStatus) (*domain.Product, error) {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p, ok := m.productsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Status = status
	m.productsByID[id] = p
	cp := p
	return &cp, nil
}

func (m *MemoryStore) ListProducts(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Product, 0)
	for _, p := range m.productsByID {
		if p.Status != f.Status {
			continue
		}
		if f.SupplierID != nil && p.SupplierID != *f.SupplierID {
			continue
		}
		if f.StoreID != nil && p.StoreID != *f.StoreID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) ListProductsByStore(ctx context.Context, storeID int64) ([]domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Product, 0)
	for _, p := range m.productsByID {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SaleRepository implementation
func (m *MemoryStore) CreateSale(ctx context.Context, s *domain.Sale) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	s.ID = m.nextSaleID
	m.nextSaleID++
	m.salesByID[s.ID] = *s
	return nil
}

func (m *MemoryStore) ListSalesByStore(ctx context.Context, storeID int64) ([]domain.Sale, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Sale, 0)
	for _, s := range m.salesByID {
		if s.StoreID == storeID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SalesByCategory суммирует продажи магазина по категориям, порядок строк не задан
func (m *MemoryStore) SalesByCategory(ctx context.Context, storeID int64) ([]CategorySales, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	totals := make(map[string]int64)
	for _, s := range m.salesByID {
		if s.StoreID == storeID {
			totals[s.Category] += s.Amount
		}
	}
	out := make([]CategorySales, 0, len(totals))
	for category, amount := range totals {
		out = append(out, CategorySales{Category: category, Amount: amount})
	}
	return out, nil
}

// WasteRepository implementation
func (m *MemoryStore) CreateWaste(ctx context.Context, w *domain.Waste) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	w.ID = m.nextWasteID
	m.nextWasteID++
	m.wastesByID[w.ID] = *w
	return nil
}

// ListWasteByStore сортирует по году, затем по календарному порядку месяцев
func (m *MemoryStore) ListWasteByStore(ctx context.Context, storeID int64) ([]domain.Waste, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Waste, 0)
	for _, w := range m.wastesByID {
		if w.StoreID == storeID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return monthOrder[out[i].Month] < monthOrder[out[j].Month]
	})
	return out, nil
}

// ChatRepository и MessageRepository на типе-обёртке
type MemoryChats struct{ store *MemoryStore }

func NewMemoryChats(store *MemoryStore) *MemoryChats { return &MemoryChats{store: store} }

var (
	_ ChatRepository    = (*MemoryChats)(nil)
	_ MessageRepository = (*MemoryChats)(nil)
)

func (mc *MemoryChats) CreateChat(ctx context.Context, c *domain.Chat) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	c.ID = mc.store.nextChatID
	mc.store.nextChatID++
	mc.store.chatsByID[c.ID] = *c
	return nil
}

func (mc *MemoryChats) GetChat(ctx context.Context, id int64) (*domain.Chat, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	c, ok := mc.store.chatsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (mc *MemoryChats) UpdateChat(ctx context.Context, c *domain.Chat) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	if _, ok := mc.store.chatsByID[c.ID]; !ok {
		return ErrNotFound
	}
	mc.store.chatsByID[c.ID] = *c
	return nil
}

func (mc *MemoryChats) ListChatsBySupplier(ctx context.Context, supplierID int64) ([]domain.Chat, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	out := make([]domain.Chat, 0)
	for _, c := range mc.store.chatsByID {
		if c.SupplierID == supplierID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (mc *MemoryChats) ListChatsByStoreManager(ctx context.Context, storeManagerID int64) ([]domain.Chat, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	out := make([]domain.Chat, 0)
	for _, c := range mc.store.chatsByID {
		if c.StoreManagerID == storeManagerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (mc *MemoryChats) CreateMessage(ctx context.Context, msg *domain.Message) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	msg.ID = mc.store.nextMessageID
	mc.store.nextMessageID++
	mc.store.messagesByID[msg.ID] = *msg
	return nil
}

func (mc *MemoryChats) UpdateMessage(ctx context.Context, msg *domain.Message) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	if _, ok := mc.store.messagesByID[msg.ID]; !ok {
		return ErrNotFound
	}
	mc.store.messagesByID[msg.ID] = *msg
	return nil
}

// ListMessagesByChat возвращает сообщения по возрастанию времени,
// при равном времени — в порядке вставки
func (mc *MemoryChats) ListMessagesByChat(ctx context.Context, chatID int64) ([]domain.Message, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	out := make([]domain.Message, 0)
	for _, msg := range mc.store.messagesByID {
		if msg.ChatID == chatID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

var _ TxManager = (*MemoryTx)(nil)

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
