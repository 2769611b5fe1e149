package repository

import (
	"context"
	"testing"
	"time"

	"shelflink/internal/domain"
)

func TestMemoryStore_ProductCreateGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := domain.Product{
		Name:        "Organic Bananas (5lb)",
		Category:    "Produce",
		SupplierID:  2,
		Quantity:    20,
		Status:      domain.ProductStatusRequested,
		RequestDate: time.Now().UTC(),
		StoreID:     1,
	}
	if err := store.CreateProduct(ctx, &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("no id")
	}

	got, err := store.GetProduct(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != p {
		t.Fatalf("stored product differs from input: %+v vs %+v", *got, p)
	}

	if _, err := store.GetProduct(ctx, 999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_UpdateProductStatus(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := domain.Product{
		Name: "Milk", Category: "Dairy", SupplierID: 2, Quantity: 10,
		Status: domain.ProductStatusRequested, RequestDate: time.Now().UTC(), StoreID: 1,
	}
	if err := store.CreateProduct(ctx, &p); err != nil {
		t.Fatal(err)
	}

	updated, err := store.UpdateProductStatus(ctx, p.ID, domain.ProductStatusInTransit)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.ProductStatusInTransit {
		t.Fatalf("status not updated: %v", updated.Status)
	}
	// все остальные поля без изменений
	want := p
	want.Status = domain.ProductStatusInTransit
	if *updated != want {
		t.Fatalf("other fields changed: %+v vs %+v", *updated, want)
	}

	if _, err := store.UpdateProductStatus(ctx, 999, domain.ProductStatusDelayed); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListProducts_Filters(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	add := func(supplierID, storeID int64, status domain.ProductStatus) {
		p := domain.Product{
			Name: "P", Category: "Produce", SupplierID: supplierID, Quantity: 1,
			Status: status, RequestDate: time.Now().UTC(), StoreID: storeID,
		}
		if err := store.CreateProduct(ctx, &p); err != nil {
			t.Fatal(err)
		}
	}
	add(2, 1, domain.ProductStatusDelayed)
	add(2, 3, domain.ProductStatusDelayed)
	add(3, 1, domain.ProductStatusDelayed)
	add(2, 1, domain.ProductStatusRequested)

	supplier := int64(2)
	list, err := store.ListProducts(ctx, ProductFilter{Status: domain.ProductStatusDelayed, SupplierID: &supplier})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("delayed for supplier 2: expected 2, got %d", len(list))
	}

	// фильтры объединяются по И
	storeID := int64(1)
	list, _ = store.ListProducts(ctx, ProductFilter{Status: domain.ProductStatusDelayed, SupplierID: &supplier, StoreID: &storeID})
	if len(list) != 1 {
		t.Fatalf("expected 1, got %d", len(list))
	}

	// несовпавший фильтр — пустой срез, не ошибка
	missing := int64(77)
	list, err = store.ListProducts(ctx, ProductFilter{Status: domain.ProductStatusDelayed, SupplierID: &missing})
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty, got %v %v", list, err)
	}
}

func TestSalesByCategory_Grouping(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	add := func(storeID int64, category string, amount int64) {
		s := domain.Sale{StoreID: storeID, Category: category, Amount: amount, Date: time.Now().UTC()}
		if err := store.CreateSale(ctx, &s); err != nil {
			t.Fatal(err)
		}
	}
	add(1, "Dairy", 100)
	add(1, "Dairy", 50)
	add(1, "Produce", 30)
	add(2, "Dairy", 999)

	rows, err := store.SalesByCategory(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected one row per category, got %d", len(rows))
	}
	var total int64
	byCat := make(map[string]int64)
	for _, r := range rows {
		byCat[r.Category] = r.Amount
		total += r.Amount
	}
	if byCat["Dairy"] != 150 || byCat["Produce"] != 30 {
		t.Fatalf("wrong sums: %v", byCat)
	}
	if total != 180 {
		t.Fatalf("total mismatch: %d", total)
	}
}

func TestListWasteByStore_Ordering(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	add := func(year int, month string) {
		w := domain.Waste{StoreID: 1, Amount: 100, Month: month, Year: year}
		if err := store.CreateWaste(ctx, &w); err != nil {
			t.Fatal(err)
		}
	}
	add(2023, "Mar")
	add(2022, "Dec")
	add(2023, "Jan")

	list, err := store.ListWasteByStore(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		year  int
		month string
	}{{2022, "Dec"}, {2023, "Jan"}, {2023, "Mar"}}
	if len(list) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(list))
	}
	for i, w := range want {
		if list[i].Year != w.year || list[i].Month != w.month {
			t.Fatalf("position %d: expected %d %s, got %d %s", i, w.year, w.month, list[i].Year, list[i].Month)
		}
	}
}

func TestListMessagesByChat_Ordering(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	chats := NewMemoryChats(store)

	base := time.Now().UTC()
	add := func(at time.Time) {
		msg := domain.Message{ChatID: 1, SenderID: 1, Content: "hi", Timestamp: at}
		if err := chats.CreateMessage(ctx, &msg); err != nil {
			t.Fatal(err)
		}
	}
	add(base.Add(2 * time.Minute))
	add(base)
	add(base) // та же метка времени — порядок вставки

	list, err := chats.ListMessagesByChat(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(list))
	}
	if !list[0].Timestamp.Equal(base) || list[0].ID != 2 || list[1].ID != 3 {
		t.Fatalf("wrong order: %v", list)
	}
	if list[2].ID != 1 {
		t.Fatalf("latest message must be last, got %v", list[2])
	}
}

func TestListStoresBySupplier_Association(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 0; i < 3; i++ {
		s := domain.Store{Name: "S", Location: "L", Address: "A"}
		if err := store.CreateStore(ctx, &s); err != nil {
			t.Fatal(err)
		}
	}
	add := func(supplierID, storeID int64) {
		p := domain.Product{
			Name: "P", Category: "C", SupplierID: supplierID, Quantity: 1,
			Status: domain.ProductStatusRequested, RequestDate: time.Now().UTC(), StoreID: storeID,
		}
		if err := store.CreateProduct(ctx, &p); err != nil {
			t.Fatal(err)
		}
	}
	add(2, 1)
	add(2, 3)
	add(5, 2)

	list, err := store.ListStoresBySupplier(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 3 {
		t.Fatalf("expected stores 1 and 3, got %v", list)
	}

	list, _ = store.ListStoresBySupplier(ctx, 99)
	if len(list) != 0 {
		t.Fatalf("expected no stores, got %v", list)
	}
}

func TestSeed_DemoData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Seed()

	u, err := store.GetUserByCredentials(ctx, "1234567890", domain.RoleStoreManager)
	if err != nil {
		t.Fatalf("seeded store manager missing: %v", err)
	}
	if u.Password != "password123" {
		t.Fatalf("unexpected seed password")
	}

	stores, _ := store.ListStores(ctx)
	if len(stores) != 4 {
		t.Fatalf("expected 4 stores, got %d", len(stores))
	}

	supplier := int64(2)
	delayed, _ := store.ListProducts(ctx, ProductFilter{Status: domain.ProductStatusDelayed, SupplierID: &supplier})
	if len(delayed) == 0 {
		t.Fatalf("seed must contain delayed products for supplier 2")
	}

	// идентификаторы продолжают расти после засева
	p := domain.Product{
		Name: "X", Category: "C", SupplierID: 2, Quantity: 1,
		Status: domain.ProductStatusRequested, RequestDate: time.Now().UTC(), StoreID: 1,
	}
	if err := store.CreateProduct(ctx, &p); err != nil {
		t.Fatal(err)
	}
	if p.ID != 25 {
		t.Fatalf("expected next product id 25, got %d", p.ID)
	}
}
