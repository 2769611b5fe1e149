package repository

import (
	"fmt"
	"time"

	"shelflink/internal/domain"
)

func int64Ptr(v int64) *int64        { return &v }
func timePtr(t time.Time) *time.Time { return &t }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Seed наполняет хранилище демонстрационными данными
func (m *MemoryStore) Seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()

	// пользователи: логин по 10-значному идентификатору
	users := []domain.User{
		{
			Username:     "1234567890",
			Password:     "password123",
			Email:        "store@example.com",
			Role:         domain.RoleStoreManager,
			CompanyName:  "Walmart",
			StoreID:      int64Ptr(1),
			ProfileImage: "https://randomuser.me/api/portraits/men/32.jpg",
		},
		{
			Username:     "9876543210",
			Password:     "password123",
			Email:        "supplier@example.com",
			Role:         domain.RoleSupplier,
			CompanyName:  "Fresh Farms Inc.",
			ProfileImage: "https://randomuser.me/api/portraits/men/43.jpg",
		},
	}
	for _, u := range users {
		u.ID = m.nextUserID
		m.nextUserID++
		u.LastLogin = now
		m.usersByID[u.ID] = u
	}

	stores := []domain.Store{
		{
			Name:             "Store #1423 - Central Mall",
			Location:         "Dallas, TX",
			Address:          "123 Central Mall Ave, Dallas, TX 75001",
			ContactPhone:     "(214) 555-1234",
			DeliverySchedule: "Mon, Wed, Fri (8am-12pm)",
			LastDelivery:     timePtr(date(2023, time.February, 28)),
			ManagerID:        int64Ptr(1),
		},
		{
			Name:             "Store #2048 - Westside Plaza",
			Location:         "Houston, TX",
			Address:          "456 Westside Dr, Houston, TX 77001",
			ContactPhone:     "(713) 555-5678",
			DeliverySchedule: "Tue, Thu, Sat (9am-1pm)",
			LastDelivery:     timePtr(date(2023, time.February, 27)),
			ManagerID:        int64Ptr(1),
		},
		{
			Name:             "Store #3476 - North County",
			Location:         "San Antonio, TX",
			Address:          "789 North County Rd, San Antonio, TX 78201",
			ContactPhone:     "(210) 555-9012",
			DeliverySchedule: "Mon, Thu (10am-2pm)",
			LastDelivery:     timePtr(date(2023, time.February, 26)),
			ManagerID:        int64Ptr(1),
		},
		{
			Name:             "Store #5892 - Eastside Market",
			Location:         "Austin, TX",
			Address:          "321 Eastside Blvd, Austin, TX 73301",
			ContactPhone:     "(512) 555-3456",
			DeliverySchedule: "Wed, Fri (7am-11am)",
			LastDelivery:     timePtr(date(2023, time.February, 28)),
			ManagerID:        int64Ptr(1),
		},
	}
	for _, s := range stores {
		s.ID = m.nextStoreID
		m.nextStoreID++
		m.storesByID[s.ID] = s
	}

	products := []domain.Product{
		{Name: "Organic Bananas (5lb)", Category: "Produce", SupplierID: 2, Quantity: 20,
			Status: domain.ProductStatusRequested, RequestDate: now, StoreID: 1},
		{Name: "Fresh Tomatoes (10lb)", Category: "Produce", SupplierID: 2, Quantity: 15,
			Status: domain.ProductStatusRequested, RequestDate: now, StoreID: 3},
		{Name: "Organic Spinach (2lb)", Category: "Produce", SupplierID: 2, Quantity: 25,
			Status: domain.ProductStatusRequested, RequestDate: now, StoreID: 4},
		{Name: "Strawberries (16oz)", Category: "Produce", SupplierID: 2, Quantity: 30,
			Status: domain.ProductStatusRequested, RequestDate: now.Add(-24 * time.Hour), StoreID: 2},
		{Name: "Fresh Apples (5lb)", Category: "Produce", SupplierID: 2, Quantity: 15,
			Status: domain.ProductStatusInTransit, RequestDate: now.Add(-48 * time.Hour),
			DeliveryDate: timePtr(now.Add(24 * time.Hour)), StoreID: 1},
		{Name: "Whole Grain Bread", Category: "Bakery", SupplierID: 2, Quantity: 40,
			Status: domain.ProductStatusInTransit, RequestDate: now.Add(-72 * time.Hour),
			DeliveryDate: timePtr(now.Add(12 * time.Hour)), StoreID: 1},
		{Name: "Organic Milk (1gal)", Category: "Dairy", SupplierID: 2, Quantity: 25,
			Status: domain.ProductStatusDelayed, RequestDate: now.Add(-5 * 24 * time.Hour),
			DeliveryDate: timePtr(now.Add(3 * 24 * time.Hour)), StoreID: 1},
		{Name: "Great Value Eggs (18ct)", Category: "Dairy", SupplierID: 2, Quantity: 30,
			Status: domain.ProductStatusDelayed, RequestDate: now.Add(-4 * 24 * time.Hour),
			DeliveryDate: timePtr(now.Add(2 * 24 * time.Hour)), StoreID: 4},
	}

	// дополнительные заявки, чтобы цифры на дашборде были похожи на реальные
	statuses := []domain.ProductStatus{
		domain.ProductStatusRequested, domain.ProductStatusInTransit, domain.ProductStatusDelayed,
	}
	categories := []string{"Produce", "Bakery", "Dairy", "Meat", "Food"}
	for i := 0; i < 16; i++ {
		status := statuses[i%3]
		p := domain.Product{
			Name:        fmt.Sprintf("Additional Product %d", i+1),
			Category:    categories[i%5],
			SupplierID:  2,
			Quantity:    int64(10 + i),
			Status:      status,
			RequestDate: now.Add(-time.Duration(i+1) * 24 * time.Hour),
			StoreID:     int64(i%4) + 1,
		}
		if status != domain.ProductStatusRequested {
			p.DeliveryDate = timePtr(now.Add(time.Duration(i+1) * 12 * time.Hour))
		}
		products = append(products, p)
	}
	for _, p := range products {
		p.ID = m.nextProdID
		m.nextProdID++
		m.productsByID[p.ID] = p
	}

	chats := []domain.Chat{
		{SupplierID: 2, StoreManagerID: 1, LastMessageTime: now, UnreadCount: 2},
		{SupplierID: 2, StoreManagerID: 1, LastMessageTime: now.Add(-1 * time.Hour), UnreadCount: 1},
		{SupplierID: 2, StoreManagerID: 1, LastMessageTime: now.Add(-3 * time.Hour)},
		{SupplierID: 2, StoreManagerID: 1, LastMessageTime: now.Add(-24 * time.Hour)},
	}
	for _, c := range chats {
		c.ID = m.nextChatID
		m.nextChatID++
		m.chatsByID[c.ID] = c
	}

	messages := []domain.Message{
		{ChatID: 1, SenderID: 2, Content: "We'll need to delay the produce delivery due to transportation issues. Can we reschedule for tomorrow?",
			Timestamp: now.Add(-30 * time.Minute)},
		{ChatID: 1, SenderID: 1, Content: "That's very short notice. We're running low on several produce items already.",
			Timestamp: now.Add(-25 * time.Minute), IsRead: true},
		{ChatID: 1, SenderID: 2, Content: "I understand. We can dispatch a partial order with the critical items today if that helps?",
			Timestamp: now.Add(-15 * time.Minute)},

		{ChatID: 2, SenderID: 2, Content: "Hi there, we have a new organic product line launching next week. Would you like to place a pre-order?",
			Timestamp: now.Add(-4 * time.Hour)},
		{ChatID: 2, SenderID: 1, Content: "That sounds interesting. Can you send me the product catalog and pricing details?",
			Timestamp: now.Add(-3 * time.Hour), IsRead: true},
		{ChatID: 2, SenderID: 2, Content: "Sure, I'll send it over right away. Also, we're offering a 15% discount for early adopters.",
			Timestamp: now.Add(-1 * time.Hour)},

		{ChatID: 3, SenderID: 1, Content: "Our refrigeration unit is acting up. We might need to postpone tomorrow's dairy delivery.",
			Timestamp: now.Add(-5 * time.Hour), IsRead: true},
		{ChatID: 3, SenderID: 2, Content: "Thanks for letting me know. Is there anything we can do to help from our end?",
			Timestamp: now.Add(-4 * time.Hour), IsRead: true},
		{ChatID: 3, SenderID: 1, Content: "We've got a repair team coming in today. I'll update you once we know more.",
			Timestamp: now.Add(-3 * time.Hour), IsRead: true},

		{ChatID: 4, SenderID: 2, Content: "Just checking in about the seasonal products rotation. Are you ready for the summer items?",
			Timestamp: now.Add(-2 * 24 * time.Hour), IsRead: true},
		{ChatID: 4, SenderID: 1, Content: "Yes, we've cleared space in the front displays. We can take the first delivery next Monday.",
			Timestamp: now.Add(-24 * time.Hour), IsRead: true},
		{ChatID: 4, SenderID: 2, Content: "Perfect! I'll schedule it. By the way, the tropical fruits have been exceptional this season.",
			Timestamp: now.Add(-23 * time.Hour), IsRead: true},
	}
	for _, msg := range messages {
		msg.ID = m.nextMessageID
		m.nextMessageID++
		m.messagesByID[msg.ID] = msg
	}

	saleCategories := []string{"Food", "Bakery", "Dairy", "Produce", "Meat", "Other"}
	saleAmounts := []int64{128450, 102760, 92400, 76300, 61200, 51000}
	for i, category := range saleCategories {
		s := domain.Sale{StoreID: 1, Category: category, Amount: saleAmounts[i], Date: now}
		s.ID = m.nextSaleID
		m.nextSaleID++
		m.salesByID[s.ID] = s
	}

	wasteMonths := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	wasteAmounts := []int64{4200, 4800, 5100, 4900, 5300, 5245}
	for i, month := range wasteMonths {
		w := domain.Waste{StoreID: 1, Amount: wasteAmounts[i], Month: month, Year: 2023}
		w.ID = m.nextWasteID
		m.nextWasteID++
		m.wastesByID[w.ID] = w
	}
}
