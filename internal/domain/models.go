package domain

import "time"

// Role роль пользователя в системе поставок
type Role string

const (
	RoleSupplier     Role = "supplier"
	RoleStoreManager Role = "storeManager"
)

// ProductStatus статус заявки на товар
type ProductStatus string

const (
	ProductStatusRequested ProductStatus = "requested"
	ProductStatusInTransit ProductStatus = "in_transit"
	ProductStatusDelayed   ProductStatus = "delayed"
)

// ValidProductStatus проверяет, что статус один из трёх допустимых
func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductStatusRequested, ProductStatusInTransit, ProductStatusDelayed:
		return true
	}
	return false
}

// User поставщик или менеджер магазина
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	CompanyName  string    `json:"companyName,omitempty"`
	StoreID      *int64    `json:"storeId,omitempty"`
	LastLogin    time.Time `json:"lastLogin"`
	ProfileImage string    `json:"profileImage,omitempty"`
}

// Store магазин, принимающий поставки
type Store struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Location         string     `json:"location"`
	Address          string     `json:"address"`
	ContactPhone     string     `json:"contactPhone,omitempty"`
	DeliverySchedule string     `json:"deliverySchedule,omitempty"`
	LastDelivery     *time.Time `json:"lastDelivery,omitempty"`
	ManagerID        *int64     `json:"managerId,omitempty"`
}

// Product заявка на поставку товара
type Product struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	SupplierID   int64         `json:"supplierId"`
	Quantity     int64         `json:"quantity"`
	Status       ProductStatus `json:"status"`
	RequestDate  time.Time     `json:"requestDate"`
	DeliveryDate *time.Time    `json:"deliveryDate,omitempty"`
	StoreID      int64         `json:"storeId"`
}

// Chat диалог между поставщиком и менеджером магазина
type Chat struct {
	ID              int64     `json:"id"`
	SupplierID      int64     `json:"supplierId"`
	StoreManagerID  int64     `json:"storeManagerId"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int64     `json:"unreadCount"`
}

// Message сообщение в чате
type Message struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chatId"`
	SenderID  int64     `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
}

// Sale факт продаж магазина по категории
type Sale struct {
	ID       int64     `json:"id"`
	StoreID  int64     `json:"storeId"`
	Category string    `json:"category"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
}

// Waste списания магазина за месяц
type Waste struct {
	ID      int64  `json:"id"`
	StoreID int64  `json:"storeId"`
	Amount  int64  `json:"amount"`
	Month   string `json:"month"`
	Year    int    `json:"year"`
}
