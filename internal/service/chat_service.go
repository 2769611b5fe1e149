package service

import (
	"context"
	"errors"
	"time"

	"shelflink/internal/domain"
	"shelflink/internal/repository"
)

// ChatParticipant открытые поля собеседника, добавляемые к чату в выдаче
type ChatParticipant struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	CompanyName  string `json:"companyName,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	StoreID      *int64 `json:"storeId,omitempty"`
}

// SupplierChat чат глазами поставщика: вместе с данными менеджера магазина
type SupplierChat struct {
	domain.Chat
	StoreManager *ChatParticipant `json:"storeManager"`
}

// StoreManagerChat чат глазами менеджера: вместе с данными поставщика
type StoreManagerChat struct {
	domain.Chat
	Supplier *ChatParticipant `json:"supplier"`
}

// ChatService реализует логику переписки: отправка, чтение, выборки с собеседником
type ChatService struct {
	users    repository.UserRepository
	chats    repository.ChatRepository
	messages repository.MessageRepository
	tx       repository.TxManager
}

func NewChatService(users repository.UserRepository, chats repository.ChatRepository, messages repository.MessageRepository, tx repository.TxManager) *ChatService {
	return &ChatService{users: users, chats: chats, messages: messages, tx: tx}
}

// SupplierChats возвращает чаты поставщика, дополненные данными менеджера.
// Отсутствующий собеседник даёт null, а не ошибку.
func (s *ChatService) SupplierChats(ctx context.Context, supplierID int64) ([]SupplierChat, error) {
	if supplierID <= 0 {
		return nil, ErrInvalidInput
	}
	chats, err := s.chats.ListChatsBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]SupplierChat, 0, len(chats))
	for _, c := range chats {
		enriched := SupplierChat{Chat: c}
		if u, err := s.users.GetUser(ctx, c.StoreManagerID); err == nil {
			enriched.StoreManager = &ChatParticipant{
				ID:           u.ID,
				Username:     u.Username,
				ProfileImage: u.ProfileImage,
				StoreID:      u.StoreID,
			}
		}
		out = append(out, enriched)
	}
	return out, nil
}

// StoreManagerChats возвращает чаты менеджера, дополненные данными поставщика
func (s *ChatService) StoreManagerChats(ctx context.Context, storeManagerID int64) ([]StoreManagerChat, error) {
	if storeManagerID <= 0 {
		return nil, ErrInvalidInput
	}
	chats, err := s.chats.ListChatsByStoreManager(ctx, storeManagerID)
	if err != nil {
		return nil, err
	}
	out := make([]StoreManagerChat, 0, len(chats))
	for _, c := range chats {
		enriched := StoreManagerChat{Chat: c}
		if u, err := s.users.GetUser(ctx, c.SupplierID); err == nil {
			enriched.Supplier = &ChatParticipant{
				ID:           u.ID,
				Username:     u.Username,
				CompanyName:  u.CompanyName,
				ProfileImage: u.ProfileImage,
			}
		}
		out = append(out, enriched)
	}
	return out, nil
}

func (s *ChatService) Messages(ctx context.Context, chatID int64) ([]domain.Message, error) {
	if chatID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.messages.ListMessagesByChat(ctx, chatID)
}

// Send атомарно создаёт сообщение и обновляет чат: время последнего
// сообщения и счётчик непрочитанных растёт ровно на единицу.
// Неизвестный чат — ошибка, сообщения-сироты не создаются.
func (s *ChatService) Send(ctx context.Context, chatID, senderID int64, content string) (*domain.Message, error) {
	if chatID <= 0 || senderID <= 0 || content == "" {
		return nil, ErrInvalidInput
	}

	var created *domain.Message
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		chat, err := s.chats.GetChat(ctx, chatID)
		if err != nil {
			return err
		}

		msg := domain.Message{
			ChatID:    chatID,
			SenderID:  senderID,
			Content:   content,
			Timestamp: time.Now().UTC(),
		}
		if err := s.messages.CreateMessage(ctx, &msg); err != nil {
			return err
		}

		chat.LastMessageTime = msg.Timestamp
		chat.UnreadCount++
		if err := s.chats.UpdateChat(ctx, chat); err != nil {
			return err
		}
		created = &msg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// MarkRead помечает прочитанными чужие сообщения и сбрасывает счётчик
// непрочитанных в ноль. Отсутствующий чат — no-op, не ошибка.
func (s *ChatService) MarkRead(ctx context.Context, chatID, userID int64) error {
	if chatID <= 0 || userID <= 0 {
		return ErrInvalidInput
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		chat, err := s.chats.GetChat(ctx, chatID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return err
		}

		msgs, err := s.messages.ListMessagesByChat(ctx, chatID)
		if err != nil {
			return err
		}
		for _, msg := range msgs {
			if msg.SenderID == userID || msg.IsRead {
				continue
			}
			msg.IsRead = true
			if err := s.messages.UpdateMessage(ctx, &msg); err != nil {
				return err
			}
		}

		chat.UnreadCount = 0
		return s.chats.UpdateChat(ctx, chat)
	})
}
