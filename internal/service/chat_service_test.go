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

func newChatFixture(t *testing.T) (*ChatService, *repository.MemoryStore, *repository.MemoryChats) {
	t.Helper()
	store := repository.NewMemoryStore()
	chats := repository.NewMemoryChats(store)
	tx := repository.NewMemoryTx(store)
	svc := NewChatService(store, chats, chats, tx)
	return svc, store, chats
}

func TestSend_UpdatesChatCounters(t *testing.T) {
	ctx := context.Background()
	svc, _, chats := newChatFixture(t)

	chat := domain.Chat{SupplierID: 2, StoreManagerID: 1, LastMessageTime: time.Now().UTC().Add(-time.Hour)}
	require.NoError(t, chats.CreateChat(ctx, &chat))

	var last *domain.Message
	for i := 0; i < 3; i++ {
		msg, err := svc.Send(ctx, chat.ID, 2, "hello")
		require.NoError(t, err)
		last = msg
	}

	got, err := chats.GetChat(ctx, chat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UnreadCount)
	assert.True(t, got.LastMessageTime.Equal(last.Timestamp))
}

func TestSend_UnknownChat(t *testing.T) {
	ctx := context.Background()
	svc, _, chats := newChatFixture(t)

	_, err := svc.Send(ctx, 42, 1, "orphan")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// сообщение-сирота не создаётся
	msgs, err := chats.ListMessagesByChat(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSend_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newChatFixture(t)

	_, err := svc.Send(ctx, 1, 1, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Send(ctx, 0, 1, "x")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	svc, _, chats := newChatFixture(t)

	chat := domain.Chat{SupplierID: 2, StoreManagerID: 1, LastMessageTime: time.Now().UTC()}
	require.NoError(t, chats.CreateChat(ctx, &chat))

	_, err := svc.Send(ctx, chat.ID, 2, "from supplier")
	require.NoError(t, err)
	_, err = svc.Send(ctx, chat.ID, 1, "from manager")
	require.NoError(t, err)

	// менеджер читает чат: чужие сообщения прочитаны, свои не тронуты
	require.NoError(t, svc.MarkRead(ctx, chat.ID, 1))

	msgs, err := svc.Messages(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	for _, msg := range msgs {
		if msg.SenderID == 1 {
			assert.False(t, msg.IsRead, "own message must stay untouched")
		} else {
			assert.True(t, msg.IsRead)
		}
	}

	got, err := chats.GetChat(ctx, chat.ID)
	require.NoError(t, err)
	assert.Zero(t, got.UnreadCount)
}

func TestMarkRead_MissingChatIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newChatFixture(t)

	require.NoError(t, svc.MarkRead(ctx, 42, 1))
}

func TestChats_EnrichedWithCounterpart(t *testing.T) {
	ctx := context.Background()
	svc, store, chats := newChatFixture(t)

	storeID := int64(1)
	manager := domain.User{Username: "1234567890", Password: "p", Email: "m@example.com",
		Role: domain.RoleStoreManager, StoreID: &storeID, ProfileImage: "img-m"}
	require.NoError(t, store.CreateUser(ctx, &manager))
	supplier := domain.User{Username: "9876543210", Password: "p", Email: "s@example.com",
		Role: domain.RoleSupplier, CompanyName: "Fresh Farms Inc.", ProfileImage: "img-s"}
	require.NoError(t, store.CreateUser(ctx, &supplier))

	chat := domain.Chat{SupplierID: supplier.ID, StoreManagerID: manager.ID, LastMessageTime: time.Now().UTC()}
	require.NoError(t, chats.CreateChat(ctx, &chat))

	supplierView, err := svc.SupplierChats(ctx, supplier.ID)
	require.NoError(t, err)
	require.Len(t, supplierView, 1)
	require.NotNil(t, supplierView[0].StoreManager)
	assert.Equal(t, manager.Username, supplierView[0].StoreManager.Username)
	assert.Equal(t, &storeID, supplierView[0].StoreManager.StoreID)

	managerView, err := svc.StoreManagerChats(ctx, manager.ID)
	require.NoError(t, err)
	require.Len(t, managerView, 1)
	require.NotNil(t, managerView[0].Supplier)
	assert.Equal(t, "Fresh Farms Inc.", managerView[0].Supplier.CompanyName)
}

func TestChats_MissingCounterpartIsNull(t *testing.T) {
	ctx := context.Background()
	svc, _, chats := newChatFixture(t)

	chat := domain.Chat{SupplierID: 2, StoreManagerID: 7, LastMessageTime: time.Now().UTC()}
	require.NoError(t, chats.CreateChat(ctx, &chat))

	list, err := svc.SupplierChats(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].StoreManager)
}
