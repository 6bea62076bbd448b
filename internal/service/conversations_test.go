package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiragSahani/copilot-inbox/internal/model"
)

func TestListConversationsDefaults(t *testing.T) {
	svc := newTestService()

	resp := svc.ListConversations(context.Background(), model.ListConversationsParams{})

	require.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Len(t, resp.Data.Conversations, 5)
	assert.Equal(t, 5, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Page)
	assert.Equal(t, 1, resp.Data.TotalPages)
}

func TestListConversationsPagination(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		resp := svc.CreateConversation(ctx, model.CreateConversationRequest{
			Customer: model.Customer{ID: fmt.Sprintf("c-%d", i), Name: fmt.Sprintf("Customer %02d", i)},
			Message:  "hello",
			Category: model.CategoryGeneral,
		})
		require.True(t, resp.Success)
	}

	resp := svc.ListConversations(ctx, model.ListConversationsParams{Page: 2, Limit: 10})

	require.True(t, resp.Success)
	assert.Len(t, resp.Data.Conversations, 10)
	assert.Equal(t, 25, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Page)
	assert.Equal(t, 3, resp.Data.TotalPages)

	last := svc.ListConversations(ctx, model.ListConversationsParams{Page: 3, Limit: 10})
	require.True(t, last.Success)
	assert.Len(t, last.Data.Conversations, 5)
}

func TestListConversationsPastEndIsEmpty(t *testing.T) {
	svc := newTestService()

	resp := svc.ListConversations(context.Background(), model.ListConversationsParams{Page: 9, Limit: 10})

	require.True(t, resp.Success)
	assert.Empty(t, resp.Data.Conversations)
	assert.Equal(t, 5, resp.Data.Total)
}

func TestListConversationsCategoryFilter(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	orders := svc.ListConversations(ctx, model.ListConversationsParams{Category: "orders"})
	require.True(t, orders.Success)
	assert.Len(t, orders.Data.Conversations, 2)
	for _, conv := range orders.Data.Conversations {
		assert.Equal(t, model.CategoryOrders, conv.Category)
	}

	all := svc.ListConversations(ctx, model.ListConversationsParams{Category: "all"})
	require.True(t, all.Success)
	assert.Len(t, all.Data.Conversations, 5)
}

func TestListConversationsSearch(t *testing.T) {
	svc := newTestService()

	resp := svc.ListConversations(context.Background(), model.ListConversationsParams{Search: "luis"})

	require.True(t, resp.Success)
	require.Len(t, resp.Data.Conversations, 1)
	assert.Equal(t, "conv-1", resp.Data.Conversations[0].ID)
}

func TestListConversationsSort(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	byDate := svc.ListConversations(ctx, model.ListConversationsParams{Sort: "date:desc"})
	require.True(t, byDate.Success)
	convs := byDate.Data.Conversations
	require.NotEmpty(t, convs)
	for i := 1; i < len(convs); i++ {
		assert.False(t, convs[i-1].UpdatedAt.Before(convs[i].UpdatedAt))
	}

	byName := svc.ListConversations(ctx, model.ListConversationsParams{Sort: "name"})
	require.True(t, byName.Success)
	names := byName.Data.Conversations
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1].Customer.Name, names[i].Customer.Name)
	}
}

func TestListConversationsBootstrapSkipsFailureInjection(t *testing.T) {
	svc := newFailingService()
	ctx := context.Background()

	bootstrap := svc.ListConversations(ctx, model.ListConversationsParams{})
	require.True(t, bootstrap.Success)
	assert.Len(t, bootstrap.Data.Conversations, 5)

	paged := svc.ListConversations(ctx, model.ListConversationsParams{Page: 1})
	assert.False(t, paged.Success)
	assert.Equal(t, http.StatusInternalServerError, paged.Status)
	assert.Equal(t, "Failed to fetch conversations", paged.Error)
}

func TestGetConversation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	found := svc.GetConversation(ctx, "conv-1")
	require.True(t, found.Success)
	assert.Equal(t, "Luis Davison", found.Data.Customer.Name)

	missing := svc.GetConversation(ctx, "conv-999")
	assert.False(t, missing.Success)
	assert.Equal(t, http.StatusNotFound, missing.Status)
	assert.Equal(t, "Conversation not found", missing.Error)
}

func TestAddMessageKeepsConversationInSync(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ts := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	resp := svc.AddMessage(ctx, "conv-1", model.MessageInput{
		Content:   "Thanks, I found my receipt.",
		Sender:    model.SenderCustomer,
		Timestamp: ts,
	})

	require.True(t, resp.Success)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, ts, resp.Data.Timestamp)

	conv := svc.GetConversation(ctx, "conv-1")
	require.True(t, conv.Success)
	assert.Len(t, conv.Data.Messages, 3)
	assert.Equal(t, "Thanks, I found my receipt.", conv.Data.LastMessage)
	assert.Equal(t, ts, conv.Data.UpdatedAt)
	assert.Equal(t, resp.Data.ID, conv.Data.Messages[2].ID)
}

func TestAddMessageUnknownConversation(t *testing.T) {
	svc := newTestService()

	resp := svc.AddMessage(context.Background(), "conv-999", model.MessageInput{
		Content: "hello",
		Sender:  model.SenderAgent,
	})

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Conversation not found", resp.Error)
}

func TestAddMessageDefaultsTimestamp(t *testing.T) {
	svc := newTestService()

	before := time.Now()
	resp := svc.AddMessage(context.Background(), "conv-2", model.MessageInput{
		Content: "Checking on this now.",
		Sender:  model.SenderAgent,
	})

	require.True(t, resp.Success)
	assert.False(t, resp.Data.Timestamp.Before(before))
}

func TestCreateConversationPrepends(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp := svc.CreateConversation(ctx, model.CreateConversationRequest{
		Customer: model.Customer{ID: "cust-9", Name: "New Customer", Email: "new@example.com"},
		Message:  "Is my order on its way?",
		Category: model.CategoryOrders,
	})

	require.True(t, resp.Success)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, 1, resp.Data.Unread)
	require.Len(t, resp.Data.Messages, 1)
	assert.Equal(t, model.SenderCustomer, resp.Data.Messages[0].Sender)
	assert.Equal(t, "Is my order on its way?", resp.Data.LastMessage)

	list := svc.ListConversations(ctx, model.ListConversationsParams{})
	require.True(t, list.Success)
	assert.Equal(t, resp.Data.ID, list.Data.Conversations[0].ID)
	assert.Equal(t, 6, list.Data.Total)
}

func TestListReturnsIsolatedCopies(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := svc.ListConversations(ctx, model.ListConversationsParams{})
	require.True(t, first.Success)
	first.Data.Conversations[0].Messages[0].Content = "tampered"

	again := svc.GetConversation(ctx, first.Data.Conversations[0].ID)
	require.True(t, again.Success)
	assert.NotEqual(t, "tampered", again.Data.Messages[0].Content)
}
