package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/client"
	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/service"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
)

func newTestStore(t *testing.T) (*ConversationStore, *Notifier) {
	t.Helper()
	log := zap.NewNop()
	svc := service.New(simulator.NewStatic(), nil, "test-secret", 0, log)
	api := client.New(svc, &client.MemoryTokenStore{}, log)
	notifier := NewNotifier()
	t.Cleanup(notifier.Stop)
	return NewConversationStore(api, notifier, log), notifier
}

func TestLoadPopulatesStore(t *testing.T) {
	store, _ := newTestStore(t)

	store.Load(context.Background())

	assert.Len(t, store.Conversations(), 5)
	assert.Len(t, store.KnowledgeSources(), 5)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "conv-1", current.ID)
	assert.False(t, store.Loading())
}

func TestRefreshFallsBackToSampleData(t *testing.T) {
	store, notifier := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store.Refresh(ctx)

	assert.Len(t, store.Conversations(), 5)

	toasts := notifier.Notifications()
	require.Len(t, toasts, 1)
	assert.Equal(t, NoticeWarning, toasts[0].Type)
	assert.Equal(t, "Using sample data due to API connection issue", toasts[0].Message)
}

func TestRefreshPreservesSelection(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Load(ctx)
	store.SetCurrent("conv-3")

	store.Refresh(ctx)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "conv-3", current.ID)
}

func TestRefreshDefaultsToHeadWhenSelectionGone(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Load(ctx)
	store.SetCurrent("conv-3")

	store.applyConversations([]model.Conversation{
		{ID: "conv-new", Customer: model.Customer{Name: "Someone"}},
	})

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "conv-new", current.ID)
}

func TestAddMessageUpdatesBothCopies(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Load(ctx)
	store.SetCurrent("conv-2")

	store.AddMessage(ctx, model.MessageInput{
		Content: "We've located your package.",
		Sender:  model.SenderAgent,
	})

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "We've located your package.", current.LastMessage)
	require.Len(t, current.Messages, 2)

	for _, conv := range store.Conversations() {
		if conv.ID == "conv-2" {
			assert.Equal(t, current.LastMessage, conv.LastMessage)
			assert.Equal(t, current.UpdatedAt, conv.UpdatedAt)
			assert.Len(t, conv.Messages, 2)
			return
		}
	}
	t.Fatal("conv-2 missing from list")
}

func TestAddMessageWithoutSelectionIsNoop(t *testing.T) {
	store, notifier := newTestStore(t)

	store.AddMessage(context.Background(), model.MessageInput{
		Content: "orphan",
		Sender:  model.SenderAgent,
	})

	assert.Empty(t, store.Conversations())
	assert.Empty(t, notifier.Notifications())
}

func TestAddMessageFailureRaisesToast(t *testing.T) {
	store, notifier := newTestStore(t)
	ctx := context.Background()

	store.Load(ctx)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	store.AddMessage(cancelled, model.MessageInput{
		Content: "will not send",
		Sender:  model.SenderAgent,
	})

	current, ok := store.Current()
	require.True(t, ok)
	assert.Len(t, current.Messages, 2)

	toasts := notifier.Notifications()
	require.Len(t, toasts, 1)
	assert.Equal(t, NoticeError, toasts[0].Type)
	assert.Equal(t, "Failed to send message. Please try again.", toasts[0].Message)
}

func TestCreatePrependsAndSelects(t *testing.T) {
	store, notifier := newTestStore(t)
	ctx := context.Background()

	store.Load(ctx)

	ok := store.Create(ctx, model.CreateConversationRequest{
		Customer: model.Customer{ID: "cust-9", Name: "New Customer"},
		Message:  "Hi, quick question.",
		Category: model.CategoryGeneral,
	})
	require.True(t, ok)

	convs := store.Conversations()
	require.Len(t, convs, 6)

	current, found := store.Current()
	require.True(t, found)
	assert.Equal(t, convs[0].ID, current.ID)
	assert.Equal(t, "Hi, quick question.", current.LastMessage)

	toasts := notifier.Notifications()
	require.Len(t, toasts, 1)
	assert.Equal(t, NoticeSuccess, toasts[0].Type)
}

func TestSearchReplacesListOnly(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Load(ctx)
	store.SetCurrent("conv-5")

	store.Search(ctx, "luis", "")

	convs := store.Conversations()
	require.Len(t, convs, 1)
	assert.Equal(t, "conv-1", convs[0].ID)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "conv-5", current.ID)
	assert.Empty(t, store.Err())
}
