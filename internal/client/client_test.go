package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/service"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
)

func newTestService() *service.DataService {
	return service.New(simulator.NewStatic(), nil, "test-secret", 0, zap.NewNop())
}

func TestLoginPersistsToken(t *testing.T) {
	svc := newTestService()
	tokens := &MemoryTokenStore{}
	c := New(svc, tokens, zap.NewNop())

	resp := c.Login(context.Background(), "alex.johnson@example.com", "pw")
	require.True(t, resp.Success)

	assert.Equal(t, resp.Data.Token, c.Token())

	saved, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, resp.Data.Token, saved)
}

func TestFailedLoginStoresNothing(t *testing.T) {
	svc := newTestService()
	tokens := &MemoryTokenStore{}
	c := New(svc, tokens, zap.NewNop())

	resp := c.Login(context.Background(), "nobody@example.com", "pw")
	require.False(t, resp.Success)

	assert.Empty(t, c.Token())
	saved, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestLogoutClearsToken(t *testing.T) {
	svc := newTestService()
	tokens := &MemoryTokenStore{}
	c := New(svc, tokens, zap.NewNop())
	ctx := context.Background()

	require.True(t, c.Login(ctx, "alex.johnson@example.com", "pw").Success)
	require.True(t, c.Logout(ctx).Success)

	assert.Empty(t, c.Token())
	saved, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestInitializeRestoresPersistedToken(t *testing.T) {
	svc := newTestService()
	dir := t.TempDir()

	tokens, err := NewFileTokenStore(dir)
	require.NoError(t, err)

	first := New(svc, tokens, zap.NewNop())
	resp := first.Login(context.Background(), "alex.johnson@example.com", "pw")
	require.True(t, resp.Success)

	// Simulate a restart: a fresh client over the same store.
	reopened, err := NewFileTokenStore(dir)
	require.NoError(t, err)
	second := New(newTestService(), reopened, zap.NewNop())
	second.Initialize()

	assert.Equal(t, resp.Data.Token, second.Token())
}
