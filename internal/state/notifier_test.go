package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierAutoExpiry(t *testing.T) {
	n := NewNotifier()
	defer n.Stop()

	id := n.Add(Notification{
		Type:     NoticeInfo,
		Title:    "Info",
		Message:  "short lived",
		Duration: 50 * time.Millisecond,
	})
	require.NotEmpty(t, id)
	require.Len(t, n.Notifications(), 1)

	assert.Eventually(t, func() bool {
		return len(n.Notifications()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNotifierForeverPersists(t *testing.T) {
	n := NewNotifier()
	defer n.Stop()

	n.Add(Notification{
		Type:     NoticeError,
		Title:    "Error",
		Message:  "sticky",
		Duration: DurationForever,
	})

	time.Sleep(100 * time.Millisecond)
	assert.Len(t, n.Notifications(), 1)
}

func TestNotifierRemoveIsIdempotent(t *testing.T) {
	n := NewNotifier()
	defer n.Stop()

	id := n.Add(Notification{Type: NoticeSuccess, Message: "done"})

	n.Remove(id)
	assert.Empty(t, n.Notifications())

	n.Remove(id)
	n.Remove("never-existed")
	assert.Empty(t, n.Notifications())
}

func TestNotifierDefaultDuration(t *testing.T) {
	n := NewNotifier()
	defer n.Stop()

	n.Add(Notification{Type: NoticeInfo, Message: "default"})

	got := n.Notifications()
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)
}
