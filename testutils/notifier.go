package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/push"
)

// RecordedMessage is one notification captured by the RecordingNotifier.
type RecordedMessage struct {
	UserID  string
	Message push.Message
}

// RecordingNotifier captures notifications instead of delivering them.
// Endpoints listed in Dead are reported back as gone, the way a real push
// service reports a dropped subscription.
type RecordingNotifier struct {
	mu   sync.Mutex
	msgs []RecordedMessage
	Dead []string
}

func (n *RecordingNotifier) Notify(ctx context.Context, u *model.User, msg push.Message) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, RecordedMessage{UserID: u.ID, Message: msg})

	var gone []string
	for _, sub := range u.Subscriptions {
		for _, dead := range n.Dead {
			if sub.Endpoint == dead {
				gone = append(gone, sub.Endpoint)
			}
		}
	}
	return gone
}

func (n *RecordingNotifier) Messages() []RecordedMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]RecordedMessage, len(n.msgs))
	copy(out, n.msgs)
	return out
}

// WaitForMessages polls until at least want notifications have been recorded.
// Notifications are dispatched on their own goroutines, so tests need a sync
// point before asserting on them.
func (n *RecordingNotifier) WaitForMessages(want int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		n.mu.Lock()
		got := len(n.msgs)
		n.mu.Unlock()
		if got >= want {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}
