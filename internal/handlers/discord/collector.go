package discord

import (
	"context"
	"strings"
	"sync"
	"time"
)

// descriptionCollector routes channel messages to commands waiting on a
// follow-up reply. At most one waiter exists per (channel, user); a newer
// wait replaces an older one.
type descriptionCollector struct {
	mu      sync.Mutex
	waiters map[waiterKey]chan string
}

type waiterKey struct {
	channelID string
	userID    string
}

func newDescriptionCollector() *descriptionCollector {
	return &descriptionCollector{
		waiters: make(map[waiterKey]chan string),
	}
}

// Await blocks until the user posts a message in the channel, the timeout
// elapses, or ctx is done. On timeout the fallback is returned with ok set
// to false; a timed-out wait is a defined fallback path, not a failure.
// Only the calling goroutine is suspended.
func (c *descriptionCollector) Await(ctx context.Context, channelID, userID string, timeout time.Duration, fallback string) (string, bool) {
	key := waiterKey{channelID: channelID, userID: userID}
	ch := make(chan string, 1)

	c.mu.Lock()
	c.waiters[key] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.waiters[key] == ch {
			delete(c.waiters, key)
		}
		c.mu.Unlock()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case content := <-ch:
		return strings.TrimSpace(content), true
	case <-timer.C:
		return fallback, false
	case <-ctx.Done():
		return fallback, false
	}
}

// Deliver hands an incoming message to the waiter for (channel, user), if
// any. It reports whether the message was consumed.
func (c *descriptionCollector) Deliver(channelID, userID, content string) bool {
	key := waiterKey{channelID: channelID, userID: userID}

	c.mu.Lock()
	ch, ok := c.waiters[key]
	if ok {
		delete(c.waiters, key)
	}
	c.mu.Unlock()

	if !ok {
		return false
	}

	ch <- content
	return true
}
