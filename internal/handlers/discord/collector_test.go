package discord

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorDeliversReply(t *testing.T) {
	c := newDescriptionCollector()

	type result struct {
		content string
		replied bool
	}
	done := make(chan result, 1)

	go func() {
		content, replied := c.Await(context.Background(), "chan-1", "user-1", 5*time.Second, "fallback")
		done <- result{content, replied}
	}()

	// Wait for the waiter to register before delivering
	require.Eventually(t, func() bool {
		return c.Deliver("chan-1", "user-1", "  fixed the parser  ")
	}, time.Second, 5*time.Millisecond)

	res := <-done
	assert.True(t, res.replied)
	assert.Equal(t, "fixed the parser", res.content)
}

func TestCollectorTimeoutReturnsFallback(t *testing.T) {
	c := newDescriptionCollector()

	content, replied := c.Await(context.Background(), "chan-1", "user-1", 20*time.Millisecond, "No description provided (Timed out).")
	assert.False(t, replied)
	assert.Equal(t, "No description provided (Timed out).", content)

	// The waiter is gone after the timeout
	assert.False(t, c.Deliver("chan-1", "user-1", "too late"))
}

func TestCollectorIgnoresOtherUsersAndChannels(t *testing.T) {
	c := newDescriptionCollector()

	done := make(chan string, 1)
	go func() {
		content, _ := c.Await(context.Background(), "chan-1", "user-1", 500*time.Millisecond, "fallback")
		done <- content
	}()

	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return len(c.waiters) == 1
	}, time.Second, 5*time.Millisecond)

	// Same channel, different user; same user, different channel
	assert.False(t, c.Deliver("chan-1", "user-2", "not me"))
	assert.False(t, c.Deliver("chan-2", "user-1", "wrong room"))

	// Neither message reaches the waiter; it falls back on timeout
	assert.Equal(t, "fallback", <-done)
}

func TestCollectorContextCancellation(t *testing.T) {
	c := newDescriptionCollector()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	content, replied := c.Await(ctx, "chan-1", "user-1", time.Minute, "fallback")
	assert.False(t, replied)
	assert.Equal(t, "fallback", content)
}

func TestCollectorDeliverWithoutWaiter(t *testing.T) {
	c := newDescriptionCollector()
	assert.False(t, c.Deliver("chan-1", "user-1", "nobody is listening"))
}
