// Package llmtest provides a scripted completion client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/debater-ai/debater-agent/internal/domain"
)

// Interface compliance check.
var _ domain.CompletionClient = (*Client)(nil)

// Client is a thread-safe test double for domain.CompletionClient.
// It records every request in arrival order and delegates the reply to
// CompleteFn; with no CompleteFn it returns Reply (or "ok").
type Client struct {
	// CompleteFn, when set, produces the reply for each call.
	CompleteFn func(ctx context.Context, req domain.CompletionRequest) (string, error)

	// Reply is the fixed response used when CompleteFn is nil.
	Reply string

	// Err, when set, is returned from every call and takes precedence.
	Err error

	mu    sync.Mutex
	calls []domain.CompletionRequest
}

// Complete implements domain.CompletionClient.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.mu.Unlock()

	if c.Err != nil {
		return "", c.Err
	}
	if c.CompleteFn != nil {
		return c.CompleteFn(ctx, req)
	}
	if c.Reply != "" {
		return c.Reply, nil
	}
	return "ok", nil
}

// CallCount returns the number of completed or in-flight calls.
func (c *Client) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Calls returns a copy of the recorded requests in arrival order.
func (c *Client) Calls() []domain.CompletionRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CompletionRequest, len(c.calls))
	copy(out, c.calls)
	return out
}
