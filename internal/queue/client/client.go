// Package client holds the process-wide asynq client the payment flow
// uses to enqueue confirmation-email tasks. The queue is optional: when
// no client is configured, GetClient returns nil and enqueueing is
// skipped.
package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"
)

type ctxKey int

const (
	_ ctxKey = iota
	clientCtxKey
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex
)

// WithClient returns a context carrying its own client, shadowing the
// global one for that context's scope.
func WithClient(ctx context.Context, client *asynq.Client) context.Context {
	return context.WithValue(ctx, clientCtxKey, client)
}

// GetClient returns the client from the context if one was attached with
// WithClient, otherwise the global client set by SetClient. It's safe
// for concurrent use.
func GetClient(ctx context.Context) *asynq.Client {
	c := ctx.Value(clientCtxKey)
	if c != nil {
		client, ok := c.(*asynq.Client)
		if !ok {
			return nil
		}

		return client
	}

	globalMu.RLock()
	client := globalClient
	globalMu.RUnlock()

	return client
}

// SetClient replaces the global client, and returns a function to
// restore the previous value. It's safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}
