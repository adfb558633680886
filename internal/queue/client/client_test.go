package client

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestGetClientDefaultsToNil(t *testing.T) {
	assert.Nil(t, GetClient(context.Background()))
}

func TestSetClientRestore(t *testing.T) {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: "localhost:6379"})

	restore := SetClient(c)
	assert.Same(t, c, GetClient(context.Background()))

	restore()
	assert.Nil(t, GetClient(context.Background()))
}

func TestWithClientShadowsGlobal(t *testing.T) {
	global := asynq.NewClient(asynq.RedisClientOpt{Addr: "localhost:6379"})
	scoped := asynq.NewClient(asynq.RedisClientOpt{Addr: "localhost:6380"})

	restore := SetClient(global)
	defer restore()

	ctx := WithClient(context.Background(), scoped)
	assert.Same(t, scoped, GetClient(ctx))
	assert.Same(t, global, GetClient(context.Background()))
}
