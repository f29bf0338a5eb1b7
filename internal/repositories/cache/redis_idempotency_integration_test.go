//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	store, err := NewRedisIdempotencyStore(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	require.NoError(t, err)
	defer store.Close()

	ok, err := store.Reserve(ctx, "sale-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, "sale-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Release(ctx, "sale-1"))
	ok, err = store.Reserve(ctx, "sale-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
