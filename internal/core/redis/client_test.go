package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClient verifies that a reachable server yields a working client.
func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

// TestNewClient_BadURL verifies URL parse failures are surfaced.
func TestNewClient_BadURL(t *testing.T) {
	_, err := NewClient(context.Background(), "://not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

// TestNewClient_Unreachable verifies the ping check rejects dead servers.
func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), "redis://"+addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}
