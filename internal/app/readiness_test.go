package app

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadinessWaiter_NoBrokers(t *testing.T) {
	w := NewReadinessWaiter(nil, "carousel_events")
	assert.NoError(t, w.WaitForDependencies(context.Background()))
}

func TestReadinessWaiter_GivesUpWithContext(t *testing.T) {
	// Reserve a port and release it so nothing is listening there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	w := NewReadinessWaiter([]string{addr}, "carousel_events")
	w.interval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = w.WaitForDependencies(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
