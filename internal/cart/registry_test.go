package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistryGetCreatesPerSession(t *testing.T) {
	r := NewRegistry(DefaultMaxQuantity, time.Hour, nil)

	a := r.Get("session-a")
	b := r.Get("session-b")
	require.NotSame(t, a, b)

	_, err := a.Add(chaunsa())
	require.NoError(t, err)
	require.True(t, b.IsEmpty(), "carts must be isolated per session")

	require.Same(t, a, r.Get("session-a"))
	require.Equal(t, 2, r.Len())
}

func TestRegistryDrop(t *testing.T) {
	r := NewRegistry(DefaultMaxQuantity, time.Hour, nil)
	r.Get("session-a")
	r.Drop("session-a")
	require.Equal(t, 0, r.Len())
}

func TestRegistrySweepEvictsIdleCarts(t *testing.T) {
	r := NewRegistry(DefaultMaxQuantity, time.Minute, nil)
	r.Get("stale")
	r.Get("fresh")

	// age only the stale entry
	r.mu.Lock()
	r.entries["stale"].lastSeen = time.Now().Add(-2 * time.Minute)
	r.mu.Unlock()

	evicted := r.Sweep(time.Now())
	require.Equal(t, 1, evicted)
	require.Equal(t, 1, r.Len())

	// the fresh cart survives and keeps its contents
	_, err := r.Get("fresh").Add(chaunsa())
	require.NoError(t, err)
}
