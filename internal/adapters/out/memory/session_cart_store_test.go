package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront/internal/adapters/out/memory"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCartStore_Get_UnknownSessionIsEmptyCart(t *testing.T) {
	store := memory.NewSessionCartStore()

	c, err := store.Get(context.Background(), "session-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "session-1", c.SessionID())
	assert.True(t, c.IsEmpty())
}

func TestSessionCartStore_Update_PersistsChanges(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionCartStore()

	err := store.Update(ctx, "session-1", func(c *cart.Cart) error {
		return c.AddItem(kernel.NewUUID(), kernel.NewUUID())
	})
	require.NoError(t, err)

	reloaded, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.TotalQty())
}

func TestSessionCartStore_Update_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionCartStore()

	err := store.Update(ctx, "session-1", func(c *cart.Cart) error {
		return c.AddItem(kernel.NewUUID(), kernel.NewUUID())
	})
	require.NoError(t, err)

	other, err := store.Get(ctx, "session-2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestSessionCartStore_Update_ErrorLeavesCartUntouched(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionCartStore()
	tenantID := kernel.NewUUID()

	err := store.Update(ctx, "session-1", func(c *cart.Cart) error {
		return c.AddItem(tenantID, kernel.NewUUID())
	})
	require.NoError(t, err)

	failed := errors.New("rejected")
	err = store.Update(ctx, "session-1", func(c *cart.Cart) error {
		c.Clear()
		return failed
	})
	require.ErrorIs(t, err, failed)

	reloaded, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.TotalQty())
}

func TestSessionCartStore_Get_ReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionCartStore()
	tenantID := kernel.NewUUID()

	err := store.Update(ctx, "session-1", func(c *cart.Cart) error {
		return c.AddItem(tenantID, kernel.NewUUID())
	})
	require.NoError(t, err)

	snapshot, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	snapshot.Clear()

	reloaded, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.TotalQty())
}

func TestSessionCartStore_EmptySessionID(t *testing.T) {
	store := memory.NewSessionCartStore()

	_, err := store.Get(context.Background(), "")
	require.Error(t, err)

	err = store.Update(context.Background(), "", func(*cart.Cart) error { return nil })
	require.Error(t, err)
}

func TestSessionCartStore_ConcurrentUpdatesOnOneSession(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionCartStore()
	tenantID := kernel.NewUUID()

	const workers = 8

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := store.Update(ctx, "session-1", func(c *cart.Cart) error {
				return c.AddItem(tenantID, kernel.NewUUID())
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	c, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, workers, c.TotalQty())
}
