package processor

import (
	"context"

	"inapp-server/internal/store"
)

// StoreAdapter exposes a *store.Store as an InventoryStore.
type StoreAdapter struct {
	*store.Store
}

func (a StoreAdapter) InTx(ctx context.Context, fn func(tx InventoryStore) error) error {
	return a.WithTx(ctx, func(tx *store.Store) error {
		return fn(StoreAdapter{Store: tx})
	})
}
