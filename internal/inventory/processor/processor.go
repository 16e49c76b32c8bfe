package processor

import (
	"context"
	"errors"

	"inapp-server/internal/integrity"
	"inapp-server/internal/observability"
)

// InventoryProcessor manages countries, operators, publishers and
// advertisers. Writes resolve their references and run inside one store
// transaction; deletes go through the delete guard.
type InventoryProcessor struct {
	store     InventoryStore
	validator *integrity.Validator
	guard     DeleteGuard
	cache     PublisherCache
	events    EventPublisher
	logger    *observability.Logger
}

func New(
	store InventoryStore,
	validator *integrity.Validator,
	guard DeleteGuard,
	cache PublisherCache,
	events EventPublisher,
	logger *observability.Logger,
) InventoryProcessor {
	return InventoryProcessor{
		store:     store,
		validator: validator,
		guard:     guard,
		cache:     cache,
		events:    events,
		logger:    logger,
	}
}

// mutate runs fn in one transaction and translates whatever made it fail
// for the entity being written. id is zero for creates.
func mutate[T any](ctx context.Context, p *InventoryProcessor, entity string, id int64, fn func(tx InventoryStore) (T, error)) (T, error) {
	var out T
	err := p.store.InTx(ctx, func(tx InventoryStore) error {
		written, err := fn(tx)
		if err != nil {
			return err
		}
		out = written
		return nil
	})
	if err != nil {
		var zero T
		err = integrity.FromStore(err, entity, id)
		p.logFailure(ctx, "failed to write "+entity, err)
		return zero, err
	}
	return out, nil
}

func get[T any](ctx context.Context, p *InventoryProcessor, entity string, id int64, fn func(context.Context, int64) (T, error)) (T, error) {
	found, err := fn(ctx, id)
	if err != nil {
		var zero T
		err = integrity.FromStore(err, entity, id)
		p.logFailure(ctx, "failed to get "+entity, err)
		return zero, err
	}
	return found, nil
}

func list[T any](ctx context.Context, p *InventoryProcessor, entity string, fn func(context.Context) ([]T, error)) ([]T, error) {
	found, err := fn(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list "+entity, err)
		return nil, err
	}
	return found, nil
}

// logFailure keeps expected rejections out of the error log.
func (p *InventoryProcessor) logFailure(ctx context.Context, msg string, err error) {
	if errors.Is(err, integrity.ErrNotFound) || errors.Is(err, integrity.ErrConflict) || errors.Is(err, integrity.ErrValidation) {
		p.logger.InfoWithError(ctx, msg, err)
		return
	}
	p.logger.Error(ctx, msg, err)
}

func withEntity(ctx context.Context, entity string, id int64) context.Context {
	return observability.WithFields(ctx,
		observability.Field{Key: "entity", Value: entity},
		observability.Field{Key: "entity_id", Value: id},
	)
}
