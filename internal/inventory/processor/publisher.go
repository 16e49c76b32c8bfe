package processor

import (
	"context"
	"errors"

	"inapp-server/internal/clients/redis"
	"inapp-server/internal/integrity"
	"inapp-server/internal/observability"
	"inapp-server/internal/store"
)

func (p *InventoryProcessor) CreatePublisher(ctx context.Context, params store.CreatePublisherParams) (store.Publisher, error) {
	ctx = withEntity(ctx, integrity.EntityPublisher, 0)
	publisher, err := mutate(ctx, p, integrity.EntityPublisher, 0, func(tx InventoryStore) (store.Publisher, error) {
		return tx.CreatePublisher(ctx, params)
	})
	if err != nil {
		return store.Publisher{}, err
	}

	p.logger.Info(ctx, "publisher created", observability.Field{Key: "publisher_id", Value: publisher.ID})
	p.cachePublisher(ctx, publisher)
	p.events.Created(ctx, integrity.EntityPublisher, publisher.ID, publisher)
	return publisher, nil
}

func (p *InventoryProcessor) GetPublisher(ctx context.Context, id int64) (store.Publisher, error) {
	return get(withEntity(ctx, integrity.EntityPublisher, id), p, integrity.EntityPublisher, id, p.store.GetPublisherByID)
}

func (p *InventoryProcessor) ListPublishers(ctx context.Context) ([]store.Publisher, error) {
	return list(ctx, p, integrity.EntityPublisher, p.store.ListPublishers)
}

func (p *InventoryProcessor) UpdatePublisher(ctx context.Context, id int64, params store.UpdatePublisherParams) (store.Publisher, error) {
	ctx = withEntity(ctx, integrity.EntityPublisher, id)
	publisher, err := mutate(ctx, p, integrity.EntityPublisher, id, func(tx InventoryStore) (store.Publisher, error) {
		return tx.UpdatePublisher(ctx, id, params)
	})
	if err != nil {
		return store.Publisher{}, err
	}

	p.cachePublisher(ctx, publisher)
	p.events.Updated(ctx, integrity.EntityPublisher, id, publisher)
	return publisher, nil
}

// DeletePublisher removes the publisher and every campaign it owns.
func (p *InventoryProcessor) DeletePublisher(ctx context.Context, id int64) (integrity.PublisherDeletion, error) {
	ctx = withEntity(ctx, integrity.EntityPublisher, id)
	deletion, err := p.guard.DeletePublisher(ctx, id)
	if err != nil {
		return integrity.PublisherDeletion{}, err
	}

	p.logger.Info(ctx, "publisher deleted", observability.Field{Key: "removed_campaigns", Value: deletion.RemovedCampaigns})
	if err := p.cache.DeletePublisherState(ctx, id); err != nil {
		p.logger.Error(ctx, "failed to evict publisher state", err)
	}
	p.events.Deleted(ctx, integrity.EntityPublisher, id, map[string]interface{}{
		"publisher":         deletion.Publisher,
		"removed_campaigns": deletion.RemovedCampaigns,
	})
	return deletion, nil
}

// GetPublisherState reads the cached routing state of a publisher.
func (p *InventoryProcessor) GetPublisherState(ctx context.Context, id int64) (redis.PublisherState, error) {
	ctx = withEntity(ctx, integrity.EntityPublisher, id)
	state, err := p.cache.GetPublisherState(ctx, id)
	if err != nil {
		if errors.Is(err, redis.ErrCacheMiss) {
			return redis.PublisherState{}, integrity.NotFound(integrity.EntityPublisher, id)
		}
		p.logger.Error(ctx, "failed to read publisher state", err)
		return redis.PublisherState{}, err
	}
	return state, nil
}

// cachePublisher refreshes the cached routing state. The row is already
// committed, so a cache failure is only logged.
func (p *InventoryProcessor) cachePublisher(ctx context.Context, publisher store.Publisher) {
	state := redis.PublisherState{
		Status:    publisher.Status,
		Cap:       publisher.Cap,
		BlockRule: publisher.BlockRule,
	}
	if err := p.cache.SetPublisherState(ctx, publisher.ID, state); err != nil {
		p.logger.Error(ctx, "failed to cache publisher state", err)
	}
}
