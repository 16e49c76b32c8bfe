package processor

import (
	"context"

	"inapp-server/internal/integrity"
	"inapp-server/internal/observability"
	"inapp-server/internal/store"
)

// CreateAdvertiser resolves the country and operator, then inserts the advertiser.
func (p *InventoryProcessor) CreateAdvertiser(ctx context.Context, params store.CreateAdvertiserParams) (store.Advertiser, error) {
	ctx = withEntity(ctx, integrity.EntityAdvertiser, 0)
	advertiser, err := mutate(ctx, p, integrity.EntityAdvertiser, 0, func(tx InventoryStore) (store.Advertiser, error) {
		refs := integrity.References{CountryID: &params.CountryID, OperatorID: &params.OperatorID}
		if _, err := p.validator.Resolve(ctx, tx, refs); err != nil {
			return store.Advertiser{}, err
		}
		return tx.CreateAdvertiser(ctx, params)
	})
	if err != nil {
		return store.Advertiser{}, err
	}

	p.logger.Info(ctx, "advertiser created", observability.Field{Key: "advertiser_id", Value: advertiser.ID})
	p.events.Created(ctx, integrity.EntityAdvertiser, advertiser.ID, advertiser)
	return advertiser, nil
}

func (p *InventoryProcessor) GetAdvertiser(ctx context.Context, id int64) (store.Advertiser, error) {
	return get(withEntity(ctx, integrity.EntityAdvertiser, id), p, integrity.EntityAdvertiser, id, p.store.GetAdvertiserByID)
}

func (p *InventoryProcessor) ListAdvertisers(ctx context.Context) ([]store.Advertiser, error) {
	return list(ctx, p, integrity.EntityAdvertiser, p.store.ListAdvertisers)
}

// ListAdvertisersByOperator returns NotFound for an unknown operator rather than an empty list.
func (p *InventoryProcessor) ListAdvertisersByOperator(ctx context.Context, operatorID int64) ([]store.Advertiser, error) {
	if _, err := p.GetOperator(ctx, operatorID); err != nil {
		return nil, err
	}
	return list(ctx, p, integrity.EntityAdvertiser, func(ctx context.Context) ([]store.Advertiser, error) {
		return p.store.ListAdvertisersByOperator(ctx, operatorID)
	})
}

func (p *InventoryProcessor) UpdateAdvertiser(ctx context.Context, id int64, params store.UpdateAdvertiserParams) (store.Advertiser, error) {
	ctx = withEntity(ctx, integrity.EntityAdvertiser, id)
	advertiser, err := mutate(ctx, p, integrity.EntityAdvertiser, id, func(tx InventoryStore) (store.Advertiser, error) {
		refs := integrity.References{CountryID: params.CountryID, OperatorID: params.OperatorID}
		if _, err := p.validator.Resolve(ctx, tx, refs); err != nil {
			return store.Advertiser{}, err
		}
		return tx.UpdateAdvertiser(ctx, id, params)
	})
	if err != nil {
		return store.Advertiser{}, err
	}

	p.events.Updated(ctx, integrity.EntityAdvertiser, id, advertiser)
	return advertiser, nil
}

// DeleteAdvertiser is refused while any campaign uses the advertiser, as
// advertiser or as redirection advertiser.
func (p *InventoryProcessor) DeleteAdvertiser(ctx context.Context, id int64) (store.Advertiser, error) {
	ctx = withEntity(ctx, integrity.EntityAdvertiser, id)
	advertiser, err := p.guard.DeleteAdvertiser(ctx, id)
	if err != nil {
		return store.Advertiser{}, err
	}

	p.logger.Info(ctx, "advertiser deleted")
	p.events.Deleted(ctx, integrity.EntityAdvertiser, id, advertiser)
	return advertiser, nil
}
