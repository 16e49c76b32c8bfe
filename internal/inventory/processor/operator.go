package processor

import (
	"context"

	"inapp-server/internal/integrity"
	"inapp-server/internal/observability"
	"inapp-server/internal/store"
)

// CreateOperator resolves the country and inserts the operator in one transaction.
func (p *InventoryProcessor) CreateOperator(ctx context.Context, params store.CreateOperatorParams) (store.Operator, error) {
	ctx = withEntity(ctx, integrity.EntityOperator, 0)
	operator, err := mutate(ctx, p, integrity.EntityOperator, 0, func(tx InventoryStore) (store.Operator, error) {
		if _, err := p.validator.Resolve(ctx, tx, integrity.References{CountryID: &params.CountryID}); err != nil {
			return store.Operator{}, err
		}
		return tx.CreateOperator(ctx, params)
	})
	if err != nil {
		return store.Operator{}, err
	}

	p.logger.Info(ctx, "operator created", observability.Field{Key: "operator_id", Value: operator.ID})
	p.events.Created(ctx, integrity.EntityOperator, operator.ID, operator)
	return operator, nil
}

func (p *InventoryProcessor) GetOperator(ctx context.Context, id int64) (store.Operator, error) {
	return get(withEntity(ctx, integrity.EntityOperator, id), p, integrity.EntityOperator, id, p.store.GetOperatorByID)
}

func (p *InventoryProcessor) ListOperators(ctx context.Context) ([]store.Operator, error) {
	return list(ctx, p, integrity.EntityOperator, p.store.ListOperators)
}

// ListOperatorsByCountry returns NotFound for an unknown country rather than an empty list.
func (p *InventoryProcessor) ListOperatorsByCountry(ctx context.Context, countryID int64) ([]store.Operator, error) {
	if _, err := p.GetCountry(ctx, countryID); err != nil {
		return nil, err
	}
	return list(ctx, p, integrity.EntityOperator, func(ctx context.Context) ([]store.Operator, error) {
		return p.store.ListOperatorsByCountry(ctx, countryID)
	})
}

func (p *InventoryProcessor) UpdateOperator(ctx context.Context, id int64, params store.UpdateOperatorParams) (store.Operator, error) {
	ctx = withEntity(ctx, integrity.EntityOperator, id)
	operator, err := mutate(ctx, p, integrity.EntityOperator, id, func(tx InventoryStore) (store.Operator, error) {
		if _, err := p.validator.Resolve(ctx, tx, integrity.References{CountryID: params.CountryID}); err != nil {
			return store.Operator{}, err
		}
		return tx.UpdateOperator(ctx, id, params)
	})
	if err != nil {
		return store.Operator{}, err
	}

	p.events.Updated(ctx, integrity.EntityOperator, id, operator)
	return operator, nil
}

// DeleteOperator is refused while advertisers or campaigns reference the operator.
func (p *InventoryProcessor) DeleteOperator(ctx context.Context, id int64) (store.Operator, error) {
	ctx = withEntity(ctx, integrity.EntityOperator, id)
	operator, err := p.guard.DeleteOperator(ctx, id)
	if err != nil {
		return store.Operator{}, err
	}

	p.logger.Info(ctx, "operator deleted")
	p.events.Deleted(ctx, integrity.EntityOperator, id, operator)
	return operator, nil
}
