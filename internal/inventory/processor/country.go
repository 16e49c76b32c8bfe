package processor

import (
	"context"

	"inapp-server/internal/integrity"
	"inapp-server/internal/observability"
	"inapp-server/internal/store"
)

func (p *InventoryProcessor) CreateCountry(ctx context.Context, params store.CreateCountryParams) (store.Country, error) {
	ctx = withEntity(ctx, integrity.EntityCountry, 0)
	country, err := mutate(ctx, p, integrity.EntityCountry, 0, func(tx InventoryStore) (store.Country, error) {
		return tx.CreateCountry(ctx, params)
	})
	if err != nil {
		return store.Country{}, err
	}

	p.logger.Info(ctx, "country created", observability.Field{Key: "country_id", Value: country.ID})
	p.events.Created(ctx, integrity.EntityCountry, country.ID, country)
	return country, nil
}

func (p *InventoryProcessor) GetCountry(ctx context.Context, id int64) (store.Country, error) {
	return get(withEntity(ctx, integrity.EntityCountry, id), p, integrity.EntityCountry, id, p.store.GetCountryByID)
}

func (p *InventoryProcessor) ListCountries(ctx context.Context) ([]store.Country, error) {
	return list(ctx, p, integrity.EntityCountry, p.store.ListCountries)
}

func (p *InventoryProcessor) UpdateCountry(ctx context.Context, id int64, params store.UpdateCountryParams) (store.Country, error) {
	ctx = withEntity(ctx, integrity.EntityCountry, id)
	country, err := mutate(ctx, p, integrity.EntityCountry, id, func(tx InventoryStore) (store.Country, error) {
		return tx.UpdateCountry(ctx, id, params)
	})
	if err != nil {
		return store.Country{}, err
	}

	p.events.Updated(ctx, integrity.EntityCountry, id, country)
	return country, nil
}

// DeleteCountry is refused while any operator references the country.
func (p *InventoryProcessor) DeleteCountry(ctx context.Context, id int64) (store.Country, error) {
	ctx = withEntity(ctx, integrity.EntityCountry, id)
	country, err := p.guard.DeleteCountry(ctx, id)
	if err != nil {
		return store.Country{}, err
	}

	p.logger.Info(ctx, "country deleted")
	p.events.Deleted(ctx, integrity.EntityCountry, id, country)
	return country, nil
}
