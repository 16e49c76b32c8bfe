package integrity

//go:generate go run go.uber.org/mock/mockgen@latest -source=guard.go -destination=mocks_test.go -package=integrity

import (
	"context"
	"errors"
	"fmt"

	"inapp-server/internal/observability"
	"inapp-server/internal/store"
)

// GuardStore defines the database operations required by DeleteGuard
type GuardStore interface {
	ReferenceStore
	GetCampaignByID(ctx context.Context, id int64) (store.Campaign, error)

	CountOperatorsByCountry(ctx context.Context, countryID int64) (int64, error)
	CountAdvertisersByOperator(ctx context.Context, operatorID int64) (int64, error)
	CountCampaignsByOperator(ctx context.Context, operatorID int64) (int64, error)
	CountCampaignsByAdvertiser(ctx context.Context, advertiserID int64) (int64, error)

	DeleteCountry(ctx context.Context, id int64) error
	DeleteOperator(ctx context.Context, id int64) error
	DeleteAdvertiser(ctx context.Context, id int64) error
	DeletePublisher(ctx context.Context, id int64) error
	DeleteCampaign(ctx context.Context, id int64) error
	DeleteCampaignsByPublisher(ctx context.Context, publisherID int64) (int64, error)

	InTx(ctx context.Context, fn func(tx GuardStore) error) error
}

// PublisherDeletion is the outcome of a cascading publisher delete.
type PublisherDeletion struct {
	Publisher        store.Publisher
	RemovedCampaigns int64
}

// DeleteGuard performs deletes that respect the entity graph. Each delete
// checks the target exists, refuses when dependents remain and removes the
// row inside one transaction.
type DeleteGuard struct {
	store  GuardStore
	logger *observability.Logger
}

func NewDeleteGuard(s GuardStore, logger *observability.Logger) *DeleteGuard {
	return &DeleteGuard{store: s, logger: logger}
}

func (g *DeleteGuard) DeleteCountry(ctx context.Context, id int64) (store.Country, error) {
	var deleted store.Country
	err := g.store.InTx(ctx, func(tx GuardStore) error {
		country, err := tx.GetCountryByID(ctx, id)
		if err != nil {
			return FromStore(err, EntityCountry, id)
		}
		operators, err := tx.CountOperatorsByCountry(ctx, id)
		if err != nil {
			return err
		}
		if operators > 0 {
			return Conflict(fmt.Sprintf("country %d is referenced by %d operator(s)", id, operators))
		}
		if err := tx.DeleteCountry(ctx, id); err != nil {
			return FromStore(err, EntityCountry, id)
		}
		deleted = country
		return nil
	})
	if err != nil {
		g.logRejected(ctx, EntityCountry, id, err)
		return store.Country{}, err
	}
	return deleted, nil
}

func (g *DeleteGuard) DeleteOperator(ctx context.Context, id int64) (store.Operator, error) {
	var deleted store.Operator
	err := g.store.InTx(ctx, func(tx GuardStore) error {
		operator, err := tx.GetOperatorByID(ctx, id)
		if err != nil {
			return FromStore(err, EntityOperator, id)
		}
		advertisers, err := tx.CountAdvertisersByOperator(ctx, id)
		if err != nil {
			return err
		}
		if advertisers > 0 {
			return Conflict(fmt.Sprintf("operator %d is referenced by %d advertiser(s)", id, advertisers))
		}
		campaigns, err := tx.CountCampaignsByOperator(ctx, id)
		if err != nil {
			return err
		}
		if campaigns > 0 {
			return Conflict(fmt.Sprintf("operator %d is referenced by %d campaign(s)", id, campaigns))
		}
		if err := tx.DeleteOperator(ctx, id); err != nil {
			return FromStore(err, EntityOperator, id)
		}
		deleted = operator
		return nil
	})
	if err != nil {
		g.logRejected(ctx, EntityOperator, id, err)
		return store.Operator{}, err
	}
	return deleted, nil
}

func (g *DeleteGuard) DeleteAdvertiser(ctx context.Context, id int64) (store.Advertiser, error) {
	var deleted store.Advertiser
	err := g.store.InTx(ctx, func(tx GuardStore) error {
		advertiser, err := tx.GetAdvertiserByID(ctx, id)
		if err != nil {
			return FromStore(err, EntityAdvertiser, id)
		}
		campaigns, err := tx.CountCampaignsByAdvertiser(ctx, id)
		if err != nil {
			return err
		}
		if campaigns > 0 {
			return Conflict(fmt.Sprintf("advertiser %d is referenced by %d campaign(s)", id, campaigns))
		}
		if err := tx.DeleteAdvertiser(ctx, id); err != nil {
			return FromStore(err, EntityAdvertiser, id)
		}
		deleted = advertiser
		return nil
	})
	if err != nil {
		g.logRejected(ctx, EntityAdvertiser, id, err)
		return store.Advertiser{}, err
	}
	return deleted, nil
}

// DeletePublisher removes the publisher together with all of its campaigns.
// Either everything is removed or nothing is.
func (g *DeleteGuard) DeletePublisher(ctx context.Context, id int64) (PublisherDeletion, error) {
	var out PublisherDeletion
	err := g.store.InTx(ctx, func(tx GuardStore) error {
		publisher, err := tx.GetPublisherByID(ctx, id)
		if err != nil {
			return FromStore(err, EntityPublisher, id)
		}
		removed, err := tx.DeleteCampaignsByPublisher(ctx, id)
		if err != nil {
			return FromStore(err, EntityPublisher, id)
		}
		if err := tx.DeletePublisher(ctx, id); err != nil {
			return FromStore(err, EntityPublisher, id)
		}
		out = PublisherDeletion{Publisher: publisher, RemovedCampaigns: removed}
		return nil
	})
	if err != nil {
		g.logRejected(ctx, EntityPublisher, id, err)
		return PublisherDeletion{}, err
	}
	return out, nil
}

func (g *DeleteGuard) DeleteCampaign(ctx context.Context, id int64) (store.Campaign, error) {
	var deleted store.Campaign
	err := g.store.InTx(ctx, func(tx GuardStore) error {
		campaign, err := tx.GetCampaignByID(ctx, id)
		if err != nil {
			return FromStore(err, EntityCampaign, id)
		}
		if err := tx.DeleteCampaign(ctx, id); err != nil {
			return FromStore(err, EntityCampaign, id)
		}
		deleted = campaign
		return nil
	})
	if err != nil {
		g.logRejected(ctx, EntityCampaign, id, err)
		return store.Campaign{}, err
	}
	return deleted, nil
}

func (g *DeleteGuard) logRejected(ctx context.Context, entity string, id int64, err error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "entity", Value: entity},
		observability.Field{Key: "entity_id", Value: id},
	)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		g.logger.InfoWithError(ctx, "delete rejected", err)
		return
	}
	g.logger.Error(ctx, "failed to delete", err)
}

// StoreAdapter exposes a *store.Store as a GuardStore.
type StoreAdapter struct {
	*store.Store
}

func (a StoreAdapter) InTx(ctx context.Context, fn func(tx GuardStore) error) error {
	return a.WithTx(ctx, func(tx *store.Store) error {
		return fn(StoreAdapter{Store: tx})
	})
}
