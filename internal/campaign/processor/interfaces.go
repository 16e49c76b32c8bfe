package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"inapp-server/internal/store"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	GetPublisherByID(ctx context.Context, id int64) (store.Publisher, error)
	GetCountryByID(ctx context.Context, id int64) (store.Country, error)
	GetOperatorByID(ctx context.Context, id int64) (store.Operator, error)
	GetAdvertiserByID(ctx context.Context, id int64) (store.Advertiser, error)

	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, id int64) (store.Campaign, error)
	ListCampaignSummaries(ctx context.Context) ([]store.CampaignSummary, error)
	UpdateCampaign(ctx context.Context, id int64, params store.UpdateCampaignParams) (store.Campaign, error)

	InTx(ctx context.Context, fn func(tx CampaignStore) error) error
}

// DeleteGuard removes campaigns.
type DeleteGuard interface {
	DeleteCampaign(ctx context.Context, id int64) (store.Campaign, error)
}

// EventPublisher announces committed changes.
type EventPublisher interface {
	Created(ctx context.Context, entity string, id int64, payload interface{})
	Updated(ctx context.Context, entity string, id int64, payload interface{})
	Deleted(ctx context.Context, entity string, id int64, payload interface{})
}

// StoreAdapter exposes a *store.Store as a CampaignStore.
type StoreAdapter struct {
	*store.Store
}

func (a StoreAdapter) InTx(ctx context.Context, fn func(tx CampaignStore) error) error {
	return a.WithTx(ctx, func(tx *store.Store) error {
		return fn(StoreAdapter{Store: tx})
	})
}
