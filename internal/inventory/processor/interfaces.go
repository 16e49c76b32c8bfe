package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"inapp-server/internal/clients/redis"
	"inapp-server/internal/integrity"
	"inapp-server/internal/store"
)

// InventoryStore defines the database operations required by InventoryProcessor
type InventoryStore interface {
	// Country
	CreateCountry(ctx context.Context, params store.CreateCountryParams) (store.Country, error)
	GetCountryByID(ctx context.Context, id int64) (store.Country, error)
	ListCountries(ctx context.Context) ([]store.Country, error)
	UpdateCountry(ctx context.Context, id int64, params store.UpdateCountryParams) (store.Country, error)

	// Operator
	CreateOperator(ctx context.Context, params store.CreateOperatorParams) (store.Operator, error)
	GetOperatorByID(ctx context.Context, id int64) (store.Operator, error)
	ListOperators(ctx context.Context) ([]store.Operator, error)
	ListOperatorsByCountry(ctx context.Context, countryID int64) ([]store.Operator, error)
	UpdateOperator(ctx context.Context, id int64, params store.UpdateOperatorParams) (store.Operator, error)

	// Publisher
	CreatePublisher(ctx context.Context, params store.CreatePublisherParams) (store.Publisher, error)
	GetPublisherByID(ctx context.Context, id int64) (store.Publisher, error)
	ListPublishers(ctx context.Context) ([]store.Publisher, error)
	UpdatePublisher(ctx context.Context, id int64, params store.UpdatePublisherParams) (store.Publisher, error)

	// Advertiser
	CreateAdvertiser(ctx context.Context, params store.CreateAdvertiserParams) (store.Advertiser, error)
	GetAdvertiserByID(ctx context.Context, id int64) (store.Advertiser, error)
	ListAdvertisers(ctx context.Context) ([]store.Advertiser, error)
	ListAdvertisersByOperator(ctx context.Context, operatorID int64) ([]store.Advertiser, error)
	UpdateAdvertiser(ctx context.Context, id int64, params store.UpdateAdvertiserParams) (store.Advertiser, error)

	InTx(ctx context.Context, fn func(tx InventoryStore) error) error
}

// DeleteGuard performs dependency-checked deletes.
type DeleteGuard interface {
	DeleteCountry(ctx context.Context, id int64) (store.Country, error)
	DeleteOperator(ctx context.Context, id int64) (store.Operator, error)
	DeletePublisher(ctx context.Context, id int64) (integrity.PublisherDeletion, error)
	DeleteAdvertiser(ctx context.Context, id int64) (store.Advertiser, error)
}

// PublisherCache holds the routing state of publishers.
type PublisherCache interface {
	SetPublisherState(ctx context.Context, id int64, state redis.PublisherState) error
	GetPublisherState(ctx context.Context, id int64) (redis.PublisherState, error)
	DeletePublisherState(ctx context.Context, id int64) error
}

// EventPublisher announces committed changes.
type EventPublisher interface {
	Created(ctx context.Context, entity string, id int64, payload interface{})
	Updated(ctx context.Context, entity string, id int64, payload interface{})
	Deleted(ctx context.Context, entity string, id int64, payload interface{})
}
