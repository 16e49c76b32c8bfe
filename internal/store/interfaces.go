package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Ping(ctx context.Context) error
	WithTx(ctx context.Context, fn func(tx *Store) error) error

	// Country operations
	CreateCountry(ctx context.Context, params CreateCountryParams) (Country, error)
	GetCountryByID(ctx context.Context, id int64) (Country, error)
	ListCountries(ctx context.Context) ([]Country, error)
	UpdateCountry(ctx context.Context, id int64, params UpdateCountryParams) (Country, error)
	DeleteCountry(ctx context.Context, id int64) error

	// Operator operations
	CreateOperator(ctx context.Context, params CreateOperatorParams) (Operator, error)
	GetOperatorByID(ctx context.Context, id int64) (Operator, error)
	ListOperators(ctx context.Context) ([]Operator, error)
	ListOperatorsByCountry(ctx context.Context, countryID int64) ([]Operator, error)
	CountOperatorsByCountry(ctx context.Context, countryID int64) (int64, error)
	UpdateOperator(ctx context.Context, id int64, params UpdateOperatorParams) (Operator, error)
	DeleteOperator(ctx context.Context, id int64) error

	// Publisher operations
	CreatePublisher(ctx context.Context, params CreatePublisherParams) (Publisher, error)
	GetPublisherByID(ctx context.Context, id int64) (Publisher, error)
	ListPublishers(ctx context.Context) ([]Publisher, error)
	UpdatePublisher(ctx context.Context, id int64, params UpdatePublisherParams) (Publisher, error)
	DeletePublisher(ctx context.Context, id int64) error

	// Advertiser operations
	CreateAdvertiser(ctx context.Context, params CreateAdvertiserParams) (Advertiser, error)
	GetAdvertiserByID(ctx context.Context, id int64) (Advertiser, error)
	ListAdvertisers(ctx context.Context) ([]Advertiser, error)
	ListAdvertisersByOperator(ctx context.Context, operatorID int64) ([]Advertiser, error)
	CountAdvertisersByOperator(ctx context.Context, operatorID int64) (int64, error)
	UpdateAdvertiser(ctx context.Context, id int64, params UpdateAdvertiserParams) (Advertiser, error)
	DeleteAdvertiser(ctx context.Context, id int64) error

	// Campaign operations
	CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error)
	GetCampaignByID(ctx context.Context, id int64) (Campaign, error)
	ListCampaignSummaries(ctx context.Context) ([]CampaignSummary, error)
	CountCampaignsByOperator(ctx context.Context, operatorID int64) (int64, error)
	CountCampaignsByAdvertiser(ctx context.Context, advertiserID int64) (int64, error)
	UpdateCampaign(ctx context.Context, id int64, params UpdateCampaignParams) (Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) error
	DeleteCampaignsByPublisher(ctx context.Context, publisherID int64) (int64, error)

	// User operations
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
}

// Ensure Store implements Storer interface
var _ Storer = (*Store)(nil)
