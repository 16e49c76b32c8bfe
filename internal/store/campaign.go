package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name                    string
	PublisherID             int64
	CountryID               int64
	OperatorID              int64
	AdvertiserID            int64
	RedirectionAdvertiserID *int64
	PublisherPrice          float64
	AdvertiserPrice         float64
	FallbackEnabled         bool
	IsLive                  bool
}

// UpdateCampaignParams represents parameters for updating a campaign.
// Nil fields are left unchanged. Setting FallbackEnabled to false also
// clears the redirection advertiser.
type UpdateCampaignParams struct {
	Name                    *string
	PublisherID             *int64
	CountryID               *int64
	OperatorID              *int64
	AdvertiserID            *int64
	RedirectionAdvertiserID *int64
	PublisherPrice          *float64
	AdvertiserPrice         *float64
	FallbackEnabled         *bool
	IsLive                  *bool
}

const campaignColumns = `id, name, publisher_id, country_id, operator_id, advertiser_id, redirection_advertiser_id,
    publisher_price, advertiser_price, fallback_enabled, is_live, created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (name, publisher_id, country_id, operator_id, advertiser_id, redirection_advertiser_id,
    publisher_price, advertiser_price, fallback_enabled, is_live)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + campaignColumns

// CreateCampaign inserts a campaign. References are expected to be
// resolved by the caller; the foreign keys reject anything that vanished since.
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := sqlx.GetContext(ctx, s.q, &campaign, sqlCreateCampaign,
		params.Name,
		params.PublisherID,
		params.CountryID,
		params.OperatorID,
		params.AdvertiserID,
		params.RedirectionAdvertiserID,
		params.PublisherPrice,
		params.AdvertiserPrice,
		params.FallbackEnabled,
		params.IsLive)
	if err != nil {
		return Campaign{}, s.fail(ctx, "create campaign", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

func (s *Store) GetCampaignByID(ctx context.Context, id int64) (Campaign, error) {
	var campaign Campaign
	if err := sqlx.GetContext(ctx, s.q, &campaign, sqlGetCampaignByID, id); err != nil {
		return Campaign{}, s.fail(ctx, "get campaign", err)
	}
	return campaign, nil
}

const sqlListCampaignSummaries = `
SELECT
    c.id,
    c.name,
    c.publisher_id,
    c.country_id,
    c.operator_id,
    c.advertiser_id,
    c.redirection_advertiser_id,
    c.publisher_price,
    c.advertiser_price,
    c.fallback_enabled,
    c.is_live,
    c.created_at,
    c.updated_at,
    p.name AS publisher_name,
    co.name AS country_name,
    o.name AS operator_name,
    a.name AS advertiser_name,
    ra.name AS redirection_advertiser_name
FROM campaigns c
JOIN publishers p ON p.id = c.publisher_id
JOIN countries co ON co.id = c.country_id
JOIN operators o ON o.id = c.operator_id
JOIN advertisers a ON a.id = c.advertiser_id
LEFT JOIN advertisers ra ON ra.id = c.redirection_advertiser_id
ORDER BY c.id`

// ListCampaignSummaries returns every campaign with the names of the entities it references.
func (s *Store) ListCampaignSummaries(ctx context.Context) ([]CampaignSummary, error) {
	summaries := []CampaignSummary{}
	if err := sqlx.SelectContext(ctx, s.q, &summaries, sqlListCampaignSummaries); err != nil {
		return nil, s.fail(ctx, "list campaign summaries", err)
	}
	return summaries, nil
}

const sqlCountCampaignsByOperator = `SELECT COUNT(*) FROM campaigns WHERE operator_id = $1`

func (s *Store) CountCampaignsByOperator(ctx context.Context, operatorID int64) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, s.q, &count, sqlCountCampaignsByOperator, operatorID); err != nil {
		return 0, s.fail(ctx, "count campaigns by operator", err)
	}
	return count, nil
}

const sqlCountCampaignsByAdvertiser = `
SELECT COUNT(*) FROM campaigns
WHERE advertiser_id = $1 OR redirection_advertiser_id = $1`

// CountCampaignsByAdvertiser counts campaigns that use the advertiser either
// directly or as their redirection target.
func (s *Store) CountCampaignsByAdvertiser(ctx context.Context, advertiserID int64) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, s.q, &count, sqlCountCampaignsByAdvertiser, advertiserID); err != nil {
		return 0, s.fail(ctx, "count campaigns by advertiser", err)
	}
	return count, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = COALESCE($2, name),
    publisher_id = COALESCE($3, publisher_id),
    country_id = COALESCE($4, country_id),
    operator_id = COALESCE($5, operator_id),
    advertiser_id = COALESCE($6, advertiser_id),
    redirection_advertiser_id = CASE
        WHEN $10::boolean IS FALSE THEN NULL
        ELSE COALESCE($7, redirection_advertiser_id)
    END,
    publisher_price = COALESCE($8, publisher_price),
    advertiser_price = COALESCE($9, advertiser_price),
    fallback_enabled = COALESCE($10, fallback_enabled),
    is_live = COALESCE($11, is_live),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + campaignColumns

// UpdateCampaign updates a campaign
func (s *Store) UpdateCampaign(ctx context.Context, id int64, params UpdateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := sqlx.GetContext(ctx, s.q, &campaign, sqlUpdateCampaign,
		id,
		params.Name,
		params.PublisherID,
		params.CountryID,
		params.OperatorID,
		params.AdvertiserID,
		params.RedirectionAdvertiserID,
		params.PublisherPrice,
		params.AdvertiserPrice,
		params.FallbackEnabled,
		params.IsLive)
	if err != nil {
		return Campaign{}, s.fail(ctx, "update campaign", err)
	}
	return campaign, nil
}

const sqlDeleteCampaign = `DELETE FROM campaigns WHERE id = $1`

func (s *Store) DeleteCampaign(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "delete campaign", sqlDeleteCampaign, id)
}

const sqlDeleteCampaignsByPublisher = `DELETE FROM campaigns WHERE publisher_id = $1`

// DeleteCampaignsByPublisher removes every campaign of a publisher and
// returns how many were removed.
func (s *Store) DeleteCampaignsByPublisher(ctx context.Context, publisherID int64) (int64, error) {
	return s.exec(ctx, "delete campaigns by publisher", sqlDeleteCampaignsByPublisher, publisherID)
}
