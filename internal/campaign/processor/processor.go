package processor

import (
	"context"
	"errors"

	"inapp-server/internal/integrity"
	"inapp-server/internal/observability"
	"inapp-server/internal/store"
)

type CampaignProcessor struct {
	store     CampaignStore
	validator *integrity.Validator
	guard     DeleteGuard
	events    EventPublisher
	logger    *observability.Logger
}

func New(store CampaignStore, validator *integrity.Validator, guard DeleteGuard, events EventPublisher, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:     store,
		validator: validator,
		guard:     guard,
		events:    events,
		logger:    logger,
	}
}

// CreateCampaignParams represents parameters for creating a campaign.
// IsLive defaults to false when nil.
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
	IsLive                  *bool
}

// UpdateCampaignParams holds a partial update. Nil fields are left unchanged
// and no field can be cleared. Turning fallback off drops the redirection
// advertiser.
type UpdateCampaignParams = store.UpdateCampaignParams

// CreateCampaign resolves every reference and inserts the campaign in one
// transaction. Nothing is written when any step fails.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_name", Value: params.Name},
		observability.Field{Key: "publisher_id", Value: params.PublisherID},
	)

	var created store.Campaign
	err := p.store.InTx(ctx, func(tx CampaignStore) error {
		refs := integrity.References{
			PublisherID:             &params.PublisherID,
			CountryID:               &params.CountryID,
			OperatorID:              &params.OperatorID,
			AdvertiserID:            &params.AdvertiserID,
			RedirectionAdvertiserID: params.RedirectionAdvertiserID,
			FallbackEnabled:         params.FallbackEnabled,
		}
		if _, err := p.validator.Resolve(ctx, tx, refs); err != nil {
			return err
		}

		isLive := false
		if params.IsLive != nil {
			isLive = *params.IsLive
		}
		campaign, err := tx.CreateCampaign(ctx, store.CreateCampaignParams{
			Name:                    params.Name,
			PublisherID:             params.PublisherID,
			CountryID:               params.CountryID,
			OperatorID:              params.OperatorID,
			AdvertiserID:            params.AdvertiserID,
			RedirectionAdvertiserID: params.RedirectionAdvertiserID,
			PublisherPrice:          params.PublisherPrice,
			AdvertiserPrice:         params.AdvertiserPrice,
			FallbackEnabled:         params.FallbackEnabled,
			IsLive:                  isLive,
		})
		if err != nil {
			return err
		}
		created = campaign
		return nil
	})
	if err != nil {
		err = integrity.FromStore(err, integrity.EntityCampaign, 0)
		p.logFailure(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign created", observability.Field{Key: "campaign_id", Value: created.ID})
	p.events.Created(ctx, integrity.EntityCampaign, created.ID, created)
	return created, nil
}

func (p *CampaignProcessor) GetCampaign(ctx context.Context, id int64) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id})

	campaign, err := p.store.GetCampaignByID(ctx, id)
	if err != nil {
		err = integrity.FromStore(err, integrity.EntityCampaign, id)
		p.logFailure(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// ListCampaigns returns every campaign with the names of the entities it references.
func (p *CampaignProcessor) ListCampaigns(ctx context.Context) ([]store.CampaignSummary, error) {
	campaigns, err := p.store.ListCampaignSummaries(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	return campaigns, nil
}

// UpdateCampaign applies a partial update. The redirection advertiser is
// checked against the fallback flag the campaign will have after the update.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, id int64, params UpdateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id})

	var updated store.Campaign
	err := p.store.InTx(ctx, func(tx CampaignStore) error {
		if params.RedirectionAdvertiserID != nil && params.FallbackEnabled != nil && !*params.FallbackEnabled {
			return integrity.Invalid("redirection_advertiser_id", "requires fallback_enabled")
		}

		existing, err := tx.GetCampaignByID(ctx, id)
		if err != nil {
			return err
		}
		fallback := existing.FallbackEnabled
		if params.FallbackEnabled != nil {
			fallback = *params.FallbackEnabled
		}

		refs := integrity.References{
			PublisherID:             params.PublisherID,
			CountryID:               params.CountryID,
			OperatorID:              params.OperatorID,
			AdvertiserID:            params.AdvertiserID,
			RedirectionAdvertiserID: params.RedirectionAdvertiserID,
			FallbackEnabled:         fallback,
		}
		if _, err := p.validator.Resolve(ctx, tx, refs); err != nil {
			return err
		}

		campaign, err := tx.UpdateCampaign(ctx, id, params)
		if err != nil {
			return err
		}
		updated = campaign
		return nil
	})
	if err != nil {
		err = integrity.FromStore(err, integrity.EntityCampaign, id)
		p.logFailure(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}

	p.events.Updated(ctx, integrity.EntityCampaign, id, updated)
	return updated, nil
}

// DeleteCampaign always succeeds for an existing campaign.
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, id int64) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id})

	deleted, err := p.guard.DeleteCampaign(ctx, id)
	if err != nil {
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign deleted")
	p.events.Deleted(ctx, integrity.EntityCampaign, id, deleted)
	return deleted, nil
}

func (p *CampaignProcessor) logFailure(ctx context.Context, msg string, err error) {
	if errors.Is(err, integrity.ErrNotFound) || errors.Is(err, integrity.ErrConflict) || errors.Is(err, integrity.ErrValidation) {
		p.logger.InfoWithError(ctx, msg, err)
		return
	}
	p.logger.Error(ctx, msg, err)
}
