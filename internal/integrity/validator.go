package integrity

import (
	"context"
	"errors"

	"inapp-server/internal/observability"
	"inapp-server/internal/store"
)

// ReferenceStore is the read side the validator resolves references against.
// Pass a transaction-bound store so validation and the write share one unit.
type ReferenceStore interface {
	GetPublisherByID(ctx context.Context, id int64) (store.Publisher, error)
	GetCountryByID(ctx context.Context, id int64) (store.Country, error)
	GetOperatorByID(ctx context.Context, id int64) (store.Operator, error)
	GetAdvertiserByID(ctx context.Context, id int64) (store.Advertiser, error)
}

// References lists the entities a mutation points at. A nil id means the
// mutation does not reference that entity.
type References struct {
	PublisherID             *int64
	CountryID               *int64
	OperatorID              *int64
	AdvertiserID            *int64
	RedirectionAdvertiserID *int64
	FallbackEnabled         bool
}

// Resolved holds the entities found for each supplied reference.
type Resolved struct {
	Publisher             *store.Publisher
	Country               *store.Country
	Operator              *store.Operator
	Advertiser            *store.Advertiser
	RedirectionAdvertiser *store.Advertiser
}

type Validator struct {
	logger *observability.Logger
}

func NewValidator(logger *observability.Logger) *Validator {
	return &Validator{logger: logger}
}

// Resolve checks every supplied reference in a fixed order (publisher,
// country, operator, advertiser, redirection advertiser) and fails on the
// first one that does not exist. A redirection advertiser is only accepted
// when fallback is enabled.
func (v *Validator) Resolve(ctx context.Context, s ReferenceStore, refs References) (Resolved, error) {
	if refs.RedirectionAdvertiserID != nil && !refs.FallbackEnabled {
		return Resolved{}, Invalid("redirection_advertiser_id", "requires fallback_enabled")
	}

	var out Resolved
	if refs.PublisherID != nil {
		publisher, err := resolve(ctx, v, EntityPublisher, *refs.PublisherID, s.GetPublisherByID)
		if err != nil {
			return Resolved{}, err
		}
		out.Publisher = &publisher
	}
	if refs.CountryID != nil {
		country, err := resolve(ctx, v, EntityCountry, *refs.CountryID, s.GetCountryByID)
		if err != nil {
			return Resolved{}, err
		}
		out.Country = &country
	}
	if refs.OperatorID != nil {
		operator, err := resolve(ctx, v, EntityOperator, *refs.OperatorID, s.GetOperatorByID)
		if err != nil {
			return Resolved{}, err
		}
		out.Operator = &operator
	}
	if refs.AdvertiserID != nil {
		advertiser, err := resolve(ctx, v, EntityAdvertiser, *refs.AdvertiserID, s.GetAdvertiserByID)
		if err != nil {
			return Resolved{}, err
		}
		out.Advertiser = &advertiser
	}
	// With fallback enabled and no id the reference simply stays absent.
	if refs.FallbackEnabled && refs.RedirectionAdvertiserID != nil {
		redirect, err := resolve(ctx, v, EntityRedirectionAdvertiser, *refs.RedirectionAdvertiserID, s.GetAdvertiserByID)
		if err != nil {
			return Resolved{}, err
		}
		out.RedirectionAdvertiser = &redirect
	}
	return out, nil
}

func resolve[T any](ctx context.Context, v *Validator, entity string, id int64, get func(context.Context, int64) (T, error)) (T, error) {
	found, err := get(ctx, id)
	if err != nil {
		var zero T
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "entity", Value: entity},
			observability.Field{Key: "entity_id", Value: id},
		)
		translated := FromStore(err, entity, id)
		if errors.Is(translated, ErrNotFound) {
			v.logger.Info(ctx, "reference did not resolve")
		} else {
			v.logger.Error(ctx, "failed to resolve reference", err)
		}
		return zero, translated
	}
	return found, nil
}
