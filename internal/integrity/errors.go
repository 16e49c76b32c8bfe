package integrity

import (
	"errors"
	"fmt"

	"inapp-server/internal/store"
)

// Entity names used in NotFoundError.
const (
	EntityCountry               = "country"
	EntityOperator              = "operator"
	EntityPublisher             = "publisher"
	EntityAdvertiser            = "advertiser"
	EntityRedirectionAdvertiser = "redirection_advertiser"
	EntityCampaign              = "campaign"
	EntityUser                  = "user"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// NotFoundError reports a referenced or targeted entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError reports a uniqueness violation or a delete blocked by dependents.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// ValidationError reports an invalid combination of input fields.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Conflict(reason string) error {
	return &ConflictError{Reason: reason}
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

var duplicateReasons = map[string]string{
	store.ConstraintCountryCode:     "duplicate country code",
	store.ConstraintCountryName:     "duplicate country name",
	store.ConstraintOperatorEmail:   "duplicate operator email",
	store.ConstraintPublisherName:   "duplicate publisher name",
	store.ConstraintPublisherEmail:  "duplicate publisher email",
	store.ConstraintAdvertiserEmail: "duplicate advertiser email",
	store.ConstraintCampaignName:    "duplicate campaign name",
	store.ConstraintUserUsername:    "username already registered",
}

// FromStore translates a store error raised while writing entity id into the
// domain taxonomy. Errors that are not expected outcomes are returned as is.
func FromStore(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return NotFound(entity, id)
	}

	var cErr *store.ConstraintError
	if !errors.As(err, &cErr) {
		return err
	}
	switch {
	case errors.Is(cErr, store.ErrUniqueViolation):
		if reason, ok := duplicateReasons[cErr.Constraint]; ok {
			return Conflict(reason)
		}
		return Conflict("duplicate " + entity)
	case errors.Is(cErr, store.ErrValueTooLong):
		return Invalid(entity, "value exceeds the maximum length")
	case errors.Is(cErr, store.ErrCheckViolation):
		// The validator checks the same rules against the row it read, so a
		// check failure means a concurrent write changed that row.
		if cErr.Constraint == store.ConstraintRedirectionRequiresFallback {
			return Conflict("redirection advertiser requires fallback to stay enabled")
		}
		return Conflict(fmt.Sprintf("conflicting %s update (%s)", entity, cErr.Constraint))
	}
	return Conflict(fmt.Sprintf("conflicting %s reference (%s)", entity, cErr.Constraint))
}
