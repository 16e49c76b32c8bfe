package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
	ErrValueTooLong        = errors.New("value too long for column")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgStringTruncation    = "22001"
)

// Constraint names declared in migrations/V1__create_inventory.sql.
const (
	ConstraintCountryCode     = "countries_code_key"
	ConstraintCountryName     = "countries_name_key"
	ConstraintOperatorEmail   = "operators_email_key"
	ConstraintPublisherName   = "publishers_name_key"
	ConstraintPublisherEmail  = "publishers_email_key"
	ConstraintAdvertiserEmail = "advertisers_email_key"
	ConstraintCampaignName    = "uq_campaign_name"
	ConstraintUserUsername    = "users_username_key"

	ConstraintRedirectionRequiresFallback = "campaigns_redirection_requires_fallback"
)

// ConstraintError reports a write the schema rejected. Kind is one of
// ErrUniqueViolation, ErrForeignKeyViolation, ErrCheckViolation or
// ErrValueTooLong, and errors.Is matches against it. Constraint is empty for
// ErrValueTooLong.
type ConstraintError struct {
	Kind       error
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// IsConstraint reports whether err is a violation of the named constraint.
func IsConstraint(err error, constraint string) bool {
	var cErr *ConstraintError
	return errors.As(err, &cErr) && cErr.Constraint == constraint
}

// translateError maps driver errors onto the package sentinels. Errors it
// does not recognise are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConstraintError{Kind: ErrUniqueViolation, Constraint: pgErr.ConstraintName, Err: err}
		case pgForeignKeyViolation:
			return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: pgErr.ConstraintName, Err: err}
		case pgCheckViolation:
			return &ConstraintError{Kind: ErrCheckViolation, Constraint: pgErr.ConstraintName, Err: err}
		case pgStringTruncation:
			return &ConstraintError{Kind: ErrValueTooLong, Err: err}
		}
	}
	return err
}

// wrap translates err and, for failures that are not expected outcomes,
// adds the operation description.
func wrap(op string, err error) error {
	translated := translateError(err)
	var cErr *ConstraintError
	if errors.Is(translated, ErrNotFound) || errors.As(translated, &cErr) {
		return translated
	}
	return fmt.Errorf("failed to %s: %w", op, translated)
}

// fail wraps err for op and logs it unless it is an expected outcome such as
// a missing row or a constraint violation.
func (s *Store) fail(ctx context.Context, op string, err error) error {
	wrapped := wrap(op, err)
	var cErr *ConstraintError
	if !errors.Is(wrapped, ErrNotFound) && !errors.As(wrapped, &cErr) {
		s.logger.Error(ctx, "failed to "+op, err)
	}
	return wrapped
}
