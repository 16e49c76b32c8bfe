package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type CreateOperatorParams struct {
	Name      string
	Email     string
	Status    string
	CountryID int64
}

// UpdateOperatorParams holds a partial update. Nil fields are left unchanged.
type UpdateOperatorParams struct {
	Name      *string
	Email     *string
	Status    *string
	CountryID *int64
}

const operatorColumns = `id, name, email, status, country_id, created_at, updated_at`

const sqlCreateOperator = `
INSERT INTO operators (name, email, status, country_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + operatorColumns

func (s *Store) CreateOperator(ctx context.Context, params CreateOperatorParams) (Operator, error) {
	var operator Operator
	err := sqlx.GetContext(ctx, s.q, &operator, sqlCreateOperator,
		params.Name,
		params.Email,
		params.Status,
		params.CountryID)
	if err != nil {
		return Operator{}, s.fail(ctx, "create operator", err)
	}
	return operator, nil
}

const sqlGetOperatorByID = `SELECT ` + operatorColumns + ` FROM operators WHERE id = $1`

func (s *Store) GetOperatorByID(ctx context.Context, id int64) (Operator, error) {
	var operator Operator
	if err := sqlx.GetContext(ctx, s.q, &operator, sqlGetOperatorByID, id); err != nil {
		return Operator{}, s.fail(ctx, "get operator", err)
	}
	return operator, nil
}

const sqlListOperators = `SELECT ` + operatorColumns + ` FROM operators ORDER BY id`

func (s *Store) ListOperators(ctx context.Context) ([]Operator, error) {
	operators := []Operator{}
	if err := sqlx.SelectContext(ctx, s.q, &operators, sqlListOperators); err != nil {
		return nil, s.fail(ctx, "list operators", err)
	}
	return operators, nil
}

const sqlListOperatorsByCountry = `SELECT ` + operatorColumns + ` FROM operators WHERE country_id = $1 ORDER BY id`

// ListOperatorsByCountry returns the operators registered in a country.
func (s *Store) ListOperatorsByCountry(ctx context.Context, countryID int64) ([]Operator, error) {
	operators := []Operator{}
	if err := sqlx.SelectContext(ctx, s.q, &operators, sqlListOperatorsByCountry, countryID); err != nil {
		return nil, s.fail(ctx, "list operators by country", err)
	}
	return operators, nil
}

const sqlCountOperatorsByCountry = `SELECT COUNT(*) FROM operators WHERE country_id = $1`

func (s *Store) CountOperatorsByCountry(ctx context.Context, countryID int64) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, s.q, &count, sqlCountOperatorsByCountry, countryID); err != nil {
		return 0, s.fail(ctx, "count operators by country", err)
	}
	return count, nil
}

const sqlUpdateOperator = `
UPDATE operators
SET name = COALESCE($2, name),
    email = COALESCE($3, email),
    status = COALESCE($4, status),
    country_id = COALESCE($5, country_id),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + operatorColumns

func (s *Store) UpdateOperator(ctx context.Context, id int64, params UpdateOperatorParams) (Operator, error) {
	var operator Operator
	err := sqlx.GetContext(ctx, s.q, &operator, sqlUpdateOperator,
		id,
		params.Name,
		params.Email,
		params.Status,
		params.CountryID)
	if err != nil {
		return Operator{}, s.fail(ctx, "update operator", err)
	}
	return operator, nil
}

const sqlDeleteOperator = `DELETE FROM operators WHERE id = $1`

func (s *Store) DeleteOperator(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "delete operator", sqlDeleteOperator, id)
}
