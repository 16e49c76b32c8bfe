package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type CreateCountryParams struct {
	Code        string
	Name        string
	DialingCode string
}

// UpdateCountryParams holds a partial update. Nil fields are left unchanged.
type UpdateCountryParams struct {
	Code        *string
	Name        *string
	DialingCode *string
}

const countryColumns = `id, code, name, dialing_code, created_at, updated_at`

const sqlCreateCountry = `
INSERT INTO countries (code, name, dialing_code)
VALUES ($1, $2, $3)
RETURNING ` + countryColumns

func (s *Store) CreateCountry(ctx context.Context, params CreateCountryParams) (Country, error) {
	var country Country
	err := sqlx.GetContext(ctx, s.q, &country, sqlCreateCountry, params.Code, params.Name, params.DialingCode)
	if err != nil {
		return Country{}, s.fail(ctx, "create country", err)
	}
	return country, nil
}

const sqlGetCountryByID = `SELECT ` + countryColumns + ` FROM countries WHERE id = $1`

func (s *Store) GetCountryByID(ctx context.Context, id int64) (Country, error) {
	var country Country
	if err := sqlx.GetContext(ctx, s.q, &country, sqlGetCountryByID, id); err != nil {
		return Country{}, s.fail(ctx, "get country", err)
	}
	return country, nil
}

const sqlListCountries = `SELECT ` + countryColumns + ` FROM countries ORDER BY id`

func (s *Store) ListCountries(ctx context.Context) ([]Country, error) {
	countries := []Country{}
	if err := sqlx.SelectContext(ctx, s.q, &countries, sqlListCountries); err != nil {
		return nil, s.fail(ctx, "list countries", err)
	}
	return countries, nil
}

const sqlUpdateCountry = `
UPDATE countries
SET code = COALESCE($2, code),
    name = COALESCE($3, name),
    dialing_code = COALESCE($4, dialing_code),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + countryColumns

func (s *Store) UpdateCountry(ctx context.Context, id int64, params UpdateCountryParams) (Country, error) {
	var country Country
	err := sqlx.GetContext(ctx, s.q, &country, sqlUpdateCountry, id, params.Code, params.Name, params.DialingCode)
	if err != nil {
		return Country{}, s.fail(ctx, "update country", err)
	}
	return country, nil
}

const sqlDeleteCountry = `DELETE FROM countries WHERE id = $1`

func (s *Store) DeleteCountry(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "delete country", sqlDeleteCountry, id)
}
