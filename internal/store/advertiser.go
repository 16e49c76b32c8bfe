package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type CreateAdvertiserParams struct {
	Name           string
	CompanyName    string
	Email          string
	Status         string
	SendOTPURL     string
	VerifyOTPURL   string
	StatusCheckURL string
	Capping        string
	OperatorID     int64
	CountryID      int64
}

// UpdateAdvertiserParams holds a partial update. Nil fields are left unchanged.
type UpdateAdvertiserParams struct {
	Name           *string
	CompanyName    *string
	Email          *string
	Status         *string
	SendOTPURL     *string
	VerifyOTPURL   *string
	StatusCheckURL *string
	Capping        *string
	OperatorID     *int64
	CountryID      *int64
}

const advertiserColumns = `id, name, company_name, email, status, send_otp_url, verify_otp_url, status_check_url, capping, operator_id, country_id, created_at, updated_at`

const sqlCreateAdvertiser = `
INSERT INTO advertisers (name, company_name, email, status, send_otp_url, verify_otp_url, status_check_url, capping, operator_id, country_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + advertiserColumns

func (s *Store) CreateAdvertiser(ctx context.Context, params CreateAdvertiserParams) (Advertiser, error) {
	var advertiser Advertiser
	err := sqlx.GetContext(ctx, s.q, &advertiser, sqlCreateAdvertiser,
		params.Name,
		params.CompanyName,
		params.Email,
		params.Status,
		params.SendOTPURL,
		params.VerifyOTPURL,
		params.StatusCheckURL,
		params.Capping,
		params.OperatorID,
		params.CountryID)
	if err != nil {
		return Advertiser{}, s.fail(ctx, "create advertiser", err)
	}
	return advertiser, nil
}

const sqlGetAdvertiserByID = `SELECT ` + advertiserColumns + ` FROM advertisers WHERE id = $1`

func (s *Store) GetAdvertiserByID(ctx context.Context, id int64) (Advertiser, error) {
	var advertiser Advertiser
	if err := sqlx.GetContext(ctx, s.q, &advertiser, sqlGetAdvertiserByID, id); err != nil {
		return Advertiser{}, s.fail(ctx, "get advertiser", err)
	}
	return advertiser, nil
}

const sqlListAdvertisers = `SELECT ` + advertiserColumns + ` FROM advertisers ORDER BY id`

func (s *Store) ListAdvertisers(ctx context.Context) ([]Advertiser, error) {
	advertisers := []Advertiser{}
	if err := sqlx.SelectContext(ctx, s.q, &advertisers, sqlListAdvertisers); err != nil {
		return nil, s.fail(ctx, "list advertisers", err)
	}
	return advertisers, nil
}

const sqlListAdvertisersByOperator = `SELECT ` + advertiserColumns + ` FROM advertisers WHERE operator_id = $1 ORDER BY id`

// ListAdvertisersByOperator returns the advertisers attached to an operator.
func (s *Store) ListAdvertisersByOperator(ctx context.Context, operatorID int64) ([]Advertiser, error) {
	advertisers := []Advertiser{}
	if err := sqlx.SelectContext(ctx, s.q, &advertisers, sqlListAdvertisersByOperator, operatorID); err != nil {
		return nil, s.fail(ctx, "list advertisers by operator", err)
	}
	return advertisers, nil
}

const sqlCountAdvertisersByOperator = `SELECT COUNT(*) FROM advertisers WHERE operator_id = $1`

func (s *Store) CountAdvertisersByOperator(ctx context.Context, operatorID int64) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, s.q, &count, sqlCountAdvertisersByOperator, operatorID); err != nil {
		return 0, s.fail(ctx, "count advertisers by operator", err)
	}
	return count, nil
}

const sqlUpdateAdvertiser = `
UPDATE advertisers
SET name = COALESCE($2, name),
    company_name = COALESCE($3, company_name),
    email = COALESCE($4, email),
    status = COALESCE($5, status),
    send_otp_url = COALESCE($6, send_otp_url),
    verify_otp_url = COALESCE($7, verify_otp_url),
    status_check_url = COALESCE($8, status_check_url),
    capping = COALESCE($9, capping),
    operator_id = COALESCE($10, operator_id),
    country_id = COALESCE($11, country_id),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + advertiserColumns

func (s *Store) UpdateAdvertiser(ctx context.Context, id int64, params UpdateAdvertiserParams) (Advertiser, error) {
	var advertiser Advertiser
	err := sqlx.GetContext(ctx, s.q, &advertiser, sqlUpdateAdvertiser,
		id,
		params.Name,
		params.CompanyName,
		params.Email,
		params.Status,
		params.SendOTPURL,
		params.VerifyOTPURL,
		params.StatusCheckURL,
		params.Capping,
		params.OperatorID,
		params.CountryID)
	if err != nil {
		return Advertiser{}, s.fail(ctx, "update advertiser", err)
	}
	return advertiser, nil
}

const sqlDeleteAdvertiser = `DELETE FROM advertisers WHERE id = $1`

func (s *Store) DeleteAdvertiser(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "delete advertiser", sqlDeleteAdvertiser, id)
}
