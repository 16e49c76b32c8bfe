package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type CreatePublisherParams struct {
	Name        string
	CompanyName string
	Email       string
	BlockRule   string
	Status      string
	Cap         int
}

// UpdatePublisherParams holds a partial update. Nil fields are left unchanged.
type UpdatePublisherParams struct {
	Name        *string
	CompanyName *string
	Email       *string
	BlockRule   *string
	Status      *string
	Cap         *int
}

const publisherColumns = `id, name, company_name, email, block_rule, status, cap, created_at, updated_at`

const sqlCreatePublisher = `
INSERT INTO publishers (name, company_name, email, block_rule, status, cap)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + publisherColumns

func (s *Store) CreatePublisher(ctx context.Context, params CreatePublisherParams) (Publisher, error) {
	var publisher Publisher
	err := sqlx.GetContext(ctx, s.q, &publisher, sqlCreatePublisher,
		params.Name,
		params.CompanyName,
		params.Email,
		params.BlockRule,
		params.Status,
		params.Cap)
	if err != nil {
		return Publisher{}, s.fail(ctx, "create publisher", err)
	}
	return publisher, nil
}

const sqlGetPublisherByID = `SELECT ` + publisherColumns + ` FROM publishers WHERE id = $1`

func (s *Store) GetPublisherByID(ctx context.Context, id int64) (Publisher, error) {
	var publisher Publisher
	if err := sqlx.GetContext(ctx, s.q, &publisher, sqlGetPublisherByID, id); err != nil {
		return Publisher{}, s.fail(ctx, "get publisher", err)
	}
	return publisher, nil
}

const sqlListPublishers = `SELECT ` + publisherColumns + ` FROM publishers ORDER BY id`

func (s *Store) ListPublishers(ctx context.Context) ([]Publisher, error) {
	publishers := []Publisher{}
	if err := sqlx.SelectContext(ctx, s.q, &publishers, sqlListPublishers); err != nil {
		return nil, s.fail(ctx, "list publishers", err)
	}
	return publishers, nil
}

const sqlUpdatePublisher = `
UPDATE publishers
SET name = COALESCE($2, name),
    company_name = COALESCE($3, company_name),
    email = COALESCE($4, email),
    block_rule = COALESCE($5, block_rule),
    status = COALESCE($6, status),
    cap = COALESCE($7, cap),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + publisherColumns

func (s *Store) UpdatePublisher(ctx context.Context, id int64, params UpdatePublisherParams) (Publisher, error) {
	var publisher Publisher
	err := sqlx.GetContext(ctx, s.q, &publisher, sqlUpdatePublisher,
		id,
		params.Name,
		params.CompanyName,
		params.Email,
		params.BlockRule,
		params.Status,
		params.Cap)
	if err != nil {
		return Publisher{}, s.fail(ctx, "update publisher", err)
	}
	return publisher, nil
}

const sqlDeletePublisher = `DELETE FROM publishers WHERE id = $1`

func (s *Store) DeletePublisher(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "delete publisher", sqlDeletePublisher, id)
}
