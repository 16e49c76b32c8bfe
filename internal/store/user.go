package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type CreateUserParams struct {
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string
}

const userColumns = `id, first_name, last_name, username, password, created_at`

const sqlCreateUser = `
INSERT INTO users (first_name, last_name, username, password)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns

func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := sqlx.GetContext(ctx, s.q, &user, sqlCreateUser,
		params.FirstName,
		params.LastName,
		params.Username,
		params.PasswordHash)
	if err != nil {
		return User{}, s.fail(ctx, "create user", err)
	}
	return user, nil
}

const sqlGetUserByUsername = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1`

func (s *Store) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	if err := sqlx.GetContext(ctx, s.q, &user, sqlGetUserByUsername, username); err != nil {
		return User{}, s.fail(ctx, "get user by username", err)
	}
	return user, nil
}
