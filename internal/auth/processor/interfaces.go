package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"inapp-server/internal/auth/credentials"
	"inapp-server/internal/store"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByUsername(ctx context.Context, username string) (store.User, error)
}

// CredentialManager hashes passwords and signs bearer tokens.
type CredentialManager interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
	IssueToken(subject string, ttl time.Duration) (credentials.Token, error)
	VerifyToken(token string) (string, error)
}
