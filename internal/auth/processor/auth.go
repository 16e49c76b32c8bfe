package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inapp-server/internal/auth/credentials"
	"inapp-server/internal/integrity"
	"inapp-server/internal/observability"
	"inapp-server/internal/store"
)

var (
	// ErrUnauthorized is the only error Authenticate returns. The reason is logged, never exposed.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrFailedSignup       = errors.New("failed to sign up")
	ErrFailedLogin        = errors.New("failed to login")
)

const TokenTypeBearer = "bearer"

type AuthProcessor struct {
	store       AuthStore
	credentials CredentialManager
	tokenTTL    time.Duration
	logger      *observability.Logger
}

func New(store AuthStore, credentials CredentialManager, tokenTTL time.Duration, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:       store,
		credentials: credentials,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

type RegisterParams struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
}

type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Username    string    `json:"username"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Register stores a new user with a hashed password. A taken username is a Conflict.
func (p *AuthProcessor) Register(ctx context.Context, params RegisterParams) (store.User, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "username", Value: params.Username})

	hashed, err := p.credentials.Hash(params.Password)
	if errors.Is(err, credentials.ErrPasswordTooLong) {
		p.logger.Info(ctx, "password too long to hash")
		return store.User{}, integrity.Invalid("password", "must be at most 72 bytes")
	}
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return store.User{}, ErrFailedSignup
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Username:     params.Username,
		PasswordHash: hashed,
	})
	if err != nil {
		if store.IsConstraint(err, store.ConstraintUserUsername) {
			p.logger.Info(ctx, "username already registered")
			return store.User{}, integrity.FromStore(err, integrity.EntityUser, 0)
		}
		p.logger.Error(ctx, "failed to create user", err)
		return store.User{}, ErrFailedSignup
	}

	p.logger.Info(ctx, "user registered", observability.Field{Key: "user_id", Value: user.ID})
	return user, nil
}

// Login checks the password and issues a bearer token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (p *AuthProcessor) Login(ctx context.Context, username, password string) (LoginResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "username", Value: username})

	user, err := p.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "login for unknown user")
			return LoginResult{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user", err)
		return LoginResult{}, ErrFailedLogin
	}

	if !p.credentials.Verify(password, user.Password) {
		p.logger.Info(ctx, "login with incorrect password")
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := p.credentials.IssueToken(user.Username, p.tokenTTL)
	if err != nil {
		p.logger.Error(ctx, "failed to issue token", err)
		return LoginResult{}, ErrFailedLogin
	}

	return LoginResult{
		AccessToken: token.Value,
		TokenType:   TokenTypeBearer,
		Username:    user.Username,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

// Authenticate resolves a bearer token to its user. Every failure, whether
// an invalid or expired token, a vanished user or a store error, yields
// ErrUnauthorized.
func (p *AuthProcessor) Authenticate(ctx context.Context, token string) (store.User, error) {
	subject, err := p.credentials.VerifyToken(token)
	if err != nil {
		p.logger.InfoWithError(ctx, "token rejected", err)
		return store.User{}, ErrUnauthorized
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "username", Value: subject})
	user, err := p.store.GetUserByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "token subject no longer exists")
		} else {
			p.logger.Error(ctx, "failed to load token subject", fmt.Errorf("authenticate: %w", err))
		}
		return store.User{}, ErrUnauthorized
	}
	return user, nil
}
