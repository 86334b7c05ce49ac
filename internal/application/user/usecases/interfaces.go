package usecases

import (
	"context"

	"ticketdesk/internal/infrastructure/auth"
)

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
	ExpMinutes() int
}

// TokenVerifier validates a session token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// RegisterExecutor creates a new user account.
type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

// LoginExecutor authenticates credentials and issues a session token.
type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// GetCurrentUserExecutor loads the account behind an authenticated session.
type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*GetCurrentUserResult, error)
}
