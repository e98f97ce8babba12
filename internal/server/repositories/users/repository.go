package users

import (
	"context"

	"signupd/internal/server/models"
)

// Repository is the credential store contract. Implementations must make
// each call atomic with respect to the others; no cross-call transaction
// is assumed by the services layer.
type Repository interface {
	// Create inserts a new unconfirmed user and fills in ID and CreatedAt.
	// A nickname or token collision yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByNickname returns the user with the given nickname or
	// common.ErrorNotFound.
	GetByNickname(ctx context.Context, nickname string) (*models.User, error)

	// GetByConfirmationToken returns the unconfirmed user holding the token
	// or common.ErrorNotFound.
	GetByConfirmationToken(ctx context.Context, token string) (*models.User, error)

	// Confirm marks the user holding the token as confirmed and clears the
	// token in a single update, consuming it. Returns the user's ID, or
	// common.ErrorNotFound if no row holds the token.
	Confirm(ctx context.Context, token string) (int64, error)
}
