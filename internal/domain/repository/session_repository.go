package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionRepository tracks which issued tokens are still live. A token that
// validates cryptographically but is absent here has been logged out or has
// expired.
type SessionRepository interface {
	Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)

	// Delete invalidates a session. Deleting an unknown token is not an
	// error, logout is idempotent.
	Delete(ctx context.Context, userID uuid.UUID, tokenID string) error
}
