package authz

import (
	"context"

	"github.com/google/uuid"
)

// Actor is the acting identity resolved from a session token. It travels
// explicitly on the request context; nothing else holds the current session.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type contextKey string

const actorKey contextKey = "actor"

// WithActor returns a context carrying the acting identity.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext extracts the acting identity from the context.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}
