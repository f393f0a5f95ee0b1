// Package ctxutil carries request-scoped values: the caller's identity and
// the request id.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	identityKey ctxKey = iota
	requestIDKey
)

// Identity is the authenticated account behind a request.
type Identity struct {
	ID   uuid.UUID
	Role string
}

// Valid reports whether the identity names an account.
func (i Identity) Valid() bool { return i.ID != uuid.Nil }

// WithIdentity stores the caller. An identity without an id is not stored.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	if !id.Valid() {
		return ctx
	}
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx returns the caller stored by WithIdentity.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok && id.Valid()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request ID, or "" when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
