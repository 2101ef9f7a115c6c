// Package ctxutil carries per-lookup identifiers through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	targetKey    ctxKey = "target"
)

// WithRequestID stores the lookup request ID in the context.
func WithRequestID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the lookup request ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RequestIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(requestIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithTarget stores the request target (e.g. "words.txt:3") in the context.
func WithTarget(ctx context.Context, target string) context.Context {
	return context.WithValue(ctx, targetKey, target)
}

// TargetFromCtx extracts the request target from the context.
// Returns an empty string if absent.
func TargetFromCtx(ctx context.Context) string {
	t, _ := ctx.Value(targetKey).(string)
	return t
}
