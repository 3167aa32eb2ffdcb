package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type ctxKey struct{}

var key = ctxKey{}

// FromContext returns the shopping session id carried by ctx, or "".
func FromContext(ctx context.Context) string {
	if v := ctx.Value(key); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key, id)
}

// Ensure returns ctx unchanged when it already carries a session id,
// otherwise it attaches a freshly generated one.
func Ensure(ctx context.Context) context.Context {
	if FromContext(ctx) != "" {
		return ctx
	}
	return NewContext(ctx, Generate())
}

func Generate() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
