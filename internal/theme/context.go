package theme

import (
	"context"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
)

type contextKey struct{}

// NewContext attaches the resolver to the context. The application does
// this once at startup; every consumer tree reads the theme through the
// returned context.
func NewContext(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext retrieves the resolver previously attached with NewContext.
// Reading the theme from a context without one is an integration mistake,
// reported as entity.ErrResolverNotAttached rather than degrading to a
// silent default.
func FromContext(ctx context.Context) (*Resolver, error) {
	r, ok := ctx.Value(contextKey{}).(*Resolver)
	if !ok || r == nil {
		return nil, entity.ErrResolverNotAttached
	}
	return r, nil
}
