package httpapi

import (
	"context"

	"github.com/riskibarqy/football-hub/internal/domain/user"
)

type principalKey struct{}

// withPrincipal stores the authenticated caller set by RequireAuth.
func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok && p.UserID != ""
}
