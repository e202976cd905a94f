package auth

import (
	"context"

	"github.com/heartmarshall/reuse-backend/pkg/ctxutil"
)

// CurrentUser returns the authenticated user ID placed in ctx by the auth
// middleware.
func CurrentUser(ctx context.Context) (string, bool) {
	return ctxutil.UserIDFromCtx(ctx)
}
