package pkgrouter

import (
	"context"

	"github.com/julienschmidt/httprouter"
)

type routeContextKey struct{}

// GetParam reads a path parameter from the request context (as stored by httprouter).
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// GetRoute returns the registered route pattern serving the request, or an
// empty string outside a registered route.
func GetRoute(ctx context.Context) string {
	route, _ := ctx.Value(routeContextKey{}).(string)
	return route
}
