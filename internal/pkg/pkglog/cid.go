package pkglog

import "context"

const missingCorrelationID = "[missing_correlation_id]"

type correlationIDKey struct{}

// GetCorrelationID returns the correlation ID stored in ctx, or a placeholder
// when none was set.
func GetCorrelationID(ctx context.Context) string {
	if cid, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return cid
	}
	return missingCorrelationID
}

// SetCorrelationID returns a copy of ctx carrying cid.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
