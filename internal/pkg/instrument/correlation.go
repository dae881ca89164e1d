package instrument

import "context"

type correlationKey struct{}

// SetCorrelationID stores the request correlation ID in the context.
func SetCorrelationID(ctx context.Context, cID string) context.Context {
	return context.WithValue(ctx, correlationKey{}, cID)
}

// GetCorrelationID returns the correlation ID from the context, or an empty
// string when none was set.
func GetCorrelationID(ctx context.Context) string {
	if cID, ok := ctx.Value(correlationKey{}).(string); ok {
		return cID
	}
	return ""
}
