package store

import "context"

type (
	asOfKey  struct{}
	reqIDKey struct{}
)

// WithAsOfMonth pins reads to snapshots at or before the given month
// ("YYYY-MM-01"). Repos that understand pinning filter their snapshot scans
// accordingly; an unpinned context reads the full history
func WithAsOfMonth(ctx context.Context, month string) context.Context {
	return context.WithValue(ctx, asOfKey{}, month)
}

// AsOfMonth retrieves the pinned snapshot month from context if present
func AsOfMonth(ctx context.Context) (string, bool) {
	v := ctx.Value(asOfKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// WithRequestID attaches a request id to the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey{}, id)
}

// RequestID retrieves a request id from context if present
func RequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(reqIDKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}
