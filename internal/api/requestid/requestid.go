// Package requestid carries the ULID-derived id of a request through its
// context. The id is echoed in every error body as error_id.
package requestid

import (
	"context"
	"strconv"
)

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

// InjectRequestID injects a given requestID into a context.
func InjectRequestID(ctx context.Context, requestID uint64) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ExtractRequestID extracts a requestID from a context if it exists.
// If none is found, then 0 is returned.
func ExtractRequestID(ctx context.Context) uint64 {
	if v, ok := ctx.Value(requestIDKey).(uint64); ok {
		return v
	}
	return 0
}

// FromCtx returns the request id of ctx in decimal, as written to error
// responses.
func FromCtx(ctx context.Context) string {
	return strconv.FormatUint(ExtractRequestID(ctx), 10)
}
