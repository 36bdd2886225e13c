// Package metadata propagates request correlation metadata on gRPC calls.
package metadata

import (
	"context"
	"strings"

	"github.com/louisbranch/connect4.space/internal/id"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the gRPC metadata key for request correlation IDs.
const RequestIDHeader = "x-connect4-request-id"

// ClientIDHeader is the gRPC metadata key for caller client hints.
const ClientIDHeader = "x-connect4-client-id"

// contextKey stores metadata values in context.
type contextKey string

// requestIDContextKey stores the request ID in context.
const requestIDContextKey contextKey = "connect4-request-id"

// RequestIDFromContext returns the request ID stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey).(string)
	return value
}

// ClientIDFromContext returns the client ID hint from incoming metadata.
func ClientIDFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	return FirstMetadataValue(md, ClientIDHeader)
}

// WithRequestID stores the request ID in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// IsPrintableASCII reports whether a string contains only printable ASCII characters.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII metadata value for a key.
func FirstMetadataValue(md metadata.MD, key string) string {
	if len(md) == 0 {
		return ""
	}
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

// UnaryServerInterceptor ensures every unary call carries a request ID.
// Incoming IDs are preserved; missing IDs are generated. The resolved ID is
// echoed back to the caller as a response header.
func UnaryServerInterceptor(idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		updatedCtx, requestID, err := ensureRequestID(ctx, idGenerator)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "ensure request metadata: %v", err)
		}
		if headerErr := grpc.SetHeader(updatedCtx, metadata.Pairs(RequestIDHeader, requestID)); headerErr != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", headerErr)
		}

		return handler(updatedCtx, req)
	}
}

// ensureRequestID resolves or generates the request ID and returns updated context.
func ensureRequestID(ctx context.Context, idGenerator func() (string, error)) (context.Context, string, error) {
	requestID := requestIDFromIncomingContext(ctx)
	if requestID == "" {
		generatedID, err := idGenerator()
		if err != nil {
			return nil, "", err
		}
		requestID = generatedID
	}
	return WithRequestID(ctx, requestID), requestID, nil
}

// requestIDFromIncomingContext returns the request ID from incoming metadata.
func requestIDFromIncomingContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	return FirstMetadataValue(md, RequestIDHeader)
}
