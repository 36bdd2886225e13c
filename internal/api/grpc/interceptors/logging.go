// Package interceptors provides shared gRPC server interceptors.
package interceptors

import (
	"context"
	"log"
	"time"

	grpcmeta "github.com/louisbranch/connect4.space/internal/api/grpc/metadata"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs the outcome of every unary call.
func LoggingInterceptor(logf func(string, ...any)) grpc.UnaryServerInterceptor {
	if logf == nil {
		logf = log.Printf
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := codes.OK
		if err != nil {
			code = codes.Unknown
			if st, ok := status.FromError(err); ok {
				code = st.Code()
			}
		}
		logf("rpc %s code=%s duration=%s request_id=%s",
			info.FullMethod, code, time.Since(start).Round(time.Microsecond), grpcmeta.RequestIDFromContext(ctx))

		return resp, err
	}
}
