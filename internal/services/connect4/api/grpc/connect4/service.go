// Package connect4 implements the connect4.v1 gRPC service.
package connect4

import (
	"context"
	"strings"

	connect4v1 "github.com/louisbranch/connect4.space/api/gen/go/connect4/v1"
	apierrors "github.com/louisbranch/connect4.space/internal/platform/errors"
)

// Service exposes connect4.v1 gRPC operations.
type Service struct {
	connect4v1.UnimplementedConnect4ServiceServer
}

// NewService creates a connect4 service.
func NewService() *Service {
	return &Service{}
}

// Connect establishes a client connection. The request metadata fields are
// wire-optional but logically required: requests without a non-blank
// client_id and account_id are rejected with InvalidArgument, and identical
// requests are always rejected the same way.
func (s *Service) Connect(ctx context.Context, in *connect4v1.ConnectionRequest) (*connect4v1.ConnectionResponse, error) {
	if in == nil {
		return nil, apierrors.New(apierrors.CodeConnectRequestMissing, "connection request is required").ToGRPCStatus()
	}
	if in.GetMetadata() == nil {
		return nil, apierrors.NewFieldViolation(apierrors.CodeConnectMetadataMissing,
			"metadata", "request metadata is required").ToGRPCStatus()
	}
	if strings.TrimSpace(in.GetMetadata().GetClientId()) == "" {
		return nil, apierrors.NewFieldViolation(apierrors.CodeConnectClientIDMissing,
			"metadata.client_id", "client id is required").ToGRPCStatus()
	}
	if strings.TrimSpace(in.GetMetadata().GetAccountId()) == "" {
		return nil, apierrors.NewFieldViolation(apierrors.CodeConnectAccountIDMissing,
			"metadata.account_id", "account id is required").ToGRPCStatus()
	}

	return &connect4v1.ConnectionResponse{
		Response: &connect4v1.ConnectionResponseBody{},
	}, nil
}
