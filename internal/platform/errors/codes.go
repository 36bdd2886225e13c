// Package errors provides structured error handling for the connection API.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Connect errors
	CodeConnectRequestMissing   Code = "CONNECT_REQUEST_MISSING"
	CodeConnectMetadataMissing  Code = "CONNECT_METADATA_MISSING"
	CodeConnectClientIDMissing  Code = "CONNECT_CLIENT_ID_MISSING"
	CodeConnectAccountIDMissing Code = "CONNECT_ACCOUNT_ID_MISSING"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeConnectRequestMissing,
		CodeConnectMetadataMissing,
		CodeConnectClientIDMissing,
		CodeConnectAccountIDMissing:
		return codes.InvalidArgument

	default:
		return codes.Internal
	}
}
