// Package api contains cross-service gRPC plumbing.
//
// The grpc subpackage holds transport-level concerns shared by service
// implementations:
//
//   - grpc/metadata/: request correlation metadata (request IDs) propagated
//     between clients and servers
//   - grpc/interceptors/: shared unary server interceptors (RPC outcome
//     logging)
//
// Service implementations themselves live under
// internal/services/<service>/api/grpc/.
package api
