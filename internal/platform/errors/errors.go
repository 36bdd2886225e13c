package errors

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain is the error domain for connect4.space errors.
const Domain = "github.com/louisbranch/connect4.space"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs/telemetry)
	Field    string            // Request field the error applies to, if any
	Metadata map[string]string // Additional context
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewFieldViolation creates a domain error tied to a specific request field.
func NewFieldViolation(code Code, field, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Field:   field,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ToGRPCStatus converts the error to a gRPC status with errdetails.
// The ErrorInfo carries the stable machine-readable reason; when the error
// names a request field, a BadRequest field violation is attached so callers
// can tell which field failed without parsing the message.
func (e *Error) ToGRPCStatus() error {
	grpcCode := e.Code.GRPCCode()
	st := status.New(grpcCode, e.Message)

	info := &errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: e.Metadata,
	}
	if e.Field == "" {
		withInfo, err := st.WithDetails(info)
		if err != nil {
			// If we can't attach details, return the basic status
			return st.Err()
		}
		return withInfo.Err()
	}

	badRequest := &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       e.Field,
			Description: e.Message,
			Reason:      string(e.Code),
		}},
	}
	withDetails, err := st.WithDetails(info, badRequest)
	if err != nil {
		// If we can't attach details, return the basic status
		return st.Err()
	}
	return withDetails.Err()
}
