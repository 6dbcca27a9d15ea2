package errors

import (
	"maps"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain of timetable errors.
const Domain = "github.com/louisbranch/timetable"

// Metadata keys read by ToGRPCStatus and the message templates.
const (
	MetaSubject = "Subject"
	MetaGroup   = "Group"
)

// Error is a coded engine error. Message is for logs; users see the
// localized template for Code filled from Metadata.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// New returns an error without metadata.
func New(code Code, message string) *Error {
	return build(code, message, nil, nil)
}

// WithMetadata returns an error whose metadata fills the message template.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return build(code, message, metadata, nil)
}

// Wrap returns an error caused by cause.
func Wrap(code Code, message string, cause error) *Error {
	return build(code, message, nil, cause)
}

// WrapWithMetadata combines WithMetadata and Wrap.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return build(code, message, metadata, cause)
}

func build(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: maps.Clone(metadata),
		Cause:    cause,
	}
}

// Resource names the subject or group the error is about, "CS101" or
// "CS101/A", or "" when the metadata names neither.
func (e *Error) Resource() string {
	subject := strings.TrimSpace(e.Metadata[MetaSubject])
	if subject == "" {
		return ""
	}
	if group := strings.TrimSpace(e.Metadata[MetaGroup]); group != "" {
		return subject + "/" + group
	}
	return subject
}

// ToGRPCStatus converts the error to a status whose message is the internal
// one. Details carry the code, the localized message and, when known, the
// subject or group involved.
func (e *Error) ToGRPCStatus(locale string, userMessage string) error {
	grpcCode := e.Code.GRPCCode()
	st, err := status.New(grpcCode, e.Message).WithDetails(
		&errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   Domain,
			Metadata: e.Metadata,
		},
		&errdetails.LocalizedMessage{Locale: locale, Message: userMessage},
	)
	if err != nil {
		return status.New(grpcCode, e.Message).Err()
	}
	if resource := e.Resource(); resource != "" {
		resourceType := "timetable.subject"
		if strings.Contains(resource, "/") {
			resourceType = "timetable.group"
		}
		if withResource, err := st.WithDetails(&errdetails.ResourceInfo{
			ResourceType: resourceType,
			ResourceName: resource,
			Description:  userMessage,
		}); err == nil {
			st = withResource
		}
	}
	return st.Err()
}
