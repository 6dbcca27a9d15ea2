package command

import (
	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/assignment"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/conflict"
)

// Result is the outcome of a command. Exactly one field is set.
type Result struct {
	Success *Success
	Failure *Failure
}

// Success carries the effect of an applied command.
type Success struct {
	Command      Command
	Subject      catalog.Subject
	Message      string
	Assignments  []assignment.Assignment
	CreditsDelta int
	TotalCredits int
}

// Failure explains why a command was not applied. Nothing was mutated.
type Failure struct {
	Code      platformerrors.Code
	Message   string
	Metadata  map[string]string
	Conflicts []conflict.Conflict
	// Warning marks soft outcomes, such as a group with no sessions.
	Warning bool
}

// Accept returns a successful result.
func Accept(s Success) Result {
	return Result{Success: &s}
}

// Reject returns a failed result.
func Reject(f Failure) Result {
	return Result{Failure: &f}
}

// RejectError builds a failed result from a domain error, with the message
// rendered for locale.
func RejectError(err *platformerrors.Error, locale string) Result {
	return Reject(Failure{
		Code:     err.Code,
		Message:  platformerrors.UserMessage(err, locale),
		Metadata: err.Metadata,
		Warning:  err.Code.Advisory(),
	})
}

// OK reports whether the command was applied.
func (r Result) OK() bool {
	return r.Success != nil
}

// Message returns the user-facing message of either outcome.
func (r Result) Message() string {
	switch {
	case r.Success != nil:
		return r.Success.Message
	case r.Failure != nil:
		return r.Failure.Message
	default:
		return ""
	}
}

// Err converts a failure into a domain error, or nil on success.
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return platformerrors.WithMetadata(r.Failure.Code, r.Failure.Message, r.Failure.Metadata)
}
