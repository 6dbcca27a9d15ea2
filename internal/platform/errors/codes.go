// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Catalog errors
	CodeNotFound           Code = "NOT_FOUND"
	CodeGroupEmpty         Code = "GROUP_EMPTY"
	CodeTimeFormatInvalid  Code = "TIME_FORMAT_INVALID"
	CodeDayInvalid         Code = "DAY_INVALID"
	CodeSessionKindInvalid Code = "SESSION_KIND_INVALID"

	// Schedule errors
	CodeScheduleConflict      Code = "SCHEDULE_CONFLICT"
	CodeGroupAlreadyPlaced    Code = "GROUP_ALREADY_PLACED"
	CodeScheduleSlotEmpty     Code = "SCHEDULE_SLOT_EMPTY"
	CodeScheduleNothingToUndo Code = "SCHEDULE_NOTHING_TO_UNDO"
	CodeScheduleNothingToRedo Code = "SCHEDULE_NOTHING_TO_REDO"
	CodeScheduleInconsistent  Code = "SCHEDULE_INCONSISTENT"
	CodeImportRecordInvalid   Code = "IMPORT_RECORD_INVALID"
)

// Advisory reports whether the code describes a soft outcome the user may
// ignore, such as a group without sessions.
func (c Code) Advisory() bool {
	return c == CodeGroupEmpty
}

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed catalog or import data
	case CodeTimeFormatInvalid,
		CodeDayInvalid,
		CodeSessionKindInvalid,
		CodeImportRecordInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - schedule state doesn't allow operation
	case CodeGroupEmpty,
		CodeScheduleSlotEmpty,
		CodeScheduleNothingToUndo,
		CodeScheduleNothingToRedo:
		return codes.FailedPrecondition

	// AlreadyExists - the requested slots or group are taken
	case CodeScheduleConflict, CodeGroupAlreadyPlaced:
		return codes.AlreadyExists

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	// DataLoss - store and ledger disagree
	case CodeScheduleInconsistent:
		return codes.DataLoss

	default:
		return codes.Internal
	}
}
