package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown               = "UNKNOWN"
	CodeNotFound              = "NOT_FOUND"
	CodeGroupEmpty            = "GROUP_EMPTY"
	CodeTimeFormatInvalid     = "TIME_FORMAT_INVALID"
	CodeDayInvalid            = "DAY_INVALID"
	CodeSessionKindInvalid    = "SESSION_KIND_INVALID"
	CodeScheduleConflict      = "SCHEDULE_CONFLICT"
	CodeGroupAlreadyPlaced    = "GROUP_ALREADY_PLACED"
	CodeScheduleSlotEmpty     = "SCHEDULE_SLOT_EMPTY"
	CodeScheduleNothingToUndo = "SCHEDULE_NOTHING_TO_UNDO"
	CodeScheduleNothingToRedo = "SCHEDULE_NOTHING_TO_REDO"
	CodeScheduleInconsistent  = "SCHEDULE_INCONSISTENT"
	CodeImportRecordInvalid   = "IMPORT_RECORD_INVALID"
)

var enUSMessages = map[Code]string{
	CodeUnknown:               "An unexpected error occurred",
	CodeNotFound:              "{{if .Group}}Group {{.Group}} of subject {{.Subject}} was not found{{else}}Subject {{.Subject}} was not found{{end}}",
	CodeGroupEmpty:            "Group {{.Group}} has no scheduled sessions",
	CodeTimeFormatInvalid:     "Invalid time {{.Value}}, use HH:MM",
	CodeDayInvalid:            "Invalid day of the week: {{.Value}}",
	CodeSessionKindInvalid:    "Invalid session type: {{.Value}}",
	CodeScheduleConflict:      "Schedule conflicts detected for {{.Subject}} group {{.Group}}",
	CodeGroupAlreadyPlaced:    "Group {{.Group}} of subject {{.Subject}} is already in the schedule",
	CodeScheduleSlotEmpty:     "Nothing is scheduled on {{.Day}} at {{.Slot}}",
	CodeScheduleNothingToUndo: "There are no actions to undo",
	CodeScheduleNothingToRedo: "There are no actions to redo",
	CodeScheduleInconsistent:  "The schedule is in an inconsistent state",
	CodeImportRecordInvalid:   "The schedule file could not be read",
}
