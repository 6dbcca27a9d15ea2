package domain

import (
	"github.com/louisbranch/timetable/internal/services/timetable/domain/assignment"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/command"
)

// CommandResult is the tool output shared by every schedule mutation.
type CommandResult struct {
	OK           bool              `json:"ok" jsonschema:"true when the command was applied"`
	Message      string            `json:"message" jsonschema:"localized outcome message"`
	Code         string            `json:"code,omitempty" jsonschema:"failure code when ok is false"`
	Warning      bool              `json:"warning,omitempty" jsonschema:"true when the failure is advisory, such as a group without sessions"`
	Conflicts    []ConflictEntry   `json:"conflicts,omitempty" jsonschema:"occupied slots that block the group"`
	Assignments  []AssignmentEntry `json:"assignments,omitempty" jsonschema:"slots placed or freed by the command"`
	CreditsDelta int               `json:"credits_delta" jsonschema:"change in total credits"`
	TotalCredits int               `json:"total_credits" jsonschema:"total credits after the command"`
	CanUndo      bool              `json:"can_undo" jsonschema:"true when schedule_undo has a command to revert"`
	CanRedo      bool              `json:"can_redo" jsonschema:"true when schedule_redo has a command to re-apply"`
}

// ConflictEntry describes one occupied slot.
type ConflictEntry struct {
	Day         string `json:"day" jsonschema:"weekday (Mon..Fri)"`
	Slot        string `json:"slot" jsonschema:"hour slot label (HH:00)"`
	SubjectCode string `json:"subject_code" jsonschema:"occupying subject code"`
	SubjectName string `json:"subject_name" jsonschema:"occupying subject name"`
	GroupName   string `json:"group_name" jsonschema:"occupying group name"`
}

// AssignmentEntry describes one occupied slot and the session covering it.
type AssignmentEntry struct {
	Day         string `json:"day" jsonschema:"weekday (Mon..Fri)"`
	Slot        string `json:"slot" jsonschema:"hour slot label (HH:00)"`
	SubjectCode string `json:"subject_code" jsonschema:"subject code"`
	SubjectName string `json:"subject_name" jsonschema:"subject name"`
	GroupName   string `json:"group_name" jsonschema:"group name"`
	Kind        string `json:"kind" jsonschema:"session kind (THEORY, PRACTICE, LAB, SEMINAR, WORKSHOP)"`
	Start       string `json:"start" jsonschema:"session start time (HH:MM)"`
	End         string `json:"end" jsonschema:"session end time (HH:MM)"`
	Instructor  string `json:"instructor,omitempty" jsonschema:"session instructor"`
	Room        string `json:"room,omitempty" jsonschema:"session room"`
}

func commandResult(result command.Result, totalCredits int) CommandResult {
	if result.Success != nil {
		s := result.Success
		return CommandResult{
			OK:           true,
			Message:      s.Message,
			Assignments:  assignmentEntries(s.Assignments),
			CreditsDelta: s.CreditsDelta,
			TotalCredits: s.TotalCredits,
		}
	}

	out := CommandResult{TotalCredits: totalCredits}
	if f := result.Failure; f != nil {
		out.Message = f.Message
		out.Code = string(f.Code)
		out.Warning = f.Warning
		for _, c := range f.Conflicts {
			out.Conflicts = append(out.Conflicts, ConflictEntry{
				Day:         c.Day().String(),
				Slot:        c.Slot(),
				SubjectCode: c.Occupant.SubjectCode,
				SubjectName: c.Occupant.SubjectName,
				GroupName:   c.Occupant.GroupName,
			})
		}
	}
	return out
}

func assignmentEntries(list []assignment.Assignment) []AssignmentEntry {
	if len(list) == 0 {
		return nil
	}
	entries := make([]AssignmentEntry, 0, len(list))
	for _, a := range list {
		entries = append(entries, AssignmentEntry{
			Day:         a.Key.Day.String(),
			Slot:        a.Key.Label(),
			SubjectCode: a.Subject.Code,
			SubjectName: a.Subject.Name,
			GroupName:   a.GroupName,
			Kind:        string(a.Session.Kind),
			Start:       a.Session.Start,
			End:         a.Session.End,
			Instructor:  a.Session.Instructor,
			Room:        a.Session.Room,
		})
	}
	return entries
}
