package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/assignment"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/command"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
	"github.com/louisbranch/timetable/internal/services/timetable/i18n"
	"go.uber.org/zap"
)

// Record is the portable form of a schedule. Entries follow the order in
// which groups were placed. History is not part of a record.
type Record struct {
	Metadata RecordMetadata `json:"metadata"`
	Entries  []RecordEntry  `json:"entries"`
}

// RecordMetadata describes an export.
type RecordMetadata struct {
	ID           string    `json:"id"`
	ExportedAt   time.Time `json:"exported_at"`
	SubjectCount int       `json:"subject_count"`
	TotalCredits int       `json:"total_credits"`
}

// RecordEntry is one placed group.
type RecordEntry struct {
	Subject  RecordSubject   `json:"subject"`
	Group    string          `json:"group"`
	Sessions []RecordSession `json:"sessions"`
}

// RecordSubject mirrors catalog.Subject.
type RecordSubject struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}

// RecordSession mirrors catalog.Session.
type RecordSession struct {
	Day        timeslot.Day        `json:"day"`
	Start      string              `json:"start"`
	End        string              `json:"end"`
	Kind       catalog.SessionKind `json:"kind"`
	Instructor string              `json:"instructor,omitempty"`
	Room       string              `json:"room,omitempty"`
}

// Export captures the current schedule, one entry per placed group with its
// distinct sessions in chronological order.
func (s *Schedule) Export() (Record, error) {
	recordID, err := s.newID()
	if err != nil {
		return Record{}, fmt.Errorf("generate record id: %w", err)
	}

	byGroup := make(map[catalog.GroupKey][]assignment.Assignment)
	for _, a := range s.store.Assignments() {
		byGroup[a.Group()] = append(byGroup[a.Group()], a)
	}

	groups := s.store.Groups()
	rec := Record{
		Metadata: RecordMetadata{
			ID:           recordID,
			ExportedAt:   s.now().UTC(),
			SubjectCount: s.store.SubjectCount(),
			TotalCredits: s.store.TotalCredits(),
		},
		Entries: make([]RecordEntry, 0, len(groups)),
	}
	for _, group := range groups {
		assignments := byGroup[group]
		entry := RecordEntry{Group: group.GroupName, Sessions: []RecordSession{}}
		entry.Subject = RecordSubject{Code: group.SubjectCode, Name: group.SubjectCode}
		seen := make(map[catalog.Session]bool)
		for _, a := range assignments {
			entry.Subject = RecordSubject{Code: a.Subject.Code, Name: a.Subject.Name, Credits: a.Subject.Credits}
			if seen[a.Session] {
				continue
			}
			seen[a.Session] = true
			entry.Sessions = append(entry.Sessions, RecordSession{
				Day:        a.Session.Day,
				Start:      a.Session.Start,
				End:        a.Session.End,
				Kind:       a.Session.Kind,
				Instructor: a.Session.Instructor,
				Room:       a.Session.Room,
			})
		}
		rec.Entries = append(rec.Entries, entry)
	}
	return rec, nil
}

// EntryError is an import entry that could not be placed.
type EntryError struct {
	SubjectCode string              `json:"subject_code"`
	GroupName   string              `json:"group_name"`
	Code        platformerrors.Code `json:"code"`
	Message     string              `json:"message"`
}

// ImportSummary reports a partial-success import.
type ImportSummary struct {
	Imported     int          `json:"imported"`
	Errors       []EntryError `json:"errors"`
	TotalCredits int          `json:"total_credits"`
	Message      string       `json:"message"`
}

// OK reports whether at least one entry was placed.
func (s ImportSummary) OK() bool {
	return s.Imported > 0
}

// Import replaces the schedule with rec. The current schedule and history
// are cleared first, then each entry is added by subject code and group
// name, re-resolving sessions from the catalog. Entries that fail are
// collected; only catalog I/O failures abort the import.
func (s *Schedule) Import(ctx context.Context, rec Record) (ImportSummary, error) {
	s.store.Clear()
	s.history.Reset()

	summary := ImportSummary{Errors: []EntryError{}}
	for _, entry := range rec.Entries {
		if entry.Subject.Code == "" || entry.Group == "" {
			summary.Errors = append(summary.Errors, s.entryError(entry, platformerrors.WithMetadata(
				platformerrors.CodeImportRecordInvalid,
				"entry is missing subject code or group",
				map[string]string{"Subject": entry.Subject.Code, "Group": entry.Group},
			)))
			continue
		}

		cmd, err := s.command(command.KindAdd, entry.Subject.Code, entry.Group)
		if err != nil {
			return summary, err
		}
		res, err := s.executor.Execute(ctx, cmd)
		if err != nil {
			s.logger.Error("import aborted", zap.Stringer("command", cmd), zap.Error(err))
			return summary, fmt.Errorf("import %s: %w", cmd, err)
		}
		if !res.OK() {
			summary.Errors = append(summary.Errors, EntryError{
				SubjectCode: entry.Subject.Code,
				GroupName:   entry.Group,
				Code:        res.Failure.Code,
				Message:     res.Failure.Message,
			})
			continue
		}
		summary.Imported++
	}

	summary.TotalCredits = s.store.TotalCredits()
	summary.Message = i18n.Printer(s.locale).Sprintf(i18n.ImportSummaryKey, summary.Imported, len(summary.Errors))
	s.logger.Info("schedule imported",
		zap.Int("imported", summary.Imported),
		zap.Int("failed", len(summary.Errors)),
		zap.Int("total_credits", summary.TotalCredits),
	)
	s.notify(ChangeImported, "", "")
	return summary, nil
}

func (s *Schedule) entryError(entry RecordEntry, err *platformerrors.Error) EntryError {
	return EntryError{
		SubjectCode: entry.Subject.Code,
		GroupName:   entry.Group,
		Code:        err.Code,
		Message:     platformerrors.UserMessage(err, s.locale),
	}
}

// EncodeRecord writes rec as indented JSON.
func EncodeRecord(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encode schedule record: %w", err)
	}
	return nil
}

// DecodeRecord reads a JSON record. Malformed input, including unknown days,
// fails with IMPORT_RECORD_INVALID.
func DecodeRecord(r io.Reader) (Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return Record{}, platformerrors.Wrap(platformerrors.CodeImportRecordInvalid, "decode schedule record", err)
	}
	return rec, nil
}
