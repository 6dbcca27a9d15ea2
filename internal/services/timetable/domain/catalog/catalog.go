// Package catalog defines the subject, group and session records the
// schedule engine reads, and the read-only contract used to resolve them.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
)

// ErrNotFound is returned by readers when a subject or group does not exist.
var ErrNotFound = errors.New("record not found")

// Reader resolves catalog data for the engine. Implementations must return
// ErrNotFound (possibly wrapped) for unknown subjects and groups.
type Reader interface {
	GetSubject(ctx context.Context, code string) (Subject, error)
	GetGroupSessions(ctx context.Context, subjectCode, groupName string) ([]Session, error)
}

// GroupLister lists the groups offered for a subject.
type GroupLister interface {
	ListGroups(ctx context.Context, subjectCode string) ([]Group, error)
}

// Browser pages through subjects and lists their groups.
type Browser interface {
	GroupLister
	ListSubjects(ctx context.Context, filter string, pageSize int, pageToken string) (SubjectPage, error)
}

// SubjectPage is one page of subjects ordered by code. An empty token means
// there are no more pages.
type SubjectPage struct {
	Subjects      []Subject
	NextPageToken string
}

// Subject is a course in the catalog.
type Subject struct {
	Code    string
	Name    string
	Credits int
}

// SessionKind classifies a session.
type SessionKind string

const (
	KindUnspecified SessionKind = ""
	KindTheory      SessionKind = "THEORY"
	KindPractice    SessionKind = "PRACTICE"
	KindLab         SessionKind = "LAB"
	KindSeminar     SessionKind = "SEMINAR"
	KindWorkshop    SessionKind = "WORKSHOP"
)

// Kinds lists every session kind in display order.
var Kinds = []SessionKind{KindTheory, KindPractice, KindLab, KindSeminar, KindWorkshop}

var kindAliases = map[string]SessionKind{
	"theory": KindTheory, "teorica": KindTheory, "teórica": KindTheory,
	"practice": KindPractice, "practica": KindPractice, "práctica": KindPractice,
	"lab": KindLab, "laboratory": KindLab, "laboratorio": KindLab,
	"seminar": KindSeminar, "seminario": KindSeminar,
	"workshop": KindWorkshop, "taller": KindWorkshop,
}

// ParseSessionKind accepts English and Spanish kind names in any case.
func ParseSessionKind(value string) (SessionKind, error) {
	kind, ok := kindAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return KindUnspecified, platformerrors.WithMetadata(
			platformerrors.CodeSessionKindInvalid,
			fmt.Sprintf("invalid session kind %q", value),
			map[string]string{"Value": value},
		)
	}
	return kind, nil
}

// Session is one weekly meeting of a group. Start and End are kept as the
// catalog supplied them so malformed values surface when the engine uses them.
type Session struct {
	Day        timeslot.Day
	Start      string
	End        string
	Kind       SessionKind
	Instructor string
	Room       string
}

// Interval parses the session time range.
func (s Session) Interval() (timeslot.Interval, error) {
	return timeslot.ParseInterval(s.Start, s.End)
}

// Slots returns the hourly buckets the session occupies.
func (s Session) Slots() ([]timeslot.Key, error) {
	return timeslot.SlotsOf(s.Day, s.Start, s.End)
}

// Validate checks the session is well formed: known day and kind, parsable
// times, start before end.
func (s Session) Validate() error {
	if !s.Day.IsValid() {
		return platformerrors.WithMetadata(platformerrors.CodeDayInvalid,
			fmt.Sprintf("invalid day %s", s.Day), map[string]string{"Value": s.Day.String()})
	}
	if _, err := ParseSessionKind(string(s.Kind)); err != nil {
		return err
	}
	iv, err := s.Interval()
	if err != nil {
		return err
	}
	if iv.End <= iv.Start {
		return platformerrors.WithMetadata(platformerrors.CodeTimeFormatInvalid,
			fmt.Sprintf("session must start before it ends: %s", iv), map[string]string{"Value": iv.String()})
	}
	return nil
}

// GroupKey identifies a group.
type GroupKey struct {
	SubjectCode string
	GroupName   string
}

// String formats the key as "CS101/A".
func (k GroupKey) String() string {
	return k.SubjectCode + "/" + k.GroupName
}

// Group is a named offering of a subject.
type Group struct {
	SubjectCode string
	Name        string
	Capacity    int
	Sessions    []Session
}

// Key returns the group identity.
func (g Group) Key() GroupKey {
	return GroupKey{SubjectCode: g.SubjectCode, GroupName: g.Name}
}

// NotFoundError builds the domain error for a missing subject or group.
// An empty group name means the subject itself is missing.
func NotFoundError(subjectCode, groupName string) *platformerrors.Error {
	meta := map[string]string{"Subject": subjectCode}
	msg := fmt.Sprintf("subject %s not found", subjectCode)
	if groupName != "" {
		meta["Group"] = groupName
		msg = fmt.Sprintf("group %s of subject %s not found", groupName, subjectCode)
	}
	return platformerrors.WithMetadata(platformerrors.CodeNotFound, msg, meta)
}
