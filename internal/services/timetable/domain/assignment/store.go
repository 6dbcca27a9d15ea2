// Package assignment owns the mutable timetable: which group holds each
// hourly slot, and the per-subject ledger that keeps the credit total
// counting every distinct subject exactly once.
//
// The store does not check for conflicts. Callers gate Place with
// conflict.Find; placing into an occupied slot overwrites it.
package assignment

import (
	"fmt"
	"sort"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/conflict"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
)

// Direction is the sign of a ledger change.
type Direction int

const (
	Decrement Direction = -1
	Increment Direction = 1
)

// Assignment records that a group session occupies one slot.
type Assignment struct {
	Subject   catalog.Subject
	GroupName string
	Session   catalog.Session
	Key       timeslot.Key
}

// Group returns the identity of the owning group.
func (a Assignment) Group() catalog.GroupKey {
	return catalog.GroupKey{SubjectCode: a.Subject.Code, GroupName: a.GroupName}
}

type ledgerEntry struct {
	groups  int
	credits int
}

// Store is the slot map plus credit ledger. The zero value is not usable;
// call NewStore. A Store is not safe for concurrent use.
type Store struct {
	slots  map[timeslot.Key]Assignment
	ledger map[string]ledgerEntry
	total  int
	order  []catalog.GroupKey
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		slots:  make(map[timeslot.Key]Assignment),
		ledger: make(map[string]ledgerEntry),
	}
}

// Place inserts one assignment per slot of every session. All slots are
// derived before anything is written, so a malformed time leaves the store
// untouched.
func (s *Store) Place(subject catalog.Subject, groupName string, sessions []catalog.Session) ([]Assignment, error) {
	var placed []Assignment
	for _, session := range sessions {
		keys, err := session.Slots()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			placed = append(placed, Assignment{Subject: subject, GroupName: groupName, Session: session, Key: key})
		}
	}

	for _, a := range placed {
		s.slots[a.Key] = a
	}
	group := catalog.GroupKey{SubjectCode: subject.Code, GroupName: groupName}
	if !s.HasGroup(group) {
		s.order = append(s.order, group)
	}
	return placed, nil
}

// Remove deletes every assignment of the group and returns them in
// chronological order.
func (s *Store) Remove(subjectCode, groupName string) []Assignment {
	group := catalog.GroupKey{SubjectCode: subjectCode, GroupName: groupName}
	var removed []Assignment
	for key, a := range s.slots {
		if a.Group() == group {
			removed = append(removed, a)
			delete(s.slots, key)
		}
	}
	sortAssignments(removed)
	for i, g := range s.order {
		if g == group {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return removed
}

// CreditDelta moves the subject's group count by one. The subject's credits
// join the total on 0->1 and leave it on 1->0, using the value recorded when
// it joined.
func (s *Store) CreditDelta(subject catalog.Subject, direction Direction) error {
	entry := s.ledger[subject.Code]
	switch direction {
	case Increment:
		if entry.groups == 0 {
			entry.credits = subject.Credits
			s.total += subject.Credits
		}
		entry.groups++
		s.ledger[subject.Code] = entry
	case Decrement:
		if entry.groups == 0 {
			return platformerrors.WithMetadata(
				platformerrors.CodeScheduleInconsistent,
				fmt.Sprintf("credit ledger for %s is already empty", subject.Code),
				map[string]string{"Subject": subject.Code},
			)
		}
		entry.groups--
		if entry.groups == 0 {
			s.total -= entry.credits
			delete(s.ledger, subject.Code)
			return nil
		}
		s.ledger[subject.Code] = entry
	default:
		return platformerrors.New(platformerrors.CodeScheduleInconsistent,
			fmt.Sprintf("invalid ledger direction %d", direction))
	}
	return nil
}

// OccupantAt implements conflict.Occupancy.
func (s *Store) OccupantAt(key timeslot.Key) (conflict.Occupant, bool) {
	a, ok := s.slots[key]
	if !ok {
		return conflict.Occupant{}, false
	}
	return conflict.Occupant{
		SubjectCode: a.Subject.Code,
		SubjectName: a.Subject.Name,
		GroupName:   a.GroupName,
	}, true
}

// At returns the assignment occupying key.
func (s *Store) At(key timeslot.Key) (Assignment, bool) {
	a, ok := s.slots[key]
	return a, ok
}

// Snapshot returns a copy of the slot map.
func (s *Store) Snapshot() map[timeslot.Key]Assignment {
	out := make(map[timeslot.Key]Assignment, len(s.slots))
	for k, v := range s.slots {
		out[k] = v
	}
	return out
}

// Assignments returns every assignment in chronological slot order.
func (s *Store) Assignments() []Assignment {
	out := make([]Assignment, 0, len(s.slots))
	for _, a := range s.slots {
		out = append(out, a)
	}
	sortAssignments(out)
	return out
}

// Groups returns the placed groups in placement order.
func (s *Store) Groups() []catalog.GroupKey {
	return append([]catalog.GroupKey(nil), s.order...)
}

// TotalCredits is the sum of credits of every distinct placed subject.
func (s *Store) TotalCredits() int { return s.total }

// SubjectCount is the number of distinct subjects in the ledger.
func (s *Store) SubjectCount() int { return len(s.ledger) }

// LedgerCount reports how many groups of the subject are placed.
func (s *Store) LedgerCount(subjectCode string) int { return s.ledger[subjectCode].groups }

// Len is the number of occupied slots.
func (s *Store) Len() int { return len(s.slots) }

// Clear drops every assignment and resets the ledger.
func (s *Store) Clear() {
	s.slots = make(map[timeslot.Key]Assignment)
	s.ledger = make(map[string]ledgerEntry)
	s.total = 0
	s.order = nil
}

// HasGroup reports whether the group is placed.
func (s *Store) HasGroup(group catalog.GroupKey) bool {
	for _, g := range s.order {
		if g == group {
			return true
		}
	}
	return false
}

func sortAssignments(list []Assignment) {
	sort.Slice(list, func(i, j int) bool { return list[i].Key.Less(list[j].Key) })
}
