package assignment

import (
	"reflect"
	"testing"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
)

var (
	cs101 = catalog.Subject{Code: "CS101", Name: "Programming I", Credits: 3}
	ma101 = catalog.Subject{Code: "MA101", Name: "Calculus", Credits: 4}
)

func mon(start, end string) catalog.Session {
	return catalog.Session{Day: timeslot.Monday, Start: start, End: end, Kind: catalog.KindTheory}
}

func TestPlaceAndRemove(t *testing.T) {
	t.Parallel()

	s := NewStore()
	placed, err := s.Place(cs101, "A", []catalog.Session{mon("08:00", "10:00")})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if len(placed) != 2 || s.Len() != 2 {
		t.Fatalf("placed %d, len %d, want 2", len(placed), s.Len())
	}
	occ, ok := s.OccupantAt(timeslot.Key{Day: timeslot.Monday, Hour: 9})
	if !ok || occ.SubjectName != "Programming I" || occ.GroupName != "A" {
		t.Fatalf("occupant = %+v, %v", occ, ok)
	}

	removed := s.Remove("CS101", "A")
	if len(removed) != 2 || removed[0].Key.Hour != 8 || removed[1].Key.Hour != 9 {
		t.Fatalf("removed = %+v", removed)
	}
	if s.Len() != 0 || len(s.Groups()) != 0 {
		t.Fatalf("store not empty after remove")
	}
	if len(s.Remove("CS101", "A")) != 0 {
		t.Fatal("second remove should delete nothing")
	}
}

func TestPlaceFormatErrorLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	s := NewStore()
	_, err := s.Place(cs101, "A", []catalog.Session{mon("08:00", "10:00"), mon("bad", "12:00")})
	if !platformerrors.IsCode(err, platformerrors.CodeTimeFormatInvalid) {
		t.Fatalf("expected TIME_FORMAT_INVALID, got %v", err)
	}
	if s.Len() != 0 || len(s.Groups()) != 0 {
		t.Fatalf("store mutated on format error")
	}
}

func TestPlaceOverwritesOccupiedSlot(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if _, err := s.Place(cs101, "A", []catalog.Session{mon("08:00", "09:00")}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if _, err := s.Place(ma101, "1", []catalog.Session{mon("08:00", "09:00")}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	a, ok := s.At(timeslot.Key{Day: timeslot.Monday, Hour: 8})
	if !ok || a.Subject.Code != "MA101" {
		t.Fatalf("slot holder = %+v", a)
	}
}

func TestCreditDeltaCountsSubjectOnce(t *testing.T) {
	t.Parallel()

	s := NewStore()
	steps := []struct {
		dir   Direction
		total int
		count int
	}{
		{dir: Increment, total: 3, count: 1},
		{dir: Increment, total: 3, count: 2},
		{dir: Decrement, total: 3, count: 1},
		{dir: Decrement, total: 0, count: 0},
	}
	for i, step := range steps {
		if err := s.CreditDelta(cs101, step.dir); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if s.TotalCredits() != step.total || s.LedgerCount("CS101") != step.count {
			t.Fatalf("step %d: total %d count %d, want %d %d", i, s.TotalCredits(), s.LedgerCount("CS101"), step.total, step.count)
		}
	}

	if err := s.CreditDelta(cs101, Decrement); !platformerrors.IsCode(err, platformerrors.CodeScheduleInconsistent) {
		t.Fatalf("expected SCHEDULE_INCONSISTENT, got %v", err)
	}
	if err := s.CreditDelta(cs101, Direction(2)); !platformerrors.IsCode(err, platformerrors.CodeScheduleInconsistent) {
		t.Fatalf("expected SCHEDULE_INCONSISTENT, got %v", err)
	}
}

func TestCreditDeltaSubtractsRecordedCredits(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if err := s.CreditDelta(cs101, Increment); err != nil {
		t.Fatal(err)
	}
	changed := cs101
	changed.Credits = 5
	if err := s.CreditDelta(changed, Decrement); err != nil {
		t.Fatal(err)
	}
	if s.TotalCredits() != 0 {
		t.Fatalf("total = %d, want 0", s.TotalCredits())
	}
}

func TestGroupsKeepPlacementOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Place(ma101, "1", []catalog.Session{mon("14:00", "15:00")})
	s.Place(cs101, "A", []catalog.Session{mon("08:00", "09:00")})
	s.Place(ma101, "1", []catalog.Session{mon("14:00", "15:00")})

	want := []catalog.GroupKey{{SubjectCode: "MA101", GroupName: "1"}, {SubjectCode: "CS101", GroupName: "A"}}
	if got := s.Groups(); !reflect.DeepEqual(got, want) {
		t.Fatalf("groups = %v, want %v", got, want)
	}
	list := s.Assignments()
	if list[0].Subject.Code != "CS101" {
		t.Fatalf("assignments not chronological: %+v", list)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Place(cs101, "A", []catalog.Session{mon("08:00", "09:00")})
	snap := s.Snapshot()
	delete(snap, timeslot.Key{Day: timeslot.Monday, Hour: 8})
	if s.Len() != 1 {
		t.Fatal("snapshot aliases the store")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Place(cs101, "A", []catalog.Session{mon("08:00", "09:00")})
	s.CreditDelta(cs101, Increment)
	s.Clear()
	if s.Len() != 0 || s.TotalCredits() != 0 || s.SubjectCount() != 0 || len(s.Groups()) != 0 {
		t.Fatal("clear left state behind")
	}
}
