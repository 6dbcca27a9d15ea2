package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
)

func TestCatalogRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewCatalog()
	if err := c.PutSubject(ctx, catalog.Subject{Code: "CS101", Name: "Programming I", Credits: 3}); err != nil {
		t.Fatalf("put subject: %v", err)
	}
	sessions := []catalog.Session{{Day: timeslot.Monday, Start: "08:00", End: "10:00", Kind: catalog.KindTheory}}
	if err := c.PutGroup(ctx, catalog.Group{SubjectCode: "CS101", Name: "A", Sessions: sessions}); err != nil {
		t.Fatalf("put group: %v", err)
	}
	if err := c.PutGroup(ctx, catalog.Group{SubjectCode: "CS101", Name: "B"}); err != nil {
		t.Fatalf("put group: %v", err)
	}

	got, err := c.GetGroupSessions(ctx, "CS101", "A")
	if err != nil || len(got) != 1 {
		t.Fatalf("sessions = %v, %v", got, err)
	}
	got[0].Room = "mutated"
	again, _ := c.GetGroupSessions(ctx, "CS101", "A")
	if again[0].Room != "" {
		t.Fatal("returned sessions alias catalog storage")
	}

	groups, err := c.ListGroups(ctx, "CS101")
	if err != nil || len(groups) != 2 || groups[0].Name != "A" || groups[1].Name != "B" {
		t.Fatalf("groups = %+v, %v", groups, err)
	}

	if err := c.PutGroup(ctx, catalog.Group{SubjectCode: "CS101", Name: "A"}); err != nil {
		t.Fatalf("replace group: %v", err)
	}
	replaced, _ := c.GetGroupSessions(ctx, "CS101", "A")
	if len(replaced) != 0 {
		t.Fatalf("replaced sessions = %v", replaced)
	}
}

func TestCatalogNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewCatalog()
	if _, err := c.GetSubject(ctx, "X"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("get subject: %v", err)
	}
	if _, err := c.GetGroupSessions(ctx, "X", "A"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("get sessions: %v", err)
	}
	if _, err := c.ListGroups(ctx, "X"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("list groups: %v", err)
	}
	if err := c.PutGroup(ctx, catalog.Group{SubjectCode: "X", Name: "A"}); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("put group without subject: %v", err)
	}
}

func TestCatalogHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewCatalog().GetSubject(ctx, "CS101"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSubjectsSorted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewCatalog()
	for _, code := range []string{"MA101", "CS101", "PH201"} {
		if err := c.PutSubject(ctx, catalog.Subject{Code: code}); err != nil {
			t.Fatal(err)
		}
	}
	list, err := c.Subjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if list[0].Code != "CS101" || list[2].Code != "PH201" {
		t.Fatalf("subjects = %+v", list)
	}
}
