package catalog

import (
	"testing"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
)

func TestParseSessionKind(t *testing.T) {
	t.Parallel()

	tests := map[string]SessionKind{
		"THEORY":      KindTheory,
		"teorica":     KindTheory,
		"PRACTICA":    KindPractice,
		"Laboratorio": KindLab,
		"lab":         KindLab,
		"SEMINARIO":   KindSeminar,
		"taller":      KindWorkshop,
	}
	for in, want := range tests {
		got, err := ParseSessionKind(in)
		if err != nil {
			t.Fatalf("ParseSessionKind(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSessionKind(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseSessionKind("lecture"); !platformerrors.IsCode(err, platformerrors.CodeSessionKindInvalid) {
		t.Fatalf("expected SESSION_KIND_INVALID, got %v", err)
	}
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()

	valid := Session{Day: timeslot.Monday, Start: "08:00", End: "10:00", Kind: KindTheory}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid session: %v", err)
	}

	tests := []struct {
		name    string
		session Session
		code    platformerrors.Code
	}{
		{name: "no day", session: Session{Start: "08:00", End: "10:00", Kind: KindLab}, code: platformerrors.CodeDayInvalid},
		{name: "bad kind", session: Session{Day: timeslot.Friday, Start: "08:00", End: "10:00", Kind: "NAP"}, code: platformerrors.CodeSessionKindInvalid},
		{name: "bad time", session: Session{Day: timeslot.Friday, Start: "8h", End: "10:00", Kind: KindLab}, code: platformerrors.CodeTimeFormatInvalid},
		{name: "inverted", session: Session{Day: timeslot.Friday, Start: "10:00", End: "08:00", Kind: KindLab}, code: platformerrors.CodeTimeFormatInvalid},
	}
	for _, tt := range tests {
		err := tt.session.Validate()
		if !platformerrors.IsCode(err, tt.code) {
			t.Fatalf("%s: error = %v, want %s", tt.name, err, tt.code)
		}
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := NotFoundError("CS101", "")
	if err.Metadata["Subject"] != "CS101" || err.Metadata["Group"] != "" {
		t.Fatalf("metadata = %v", err.Metadata)
	}
	err = NotFoundError("CS101", "Z")
	if err.Metadata["Group"] != "Z" {
		t.Fatalf("metadata = %v", err.Metadata)
	}
	if err.Code != platformerrors.CodeNotFound {
		t.Fatalf("code = %s", err.Code)
	}
}

func TestGroupKey(t *testing.T) {
	t.Parallel()

	g := Group{SubjectCode: "CS101", Name: "A"}
	if g.Key().String() != "CS101/A" {
		t.Fatalf("key = %s", g.Key())
	}
}
