package filter

import (
	"reflect"
	"testing"
)

func TestParseSubjectFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter string
		clause string
		params []any
	}{
		{name: "empty", filter: "  "},
		{name: "code", filter: `code = "CS101"`, clause: "code = ?", params: []any{"CS101"}},
		{name: "credits", filter: `credits >= 3`, clause: "credits >= ?", params: []any{int64(3)}},
		{
			name:   "and",
			filter: `credits > 2 AND code != "MA101"`,
			clause: "(credits > ? AND code != ?)",
			params: []any{int64(2), "MA101"},
		},
		{
			name:   "or",
			filter: `code = "CS101" OR code = "MA101"`,
			clause: "(code = ? OR code = ?)",
			params: []any{"CS101", "MA101"},
		},
		{
			name:   "wildcard",
			filter: `name = "Calc*"`,
			clause: `name LIKE ? ESCAPE '\'`,
			params: []any{"Calc%"},
		},
		{
			name:   "negated wildcard",
			filter: `name != "*100%*"`,
			clause: `name NOT LIKE ? ESCAPE '\'`,
			params: []any{`%100\%%`},
		},
	}
	for _, tt := range tests {
		got, err := ParseSubjectFilter(tt.filter)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got.Clause != tt.clause {
			t.Fatalf("%s: clause = %q, want %q", tt.name, got.Clause, tt.clause)
		}
		if len(tt.params) == 0 && len(got.Params) == 0 {
			continue
		}
		if !reflect.DeepEqual(got.Params, tt.params) {
			t.Fatalf("%s: params = %#v, want %#v", tt.name, got.Params, tt.params)
		}
	}
}

func TestParseSubjectFilterRejectsUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := ParseSubjectFilter(`room = "A1"`); err == nil {
		t.Fatal("expected error for undeclared field")
	}
	if _, err := ParseSubjectFilter(`code = `); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestEmptyCondition(t *testing.T) {
	t.Parallel()

	cond, err := ParseSubjectFilter("")
	if err != nil || !cond.Empty() {
		t.Fatalf("cond = %+v, %v", cond, err)
	}
}
