package view

import (
	"testing"

	"jlv/internal/model"
)

func TestFilterContains(t *testing.T) {
	f, err := NewFilter("message", "TIME", MethodContains)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Match(entry("info", "Timeout occurred")) {
		t.Fatal("contains must be case-insensitive")
	}
	if f.Match(entry("info", "all good")) {
		t.Fatal("no substring, no match")
	}
}

func TestFilterExact(t *testing.T) {
	f, err := NewFilter("level", "error", MethodExact)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Match(entry("error", "x")) {
		t.Fatal("exact level must match")
	}
	if f.Match(entry("err", "x")) {
		t.Fatal("prefix must not match exact")
	}
}

func TestFilterDottedPath(t *testing.T) {
	e := model.Entry{Message: "m", Data: map[string]any{
		"user": map[string]any{"name": "ada"},
	}}
	f, _ := NewFilter("user.name", "ada", MethodExact)
	if !f.Match(e) {
		t.Fatal("dotted path should resolve through data")
	}
	f, _ = NewFilter("user.missing", "x", MethodContains)
	if f.Match(e) {
		t.Fatal("unresolvable path is 'no value' and excludes the row")
	}
}

// A resolved value of 0, "" or false looks like "absent" and excludes the
// row regardless of method. Kept-as-is behavior; these tests pin it down.
func TestFilterFalsyValuesExclude(t *testing.T) {
	cases := map[string]any{
		"zero":  float64(0),
		"empty": "",
		"off":   false,
	}
	for field, val := range cases {
		e := model.Entry{Data: map[string]any{field: val}}
		f, _ := NewFilter(field, model.FormatValue(val), MethodExact)
		if f.Match(e) {
			t.Fatalf("falsy %s value must exclude the row", field)
		}
	}
}

func TestFilterNumericValue(t *testing.T) {
	e := model.Entry{Data: map[string]any{"status": float64(404)}}
	f, _ := NewFilter("status", "404", MethodExact)
	if !f.Match(e) {
		t.Fatal("numeric field should compare via its display form")
	}
}

func TestFilterExpr(t *testing.T) {
	f, err := NewFilter("", "latency > 100 && level == 'warn'", MethodExpr)
	if err != nil {
		t.Fatal(err)
	}
	slow := model.Entry{Level: "warn", Data: map[string]any{"latency": float64(250)}}
	fast := model.Entry{Level: "warn", Data: map[string]any{"latency": float64(3)}}
	if !f.Match(slow) {
		t.Fatal("expression should match slow warn entry")
	}
	if f.Match(fast) {
		t.Fatal("expression should reject fast entry")
	}
	// Evaluation errors (missing parameter) reject, never panic.
	if f.Match(model.Entry{Level: "warn"}) {
		t.Fatal("missing parameter should reject")
	}
}

func TestFilterExprCompileError(t *testing.T) {
	if _, err := NewFilter("", "level ==", MethodExpr); err == nil {
		t.Fatal("bad expression must fail at construction")
	}
}

func TestUserAndLevelFiltersAreANDed(t *testing.T) {
	entries := []model.Entry{
		{Level: "error", Message: "disk full", Data: map[string]any{"host": "a"}},
		{Level: "error", Message: "disk full", Data: map[string]any{"host": "b"}},
		{Level: "info", Message: "disk full", Data: map[string]any{"host": "a"}},
	}
	e := newTestEngine(t, entries, 10)
	f, _ := NewFilter("host", "a", MethodExact)
	if err := e.SetFilter(f); err != nil {
		t.Fatal(err)
	}
	if err := e.SetLevelFilter("error"); err != nil {
		t.Fatal(err)
	}
	proj := e.Projection()
	if len(proj) != 1 || proj[0].Level != "error" {
		t.Fatalf("AND semantics: got %d rows", len(proj))
	}
}
