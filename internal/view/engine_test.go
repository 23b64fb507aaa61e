package view

import (
	"context"
	"testing"

	"jlv/internal/ingest"
	"jlv/internal/model"
	"jlv/internal/store"
)

type sliceProvider struct {
	entries []model.Entry
	dropped int
}

func (p sliceProvider) GetLines(context.Context) (ingest.Result, error) {
	return ingest.Result{Entries: p.entries, Dropped: p.dropped}, nil
}

func newTestStore(t *testing.T, entries []model.Entry) *store.Store {
	t.Helper()
	s := store.New()
	if err := s.Load(context.Background(), sliceProvider{entries: entries}); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func newTestEngine(t *testing.T, entries []model.Entry, pageHeight int) *Engine {
	t.Helper()
	e := NewEngine(pageHeight)
	e.Attach(newTestStore(t, entries))
	return e
}

func entry(level, msg string) model.Entry {
	return model.Entry{Timestamp: "2025-01-01T00:00:00Z", Level: level, Message: msg}
}

func TestRejectsBeforeAttach(t *testing.T) {
	e := NewEngine(10)
	if err := e.SetLevelFilter("error"); err != ErrNotLoaded {
		t.Fatalf("SetLevelFilter: %v", err)
	}
	if err := e.SetSort("message"); err != ErrNotLoaded {
		t.Fatalf("SetSort: %v", err)
	}
	if _, err := e.Search("x"); err != ErrNotLoaded {
		t.Fatalf("Search: %v", err)
	}
	e.MoveDown()
	if e.Cursor() != 0 {
		t.Fatalf("cursor moved before load")
	}
}

func TestLevelFilterScenario(t *testing.T) {
	entries := []model.Entry{
		entry("info", "a"), entry("error", "b"), entry("info", "c"),
		entry("warn", "d"), entry("error", "e"),
	}
	e := newTestEngine(t, entries, 10)
	if err := e.SetLevelFilter("error"); err != nil {
		t.Fatal(err)
	}
	proj := e.Projection()
	if len(proj) != 2 {
		t.Fatalf("projection length: %d", len(proj))
	}
	if proj[0].Message != "b" || proj[1].Message != "e" {
		t.Fatalf("wrong entries or order: %q %q", proj[0].Message, proj[1].Message)
	}
}

func TestProjectionLengthAndEquality(t *testing.T) {
	entries := []model.Entry{entry("info", "a"), entry("error", "b"), entry("info", "c")}
	e := newTestEngine(t, entries, 10)
	if got := len(e.Projection()); got != 3 {
		t.Fatalf("no filters: projection length %d, store count 3", got)
	}
	if err := e.SetLevelFilter("info"); err != nil {
		t.Fatal(err)
	}
	if got := len(e.Projection()); got >= 3 {
		t.Fatalf("filtered projection should be shorter, got %d", got)
	}
	if err := e.ClearFilters(); err != nil {
		t.Fatal(err)
	}
	if got := len(e.Projection()); got != 3 {
		t.Fatalf("cleared filters: projection length %d", got)
	}
}

func TestFilteringIsIdempotent(t *testing.T) {
	entries := []model.Entry{
		entry("info", "a"), entry("error", "b"), entry("info", "c"), entry("error", "d"),
	}
	e := newTestEngine(t, entries, 10)
	if err := e.SetLevelFilter("error"); err != nil {
		t.Fatal(err)
	}
	first := e.Projection()
	// Reapplying the same predicate set must yield the same member set.
	if err := e.SetLevelFilter("error"); err != nil {
		t.Fatal(err)
	}
	second := e.Projection()
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Message != second[i].Message {
			t.Fatalf("row %d differs: %q vs %q", i, first[i].Message, second[i].Message)
		}
	}
}

func TestSortAscendingAndReversal(t *testing.T) {
	entries := []model.Entry{entry("info", "b"), entry("info", "a"), entry("info", "c")}
	e := newTestEngine(t, entries, 10)
	if err := e.SetSort("message"); err != nil {
		t.Fatal(err)
	}
	got := messages(e.Projection())
	if got != "abc" {
		t.Fatalf("ascending: %s", got)
	}
	if err := e.SetSort("-message"); err != nil {
		t.Fatal(err)
	}
	if got := messages(e.Projection()); got != "cba" {
		t.Fatalf("descending: %s", got)
	}
}

// Descending must be reverse-after-ascending-sort, so ties come out in
// reversed original order.
func TestDescendingTiePolicy(t *testing.T) {
	entries := []model.Entry{
		{Level: "info", Message: "first", Data: map[string]any{"n": float64(1)}},
		{Level: "info", Message: "second", Data: map[string]any{"n": float64(1)}},
		{Level: "info", Message: "third", Data: map[string]any{"n": float64(2)}},
	}
	e := newTestEngine(t, entries, 10)
	if err := e.SetSort("n"); err != nil {
		t.Fatal(err)
	}
	asc := e.Projection()
	if asc[0].Message != "first" || asc[1].Message != "second" {
		t.Fatalf("ascending ties must keep original order: %q %q", asc[0].Message, asc[1].Message)
	}
	if err := e.SetSort("-n"); err != nil {
		t.Fatal(err)
	}
	desc := e.Projection()
	if desc[0].Message != "third" || desc[1].Message != "second" || desc[2].Message != "first" {
		t.Fatalf("descending must be exact reverse of ascending: %q %q %q",
			desc[0].Message, desc[1].Message, desc[2].Message)
	}
}

func TestSortMissingFieldSortsFirst(t *testing.T) {
	entries := []model.Entry{
		{Message: "has", Data: map[string]any{"k": "z"}},
		{Message: "missing"},
	}
	e := newTestEngine(t, entries, 10)
	if err := e.SetSort("k"); err != nil {
		t.Fatal(err)
	}
	proj := e.Projection()
	if proj[0].Message != "missing" {
		t.Fatalf("missing value should sort before present: got %q first", proj[0].Message)
	}
}

func TestFilterAndSortResetViewportToTop(t *testing.T) {
	entries := make([]model.Entry, 50)
	for i := range entries {
		entries[i] = entry("info", "m")
	}
	e := newTestEngine(t, entries, 10)
	e.MoveToLine(40)
	if e.Cursor() != 40 {
		t.Fatalf("cursor: %d", e.Cursor())
	}
	if err := e.SetSort("message"); err != nil {
		t.Fatal(err)
	}
	if e.Cursor() != 0 || e.First() != 0 {
		t.Fatalf("sort change must reset to top: cursor=%d first=%d", e.Cursor(), e.First())
	}
	e.MoveToLine(30)
	if err := e.SetLevelFilter("info"); err != nil {
		t.Fatal(err)
	}
	if e.Cursor() != 0 || e.First() != 0 {
		t.Fatalf("filter change must reset to top: cursor=%d first=%d", e.Cursor(), e.First())
	}
}

func TestProjectionCacheReuse(t *testing.T) {
	entries := []model.Entry{entry("info", "a"), entry("info", "b")}
	e := newTestEngine(t, entries, 10)
	p1 := e.Projection()
	p2 := e.Projection()
	if &p1[0] != &p2[0] {
		t.Fatalf("projection must be cached between invalidations")
	}
	if err := e.SetSort("message"); err != nil {
		t.Fatal(err)
	}
	_ = e.Projection() // rebuilt, no panic
}

func TestAttachResetsEverything(t *testing.T) {
	e := newTestEngine(t, []model.Entry{entry("info", "a"), entry("error", "b")}, 10)
	if err := e.SetLevelFilter("error"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Search("b"); err != nil {
		t.Fatal(err)
	}
	e.Attach(newTestStore(t, []model.Entry{entry("warn", "x")}))
	if e.HasFilters() {
		t.Fatal("filters must reset on reload")
	}
	if e.LastSearch() != "" {
		t.Fatal("search memory must reset on reload")
	}
	if e.Cursor() != 0 || e.First() != 0 {
		t.Fatalf("viewport must reset on reload")
	}
	if len(e.Projection()) != 1 {
		t.Fatalf("projection must come from the new store")
	}
}

func TestNotifyOnOperations(t *testing.T) {
	e := newTestEngine(t, []model.Entry{entry("info", "a"), entry("info", "b")}, 10)
	calls := 0
	e.Subscribe(func() { calls++ })
	e.MoveDown()
	if err := e.SetSort("message"); err != nil {
		t.Fatal(err)
	}
	e.SetMode(ModeSearch)
	if calls != 3 {
		t.Fatalf("expected 3 notifications, got %d", calls)
	}
}

func messages(entries []model.Entry) string {
	out := ""
	for _, e := range entries {
		out += e.Message
	}
	return out
}
