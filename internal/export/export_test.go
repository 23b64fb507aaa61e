package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jlv/internal/model"
)

func sample() []model.Entry {
	return []model.Entry{
		{Timestamp: "t1", Level: "info", Message: "one", Data: map[string]any{"b": "x", "a": float64(1)}},
		{Timestamp: "t2", Level: "warn", Message: "two"},
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(path, sample()); err != nil {
		t.Fatalf("csv: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: %d", len(rows))
	}
	header := strings.Join(rows[0], ",")
	if header != "timestamp,level,message,a,b" {
		t.Fatalf("header: %s", header)
	}
	if rows[1][3] != "1" || rows[1][4] != "x" {
		t.Fatalf("data cells: %v", rows[1])
	}
	if rows[2][3] != "" {
		t.Fatalf("missing data key must render empty: %v", rows[2])
	}
}

func TestToCSVEmpty(t *testing.T) {
	if err := ToCSV(filepath.Join(t.TempDir(), "out.csv"), nil); err == nil {
		t.Fatal("want error for empty projection")
	}
}

func TestToNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	if err := ToNDJSON(path, sample()); err != nil {
		t.Fatalf("ndjson: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: %d", len(lines))
	}
	if !strings.Contains(lines[0], `"a":1`) || !strings.Contains(lines[0], `"message":"one"`) {
		t.Fatalf("first line: %s", lines[0])
	}
}
