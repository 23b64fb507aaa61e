package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"sort"

	"jlv/internal/model"
)

// ToCSV writes the given projection (already filtered and sorted) with the
// reserved columns first and every observed data key after, sorted.
func ToCSV(path string, entries []model.Entry) error {
	if len(entries) == 0 {
		return errors.New("no entries")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	cols := columns(entries)
	if err := w.Write(cols); err != nil {
		return err
	}
	for _, e := range entries {
		row := make([]string, len(cols))
		for i, c := range cols {
			switch c {
			case model.FieldTimestamp:
				row[i] = e.Timestamp
			case model.FieldLevel:
				row[i] = e.Level
			case model.FieldMessage:
				row[i] = e.Message
			default:
				if v, ok := e.Data[c]; ok {
					row[i] = model.FormatValue(v)
				}
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// ToNDJSON writes one JSON object per line in the original record shape,
// with the data keys folded back to the top level.
func ToNDJSON(path string, entries []model.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	defer bw.Flush()
	for _, e := range entries {
		rec := map[string]any{
			model.FieldTimestamp: e.Timestamp,
			model.FieldLevel:     e.Level,
			model.FieldMessage:   e.Message,
		}
		for k, v := range e.Data {
			if !model.IsReserved(k) {
				rec[k] = v
			}
		}
		b, _ := json.Marshal(rec)
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func columns(entries []model.Entry) []string {
	set := map[string]struct{}{}
	for _, e := range entries {
		for k := range e.Data {
			set[k] = struct{}{}
		}
	}
	extra := make([]string, 0, len(set))
	for k := range set {
		if !model.IsReserved(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append([]string{model.FieldTimestamp, model.FieldLevel, model.FieldMessage}, extra...)
}
