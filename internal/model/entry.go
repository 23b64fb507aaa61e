package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Reserved top-level keys of a log record. Everything else lands in Data.
const (
	FieldTimestamp = "timestamp"
	FieldLevel     = "level"
	FieldMessage   = "message"
)

// Entry is one parsed log record. Entries are immutable after parse.
type Entry struct {
	Timestamp string
	Level     string
	Message   string
	// Data holds the top-level keys beyond the three reserved ones.
	// It is nil (not an empty map) when the record had no extra fields,
	// so "has extra fields" is a cheap nil check.
	Data map[string]any
}

func IsReserved(field string) bool {
	return field == FieldTimestamp || field == FieldLevel || field == FieldMessage
}

// HasData reports whether the original record carried extra fields.
func (e Entry) HasData() bool { return e.Data != nil }

// Field resolves a field name against the entry: reserved keys map to the
// fixed fields, anything else is a dotted path into Data. A path that does
// not resolve returns (nil, false), never an error.
func (e Entry) Field(name string) (any, bool) {
	switch name {
	case FieldTimestamp:
		return e.Timestamp, true
	case FieldLevel:
		return e.Level, true
	case FieldMessage:
		return e.Message, true
	}
	if e.Data == nil {
		return nil, false
	}
	var cur any = map[string]any(e.Data)
	for _, part := range strings.Split(name, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// FormatValue renders a decoded JSON value as display text. Numbers keep
// their shortest representation, composites render as compact JSON.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// PrettyJSON renders the extra-field payload as indented JSON for the
// detail view. Entries without extra fields render as "{}".
func (e Entry) PrettyJSON() string {
	if e.Data == nil {
		return "{}"
	}
	b, _ := json.MarshalIndent(e.Data, "", "  ")
	return string(b)
}
