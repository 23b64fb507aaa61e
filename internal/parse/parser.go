package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jlv/internal/model"
)

// ParseError reports a raw line that is not a valid structured record.
// The canonical viewer policy is to drop such lines; callers that want to
// surface them can still inspect Line.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse line: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Timestamp layouts tried when converting to local time.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Parser converts one raw JSON line into a model.Entry. The local-time
// decision is resolved once at construction and applied at parse time,
// never at render time.
type Parser struct {
	useLocalTime bool
}

func New(useLocalTime bool) Parser {
	return Parser{useLocalTime: useLocalTime}
}

func (p Parser) Parse(line string) (model.Entry, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return model.Entry{}, &ParseError{Line: line, Err: err}
	}
	// A bare `null` unmarshals into a nil map without error. Valid JSON,
	// but not a record.
	if raw == nil {
		return model.Entry{}, &ParseError{Line: line, Err: errors.New("not a JSON object")}
	}
	e := model.Entry{
		Timestamp: model.FormatValue(raw[model.FieldTimestamp]),
		Level:     model.FormatValue(raw[model.FieldLevel]),
		Message:   model.FormatValue(raw[model.FieldMessage]),
	}
	if p.useLocalTime {
		e.Timestamp = toLocal(e.Timestamp)
	}
	for k, v := range raw {
		if model.IsReserved(k) {
			continue
		}
		if e.Data == nil {
			e.Data = map[string]any{}
		}
		e.Data[k] = v
	}
	return e, nil
}

// toLocal reformats an RFC3339-style timestamp in the local zone.
// Unparseable values are retained verbatim.
func toLocal(ts string) string {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Local().Format(time.RFC3339)
		}
	}
	return ts
}
