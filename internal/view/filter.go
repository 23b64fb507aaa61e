package view

import (
	"strings"

	"github.com/Knetic/govaluate"

	"jlv/internal/model"
)

type Method string

const (
	// MethodExact matches when the resolved field value equals Value.
	MethodExact Method = "exact"
	// MethodContains matches on case-insensitive substring containment.
	MethodContains Method = "contains"
	// MethodExpr evaluates Value as a govaluate expression over the
	// entry's fields; Field is ignored.
	MethodExpr Method = "expr"
)

// Filter is one predicate over entries. Field is a reserved key or a dotted
// path into the entry's extra data.
type Filter struct {
	Field  string
	Value  string
	Method Method

	expr *govaluate.EvaluableExpression
}

func NewFilter(field, value string, method Method) (Filter, error) {
	f := Filter{Field: field, Value: value, Method: method}
	if method == MethodExpr {
		expr, err := govaluate.NewEvaluableExpression(value)
		if err != nil {
			return Filter{}, err
		}
		f.expr = expr
	}
	return f, nil
}

// Match reports whether the entry survives this predicate. A field path
// that does not resolve is "no value", never an error.
//
// A resolved value of nil, "", false or numeric zero rejects the row before
// the method is consulted. That makes a filter on a zero or empty-string
// field unable to match anything; this is long-standing behavior that
// downstream users rely on, kept as-is rather than fixed.
func (f Filter) Match(e model.Entry) bool {
	if f.Method == MethodExpr {
		return f.matchExpr(e)
	}
	v, ok := e.Field(f.Field)
	if !ok || isFalsy(v) {
		return false
	}
	text := model.FormatValue(v)
	switch f.Method {
	case MethodContains:
		return strings.Contains(strings.ToLower(text), strings.ToLower(f.Value))
	default:
		return text == f.Value
	}
}

func (f Filter) matchExpr(e model.Entry) bool {
	if f.expr == nil {
		return false
	}
	params := map[string]any{
		model.FieldTimestamp: e.Timestamp,
		model.FieldLevel:     e.Level,
		model.FieldMessage:   e.Message,
	}
	for k, v := range e.Data {
		params[k] = v
	}
	result, err := f.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}
