package view

import (
	"strings"

	"jlv/internal/model"
)

// splitSort breaks a sort spec into its field and direction. A leading "-"
// means descending; no prefix means ascending.
func splitSort(spec string) (field string, desc bool) {
	if strings.HasPrefix(spec, "-") {
		return spec[1:], true
	}
	return spec, false
}

// compareEntries orders a before b when a's field value is relationally
// smaller. A missing value sorts before any present value; two missing
// values tie (stable sort keeps their original order).
func compareEntries(a, b model.Entry, field string) bool {
	av, aok := a.Field(field)
	bv, bok := b.Field(field)
	if !aok || !bok {
		return !aok && bok
	}
	if af, ok := av.(float64); ok {
		if bf, ok := bv.(float64); ok {
			return af < bf
		}
	}
	return model.FormatValue(av) < model.FormatValue(bv)
}
