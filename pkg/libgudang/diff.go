package libgudang

import (
	"reflect"
	"strings"
)

// DiffFields is the field list compared by IsItemUpdated when none is given.
var DiffFields = []string{FieldTagging, FieldDesc, FieldOriginalLocation, FieldCurrentLocation}

type (
	// A Record is a raw field set. A missing key and a nil value are both
	// treated as an absent field.
	Record map[string]any

	// A FieldDiff holds the raw (non-normalized) values of a changed field.
	FieldDiff struct {
		From any `json:"from"`
		To   any `json:"to"`
	}

	// A DiffResult reports whether an edit changed anything and which fields.
	DiffResult struct {
		Updated bool                 `json:"updated"`
		Diffs   map[string]FieldDiff `json:"diffs"`
	}
)

// IsItemUpdated compares original against edited field by field and reports
// the fields that meaningfully differ. String values are trimmed and
// lowercased before comparison so casing or whitespace introduced by input
// widgets does not count as a change. Missing inputs degrade to "no change".
func IsItemUpdated(original, edited Record, fields ...string) DiffResult {
	diffs := map[string]FieldDiff{}

	if original == nil && edited == nil {
		return DiffResult{Diffs: diffs}
	}

	if len(fields) == 0 {
		fields = DiffFields
	}

	for _, key := range fields {
		from := original[key]
		to := edited[key]

		// An opened-then-closed edit form turns an absent value into an
		// empty string. Both sides empty means no transition happened.
		if empty(from) && empty(to) {
			continue
		}

		if !reflect.DeepEqual(normalize(from), normalize(to)) {
			diffs[key] = FieldDiff{From: from, To: to}
		}
	}

	return DiffResult{Updated: len(diffs) > 0, Diffs: diffs}
}

func empty(v any) bool {
	return v == nil || v == ""
}

// normalize prepares a value for comparison. Only strings are touched.
func normalize(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return v
}
