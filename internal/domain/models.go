package domain

import (
	"fmt"
	"sort"
)

// PriceEntry is one observed price point for a search term. Its shape is
// owned by the backend; the client only lays the fields out in a table.
type PriceEntry map[string]any

// wellKnownColumns are displayed first, in this order, when present.
var wellKnownColumns = []string{"date", "recorded_at", "price", "name", "url"}

// Columns returns the display order for the fields of a set of entries:
// well-known keys first, everything else alphabetical.
func Columns(entries []PriceEntry) []string {
	seen := make(map[string]bool)
	for _, e := range entries {
		for k := range e {
			seen[k] = true
		}
	}

	cols := make([]string, 0, len(seen))
	for _, k := range wellKnownColumns {
		if seen[k] {
			cols = append(cols, k)
			delete(seen, k)
		}
	}

	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)

	return append(cols, rest...)
}

// Field renders one field of an entry for display. Missing keys render empty.
func (e PriceEntry) Field(key string) string {
	v, ok := e[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; keep integral values whole
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
