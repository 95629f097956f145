// Package core has core logic for filtering, aggregation, KPI summaries
// and chart building.
package core

import (
	"github.com/huangsam/churnscope/schema"
)

// ApplyFilter returns the subset of records matching the selection,
// preserving the original order. A default selection returns a copy of
// the full set; filters never mutate the records they share.
func ApplyFilter(records schema.RecordSet, sel schema.Selection) schema.RecordSet {
	out := make(schema.RecordSet, 0, len(records))
	for _, c := range records {
		if sel.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
