package core

import (
	"sort"

	"github.com/huangsam/churnscope/schema"
)

// RateEntry holds the churn rate for one category value.
type RateEntry struct {
	Key     string  // category value, e.g. "DSL"
	Churned int     // churned customers in the group
	Total   int     // all customers in the group
	Rate    float64 // churn percentage in [0, 100]
}

// GroupRate computes the churn rate per distinct value of the keyed
// dimension. Entries are returned in ascending key order so the result
// is canonical regardless of record ingestion order. Only values present
// in the records appear; a group's rate is churned/total * 100.
func GroupRate(records schema.RecordSet, key func(schema.Customer) string) []RateEntry {
	churned := make(map[string]int)
	total := make(map[string]int)
	for _, c := range records {
		k := key(c)
		total[k]++
		if c.Churned() {
			churned[k]++
		}
	}

	entries := make([]RateEntry, 0, len(total))
	for k, n := range total {
		entries = append(entries, RateEntry{
			Key:     k,
			Churned: churned[k],
			Total:   n,
			Rate:    float64(churned[k]) / float64(n) * 100.0,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// HistogramBuckets holds per-bucket counts for the tenure distribution,
// split into churned and retained series. Both slices are zero-filled and
// aligned with schema.HistogramLabels, so their combined sum always equals
// the number of input records.
type HistogramBuckets struct {
	Churned  []int
	Retained []int
}

// BinTenureHistogram buckets customers by tenure into the fixed histogram
// bins. Values below the first boundary land in the first bucket and values
// above the last boundary land in the last, so no record is ever dropped.
func BinTenureHistogram(records schema.RecordSet) HistogramBuckets {
	n := len(schema.HistogramLabels)
	buckets := HistogramBuckets{
		Churned:  make([]int, n),
		Retained: make([]int, n),
	}
	for _, c := range records {
		i := bucketIndex(float64(c.TenureMonths), schema.HistogramBounds)
		if c.Churned() {
			buckets.Churned[i]++
		} else {
			buckets.Retained[i]++
		}
	}
	return buckets
}

// MeanByBinAndCategory computes the mean of a measure per (tenure bin,
// category) cell. Bins follow schema.LTVBinBounds. The result maps
// category -> slice aligned with schema.LTVBinLabels; cells with no
// customers hold nil to distinguish "no data" from a mean of zero.
func MeanByBinAndCategory(
	records schema.RecordSet,
	category func(schema.Customer) string,
	measure func(schema.Customer) float64,
) map[string][]*float64 {
	n := len(schema.LTVBinLabels)
	sums := make(map[string][]float64)
	counts := make(map[string][]int)

	for _, c := range records {
		k := category(c)
		if sums[k] == nil {
			sums[k] = make([]float64, n)
			counts[k] = make([]int, n)
		}
		i := bucketIndex(float64(c.TenureMonths), schema.LTVBinBounds)
		sums[k][i] += measure(c)
		counts[k][i]++
	}

	means := make(map[string][]*float64, len(sums))
	for k, s := range sums {
		cells := make([]*float64, n)
		for i := range s {
			if counts[k][i] > 0 {
				m := s[i] / float64(counts[k][i])
				cells[i] = &m
			}
		}
		means[k] = cells
	}
	return means
}

// BundleEntry holds the realized and lost value for one bundle segment.
type BundleEntry struct {
	Segment string  // Contract + " | " + InternetService
	Actual  float64 // mean realized value (tenure x monthly proxy)
	Lost    float64 // mean unrealized value against the projection horizon
}

// BundleValues computes, per bundle segment, the mean realized customer
// value and the mean value lost against a full projection horizon. Both
// sides use the tenure-times-monthly proxy so realized plus lost always
// equals the projected value. Entries are sorted ascending by realized
// value with an alphabetical tie-break.
func BundleValues(records schema.RecordSet) []BundleEntry {
	type acc struct {
		actual float64
		lost   float64
		n      int
	}
	groups := make(map[string]*acc)
	for _, c := range records {
		g := groups[c.Segment]
		if g == nil {
			g = &acc{}
			groups[c.Segment] = g
		}
		actual := c.LTVProxy()
		g.actual += actual
		g.lost += float64(schema.ProjectionMonths)*c.MonthlyCharges - actual
		g.n++
	}

	entries := make([]BundleEntry, 0, len(groups))
	for seg, g := range groups {
		entries = append(entries, BundleEntry{
			Segment: seg,
			Actual:  g.actual / float64(g.n),
			Lost:    g.lost / float64(g.n),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Actual != entries[j].Actual {
			return entries[i].Actual < entries[j].Actual
		}
		return entries[i].Segment < entries[j].Segment
	})
	return entries
}

// bucketIndex finds the bucket for v given ascending boundaries. Buckets are
// right-closed with the lowest bound inclusive, so a value sitting exactly on
// a boundary belongs to the bucket that boundary labels: tenure 15 is "1-15",
// tenure 12 is year-bin "12". Out-of-range values clamp into the nearest
// bucket so bucket counts always sum to the input size.
func bucketIndex(v float64, bounds []float64) int {
	last := len(bounds) - 2
	for i := 0; i < last; i++ {
		if v <= bounds[i+1] {
			return i
		}
	}
	return last
}
