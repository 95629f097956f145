package schema

// ChartPoint is a single data point in a chart series. Text is the
// pre-formatted display label; the presentation layer never re-derives it.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// ChartSeries is one named, colored series of points.
type ChartSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Points []ChartPoint `json:"points"`
}

// AxisRange is an explicit [Min, Max] y-axis range. A nil range in a spec
// means the axis scales automatically.
type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ChartSpec is a rendering-agnostic chart descriptor. It is produced fresh on
// every aggregation call and never mutated after construction. Ordering of
// Categories and Series is part of the contract for each chart kind.
type ChartSpec struct {
	Kind       ChartKind     `json:"kind"`
	Title      string        `json:"title"`
	XTitle     string        `json:"xTitle"`
	YTitle     string        `json:"yTitle"`
	Categories []string      `json:"categories"`
	Series     []ChartSeries `json:"series"`
	YRange     *AxisRange    `json:"yRange,omitempty"`
	Grouped    bool          `json:"grouped"`   // grouped (not stacked) bars
	Diverging  bool          `json:"diverging"` // zero-centered opposing bars
}

// Empty reports whether the spec carries no data points in any series.
// An empty spec is still well-formed: kind, titles and axes are populated.
func (s ChartSpec) Empty() bool {
	for _, series := range s.Series {
		if len(series.Points) > 0 {
			return false
		}
	}
	return true
}
