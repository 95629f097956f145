package core

import (
	"github.com/huangsam/churnscope/schema"
)

// Engine answers summary and chart queries over a loaded record set.
// It is stateless beyond its configuration, so a single engine can serve
// concurrent requests with different selections.
type Engine struct {
	records schema.RecordSet
	order   schema.OrderPolicy
	basis   schema.LTVBasis
}

// NewEngine wraps a record set with the ordering and value-basis policies
// that apply to every chart it builds.
func NewEngine(records schema.RecordSet, order schema.OrderPolicy, basis schema.LTVBasis) *Engine {
	return &Engine{records: records, order: order, basis: basis}
}

// Size returns the number of records in the full, unfiltered set.
func (e *Engine) Size() int { return len(e.records) }

// GetSummary filters the record set and computes headline KPIs.
func (e *Engine) GetSummary(sel schema.Selection) schema.KPISummary {
	return Summarize(ApplyFilter(e.records, sel))
}

// GetChart filters the record set and builds the spec for one chart kind.
func (e *Engine) GetChart(sel schema.Selection, kind schema.ChartKind) (schema.ChartSpec, error) {
	return BuildChart(ApplyFilter(e.records, sel), kind, e.order, e.basis)
}

// GetCharts builds every chart kind over one filtered subset, in the
// canonical presentation order. The filter runs once and is shared.
func (e *Engine) GetCharts(sel schema.Selection) ([]schema.ChartSpec, error) {
	filtered := ApplyFilter(e.records, sel)
	specs := make([]schema.ChartSpec, 0, len(schema.AllChartKinds))
	for _, kind := range schema.AllChartKinds {
		spec, err := BuildChart(filtered, kind, e.order, e.basis)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
