package core

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/huangsam/churnscope/schema"
)

// BuildChart constructs the chart spec for a single kind over the given
// records. Every policy baked into a spec (ordering, colors, axis ranges,
// label formats) is deterministic: the same records and options always
// produce the same spec. An empty record set yields a well-formed spec
// with kind, titles and axes populated but no series, never an error.
func BuildChart(records schema.RecordSet, kind schema.ChartKind, order schema.OrderPolicy, basis schema.LTVBasis) (schema.ChartSpec, error) {
	var spec schema.ChartSpec
	switch kind {
	case schema.RateInternetChart:
		spec = buildRateChart(records, kind, order,
			"Churn Rate by Internet Service", "Internet Service",
			func(c schema.Customer) string { return c.InternetService },
			schema.InternetServiceOrder, nil)

	case schema.RateContractChart:
		spec = buildRateChart(records, kind, order,
			"Churn Rate by Contract Type", "Contract Type",
			func(c schema.Customer) string { return c.Contract },
			schema.ContractOrder, nil)

	case schema.RatePaymentChart:
		spec = buildRateChart(records, kind, order,
			"Churn Rate by Payment Method", "Payment Method",
			func(c schema.Customer) string { return c.PaymentMethod },
			schema.PaymentMethodOrder, schema.ShortPaymentName)

	case schema.TenureHistogramChart:
		spec = buildTenureHistogram(records)

	case schema.LTVInternetChart:
		spec = buildLTVChart(records, kind, basis,
			"Customer Value by Tenure and Internet Service",
			func(c schema.Customer) string { return c.InternetService },
			schema.InternetServiceOrder, schema.LTVInternetColors)

	case schema.LTVContractChart:
		spec = buildLTVChart(records, kind, basis,
			"Customer Value by Tenure and Contract Type",
			func(c schema.Customer) string { return c.Contract },
			schema.ContractOrder, schema.LTVContractColors)

	case schema.BundleValueChart:
		spec = buildBundleValueChart(records)

	default:
		return schema.ChartSpec{}, fmt.Errorf("unknown chart kind: %s", kind)
	}

	// An empty subset keeps the frame but carries no series at all
	if len(records) == 0 {
		spec.Series = nil
	}
	return spec, nil
}

// buildRateChart assembles a single-series bar chart of churn rate per
// category value. With RateOrder the bars sort by descending rate with an
// alphabetical tie-break; with DomainOrder they follow the declared domain
// order restricted to values present in the records.
func buildRateChart(
	records schema.RecordSet,
	kind schema.ChartKind,
	order schema.OrderPolicy,
	title, xTitle string,
	key func(schema.Customer) string,
	domainOrder []string,
	display func(string) string,
) schema.ChartSpec {
	entries := GroupRate(records, key)

	if order == schema.DomainOrder {
		entries = reorderByDomain(entries, domainOrder)
	} else {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Rate != entries[j].Rate {
				return entries[i].Rate > entries[j].Rate
			}
			return entries[i].Key < entries[j].Key
		})
	}

	maxRate := 0.0
	points := make([]schema.ChartPoint, 0, len(entries))
	categories := make([]string, 0, len(entries))
	for _, e := range entries {
		label := e.Key
		if display != nil {
			label = display(label)
		}
		categories = append(categories, label)
		points = append(points, schema.ChartPoint{
			Label: label,
			Value: e.Rate,
			Text:  schema.FormatPercent(e.Rate),
		})
		if e.Rate > maxRate {
			maxRate = e.Rate
		}
	}

	return schema.ChartSpec{
		Kind:       kind,
		Title:      title,
		XTitle:     xTitle,
		YTitle:     "Churn Rate (%)",
		Categories: categories,
		Series: []schema.ChartSeries{{
			Name:   "Churn Rate",
			Color:  schema.RateBarColor,
			Points: points,
		}},
		YRange: &schema.AxisRange{Min: 0, Max: maxRate * 1.2},
	}
}

// reorderByDomain rearranges rate entries into declared domain order,
// keeping only values that actually occur in the records. Values outside
// the declared domain are appended in key order.
func reorderByDomain(entries []RateEntry, domainOrder []string) []RateEntry {
	byKey := make(map[string]RateEntry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}
	out := make([]RateEntry, 0, len(entries))
	for _, k := range domainOrder {
		if e, ok := byKey[k]; ok {
			out = append(out, e)
			delete(byKey, k)
		}
	}
	// anything not in the declared domain keeps canonical key order
	for _, e := range entries {
		if _, ok := byKey[e.Key]; ok {
			out = append(out, e)
		}
	}
	return out
}

// buildTenureHistogram assembles the grouped churned-vs-stayed tenure
// distribution. Buckets are zero-filled so both series always span every
// label and their counts sum to the input size.
func buildTenureHistogram(records schema.RecordSet) schema.ChartSpec {
	buckets := BinTenureHistogram(records)

	toPoints := func(counts []int) []schema.ChartPoint {
		points := make([]schema.ChartPoint, len(counts))
		for i, n := range counts {
			points[i] = schema.ChartPoint{
				Label: schema.HistogramLabels[i],
				Value: float64(n),
				Text:  strconv.Itoa(n),
			}
		}
		return points
	}

	return schema.ChartSpec{
		Kind:       schema.TenureHistogramChart,
		Title:      "Tenure Distribution: Churned vs Stayed",
		XTitle:     "Tenure (months)",
		YTitle:     "Customers",
		Categories: append([]string(nil), schema.HistogramLabels...),
		Series: []schema.ChartSeries{
			{Name: "Churned", Color: schema.ChurnedBarColor, Points: toPoints(buckets.Churned)},
			{Name: "Stayed", Color: schema.RetainedBarColor, Points: toPoints(buckets.Retained)},
		},
		Grouped: true,
	}
}

// buildLTVChart assembles the mean-value-by-tenure-bin line chart with one
// series per declared category. Categories absent from the records are
// skipped entirely; bins with no customers are omitted from a present
// category's series rather than rendered as zero.
func buildLTVChart(
	records schema.RecordSet,
	kind schema.ChartKind,
	basis schema.LTVBasis,
	title string,
	category func(schema.Customer) string,
	categoryOrder []string,
	colors map[string]string,
) schema.ChartSpec {
	measure := func(c schema.Customer) float64 { return c.TotalCharges }
	yTitle := "Mean Total Charges ($)"
	if basis == schema.ProxyBasis {
		measure = func(c schema.Customer) float64 { return c.LTVProxy() }
		yTitle = "Mean Estimated Value ($)"
	}

	means := MeanByBinAndCategory(records, category, measure)

	series := make([]schema.ChartSeries, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		cells, ok := means[cat]
		if !ok {
			continue
		}
		points := make([]schema.ChartPoint, 0, len(cells))
		for i, m := range cells {
			if m == nil {
				continue
			}
			points = append(points, schema.ChartPoint{
				Label: schema.LTVBinLabels[i],
				Value: *m,
				Text:  schema.FormatCurrency(*m),
			})
		}
		series = append(series, schema.ChartSeries{
			Name:   cat,
			Color:  colors[cat],
			Points: points,
		})
	}

	return schema.ChartSpec{
		Kind:       kind,
		Title:      title,
		XTitle:     "Tenure (months)",
		YTitle:     yTitle,
		Categories: append([]string(nil), schema.LTVBinLabels...),
		Series:     series,
		YRange:     &schema.AxisRange{Min: 0, Max: schema.LTVAxisMax},
	}
}

// buildBundleValueChart assembles the diverging realized-vs-lost chart per
// bundle segment. Lost potential plots as negative values; the axis is
// symmetric around zero so the two sides read at the same scale.
func buildBundleValueChart(records schema.RecordSet) schema.ChartSpec {
	entries := BundleValues(records)

	maxAbs := 0.0
	categories := make([]string, 0, len(entries))
	actual := make([]schema.ChartPoint, 0, len(entries))
	lost := make([]schema.ChartPoint, 0, len(entries))
	for _, e := range entries {
		categories = append(categories, e.Segment)
		actual = append(actual, schema.ChartPoint{
			Label: e.Segment,
			Value: e.Actual,
			Text:  schema.FormatCurrency(e.Actual),
		})
		lost = append(lost, schema.ChartPoint{
			Label: e.Segment,
			Value: -e.Lost,
			Text:  schema.FormatCurrency(e.Lost),
		})
		maxAbs = max(maxAbs, e.Actual, e.Lost)
	}

	var yRange *schema.AxisRange
	if len(entries) > 0 {
		m := maxAbs * 1.1
		yRange = &schema.AxisRange{Min: -m, Max: m}
	} else {
		yRange = &schema.AxisRange{Min: 0, Max: 0}
	}

	return schema.ChartSpec{
		Kind:       schema.BundleValueChart,
		Title:      "Realized vs Lost Value by Bundle",
		XTitle:     "Bundle (Contract | Internet)",
		YTitle:     "Mean Value ($)",
		Categories: categories,
		Series: []schema.ChartSeries{
			{Name: "Realized", Color: schema.RetainedBarColor, Points: actual},
			{Name: "Lost Potential", Color: schema.LostValueColor, Points: lost},
		},
		YRange:    yRange,
		Diverging: true,
	}
}
