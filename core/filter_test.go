package core

import (
	"testing"

	"github.com/huangsam/churnscope/schema"
	"github.com/stretchr/testify/assert"
)

func TestApplyFilterDefaultSelection(t *testing.T) {
	records := threeCustomers()
	out := ApplyFilter(records, schema.DefaultSelection())
	assert.Len(t, out, len(records))
	assert.Equal(t, records, out)
}

func TestApplyFilterSubset(t *testing.T) {
	records := threeCustomers()

	sel := schema.DefaultSelection()
	sel.InternetService = "DSL"
	out := ApplyFilter(records, sel)
	assert.Len(t, out, 2)
	for _, c := range out {
		assert.Equal(t, "DSL", c.InternetService)
	}

	// Filtered output can never exceed the input
	assert.LessOrEqual(t, len(out), len(records))
}

func TestApplyFilterConjunction(t *testing.T) {
	records := threeCustomers()

	sel := schema.DefaultSelection()
	sel.InternetService = "DSL"
	sel.Contract = "One year"
	out := ApplyFilter(records, sel)
	assert.Len(t, out, 1)
	assert.Equal(t, "Mailed check", out[0].PaymentMethod)
}

func TestApplyFilterUnknownValueMatchesNothing(t *testing.T) {
	sel := schema.DefaultSelection()
	sel.InternetService = "Satellite"
	out := ApplyFilter(threeCustomers(), sel)
	assert.Empty(t, out)
}

func TestApplyFilterTenureRange(t *testing.T) {
	records := threeCustomers()

	lo, hi := 12, 24
	sel := schema.DefaultSelection()
	sel.TenureMin = &lo
	sel.TenureMax = &hi
	out := ApplyFilter(records, sel)
	assert.Len(t, out, 2)

	// Bounds are inclusive on both sides
	for _, c := range out {
		assert.GreaterOrEqual(t, c.TenureMonths, lo)
		assert.LessOrEqual(t, c.TenureMonths, hi)
	}
}

func TestApplyFilterPreservesOrder(t *testing.T) {
	records := threeCustomers()
	sel := schema.DefaultSelection()
	sel.InternetService = "DSL"
	out := ApplyFilter(records, sel)
	assert.Equal(t, "Month-to-month", out[0].Contract)
	assert.Equal(t, "One year", out[1].Contract)
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	records := threeCustomers()
	sel := schema.DefaultSelection()
	sel.InternetService = "DSL"
	_ = ApplyFilter(records, sel)
	assert.Equal(t, threeCustomers(), records)
}
