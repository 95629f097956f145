package dataset

import (
	"strconv"
	"strings"

	"github.com/huangsam/churnscope/schema"
)

// normalizeRow builds a fully-derived Customer from raw column values.
// The get function returns the raw string for a column name; both the CSV and
// SQL sources funnel through here so every backend normalizes identically.
//
// Numeric semantics: a cell that fails numeric parsing (blank TotalCharges is
// the common case) coerces to 0. It never becomes a missing marker and never
// surfaces as an error.
func normalizeRow(get func(col string) string) schema.Customer {
	c := schema.Customer{
		Gender:           get(schema.ColGender),
		Dependents:       get(schema.ColDependents),
		PhoneService:     get(schema.ColPhoneService),
		PaperlessBilling: get(schema.ColPaperlessBilling),
		InternetService:  get(schema.ColInternetService),
		Contract:         get(schema.ColContract),
		PaymentMethod:    get(schema.ColPaymentMethod),
		TenureMonths:     parseIntOrZero(get(schema.ColTenure)),
		MonthlyCharges:   parseFloatOrZero(get(schema.ColMonthlyCharges)),
		TotalCharges:     parseFloatOrZero(get(schema.ColTotalCharges)),
		Churn:            get(schema.ColChurn),
	}

	// Derived columns: deterministic functions of the base columns,
	// computed exactly once at load time.
	c.ChurnFlag = schema.ChurnFlagFor(c.Churn)
	c.TenureBand = schema.TenureBandFor(c.TenureMonths)
	c.Segment = schema.SegmentFor(c.Contract, c.InternetService)
	return c
}

func parseFloatOrZero(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntOrZero(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}
