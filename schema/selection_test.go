package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func sampleCustomer() Customer {
	return Customer{
		Gender:           "Female",
		Dependents:       "No",
		PhoneService:     "Yes",
		PaperlessBilling: "Yes",
		InternetService:  "DSL",
		Contract:         "Month-to-month",
		PaymentMethod:    "Electronic check",
		TenureMonths:     12,
		MonthlyCharges:   55.0,
		TotalCharges:     660.0,
		Churn:            "No",
	}
}

func TestSelectionMatches(t *testing.T) {
	c := sampleCustomer()

	tests := []struct {
		name     string
		mutate   func(*Selection)
		expected bool
	}{
		{
			name:     "default matches everything",
			mutate:   func(_ *Selection) {},
			expected: true,
		},
		{
			name:     "matching dimension",
			mutate:   func(s *Selection) { s.InternetService = "DSL" },
			expected: true,
		},
		{
			name:     "mismatching dimension",
			mutate:   func(s *Selection) { s.InternetService = "Fiber optic" },
			expected: false,
		},
		{
			name: "all dimensions matching",
			mutate: func(s *Selection) {
				s.Gender = "Female"
				s.Contract = "Month-to-month"
				s.PaymentMethod = "Electronic check"
			},
			expected: true,
		},
		{
			name: "one mismatch among matches",
			mutate: func(s *Selection) {
				s.Gender = "Female"
				s.Contract = "Two year"
			},
			expected: false,
		},
		{
			name:     "off-domain value matches nothing",
			mutate:   func(s *Selection) { s.Gender = "Unknown" },
			expected: false,
		},
		{
			name:     "comparison is exact, not case folded",
			mutate:   func(s *Selection) { s.InternetService = "dsl" },
			expected: false,
		},
		{
			name:     "tenure min inclusive",
			mutate:   func(s *Selection) { s.TenureMin = intPtr(12) },
			expected: true,
		},
		{
			name:     "tenure max inclusive",
			mutate:   func(s *Selection) { s.TenureMax = intPtr(12) },
			expected: true,
		},
		{
			name:     "tenure below min",
			mutate:   func(s *Selection) { s.TenureMin = intPtr(13) },
			expected: false,
		},
		{
			name:     "tenure above max",
			mutate:   func(s *Selection) { s.TenureMax = intPtr(11) },
			expected: false,
		},
		{
			name: "degenerate single-point range",
			mutate: func(s *Selection) {
				s.TenureMin = intPtr(12)
				s.TenureMax = intPtr(12)
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := DefaultSelection()
			tt.mutate(&sel)
			assert.Equal(t, tt.expected, sel.Matches(c))
		})
	}
}

func TestSelectionEmptyEqualsWildcard(t *testing.T) {
	c := sampleCustomer()

	// A zero-value selection behaves like the all-wildcard reset state.
	var empty Selection
	assert.True(t, empty.Matches(c))
	assert.True(t, DefaultSelection().Matches(c))
}
