// Package schema has models, constants and domain tables for all parts of churnscope.
package schema

// Customer represents one normalized customer row.
// It includes the raw categorical dimensions, the numeric measures, and the
// derived columns computed once at load time. Records are immutable after
// normalization; derived fields are never recomputed per request.
type Customer struct {
	Gender           string  `json:"gender"`            // "Male" or "Female"
	Dependents       string  `json:"dependents"`        // "Yes" or "No"
	PhoneService     string  `json:"phone_service"`     // "Yes" or "No"
	PaperlessBilling string  `json:"paperless_billing"` // "Yes" or "No"
	InternetService  string  `json:"internet_service"`  // "Fiber optic", "DSL" or "No"
	Contract         string  `json:"contract"`          // "Month-to-month", "One year" or "Two year"
	PaymentMethod    string  `json:"payment_method"`    // One of the four payment methods
	TenureMonths     int     `json:"tenure_months"`     // Months of service, 0-72
	MonthlyCharges   float64 `json:"monthly_charges"`   // Current monthly bill
	TotalCharges     float64 `json:"total_charges"`     // Cumulative billing; blank raw cells normalize to 0
	Churn            string  `json:"churn"`             // Raw churn flag, "Yes" or "No"

	ChurnFlag  int    `json:"churn_flag"`  // 1 if Churn == "Yes", else 0
	TenureBand string `json:"tenure_band"` // Derived band label, e.g. "12-24"
	Segment    string `json:"segment"`     // Derived Contract + " | " + InternetService
}

// RecordSet is an ordered, read-only collection of customers.
// The canonical set is loaded once per process; filters produce new subsets
// and never mutate the records they share.
type RecordSet []Customer

// Churned reports whether the customer left the service.
func (c Customer) Churned() bool { return c.ChurnFlag == 1 }

// LTVProxy estimates lifetime value as tenure times the monthly rate.
// This is distinct from the observed TotalCharges measure.
func (c Customer) LTVProxy() float64 {
	return float64(c.TenureMonths) * c.MonthlyCharges
}
