package core

import (
	"math/rand"

	"github.com/huangsam/churnscope/schema"
)

// newCustomer builds a fully-derived record the way the loaders do.
func newCustomer(internet, contract, payment string, tenure int, monthly, total float64, churn string) schema.Customer {
	c := schema.Customer{
		Gender:           "Female",
		Dependents:       "No",
		PhoneService:     "Yes",
		PaperlessBilling: "Yes",
		InternetService:  internet,
		Contract:         contract,
		PaymentMethod:    payment,
		TenureMonths:     tenure,
		MonthlyCharges:   monthly,
		TotalCharges:     total,
		Churn:            churn,
	}
	c.ChurnFlag = schema.ChurnFlagFor(churn)
	c.TenureBand = schema.TenureBandFor(tenure)
	c.Segment = schema.SegmentFor(contract, internet)
	return c
}

// threeCustomers is the smallest set that exercises rates, revenue and
// tenure averages with clean expected values.
func threeCustomers() schema.RecordSet {
	return schema.RecordSet{
		newCustomer("DSL", "Month-to-month", "Electronic check", 12, 30, 360, "Yes"),
		newCustomer("DSL", "One year", "Mailed check", 24, 30, 720, "No"),
		newCustomer("Fiber optic", "Two year", "Credit card (automatic)", 45, 40, 1800, "No"),
	}
}

// shuffled returns a copy of records in a deterministic pseudo-random order.
func shuffled(records schema.RecordSet, seed int64) schema.RecordSet {
	out := make(schema.RecordSet, len(records))
	copy(out, records)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
