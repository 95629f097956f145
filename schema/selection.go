package schema

// Wildcard is the sentinel selection value that matches every record.
const Wildcard = "All"

// Selection is one filter choice per dimension plus an inclusive tenure range.
// A Wildcard (or empty) dimension imposes no restriction; a nil tenure bound is
// open on that side. Selections are created per interaction and consumed once.
type Selection struct {
	Gender           string `json:"gender,omitempty"`
	Dependents       string `json:"dependents,omitempty"`
	PhoneService     string `json:"phoneService,omitempty"`
	PaperlessBilling string `json:"paperlessBilling,omitempty"`
	InternetService  string `json:"internetService,omitempty"`
	Contract         string `json:"contract,omitempty"`
	PaymentMethod    string `json:"paymentMethod,omitempty"`

	TenureMin *int `json:"tenureMin,omitempty"`
	TenureMax *int `json:"tenureMax,omitempty"`
}

// DefaultSelection returns the reset state: all wildcards, full tenure range.
func DefaultSelection() Selection {
	return Selection{
		Gender:           Wildcard,
		Dependents:       Wildcard,
		PhoneService:     Wildcard,
		PaperlessBilling: Wildcard,
		InternetService:  Wildcard,
		Contract:         Wildcard,
		PaymentMethod:    Wildcard,
	}
}

// active reports whether a dimension value restricts the selection.
func active(value string) bool {
	return value != "" && value != Wildcard
}

// Matches reports whether a customer passes every active filter.
// Dimensions compose conjunctively; string comparison is exact.
func (s Selection) Matches(c Customer) bool {
	if active(s.Gender) && c.Gender != s.Gender {
		return false
	}
	if active(s.Dependents) && c.Dependents != s.Dependents {
		return false
	}
	if active(s.PhoneService) && c.PhoneService != s.PhoneService {
		return false
	}
	if active(s.PaperlessBilling) && c.PaperlessBilling != s.PaperlessBilling {
		return false
	}
	if active(s.InternetService) && c.InternetService != s.InternetService {
		return false
	}
	if active(s.Contract) && c.Contract != s.Contract {
		return false
	}
	if active(s.PaymentMethod) && c.PaymentMethod != s.PaymentMethod {
		return false
	}
	if s.TenureMin != nil && c.TenureMonths < *s.TenureMin {
		return false
	}
	if s.TenureMax != nil && c.TenureMonths > *s.TenureMax {
		return false
	}
	return true
}
