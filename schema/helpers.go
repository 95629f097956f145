package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPercent renders a rate with two decimal places, e.g. "26.54%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatCount renders an integer with thousands grouping, e.g. "7,043".
func FormatCount(n int) string {
	return groupDigits(strconv.Itoa(n))
}

// FormatCurrency renders a dollar amount with thousands grouping and no
// decimal places, e.g. "$456,117". Values round half away from zero.
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := groupDigits(strconv.FormatFloat(v, 'f', 0, 64))
	if neg {
		return "-$" + s
	}
	return "$" + s
}

// FormatTenure renders a mean tenure with one decimal place, e.g. "32.4".
func FormatTenure(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// groupDigits inserts commas into a plain digit string.
func groupDigits(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ShortPaymentName returns the display name for a payment method, falling
// back to the raw value for anything outside the declared domain.
func ShortPaymentName(method string) string {
	if short, ok := PaymentMethodShortNames[method]; ok {
		return short
	}
	return method
}

// TenureBandFor assigns a tenure value to its fixed band label. The lowest
// boundary is inclusive of 0; months beyond the top boundary land in the last
// band so every record carries a band.
func TenureBandFor(months int) string {
	for i := 1; i < len(TenureBandBounds); i++ {
		if months <= TenureBandBounds[i] {
			return TenureBandLabels[i-1]
		}
	}
	return TenureBandLabels[len(TenureBandLabels)-1]
}

// SegmentFor builds the bundle grouping key from contract and internet service.
func SegmentFor(contract, internetService string) string {
	return contract + SegmentSeparator + internetService
}

// ChurnFlagFor converts the raw churn field into the binary indicator.
// Only the exact literal "Yes" counts as churned.
func ChurnFlagFor(raw string) int {
	if raw == ChurnYes {
		return 1
	}
	return 0
}
