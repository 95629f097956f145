package dataset

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniHeader = "gender,Dependents,PhoneService,PaperlessBilling,InternetService,Contract,PaymentMethod,tenure,MonthlyCharges,TotalCharges,Churn"

func TestCSVSourceLoad(t *testing.T) {
	source := NewCSVSource("testdata/customers.csv")
	assert.Equal(t, "csv:testdata/customers.csv", source.Name())

	records, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 8)

	first := records[0]
	assert.Equal(t, "Female", first.Gender)
	assert.Equal(t, "DSL", first.InternetService)
	assert.Equal(t, 1, first.TenureMonths)
	assert.InDelta(t, 29.85, first.MonthlyCharges, 1e-9)

	// Derived columns are populated at load time
	assert.Equal(t, 0, first.ChurnFlag)
	assert.Equal(t, "0-3", first.TenureBand)
	assert.Equal(t, "Month-to-month | DSL", first.Segment)

	churned := 0
	for _, c := range records {
		if c.Churned() {
			churned++
		}
	}
	assert.Equal(t, 3, churned)
}

func TestCSVSourceLoadMissingFile(t *testing.T) {
	source := NewCSVSource("testdata/does-not-exist.csv")
	_, err := source.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dataset")
}

func TestParseCSVBlankTotalChargesCoercesToZero(t *testing.T) {
	input := miniHeader + "\n" +
		"Female,Yes,Yes,No,No,Two year,Credit card (automatic),0,20.05,,No\n" +
		"Male,No,Yes,Yes,DSL,One year,Mailed check,34,56.95, ,No\n"

	records, err := parseCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Zero(t, records[0].TotalCharges)
	assert.Zero(t, records[1].TotalCharges)
	// The rest of the row survives normalization untouched
	assert.InDelta(t, 20.05, records[0].MonthlyCharges, 1e-9)
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	// Header lacks the Churn column
	input := "gender,Dependents,PhoneService,PaperlessBilling,InternetService,Contract,PaymentMethod,tenure,MonthlyCharges,TotalCharges\n" +
		"Female,No,Yes,Yes,DSL,Month-to-month,Electronic check,1,29.85,29.85\n"

	_, err := parseCSV(context.Background(), strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Churn")
}

func TestParseCSVExtraColumnsIgnored(t *testing.T) {
	input := "customerID," + miniHeader + ",Extra\n" +
		"0001-A,Female,No,Yes,Yes,DSL,Month-to-month,Electronic check,1,29.85,29.85,No,whatever\n"

	records, err := parseCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Female", records[0].Gender)
	assert.Equal(t, "No", records[0].Churn)
}

func TestParseCSVMalformedRow(t *testing.T) {
	// Second row is short one field
	input := miniHeader + "\n" +
		"Female,No,Yes,Yes,DSL,Month-to-month,Electronic check,1,29.85,29.85,No\n" +
		"Male,No,Yes,Yes,DSL,One year,Mailed check,34,56.95,1889.5\n"

	_, err := parseCSV(context.Background(), strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed CSV row")
}

func TestParseCSVNonNumericCellsCoerceToZero(t *testing.T) {
	input := miniHeader + "\n" +
		"Female,No,Yes,Yes,DSL,Month-to-month,Electronic check,abc,xyz,n/a,Yes\n"

	records, err := parseCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Zero(t, records[0].TenureMonths)
	assert.Zero(t, records[0].MonthlyCharges)
	assert.Zero(t, records[0].TotalCharges)
	assert.Equal(t, 1, records[0].ChurnFlag)
	assert.Equal(t, "0-3", records[0].TenureBand)
}

func TestParseCSVCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := miniHeader + "\n" +
		"Female,No,Yes,Yes,DSL,Month-to-month,Electronic check,1,29.85,29.85,No\n"
	_, err := parseCSV(ctx, strings.NewReader(input))
	assert.ErrorIs(t, err, context.Canceled)
}
