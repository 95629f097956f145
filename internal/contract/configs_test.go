package contract

import (
	"testing"

	"github.com/huangsam/churnscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRawInput returns a baseline raw config that resolves cleanly.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		DataFileStr: "telco.csv",
		Source:      "csv",
		Order:       "rate",
		LTVBasis:    "total",
		Output:      "text",
		Precision:   2,
		TenureMin:   TenureUnset,
		TenureMax:   TenureUnset,
		Color:       "yes",
	}
}

func TestResolveValidInput(t *testing.T) {
	cfg, err := validRawInput().Resolve()
	require.NoError(t, err)

	assert.Equal(t, "telco.csv", cfg.DataFile)
	assert.Equal(t, schema.CSVBackend, cfg.Source)
	assert.Equal(t, DefaultTable, cfg.Table)
	assert.Equal(t, schema.RateOrder, cfg.Order)
	assert.Equal(t, schema.TotalBasis, cfg.LTVBasis)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, 2, cfg.Precision)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)

	// Unset filter flags resolve to the wildcard selection
	assert.Equal(t, schema.Wildcard, cfg.Selection.Gender)
	assert.Equal(t, schema.Wildcard, cfg.Selection.PaymentMethod)
	assert.Nil(t, cfg.Selection.TenureMin)
	assert.Nil(t, cfg.Selection.TenureMax)
}

func TestResolveEnumCaseInsensitive(t *testing.T) {
	raw := validRawInput()
	raw.Source = "CSV"
	raw.Order = "Domain"
	raw.Output = "JSON"

	cfg, err := raw.Resolve()
	require.NoError(t, err)
	assert.Equal(t, schema.CSVBackend, cfg.Source)
	assert.Equal(t, schema.DomainOrder, cfg.Order)
	assert.Equal(t, schema.JSONOut, cfg.Output)
}

func TestResolveInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		wantErr string
	}{
		{
			name:    "bad source",
			mutate:  func(r *ConfigRawInput) { r.Source = "oracle" },
			wantErr: "invalid source backend",
		},
		{
			name: "csv source without data file",
			mutate: func(r *ConfigRawInput) {
				r.DataFileStr = ""
			},
			wantErr: "data file is required",
		},
		{
			name: "mysql source without connection",
			mutate: func(r *ConfigRawInput) {
				r.Source = "mysql"
				r.DBConnect = ""
			},
			wantErr: "--db-connect is required",
		},
		{
			name:    "bad order policy",
			mutate:  func(r *ConfigRawInput) { r.Order = "random" },
			wantErr: "invalid order policy",
		},
		{
			name:    "bad ltv basis",
			mutate:  func(r *ConfigRawInput) { r.LTVBasis = "projected" },
			wantErr: "invalid ltv basis",
		},
		{
			name:    "bad output mode",
			mutate:  func(r *ConfigRawInput) { r.Output = "xml" },
			wantErr: "invalid output mode",
		},
		{
			name:    "bad color value",
			mutate:  func(r *ConfigRawInput) { r.Color = "maybe" },
			wantErr: "invalid color setting",
		},
		{
			name:    "negative tenure min",
			mutate:  func(r *ConfigRawInput) { r.TenureMin = -5 },
			wantErr: "tenure-min cannot be negative",
		},
		{
			name: "inverted tenure range",
			mutate: func(r *ConfigRawInput) {
				r.TenureMin = 24
				r.TenureMax = 12
			},
			wantErr: "exceeds tenure-max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawInput()
			tt.mutate(raw)
			_, err := raw.Resolve()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveSQLiteAllowsEmptyConnect(t *testing.T) {
	raw := validRawInput()
	raw.DataFileStr = ""
	raw.Source = "sqlite"

	cfg, err := raw.Resolve()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, cfg.Source)
	assert.Empty(t, cfg.DBConnect)
}

func TestResolvePrecisionClamped(t *testing.T) {
	raw := validRawInput()
	raw.Precision = 9
	cfg, err := raw.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Precision)

	raw = validRawInput()
	raw.Precision = 0
	cfg, err = raw.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Precision)
}

func TestResolveSelectionFlags(t *testing.T) {
	raw := validRawInput()
	raw.Internet = "DSL"
	raw.Contract = "Two year"
	raw.TenureMin = 6
	raw.TenureMax = 48

	cfg, err := raw.Resolve()
	require.NoError(t, err)

	sel := cfg.Selection
	assert.Equal(t, "DSL", sel.InternetService)
	assert.Equal(t, "Two year", sel.Contract)
	assert.Equal(t, schema.Wildcard, sel.Gender)
	require.NotNil(t, sel.TenureMin)
	require.NotNil(t, sel.TenureMax)
	assert.Equal(t, 6, *sel.TenureMin)
	assert.Equal(t, 48, *sel.TenureMax)
}

func TestConfigClone(t *testing.T) {
	raw := validRawInput()
	raw.TenureMin = 6
	raw.TenureMax = 48
	cfg, err := raw.Resolve()
	require.NoError(t, err)

	clone := cfg.Clone()
	require.NotNil(t, clone.Selection.TenureMin)

	// Mutating the clone's tenure bounds must not touch the original.
	*clone.Selection.TenureMin = 60
	clone.Selection.InternetService = "No"
	assert.Equal(t, 6, *cfg.Selection.TenureMin)
	assert.Equal(t, schema.Wildcard, cfg.Selection.InternetService)
}
