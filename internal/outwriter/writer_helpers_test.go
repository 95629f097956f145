package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{
			name:      "precision 2",
			precision: 2,
			value:     26.5369,
			expected:  "26.54",
		},
		{
			name:      "precision 1",
			precision: 1,
			value:     26.5369,
			expected:  "26.5",
		},
		{
			name:      "negative value",
			precision: 2,
			value:     -42.567,
			expected:  "-42.57",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"count": 3})
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["count"])
	// Indented output
	assert.Contains(t, buf.String(), "  \"count\"")
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		maxWidth int
		expected string
	}{
		{name: "fits", label: "DSL", maxWidth: 10, expected: "DSL"},
		{name: "exact fit", label: "Fiber", maxWidth: 5, expected: "Fiber"},
		{name: "truncated", label: "Month-to-month | Fiber optic", maxWidth: 10, expected: "Month-to-…"},
		{name: "tiny width", label: "DSL", maxWidth: 1, expected: "D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateLabel(tt.label, tt.maxWidth))
		})
	}
}
