// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints a KPI summary using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.KPISummary, cfg *contract.Config, duration time.Duration) error {
	return PrintSummary(summary, cfg, duration)
}

// WriteChart prints a single chart spec using the configured output format.
func (ow *OutWriter) WriteChart(spec schema.ChartSpec, cfg *contract.Config, duration time.Duration) error {
	return PrintChart(spec, cfg, duration)
}

// WriteCharts prints several chart specs using the configured output format.
func (ow *OutWriter) WriteCharts(specs []schema.ChartSpec, cfg *contract.Config, duration time.Duration) error {
	return PrintCharts(specs, cfg, duration)
}

// getMaxTableLabelWidth calculates the maximum width for category labels in
// table output based on terminal width and table configuration.
func getMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the series, value and text columns plus borders
	available := termWidth - 45
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
