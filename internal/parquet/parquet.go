// Package parquet provides data structures and functions for exporting
// churnscope datasets and chart specs to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/churnscope/schema"
	"github.com/parquet-go/parquet-go"
)

// CustomerRow represents a single normalized customer record, including
// the derived columns computed at load time.
type CustomerRow struct {
	// Gender is "Male" or "Female"
	Gender string `parquet:"gender,snappy"`

	// Dependents is "Yes" or "No"
	Dependents string `parquet:"dependents,snappy"`

	// PhoneService is "Yes" or "No"
	PhoneService string `parquet:"phone_service,snappy"`

	// PaperlessBilling is "Yes" or "No"
	PaperlessBilling string `parquet:"paperless_billing,snappy"`

	// InternetService is "Fiber optic", "DSL" or "No"
	InternetService string `parquet:"internet_service,snappy"`

	// Contract is "Month-to-month", "One year" or "Two year"
	Contract string `parquet:"contract,snappy"`

	// PaymentMethod is one of the four payment methods, long form
	PaymentMethod string `parquet:"payment_method,snappy"`

	// TenureMonths is the months of service, 0-72
	TenureMonths int32 `parquet:"tenure_months,snappy"`

	// MonthlyCharges is the current monthly bill
	MonthlyCharges float64 `parquet:"monthly_charges,snappy"`

	// TotalCharges is the cumulative billing amount
	TotalCharges float64 `parquet:"total_charges,snappy"`

	// ChurnFlag is 1 if the customer churned, else 0
	ChurnFlag int32 `parquet:"churn_flag,snappy"`

	// TenureBand is the derived tenure band label
	TenureBand string `parquet:"tenure_band,snappy"`

	// Segment is the derived contract-and-internet bundle key
	Segment string `parquet:"segment,snappy"`
}

// ChartRow represents one chart data point in long format, flattened from
// a chart spec for columnar analysis.
type ChartRow struct {
	// ChartKind identifies the spec the point came from
	ChartKind string `parquet:"chart_kind,snappy"`

	// SeriesName is the series the point belongs to
	SeriesName string `parquet:"series_name,snappy"`

	// SeriesColor is the fixed series color
	SeriesColor string `parquet:"series_color,snappy"`

	// Label is the category or bin label
	Label string `parquet:"label,snappy"`

	// Value is the numeric point value
	Value float64 `parquet:"value,snappy"`

	// Text is the formatted display string
	Text string `parquet:"text,snappy"`
}

// CustomerRows converts a record set into parquet-ready rows.
func CustomerRows(records schema.RecordSet) []CustomerRow {
	rows := make([]CustomerRow, len(records))
	for i, c := range records {
		rows[i] = CustomerRow{
			Gender:           c.Gender,
			Dependents:       c.Dependents,
			PhoneService:     c.PhoneService,
			PaperlessBilling: c.PaperlessBilling,
			InternetService:  c.InternetService,
			Contract:         c.Contract,
			PaymentMethod:    c.PaymentMethod,
			TenureMonths:     int32(c.TenureMonths),
			MonthlyCharges:   c.MonthlyCharges,
			TotalCharges:     c.TotalCharges,
			ChurnFlag:        int32(c.ChurnFlag),
			TenureBand:       c.TenureBand,
			Segment:          c.Segment,
		}
	}
	return rows
}

// ChartRows flattens chart specs into long-format parquet rows.
func ChartRows(specs []schema.ChartSpec) []ChartRow {
	var rows []ChartRow
	for _, spec := range specs {
		for _, series := range spec.Series {
			for _, p := range series.Points {
				rows = append(rows, ChartRow{
					ChartKind:   string(spec.Kind),
					SeriesName:  series.Name,
					SeriesColor: series.Color,
					Label:       p.Label,
					Value:       p.Value,
					Text:        p.Text,
				})
			}
		}
	}
	return rows
}

// WriteCustomersParquet writes a slice of CustomerRow structs to a Parquet file.
func WriteCustomersParquet(data []CustomerRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the CustomerRow struct tags
	writer := parquet.NewGenericWriter[CustomerRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteChartRowsParquet writes a slice of ChartRow structs to a Parquet file.
func WriteChartRowsParquet(data []ChartRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ChartRow struct tags
	writer := parquet.NewGenericWriter[ChartRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
