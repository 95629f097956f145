package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
)

// PrintRecords writes normalized customer records in the configured format.
// Text output is not supported for full record dumps; callers should use
// CSV or JSON for exports.
func PrintRecords(records schema.RecordSet, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecordsCSV(w, records)
		}, "Wrote CSV")
	default:
		return fmt.Errorf("record export does not support the %s output mode", cfg.Output)
	}
}

// writeRecordsCSV writes the full normalized dataset, derived columns included.
func writeRecordsCSV(w io.Writer, records schema.RecordSet) error {
	header := []string{
		"gender",
		"dependents",
		"phone_service",
		"paperless_billing",
		"internet_service",
		"contract",
		"payment_method",
		"tenure_months",
		"monthly_charges",
		"total_charges",
		"churn_flag",
		"tenure_band",
		"segment",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, c := range records {
			row := []string{
				c.Gender,
				c.Dependents,
				c.PhoneService,
				c.PaperlessBilling,
				c.InternetService,
				c.Contract,
				c.PaymentMethod,
				strconv.Itoa(c.TenureMonths),
				strconv.FormatFloat(c.MonthlyCharges, 'f', -1, 64),
				strconv.FormatFloat(c.TotalCharges, 'f', -1, 64),
				strconv.Itoa(c.ChurnFlag),
				c.TenureBand,
				c.Segment,
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
