package dataset

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/churnscope/schema"
	"github.com/schollz/progressbar/v3"
)

// insertBatchSize is the number of rows bundled into one INSERT statement.
const insertBatchSize = 500

// ImportCSV loads customer records from a CSV file and inserts them into
// the configured database table. The target table must exist, so run
// migrations first. Returns the number of rows inserted.
func ImportCSV(ctx context.Context, backend schema.SourceBackend, connStr, table, csvPath string) (int, error) {
	if backend == schema.CSVBackend {
		return 0, fmt.Errorf("import requires a database source, not csv")
	}
	if !tableNamePattern.MatchString(table) {
		return 0, fmt.Errorf("invalid table name %q", table)
	}

	source := NewCSVSource(csvPath)
	records, err := source.Load(ctx)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	db, err := OpenDatabase(backend, connStr)
	if err != nil {
		return 0, err
	}
	defer func() { _ = db.Close() }()

	placeholder := placeholderFunc(backend)
	bar := progressbar.Default(int64(len(records)))

	inserted := 0
	for start := 0; start < len(records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(records))
		batch := records[start:end]

		query, args := buildInsert(table, batch, placeholder)
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return inserted, fmt.Errorf("failed to insert batch at row %d: %w", start, err)
		}
		inserted += len(batch)
		_ = bar.Add(len(batch))
	}
	return inserted, nil
}

// buildInsert assembles a multi-row INSERT statement for a batch of records.
func buildInsert(table string, batch schema.RecordSet, placeholder func(n int) string) (string, []any) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(datasetColumns, ", "))
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(batch)*len(datasetColumns))
	for i, c := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j := range datasetColumns {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(placeholder(len(args) + 1))
		}
		sb.WriteByte(')')
		args = append(args,
			c.Gender,
			c.Dependents,
			c.PhoneService,
			c.PaperlessBilling,
			c.InternetService,
			c.Contract,
			c.PaymentMethod,
			c.TenureMonths,
			c.MonthlyCharges,
			strconv.FormatFloat(c.TotalCharges, 'f', -1, 64),
			c.Churn,
		)
	}
	return sb.String(), args
}

// placeholderFunc returns the bind-parameter style for a backend.
// PostgreSQL uses positional $N markers, the rest use ?.
func placeholderFunc(backend schema.SourceBackend) func(n int) string {
	if backend == schema.PostgreSQLBackend {
		return func(n int) string { return fmt.Sprintf("$%d", n) }
	}
	return func(int) string { return "?" }
}
