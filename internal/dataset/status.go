package dataset

import (
	"context"
	"fmt"

	"github.com/huangsam/churnscope/schema"
)

// Status summarizes the state of a database-backed dataset.
type Status struct {
	Backend  schema.SourceBackend
	Table    string
	RowCount int
	Churned  int
}

// GetStatus reports row and churn counts for the configured table.
func GetStatus(ctx context.Context, backend schema.SourceBackend, connStr, table string) (*Status, error) {
	if backend == schema.CSVBackend {
		return nil, fmt.Errorf("status requires a database source, not csv")
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	db, err := OpenDatabase(backend, connStr)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	status := &Status{Backend: backend, Table: table}
	row := db.QueryRowContext(ctx, fmt.Sprintf(
		"SELECT COUNT(*), COALESCE(SUM(CASE WHEN churn = 'Yes' THEN 1 ELSE 0 END), 0) FROM %s", table))
	if err := row.Scan(&status.RowCount, &status.Churned); err != nil {
		return nil, fmt.Errorf("failed to query table status: %w", err)
	}
	return status, nil
}
