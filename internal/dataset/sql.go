package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// datasetColumns are the table columns for SQL sources, aligned with
// schema.RequiredColumns by position.
var datasetColumns = []string{
	"gender",
	"dependents",
	"phone_service",
	"paperless_billing",
	"internet_service",
	"contract",
	"payment_method",
	"tenure",
	"monthly_charges",
	"total_charges",
	"churn",
}

// tableNamePattern guards against injection through the table setting.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// SQLSource loads records from a customers table in sqlite, MySQL or PostgreSQL.
type SQLSource struct {
	Backend schema.SourceBackend
	ConnStr string
	Table   string
}

var _ contract.RecordSource = &SQLSource{} // Compile-time check

// NewSQLSource creates a SQL-backed record source.
func NewSQLSource(backend schema.SourceBackend, connStr, table string) *SQLSource {
	return &SQLSource{Backend: backend, ConnStr: connStr, Table: table}
}

// Name describes the source for log output.
func (s *SQLSource) Name() string {
	return fmt.Sprintf("%s:%s", s.Backend, s.Table)
}

// Open returns a database handle for the configured backend.
func (s *SQLSource) Open() (*sql.DB, error) {
	return OpenDatabase(s.Backend, s.ConnStr)
}

// OpenDatabase opens a database connection for a SQL backend.
func OpenDatabase(backend schema.SourceBackend, connStr string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite dataset at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL dataset: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL dataset: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported dataset backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, nil
}

// Load reads every row from the customers table and normalizes it through the
// same path as the CSV source. All cells are scanned as text so a blank
// total_charges keeps its coerce-to-zero semantics.
func (s *SQLSource) Load(ctx context.Context) (schema.RecordSet, error) {
	if !tableNamePattern.MatchString(s.Table) {
		return nil, fmt.Errorf("invalid table name %q", s.Table)
	}

	db, err := s.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	query := selectQuery(s.Table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset table %s: %w", s.Table, err)
	}
	defer func() { _ = rows.Close() }()

	var records schema.RecordSet
	cells := make([]sql.NullString, len(datasetColumns))
	dests := make([]any, len(cells))
	for i := range cells {
		dests[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("failed to scan dataset row: %w", err)
		}
		records = append(records, normalizeRow(func(col string) string {
			for i, name := range schema.RequiredColumns {
				if name == col {
					return cells[i].String
				}
			}
			return ""
		}))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset rows: %w", err)
	}

	return records, nil
}

// selectQuery builds the fixed-column select for the customers table.
func selectQuery(table string) string {
	query := "SELECT "
	for i, col := range datasetColumns {
		if i > 0 {
			query += ", "
		}
		query += col
	}
	return query + " FROM " + table
}
