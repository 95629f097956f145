package contract

import (
	"context"

	"github.com/huangsam/churnscope/schema"
)

// RecordSource defines a dataset source that can produce the canonical record
// set. Implementations cover the CSV file and the SQL table backends. The
// abstraction lets the load path be tested without touching a real file or
// database server.
type RecordSource interface {
	// Name describes the source for log output, e.g. "csv:data/telco.csv".
	Name() string

	// Load reads every row, normalizes it, and returns the record set.
	// A missing required column or a row with the wrong field count is a
	// fatal schema error; malformed numeric cells are coerced, not raised.
	Load(ctx context.Context) (schema.RecordSet, error)
}
