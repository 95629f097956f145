package dataset

import (
	"context"
	"fmt"
	"sync"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
)

var (
	// recordsGlobal is the canonical record set, loaded exactly once per
	// process and treated as immutable afterwards. Every request reads it;
	// none mutates it, so no locking is needed past initialization.
	recordsGlobal schema.RecordSet

	loadErrGlobal error
	loadOnce      sync.Once
)

// Init loads the canonical record set from the configured source.
// Repeated calls are no-ops: the first load wins for the process lifetime.
func Init(ctx context.Context, cfg *contract.Config) error {
	loadOnce.Do(func() {
		source, err := ForConfig(cfg)
		if err != nil {
			loadErrGlobal = err
			return
		}
		recordsGlobal, loadErrGlobal = loadFrom(ctx, source)
	})
	return loadErrGlobal
}

// loadFrom pulls the record set out of a source, tagging errors with the
// source name so a failed load says which backend broke.
func loadFrom(ctx context.Context, source contract.RecordSource) (schema.RecordSet, error) {
	records, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot load dataset from %s: %w", source.Name(), err)
	}
	return records, nil
}

// Records returns the canonical record set. Init must have succeeded first.
func Records() schema.RecordSet {
	return recordsGlobal
}
