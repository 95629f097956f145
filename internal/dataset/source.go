package dataset

import (
	"os"
	"path/filepath"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
)

// ForConfig returns the record source selected by the validated config.
func ForConfig(cfg *contract.Config) (contract.RecordSource, error) {
	if cfg.Source == schema.CSVBackend {
		return NewCSVSource(cfg.DataFile), nil
	}
	return NewSQLSource(cfg.Source, cfg.DBConnect, cfg.Table), nil
}

// GetDBFilePath returns the default SQLite DB file path for the dataset.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".churnscope.db"
	}
	return filepath.Join(homeDir, ".churnscope.db")
}
