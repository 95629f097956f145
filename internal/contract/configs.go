// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/churnscope/schema"
)

// Default values for configuration.
const (
	DefaultPrecision  = 2
	DefaultTable      = "customers"
	DefaultListenAddr = ":8050"

	// TenureUnset marks a tenure bound flag the user did not provide.
	TenureUnset = -1
)

// Config holds the runtime configuration for the engine and its surfaces.
// This struct remains the "final, validated" config.
type Config struct {
	DataFile  string               // Path to the CSV source file
	Source    schema.SourceBackend // Dataset source backend
	DBConnect string               // Connection string for SQL backends
	Table     string               // Table name for SQL backends

	Selection schema.Selection   // Filter selection built from flags
	Order     schema.OrderPolicy // Ordering policy for rate charts
	LTVBasis  schema.LTVBasis    // Numeric field for LTV tenure curves

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int  // Terminal width override (0 = auto-detect)
	UseColors  bool // Enable colored labels in table output

	ListenAddr string // Bind address for the serve command
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataFileStr string

	Source    string `mapstructure:"source"`
	DBConnect string `mapstructure:"db-connect"`
	Table     string `mapstructure:"table"`

	Gender    string `mapstructure:"gender"`
	Deps      string `mapstructure:"dependents"`
	Phone     string `mapstructure:"phone"`
	Paperless string `mapstructure:"paperless"`
	Internet  string `mapstructure:"internet"`
	Contract  string `mapstructure:"contract"`
	Payment   string `mapstructure:"payment"`
	TenureMin int    `mapstructure:"tenure-min"`
	TenureMax int    `mapstructure:"tenure-max"`

	Order    string `mapstructure:"order"`
	LTVBasis string `mapstructure:"ltv-basis"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	Listen string `mapstructure:"listen"`
}

// Resolve validates the raw input and produces the final Config.
// Invalid enum values fail fast here so no command runs with a bad setup.
func (raw *ConfigRawInput) Resolve() (*Config, error) {
	cfg := &Config{
		DataFile:   raw.DataFileStr,
		DBConnect:  raw.DBConnect,
		Table:      raw.Table,
		OutputFile: raw.OutputFile,
		Width:      raw.Width,
		ListenAddr: raw.Listen,
	}

	source := schema.SourceBackend(strings.ToLower(raw.Source))
	if _, ok := schema.ValidSourceBackends[source]; !ok {
		return nil, fmt.Errorf("invalid source backend %q. Must be csv, sqlite, mysql, or postgresql", raw.Source)
	}
	cfg.Source = source
	if source == schema.CSVBackend && cfg.DataFile == "" {
		return nil, fmt.Errorf("a data file is required for the csv source")
	}
	if source != schema.CSVBackend && cfg.DBConnect == "" && source != schema.SQLiteBackend {
		return nil, fmt.Errorf("--db-connect is required for the %s source", source)
	}
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}

	order := schema.OrderPolicy(strings.ToLower(raw.Order))
	if _, ok := schema.ValidOrderPolicies[order]; !ok {
		return nil, fmt.Errorf("invalid order policy %q. Must be rate or domain", raw.Order)
	}
	cfg.Order = order

	basis := schema.LTVBasis(strings.ToLower(raw.LTVBasis))
	if _, ok := schema.ValidLTVBases[basis]; !ok {
		return nil, fmt.Errorf("invalid ltv basis %q. Must be total or proxy", raw.LTVBasis)
	}
	cfg.LTVBasis = basis

	output := schema.OutputMode(strings.ToLower(raw.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return nil, fmt.Errorf("invalid output mode %q. Must be text, csv, json, or parquet", raw.Output)
	}
	cfg.Output = output

	cfg.Precision = raw.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 2 {
		cfg.Precision = 2
	}

	useColors, err := ParseBoolString(raw.Color)
	if err != nil {
		return nil, fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	sel, err := resolveSelection(raw)
	if err != nil {
		return nil, err
	}
	cfg.Selection = sel

	return cfg, nil
}

// resolveSelection builds the filter selection from raw flag values.
// The engine does not validate dimension values against their domains: an
// off-domain value simply matches zero records downstream.
func resolveSelection(raw *ConfigRawInput) (schema.Selection, error) {
	sel := schema.Selection{
		Gender:           defaultWildcard(raw.Gender),
		Dependents:       defaultWildcard(raw.Deps),
		PhoneService:     defaultWildcard(raw.Phone),
		PaperlessBilling: defaultWildcard(raw.Paperless),
		InternetService:  defaultWildcard(raw.Internet),
		Contract:         defaultWildcard(raw.Contract),
		PaymentMethod:    defaultWildcard(raw.Payment),
	}

	if raw.TenureMin != TenureUnset {
		if raw.TenureMin < 0 {
			return sel, fmt.Errorf("tenure-min cannot be negative")
		}
		v := raw.TenureMin
		sel.TenureMin = &v
	}
	if raw.TenureMax != TenureUnset {
		if raw.TenureMax < 0 {
			return sel, fmt.Errorf("tenure-max cannot be negative")
		}
		v := raw.TenureMax
		sel.TenureMax = &v
	}
	if sel.TenureMin != nil && sel.TenureMax != nil && *sel.TenureMin > *sel.TenureMax {
		return sel, fmt.Errorf("tenure-min %d exceeds tenure-max %d", *sel.TenureMin, *sel.TenureMax)
	}

	return sel, nil
}

// defaultWildcard treats an empty flag as the All sentinel.
func defaultWildcard(v string) string {
	if v == "" {
		return schema.Wildcard
	}
	return v
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Selection.TenureMin != nil {
		v := *c.Selection.TenureMin
		clone.Selection.TenureMin = &v
	}
	if c.Selection.TenureMax != nil {
		v := *c.Selection.TenureMax
		clone.Selection.TenureMax = &v
	}
	return &clone
}
