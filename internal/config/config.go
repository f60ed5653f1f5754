// =============================================================================
// Compute Sales - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has a
// default, so the program runs without any configuration file at all.
//
// CONFIGURATION FILE (example):
//
//   output_file: SalesResults.txt
//   xlsx_output: ""
//   log_level: info
//   strict_catalogue: false
//   fields:
//     catalogue_name: [title, name, product]
//     catalogue_price: [price]
//     sale_product: [product, Product]
//     sale_quantity: [quantity, Quantity]
//
// FIELD MAPPING:
//   Catalogue and sales inputs exist with different key spellings. Each
//   logical field lists the input keys it accepts; the first key present in
//   a record wins.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultOutputFile is the report file written when none is configured.
const DefaultOutputFile = "SalesResults.txt"

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// OutputFile is the text report path. It is overwritten on every run.
	OutputFile string `yaml:"output_file" validate:"required"`

	// XLSXOutput is an optional workbook path for the same report.
	// Empty disables the workbook export.
	XLSXOutput string `yaml:"xlsx_output"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "trace", "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level" validate:"oneof=trace debug info warn error"`

	// StrictCatalogue turns silently skipped catalogue entries (empty name,
	// non-numeric price) into a fatal error.
	StrictCatalogue bool `yaml:"strict_catalogue"`

	// Fields maps logical record fields to the input keys that carry them.
	Fields FieldMapping `yaml:"fields"`
}

// FieldMapping lists, for each logical field, the accepted input keys in
// order of preference.
type FieldMapping struct {
	CatalogueName  []string `yaml:"catalogue_name" validate:"required,dive,required"`
	CataloguePrice []string `yaml:"catalogue_price" validate:"required,dive,required"`
	SaleProduct    []string `yaml:"sale_product" validate:"required,dive,required"`
	SaleQuantity   []string `yaml:"sale_quantity" validate:"required,dive,required"`
}

// DefaultFieldMapping accepts both naming conventions seen in deployed inputs:
// title/price catalogues with product/quantity or Product/Quantity sales.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		CatalogueName:  []string{"title", "name", "product"},
		CataloguePrice: []string{"price"},
		SaleProduct:    []string{"product", "Product"},
		SaleQuantity:   []string{"quantity", "Quantity"},
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	defaults := DefaultFieldMapping()
	if len(cfg.Fields.CatalogueName) == 0 {
		cfg.Fields.CatalogueName = defaults.CatalogueName
	}
	if len(cfg.Fields.CataloguePrice) == 0 {
		cfg.Fields.CataloguePrice = defaults.CataloguePrice
	}
	if len(cfg.Fields.SaleProduct) == 0 {
		cfg.Fields.SaleProduct = defaults.SaleProduct
	}
	if len(cfg.Fields.SaleQuantity) == 0 {
		cfg.Fields.SaleQuantity = defaults.SaleQuantity
	}
}
