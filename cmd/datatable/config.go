package main

import (
	"fmt"
	"slices"
	"unicode/utf8"

	fs "github.com/ungerik/go-fs"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-datatable/internal/logging"
)

var formats = []string{"html", "csv", "xlsx", "text"}

// Config of the command, loaded from a YAML file.
type Config struct {
	Format string                 `yaml:"format"`
	Out    string                 `yaml:"out"`
	Log    logging.Config         `yaml:"log"`
	HTML   HTMLConfig             `yaml:"html"`
	CSV    CSVConfig              `yaml:"csv"`
	Tables map[string]TableConfig `yaml:"tables"`
}

type HTMLConfig struct {
	TableClass string `yaml:"tableClass"`
}

type CSVConfig struct {
	Delimiter string `yaml:"delimiter"`
	// Encoding of the CSV output, UTF-8 if empty
	Encoding string `yaml:"encoding"`
	Padding  bool   `yaml:"padding"`
}

// TableConfig overrides the defaults of a marketplace table.
type TableConfig struct {
	EmptyMessage string `yaml:"emptyMessage"`
	// Columns selects and orders the columns by key,
	// all columns are used if empty
	Columns       []string `yaml:"columns"`
	Striped       bool     `yaml:"striped"`
	HeaderOnEmpty bool     `yaml:"headerOnEmpty"`
}

// DefaultConfig returns the configuration used without config file.
func DefaultConfig() *Config {
	return &Config{
		Format: "text",
		Log:    logging.Config{Level: "warn"},
		CSV:    CSVConfig{Delimiter: ";"},
	}
}

// LoadConfig reads the YAML file on top of DefaultConfig.
func LoadConfig(file fs.File) (*Config, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("can't parse config file %s: %w", file, err)
	}
	return config, config.Validate()
}

func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("invalid format %q, must be one of %v", c.Format, formats)
	}
	if c.CSV.Delimiter != "" && utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character: %q", c.CSV.Delimiter)
	}
	return nil
}

func (c *Config) csvDelimiter() rune {
	if c.CSV.Delimiter == "" {
		return ';'
	}
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}
