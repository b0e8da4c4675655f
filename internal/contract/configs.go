package contract

import (
	"fmt"
	"maps"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/huangsam/concord/schema"
)

// Default values for configuration.
const (
	DefaultSource1Year     = 2019
	DefaultSource2Year     = 2025
	DefaultSource3Year     = 2024
	DefaultAdjustments     = "source1=0.7,source2=1.0,source3=0.6"
	DefaultOutputDirectory = "."
	DefaultOutputPrefix    = "concord"
)

// DefaultYears returns the publication year assumed for each source.
func DefaultYears() map[schema.SourceKey]int {
	return map[schema.SourceKey]int{
		schema.Source1: DefaultSource1Year,
		schema.Source2: DefaultSource2Year,
		schema.Source3: DefaultSource3Year,
	}
}

// SourceConfig is the validated configuration of one input source.
type SourceConfig struct {
	Key  schema.SourceKey
	Path string
	Year int `validate:"gte=1"`
}

// Config holds the runtime configuration for an aggregation run.
// This struct is the "final, validated" config.
type Config struct {
	Sources         [3]SourceConfig `validate:"dive"`
	ReferenceYear   int             `validate:"gte=1"`
	Adjustments     map[schema.SourceKey]float64
	Columns         schema.ColumnCandidates
	OutputDirectory string `validate:"required"`
	OutputPrefix    string `validate:"required,excludesall=/\\"`
	Exports         []schema.OutputMode
	Table           bool
	Width           int // Terminal width override (0 = auto-detect)
	UseColors       bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Source1         string `mapstructure:"source1" yaml:"source1"`
	Source2         string `mapstructure:"source2" yaml:"source2"`
	Source3         string `mapstructure:"source3" yaml:"source3"`
	Source1Year     int    `mapstructure:"source1-year" yaml:"source1-year"`
	Source2Year     int    `mapstructure:"source2-year" yaml:"source2-year"`
	Source3Year     int    `mapstructure:"source3-year" yaml:"source3-year"`
	ReferenceYear   int    `mapstructure:"reference-year" yaml:"reference-year"`
	Adjustments     string `mapstructure:"independence-adjustments" yaml:"independence-adjustments"`
	OutputDirectory string `mapstructure:"output-directory" yaml:"output-directory"`
	OutputPrefix    string `mapstructure:"output-prefix" yaml:"output-prefix"`
	Color           string `mapstructure:"color" yaml:"color"`

	// --- Fields from aggregateCmd.Flags() ---
	Export string `mapstructure:"export" yaml:"export"`
	Table  bool   `mapstructure:"table" yaml:"table"`
	Width  int    `mapstructure:"width" yaml:"width"`

	// --- Column candidates from config file ---
	Columns schema.ColumnCandidates `mapstructure:"columns" yaml:"columns"`
}

var validate = validator.New()

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Adjustments != nil {
		clone.Adjustments = make(map[schema.SourceKey]float64, len(c.Adjustments))
		maps.Copy(clone.Adjustments, c.Adjustments)
	}
	if c.Exports != nil {
		clone.Exports = append([]schema.OutputMode(nil), c.Exports...)
	}
	clone.Columns = schema.ColumnCandidates{
		Country: cloneStrings(c.Columns.Country),
		Score:   cloneStrings(c.Columns.Score),
		URL:     cloneStrings(c.Columns.URL),
	}
	return &clone
}

// Years returns the configured year of every source.
func (c *Config) Years() map[schema.SourceKey]int {
	years := make(map[schema.SourceKey]int, len(c.Sources))
	for _, s := range c.Sources {
		years[s.Key] = s.Year
	}
	return years
}

// HasExport reports whether the given export mode was requested.
func (c *Config) HasExport(mode schema.OutputMode) bool {
	for _, m := range c.Exports {
		if m == mode {
			return true
		}
	}
	return false
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. Source paths are only checked when
// requireSources is set, so commands that never read files can share the config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, requireSources bool) error {
	if err := processSources(cfg, input, requireSources); err != nil {
		return err
	}
	if err := processOutput(cfg, input); err != nil {
		return err
	}

	cfg.ReferenceYear = input.ReferenceYear
	if cfg.ReferenceYear == 0 {
		cfg.ReferenceYear = time.Now().Year()
	}
	cfg.Adjustments = ParseAdjustments(input.Adjustments)
	cfg.Columns = input.Columns.WithDefaults()

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// processSources transfers source paths and years, checking that each path is a
// readable file when required.
func processSources(cfg *Config, input *ConfigRawInput, requireSources bool) error {
	paths := [3]string{input.Source1, input.Source2, input.Source3}
	years := [3]int{input.Source1Year, input.Source2Year, input.Source3Year}
	defaults := DefaultYears()

	for i, key := range schema.AllSources {
		path := strings.TrimSpace(paths[i])
		if requireSources {
			if err := validate.Var(path, "required,file"); err != nil {
				return fmt.Errorf("--%s must name an existing file (received %q)", key, path)
			}
		}
		year := years[i]
		if year == 0 {
			year = defaults[key]
		}
		cfg.Sources[i] = SourceConfig{Key: key, Path: path, Year: year}
	}
	return nil
}

// processOutput handles the output directory, prefix, exports and display toggles.
func processOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputDirectory = strings.TrimSpace(input.OutputDirectory)
	if cfg.OutputDirectory == "" {
		cfg.OutputDirectory = DefaultOutputDirectory
	}
	cfg.OutputDirectory = filepath.Clean(cfg.OutputDirectory)

	cfg.OutputPrefix = strings.TrimSpace(input.OutputPrefix)
	if cfg.OutputPrefix == "" {
		cfg.OutputPrefix = DefaultOutputPrefix
	}

	cfg.Exports = nil
	for part := range strings.SplitSeq(input.Export, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		mode := schema.OutputMode(part)
		if _, ok := schema.ValidExportModes[mode]; !ok {
			return fmt.Errorf("invalid export format '%s'. must be json, parquet", part)
		}
		if !cfg.HasExport(mode) {
			cfg.Exports = append(cfg.Exports, mode)
		}
	}

	cfg.Table = input.Table
	cfg.Width = input.Width

	color := input.Color
	if color == "" {
		color = "yes"
	}
	colors, err := ParseBoolString(color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors
	return nil
}

// ParseAdjustments parses a "key=value,key=value" string into per-source
// independence adjustments, starting from the defaults. Keys are case-insensitive
// and accept the short aliases. Unknown keys, tokens without '=' and values that
// are unparsable, negative or not finite are skipped, so the previous value stays.
func ParseAdjustments(s string) map[schema.SourceKey]float64 {
	adjustments := schema.DefaultAdjustments()

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyStr, valueStr, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key, ok := schema.ParseSourceKey(keyStr)
		if !ok {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
		if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		adjustments[key] = value
	}
	return adjustments
}

// FormatAdjustments renders adjustments in the same "key=value" form ParseAdjustments reads.
func FormatAdjustments(adjustments map[schema.SourceKey]float64) string {
	parts := make([]string, 0, len(schema.AllSources))
	for _, key := range schema.AllSources {
		v, ok := adjustments[key]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", key, strconv.FormatFloat(v, 'f', -1, 64)))
	}
	return strings.Join(parts, ",")
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// RevalidateSources checks a config whose sources were changed after
// ProcessAndValidate, such as one cloned for an MCP request.
func RevalidateSources(cfg *Config) error {
	for _, src := range cfg.Sources {
		if err := validate.Var(src.Path, "required,file"); err != nil {
			return fmt.Errorf("%s must name an existing file (received %q)", src.Key, src.Path)
		}
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
