package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
	"github.com/faed235/hyperf-saas-helper/foundation/utils/mathx"
	"github.com/faed235/hyperf-saas-helper/pkg/calc"
)

// EnvPrefix prefixes every environment override, e.g. CALC_SCALE.
const EnvPrefix = "CALC"

// Config holds the complete calculator configuration
type Config struct {
	Calculator CalculatorConfig `toml:"calculator" yaml:"calculator"`
	Output     OutputConfig     `toml:"output" yaml:"output"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`
	Metrics    MetricsConfig    `toml:"metrics" yaml:"metrics"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `toml:"-" yaml:"-"`
}

// CalculatorConfig selects the arithmetic backend
type CalculatorConfig struct {
	HighPrecision bool   `toml:"high_precision" yaml:"high_precision"`
	Scale         int    `toml:"scale" yaml:"scale"`
	Backend       string `toml:"backend" yaml:"backend"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Precision          int    `toml:"precision" yaml:"precision"`
	RoundUp            bool   `toml:"round_up" yaml:"round_up"`
	DecimalSeparator   string `toml:"decimal_separator" yaml:"decimal_separator"`
	ThousandsSeparator string `toml:"thousands_separator" yaml:"thousands_separator"`
	Format             string `toml:"format" yaml:"format"`
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// MetricsConfig toggles backend operation counters
type MetricsConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// envOverrides lists the variables read by envconfig. Unset variables stay
// nil and leave the file value alone.
type envOverrides struct {
	HighPrecision *bool   `envconfig:"HIGH_PRECISION"`
	Scale         *int    `envconfig:"SCALE"`
	Backend       *string `envconfig:"BACKEND"`
	Precision     *int    `envconfig:"PRECISION"`
	LogLevel      *string `envconfig:"LOG_LEVEL"`
	LogFormat     *string `envconfig:"LOG_FORMAT"`
	Metrics       *bool   `envconfig:"METRICS"`
}

// Output formats accepted by OutputConfig.Format.
var outputFormats = []string{"text", "json", "yaml"}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			HighPrecision: true,
			Scale:         calc.DefaultScale,
			Backend:       mathx.BackendBig,
		},
		Output: OutputConfig{
			Precision:          calc.DefaultPrecision,
			DecimalSeparator:   ".",
			ThousandsSeparator: ",",
			Format:             "text",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads a TOML or YAML file on top of the defaults, applies CALC_*
// environment overrides and validates the result. The format follows the
// file extension; anything but .yaml/.yml is read as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.ConfigParse(path, formatOf(path), err)
	}

	cfg := Default()
	format := formatOf(path)
	if format == "yaml" {
		err = yaml.Unmarshal(data, cfg)
	} else {
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, errors.ConfigParse(path, format, err)
	}
	cfg.Source = path

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by CALC_CONFIG, or the first existing
// default location. Without any file the defaults are used, still subject to
// environment overrides.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order.
func DefaultPaths() []string {
	paths := []string{
		"./configs/calc.toml",
		"./calc.toml",
		"./calc.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "calc", "config.toml"))
	}
	return paths
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

// applyEnv overlays CALC_* variables.
func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("env").
			Message("invalid environment override").
			Cause(err).
			Build()
	}

	if env.HighPrecision != nil {
		c.Calculator.HighPrecision = *env.HighPrecision
	}
	if env.Scale != nil {
		c.Calculator.Scale = *env.Scale
	}
	if env.Backend != nil {
		c.Calculator.Backend = *env.Backend
	}
	if env.Precision != nil {
		c.Output.Precision = *env.Precision
	}
	if env.LogLevel != nil {
		c.Logging.Level = *env.LogLevel
	}
	if env.LogFormat != nil {
		c.Logging.Format = *env.LogFormat
	}
	if env.Metrics != nil {
		c.Metrics.Enabled = *env.Metrics
	}
	return nil
}

// Validate checks every field against its allowed range
func (c *Config) Validate() error {
	if c.Calculator.Scale < 0 || c.Calculator.Scale > calc.MaxScale {
		return errors.InvalidConfig("calculator.scale", c.Calculator.Scale, "must be between 0 and 100")
	}
	if _, err := mathx.BackendByName(c.Calculator.Backend); err != nil {
		return errors.InvalidConfig("calculator.backend", c.Calculator.Backend,
			"must be one of "+strings.Join(mathx.BackendNames(), ", "))
	}
	if c.Output.Precision < 0 {
		return errors.InvalidConfig("output.precision", c.Output.Precision, "must be zero or positive")
	}
	if c.Output.DecimalSeparator == "" {
		return errors.InvalidConfig("output.decimal_separator", c.Output.DecimalSeparator, "must not be empty")
	}
	if c.Output.DecimalSeparator == c.Output.ThousandsSeparator {
		return errors.InvalidConfig("output.thousands_separator", c.Output.ThousandsSeparator,
			"must differ from the decimal separator")
	}
	if !oneOf(c.Output.Format, outputFormats) {
		return errors.InvalidConfig("output.format", c.Output.Format, "must be one of "+strings.Join(outputFormats, ", "))
	}
	if !oneOf(c.Logging.Level, logLevels) {
		return errors.InvalidConfig("logging.level", c.Logging.Level, "must be one of "+strings.Join(logLevels, ", "))
	}
	if !oneOf(c.Logging.Format, logFormats) {
		return errors.InvalidConfig("logging.format", c.Logging.Format, "must be one of "+strings.Join(logFormats, ", "))
	}
	return nil
}

// CalculatorConfig builds the calc.Config described by the [calculator]
// section. Native arithmetic always falls back to float64.
func (c *Config) CalculatorConfig() (calc.Config, error) {
	backend, err := mathx.BackendByName(c.Calculator.Backend)
	if err != nil {
		return calc.Config{}, errors.InvalidConfig("calculator.backend", c.Calculator.Backend,
			"must be one of "+strings.Join(mathx.BackendNames(), ", "))
	}
	cfg := calc.Config{
		HighPrecision: c.Calculator.HighPrecision,
		Scale:         c.Calculator.Scale,
		Backend:       backend,
		Fallback:      mathx.NewFloatBackend(),
	}
	if err := cfg.Validate(); err != nil {
		return calc.Config{}, err
	}
	return cfg, nil
}

// NewCalculator returns a calculator for the [calculator] section.
func (c *Config) NewCalculator() (*calc.Calculator, error) {
	cfg, err := c.CalculatorConfig()
	if err != nil {
		return nil, err
	}
	return calc.New(cfg)
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
