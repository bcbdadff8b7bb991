package config

import (
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	ngcconfig "github.com/msto63/ngc/foundation/core/config"
	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc"
	"github.com/msto63/ngc/foundation/ngc/eval"
)

// EnvPrefix prefixes every environment override, e.g. NGC_PARSER_MAX_DEPTH
const EnvPrefix = "NGC"

// EnvConfigPath names the variable LoadFromEnv reads the config path from
const EnvConfigPath = "NGC_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Parser  ParserConfig  `toml:"parser" yaml:"parser" json:"parser"`
	Eval    EvalConfig    `toml:"eval" yaml:"eval" json:"eval"`
	Logging LoggingConfig `toml:"logging" yaml:"logging" json:"logging"`
	Output  OutputConfig  `toml:"output" yaml:"output" json:"output"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch" json:"watch"`

	source string
}

// ParserConfig holds the parser limits
type ParserConfig struct {
	MaxDepth          int  `toml:"max_depth" yaml:"max_depth" json:"max_depth"`
	MaxInputLength    int  `toml:"max_input_length" yaml:"max_input_length" json:"max_input_length"`
	AllowUnterminated bool `toml:"allow_unterminated" yaml:"allow_unterminated" json:"allow_unterminated"`
}

// EvalConfig holds evaluator settings
type EvalConfig struct {
	AngleUnit string `toml:"angle_unit" yaml:"angle_unit" json:"angle_unit"`
}

// LoggingConfig holds CLI logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" json:"level"`
	Format string `toml:"format" yaml:"format" json:"format"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format" json:"format"`
	Color  bool   `toml:"color" yaml:"color" json:"color"`
}

// WatchConfig holds watch mode settings
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce" json:"debounce"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns the default values in the nested form the foundation
// loader merges under file contents
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"parser": map[string]interface{}{
			"max_depth":          64,
			"max_input_length":   4 << 20,
			"allow_unterminated": false,
		},
		"eval": map[string]interface{}{
			"angle_unit": "degrees",
		},
		"logging": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"output": map[string]interface{}{
			"format": "text",
			"color":  true,
		},
		"watch": map[string]interface{}{
			"debounce": "200ms",
		},
	}
}

// Rules are checked against every loaded configuration
var Rules = ngcconfig.ValidationRules{
	"parser.max_depth":          {Type: "int", Min: ngcconfig.IntBound(1), Max: ngcconfig.IntBound(10000)},
	"parser.max_input_length":   {Type: "int", Min: ngcconfig.IntBound(1)},
	"parser.allow_unterminated": {Type: "bool"},
	"eval.angle_unit":           {OneOf: []string{"degrees", "deg", "radians", "rad"}},
	"logging.level":             {OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"}},
	"logging.format":            {OneOf: []string{"text", "json", "console", "logfmt"}},
	"output.format":             {OneOf: []string{"text", "yaml", "json"}},
	"output.color":              {Type: "bool"},
}

// Load loads configuration from path. An empty path searches the default
// locations and falls back to the defaults when no file exists.
func Load(path string) (*Config, error) {
	var (
		fc  *ngcconfig.Config
		err error
	)

	if path != "" {
		// Expand environment variables in path
		path = os.ExpandEnv(path)
		fc, err = ngcconfig.LoadWithOptions(path, ngcconfig.LoadOptions{
			Format:    ngcconfig.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  Defaults(),
		})
	} else {
		opts := ngcconfig.DefaultDiscoveryOptions()
		opts.EnvPrefix = EnvPrefix
		opts.Defaults = Defaults()
		fc, err = ngcconfig.Discover(opts)
	}
	if err != nil {
		return nil, err
	}

	return FromFoundation(fc)
}

// LoadFromEnv loads configuration from the file named by NGC_CONFIG, or from
// the default locations when it is unset
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

// Default returns the configuration built from defaults and environment
// overrides only
func Default() (*Config, error) {
	return FromFoundation(ngcconfig.FromDefaults(Defaults(), EnvPrefix))
}

// FromFoundation validates a loaded foundation configuration and maps it onto
// the typed Config
func FromFoundation(fc *ngcconfig.Config) (*Config, error) {
	if err := fc.Validate(Rules); err != nil {
		return nil, err
	}

	cfg := &Config{
		Parser: ParserConfig{
			MaxDepth:          fc.GetInt("parser.max_depth"),
			MaxInputLength:    fc.GetInt("parser.max_input_length"),
			AllowUnterminated: fc.GetBool("parser.allow_unterminated"),
		},
		Eval: EvalConfig{
			AngleUnit: fc.GetString("eval.angle_unit"),
		},
		Logging: LoggingConfig{
			Level:  fc.GetString("logging.level"),
			Format: fc.GetString("logging.format"),
		},
		Output: OutputConfig{
			Format: fc.GetString("output.format"),
			Color:  fc.GetBool("output.color"),
		},
		source: fc.FilePath(),
	}

	if raw := fc.GetString("watch.debounce"); raw != "" {
		if err := cfg.Watch.Debounce.UnmarshalText([]byte(raw)); err != nil {
			return nil, ngcerror.Wrap(err, "invalid watch.debounce").
				WithCode(ngcerror.CodeInvalidConfig).
				WithOperation("config.FromFoundation").
				WithDetail("value", raw)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values left by a partially built Config
func (c *Config) applyDefaults() {
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 64
	}
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 4 << 20
	}
	if c.Eval.AngleUnit == "" {
		c.Eval.AngleUnit = "degrees"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

// Source returns the file the configuration was loaded from, or "" when only
// defaults were used
func (c *Config) Source() string {
	return c.source
}

// EngineOptions converts the configuration into ngc engine options
func (c *Config) EngineOptions(logger *ngclog.Logger) (ngc.Options, error) {
	unit, err := eval.ParseAngleUnit(c.Eval.AngleUnit)
	if err != nil {
		return ngc.Options{}, err
	}
	return ngc.Options{
		Logger:            logger,
		MaxDepth:          c.Parser.MaxDepth,
		MaxInputLength:    c.Parser.MaxInputLength,
		AllowUnterminated: c.Parser.AllowUnterminated,
		AngleUnit:         unit,
	}, nil
}

// WriteTOML encodes the effective configuration as TOML
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
