// Package config loads the settings of the fhirmodel command.
package config

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/pkg/cache"
	"github.com/gofhir/model/pkg/logger"
	"github.com/gofhir/model/pkg/schema"
	"github.com/gofhir/model/pkg/validation"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "FHIRMODEL"

// Config holds the command settings.
type Config struct {
	LogLevel               string `mapstructure:"LOG_LEVEL"`
	LogFormat              string `mapstructure:"LOG_FORMAT"`
	Output                 string `mapstructure:"OUTPUT"`
	PackageDir             string `mapstructure:"PACKAGE_DIR"`
	ReferenceTypeChecks    bool   `mapstructure:"REFERENCE_TYPE_CHECKS"`
	ControlCharacterChecks bool   `mapstructure:"CONTROL_CHARACTER_CHECKS"`
	MaxStringLength        int    `mapstructure:"MAX_STRING_LENGTH"`
	ExpressionCacheSize    int    `mapstructure:"EXPRESSION_CACHE_SIZE"`
}

var keys = []string{
	"LOG_LEVEL",
	"LOG_FORMAT",
	"OUTPUT",
	"PACKAGE_DIR",
	"REFERENCE_TYPE_CHECKS",
	"CONTROL_CHARACTER_CHECKS",
	"MAX_STRING_LENGTH",
	"EXPRESSION_CACHE_SIZE",
}

// Load reads the configuration. FHIRMODEL_* environment variables take
// precedence over the config file, which takes precedence over the defaults.
// An empty file looks for fhirmodel.yaml in the working directory and ignores
// it when missing.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", string(logger.FormatConsole))
	v.SetDefault("OUTPUT", "text")
	v.SetDefault("PACKAGE_DIR", schema.DefaultPackageDir())
	v.SetDefault("REFERENCE_TYPE_CHECKS", true)
	v.SetDefault("CONTROL_CHARACTER_CHECKS", true)
	v.SetDefault("MAX_STRING_LENGTH", validation.DefaultMaxStringLength)
	v.SetDefault("EXPRESSION_CACHE_SIZE", cache.DefaultCapacity)

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	} else {
		v.SetConfigName("fhirmodel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that have a fixed set of choices.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case "text", "json":
	default:
		return errors.Errorf("OUTPUT must be \"text\" or \"json\", got %q", c.Output)
	}
	switch logger.Format(strings.ToLower(c.LogFormat)) {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return errors.Errorf("LOG_FORMAT must be %q or %q, got %q", logger.FormatConsole, logger.FormatJSON, c.LogFormat)
	}
	if c.MaxStringLength < 0 {
		return errors.Errorf("MAX_STRING_LENGTH must not be negative, got %d", c.MaxStringLength)
	}
	return nil
}

// JSONOutput reports whether results are printed as JSON.
func (c *Config) JSONOutput() bool {
	return strings.EqualFold(c.Output, "json")
}

// Options returns the model options the configuration selects.
func (c *Config) Options() []fhirmodel.Option {
	return []fhirmodel.Option{
		fhirmodel.WithReferenceTypeChecks(c.ReferenceTypeChecks),
		fhirmodel.WithControlCharacterChecks(c.ControlCharacterChecks),
		fhirmodel.WithMaxStringLength(c.MaxStringLength),
		fhirmodel.WithExpressionCache(c.ExpressionCacheSize),
	}
}

// Logger builds the logger the configuration selects, writing to w.
func (c *Config) Logger(w io.Writer) *logger.Logger {
	return logger.New(w, logger.ParseLevel(c.LogLevel), logger.Format(strings.ToLower(c.LogFormat)))
}
