// Package config provides configuration loading and validation for the
// neatimf tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLanguage     = errors.New("language must not be empty")
	ErrInvalidPort         = errors.New("invalid metrics port")
)

// Output formats accepted by the import command.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Default configuration values.
const (
	defaultLanguage   = "en"
	defaultSpace      = "imf_space"
	defaultExternalID = "IMFDataModel"
	defaultVersion    = "v1"
	defaultFormat     = FormatYAML
	defaultLogLevel   = "info"
	maxPort           = 65535
)

// Config holds all configuration for the neatimf tool.
type Config struct {
	Import        ImportConfig        `mapstructure:"import"`
	Output        OutputConfig        `mapstructure:"output"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ImportConfig holds importer-specific configuration.
type ImportConfig struct {
	Language       string `mapstructure:"language"`
	Space          string `mapstructure:"space"`
	ExternalID     string `mapstructure:"external_id"`
	Version        string `mapstructure:"version"`
	RawIdentifiers bool   `mapstructure:"raw_identifiers"`
}

// OutputConfig holds output-specific configuration.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Directory string `mapstructure:"directory"`
	Compress  bool   `mapstructure:"compress"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// ObservabilityConfig holds telemetry export configuration.
type ObservabilityConfig struct {
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	OTLPInsecure   bool   `mapstructure:"otlp_insecure"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("neatimf")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/neatimf")
	}

	viperCfg.SetEnvPrefix("NEATIMF")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Import defaults.
	viperCfg.SetDefault("import.language", defaultLanguage)
	viperCfg.SetDefault("import.space", defaultSpace)
	viperCfg.SetDefault("import.external_id", defaultExternalID)
	viperCfg.SetDefault("import.version", defaultVersion)
	viperCfg.SetDefault("import.raw_identifiers", false)

	// Output defaults.
	viperCfg.SetDefault("output.format", defaultFormat)
	viperCfg.SetDefault("output.directory", ".")
	viperCfg.SetDefault("output.compress", false)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.json", false)

	// Observability defaults.
	viperCfg.SetDefault("observability.otlp_endpoint", "")
	viperCfg.SetDefault("observability.otlp_insecure", false)
	viperCfg.SetDefault("observability.prometheus_port", 0)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Import.Language == "" {
		return ErrInvalidLanguage
	}

	if config.Output.Format != FormatYAML && config.Output.Format != FormatJSON {
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, config.Output.Format)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLogLevel, config.Logging.Level)
	}

	if config.Observability.PrometheusPort < 0 || config.Observability.PrometheusPort > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, config.Observability.PrometheusPort)
	}

	return nil
}
