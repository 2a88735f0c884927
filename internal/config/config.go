package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Source Source       `yaml:"source" mapstructure:"source"`
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// Source configures where client records are loaded from.
type Source struct {
	// Driver selects the backend: demo, json, csv, sqlite or postgres.
	Driver string `yaml:"driver" mapstructure:"driver"`
	// Path is the file path for the json, csv and sqlite drivers.
	Path string `yaml:"path" mapstructure:"path"`
	// DatabaseURL is the connection string for the postgres driver.
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	// IntakePath optionally points at an intake questionnaire YAML file.
	IntakePath string `yaml:"intake_path" mapstructure:"intake_path"`
}

// EngineConfig tunes report generation.
type EngineConfig struct {
	// LTVWindowMonths is the observation window used to annualize revenue.
	LTVWindowMonths float64 `yaml:"ltv_window_months" mapstructure:"ltv_window_months"`
	// DeriveLTVWindow derives the window from the record date range instead.
	DeriveLTVWindow bool `yaml:"derive_ltv_window" mapstructure:"derive_ltv_window"`
	// TargetsFile optionally points at a YAML file overriding health targets.
	TargetsFile string `yaml:"targets_file" mapstructure:"targets_file"`
}

// ServerConfig configures the report HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("HOTLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.driver", "demo")
	v.SetDefault("engine.ltv_window_months", 5.0)
	v.SetDefault("engine.derive_ltv_window", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
