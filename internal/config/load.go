package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration environment variable,
// e.g. ENVSETTINGS_LOG_LEVEL.
const EnvPrefix = "ENVSETTINGS"

// Default values
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
	DefaultOutputFormat      = "json"
	DefaultServerAddr        = ":8080"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
)

// FlagBindings maps configuration keys to the command-line flag names that
// override them.
var FlagBindings = map[string]string{
	"log.level":     "log-level",
	"log.format":    "log-format",
	"output.format": "format",
	"output.redact": "redact",
	"server.addr":   "addr",
	"env_files":     "env-file",
	"profiles":      "profile",
}

// Load reads configuration with the following precedence, highest first:
// flags that were set explicitly, ENVSETTINGS_* environment variables, the
// config file, defaults.
//
// file may be empty, in which case ./envsettings.yaml is used if it exists.
// flags may be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, file); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, name := range FlagBindings {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("output.redact", false)
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("server.read_header_timeout", DefaultReadHeaderTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("env_files", []string{})
	v.SetDefault("profiles", []string{})
}

func readConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		return nil
	}

	v.SetConfigName("envsettings")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
