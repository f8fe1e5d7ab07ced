package config

import "time"

// Config holds all tool configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Output OutputConfig `mapstructure:"output" validate:"required"`
	Server ServerConfig `mapstructure:"server" validate:"required"`

	// EnvFiles are dotenv files layered over the process environment before
	// resolution, later files winning.
	EnvFiles []string `mapstructure:"env_files"`

	// Profiles restricts resolution to the named resolvers. Empty means all.
	Profiles []string `mapstructure:"profiles" validate:"dive,required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// OutputConfig controls how resolved settings are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=json yaml php dotenv"`
	Redact bool   `mapstructure:"redact"`
}

// ServerConfig contains HTTP server settings for the serve command.
type ServerConfig struct {
	Addr              string        `mapstructure:"addr" validate:"required,hostname_port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}
