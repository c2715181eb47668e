// Package config provides centralized configuration management for fmfug.
// Values are layered: built-in defaults, an optional YAML config file, then
// FMFUG_* environment variables and command-line flags via viper.
package config

// Config represents the complete application configuration.
type Config struct {
	// Workers is the size of the generation worker pool.
	Workers int `mapstructure:"workers"`

	// CaseSensitive preserves input casing; when false all output is
	// lowercased.
	CaseSensitive bool `mapstructure:"case_sensitive"`

	// SuffixTruncation enables the corrected truncate-then-enumerate
	// behavior for numeric-suffix patterns like first[2]5.
	SuffixTruncation bool `mapstructure:"suffix_truncation"`

	Buffer  BufferConfig  `mapstructure:"buffer"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BufferConfig controls output buffering for file destinations.
type BufferConfig struct {
	// Lines is the number of usernames held before one batched write.
	Lines int `mapstructure:"lines"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level.
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`
}
