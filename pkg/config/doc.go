// Package config handles configuration management for carp.
// It supports loading configuration from multiple sources including
// the embedded defaults, a TOML file, environment variables, and
// command-line flags.
package config
