// Package config handles configuration management for appcenter-devices.
// It layers, from lowest to highest priority, the embedded defaults, an optional
// TOML or YAML config file, APPCENTER_* environment variables and command-line
// flags, then decodes the result into a Config.
package config
