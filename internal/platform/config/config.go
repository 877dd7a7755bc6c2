// Package config provides configuration loading and validation for the
// application. Configuration is loaded from YAML files with environment
// variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

// Config holds all configuration for the application.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Seed      SeedConfig      `koanf:"seed"`
	Sequence  SequenceConfig  `koanf:"sequence"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// SeedConfig selects the fixture file loaded at startup.
type SeedConfig struct {
	Enabled bool   `koanf:"enabled"`
	File    string `koanf:"file"`
}

// SequenceConfig holds the last-issued value of each id sequencer. The first
// id minted is start+1.
type SequenceConfig struct {
	PersonStart   int `koanf:"person_start"`
	TodoItemStart int `koanf:"todo_item_start"`
	TaskStart     int `koanf:"task_start"`
}
