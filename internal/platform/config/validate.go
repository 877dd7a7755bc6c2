package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Seed.validate(),
		c.Sequence.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}

func (s *SeedConfig) validate() error {
	if s.Enabled && s.File == "" {
		return errors.New("seed.file must not be empty when seeding is enabled")
	}
	return nil
}

func (s *SequenceConfig) validate() error {
	var errs []error

	starts := []struct {
		key   string
		value int
	}{
		{"sequence.person_start", s.PersonStart},
		{"sequence.todo_item_start", s.TodoItemStart},
		{"sequence.task_start", s.TaskStart},
	}
	for _, st := range starts {
		if st.value < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %d", st.key, st.value))
		}
	}

	return errors.Join(errs...)
}
