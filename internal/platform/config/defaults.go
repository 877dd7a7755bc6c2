package config

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todoapp",

		"seed.enabled": false,
		"seed.file":    "configs/seed.yaml",

		"sequence.person_start":    0,
		"sequence.todo_item_start": 0,
		"sequence.task_start":      0,
	}
}
