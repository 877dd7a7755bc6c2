package ports

import "context"

// HealthChecker is implemented by any component that can report its health.
// The store integrity checks are the main implementations.
type HealthChecker interface {
	// Name returns a human-readable identifier for this check
	// (e.g., "todo-item-creators").
	Name() string

	// HealthCheck performs the check and returns nil if healthy, or an error
	// describing the failure.
	// Implementations should respect context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// The composition root runs it after seeding and logs each failure.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
