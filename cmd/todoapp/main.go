// Package main is the entry point for the todo application. It wires all
// dependencies using samber/do v2, seeds the in-memory stores from the
// fixture file, reports store integrity, and logs the resulting todo items.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/samber/do/v2"

	"github.com/RichardOelschlager/TodoApp/internal/adapters/fixtures"
	"github.com/RichardOelschlager/TodoApp/internal/adapters/memory"
	"github.com/RichardOelschlager/TodoApp/internal/app"
	"github.com/RichardOelschlager/TodoApp/internal/platform/config"
	"github.com/RichardOelschlager/TodoApp/internal/platform/health"
	"github.com/RichardOelschlager/TodoApp/internal/platform/logging"
	"github.com/RichardOelschlager/TodoApp/internal/platform/sequence"
	"github.com/RichardOelschlager/TodoApp/internal/platform/telemetry"
	"github.com/RichardOelschlager/TodoApp/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	ctx := logging.WithLogger(context.Background(), logger)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	svc, err := do.Invoke[ports.TodoService](injector)
	if err != nil {
		return fmt.Errorf("resolving todo service: %w", err)
	}
	stores := do.MustInvoke[app.Stores](injector)
	registry := do.MustInvoke[ports.HealthRegistry](injector)

	if cfg.Seed.Enabled {
		if err := seed(ctx, svc, cfg.Seed.File); err != nil {
			return err
		}
	}

	reportIntegrity(ctx, logger, registry)

	if err := reportItems(ctx, logger, svc, stores); err != nil {
		return err
	}

	logger.Info("done")
	return nil
}

func seed(ctx context.Context, svc ports.TodoService, path string) error {
	s, err := fixtures.Load(path)
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}
	if _, err := fixtures.Apply(ctx, svc, s); err != nil {
		return fmt.Errorf("applying fixtures: %w", err)
	}
	return nil
}

// reportIntegrity logs a warning for every failing integrity check.
func reportIntegrity(ctx context.Context, logger *slog.Logger, registry ports.HealthRegistry) {
	for name, err := range registry.CheckAll(ctx) {
		if err != nil {
			logger.WarnContext(ctx, "integrity check failed",
				slog.String("check", name),
				slog.Any("error", err),
			)
		}
	}
}

func reportItems(ctx context.Context, logger *slog.Logger, svc ports.TodoService, stores app.Stores) error {
	for _, it := range stores.Items.FindAll() {
		logger.InfoContext(ctx, "todo item", slog.String("summary", it.Summary()))
	}
	for _, task := range stores.Tasks.FindAll() {
		logger.InfoContext(ctx, "task", slog.String("summary", task.Summary()))
	}

	overdue, err := svc.OverdueItems(ctx)
	if err != nil {
		return fmt.Errorf("listing overdue items: %w", err)
	}
	for _, it := range overdue {
		logger.WarnContext(ctx, "overdue todo item",
			slog.Int("todo_item_id", it.ID()),
			slog.String("title", it.Title()),
			slog.Time("deadline", it.Deadline()),
		)
	}
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (app.Stores, error) {
		return app.Stores{
			People: memory.NewPersonDAO(),
			Users:  memory.NewAppUserDAO(),
			Items:  memory.NewTodoItemDAO(),
			Tasks:  memory.NewTodoItemTaskDAO(),
		}, nil
	})

	do.Provide(injector, func(_ do.Injector) (app.Sequences, error) {
		return app.Sequences{
			Person:   sequence.New("person", cfg.Sequence.PersonStart),
			TodoItem: sequence.New("todo_item", cfg.Sequence.TodoItemStart),
			Task:     sequence.New("todo_item_task", cfg.Sequence.TaskStart),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		stores := do.MustInvoke[app.Stores](i)
		seqs := do.MustInvoke[app.Sequences](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTodoService(stores, seqs, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		app.RegisterIntegrityChecks(registry, do.MustInvoke[app.Stores](i))
		return registry, nil
	})
}
