// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and the stores through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/person"
	"github.com/RichardOelschlager/TodoApp/internal/domain/todo"
	"github.com/RichardOelschlager/TodoApp/internal/domain/user"
	"github.com/RichardOelschlager/TodoApp/internal/platform/optional"
	"github.com/RichardOelschlager/TodoApp/internal/platform/sequence"
	"github.com/RichardOelschlager/TodoApp/internal/platform/telemetry"
	"github.com/RichardOelschlager/TodoApp/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// Entity names used in metric attributes and not-found errors.
const (
	entityPerson   = "person"
	entityAppUser  = "app_user"
	entityTodoItem = "todo_item"
	entityTask     = "todo_item_task"
)

// Stores groups the DAO ports the service works against.
type Stores struct {
	People ports.PersonDAO
	Users  ports.AppUserDAO
	Items  ports.TodoItemDAO
	Tasks  ports.TodoItemTaskDAO
}

// Sequences groups the id sequencers, one per entity with a numeric id.
type Sequences struct {
	Person   *sequence.Sequencer
	TodoItem *sequence.Sequencer
	Task     *sequence.Sequencer
}

// TodoService implements ports.TodoService. It mints ids, resolves
// references between entities, and logs, traces and measures each use case.
// Entity validation stays in the domain packages.
type TodoService struct {
	stores  Stores
	seqs    Sequences
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewTodoService creates a TodoService. A nil metrics disables metric
// recording; a nil logger discards log output.
func NewTodoService(stores Stores, seqs Sequences, metrics *telemetry.Metrics, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		stores:  stores,
		seqs:    seqs,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// RegisterPerson creates a person with the next person id and stores it.
func (s *TodoService) RegisterPerson(ctx context.Context, firstName, lastName, email, username string) (_ *person.Person, err error) {
	ctx, span := startSpan(ctx, "RegisterPerson")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "registering person", slog.String("email", email))

	var creds *user.AppUser
	if username != "" {
		if creds, err = s.findUser(ctx, "RegisterPerson", username); err != nil {
			return nil, err
		}
	}

	p, err := person.NewWithCredentials(s.seqs.Person.Next(), firstName, lastName, email, creds)
	if err != nil {
		return nil, err
	}

	err = s.observe(ctx, entityPerson, "persist", func() error {
		_, err := s.stores.People.Persist(p)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist person",
			slog.String("operation", "RegisterPerson"),
			slog.Int("person_id", p.ID()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("persisting person: %w", err)
	}

	span.SetAttributes(attribute.Int("person.id", p.ID()))
	return p, nil
}

// RegisterUser creates credentials and stores them.
func (s *TodoService) RegisterUser(ctx context.Context, username, password string, role user.Role) (_ *user.AppUser, err error) {
	ctx, span := startSpan(ctx, "RegisterUser")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "registering user",
		slog.String("username", username),
		slog.String("role", role.String()),
	)

	u, err := user.New(username, password, role)
	if err != nil {
		return nil, err
	}

	err = s.observe(ctx, entityAppUser, "persist", func() error {
		_, err := s.stores.Users.Persist(u)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist user",
			slog.String("operation", "RegisterUser"),
			slog.Any("user", u),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("persisting user: %w", err)
	}

	return u, nil
}

// AttachCredentials links stored credentials to a stored person.
func (s *TodoService) AttachCredentials(ctx context.Context, personID int, username string) (_ *person.Person, err error) {
	ctx, span := startSpan(ctx, "AttachCredentials")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "attaching credentials",
		slog.Int("person_id", personID),
		slog.String("username", username),
	)

	p, err := s.findPerson(ctx, "AttachCredentials", personID)
	if err != nil {
		return nil, err
	}
	u, err := s.findUser(ctx, "AttachCredentials", username)
	if err != nil {
		return nil, err
	}

	p.SetCredentials(u)
	return p, nil
}

// CreateTodoItem creates a not-done item with the next item id.
func (s *TodoService) CreateTodoItem(ctx context.Context, title string, description optional.Value[string], deadline time.Time, creatorID int) (_ *todo.Item, err error) {
	ctx, span := startSpan(ctx, "CreateTodoItem")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "creating todo item",
		slog.String("title", title),
		slog.Int("creator_id", creatorID),
	)

	creator, err := s.findPerson(ctx, "CreateTodoItem", creatorID)
	if err != nil {
		return nil, err
	}

	it, err := todo.NewItem(s.seqs.TodoItem.Next(), title, description, deadline, creator)
	if err != nil {
		return nil, err
	}

	err = s.observe(ctx, entityTodoItem, "persist", func() error {
		_, err := s.stores.Items.Persist(it)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist todo item",
			slog.String("operation", "CreateTodoItem"),
			slog.Int("todo_item_id", it.ID()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("persisting todo item: %w", err)
	}

	span.SetAttributes(attribute.Int("todo_item.id", it.ID()))
	return it, nil
}

// CreateTask creates a task with the next task id. A nil assigneeID leaves
// the task unassigned.
func (s *TodoService) CreateTask(ctx context.Context, todoItemID int, assigneeID *int) (_ *todo.Task, err error) {
	ctx, span := startSpan(ctx, "CreateTask")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "creating task", slog.Int("todo_item_id", todoItemID))

	it, err := s.findItem(ctx, "CreateTask", todoItemID)
	if err != nil {
		return nil, err
	}

	var assignee *person.Person
	if assigneeID != nil {
		if assignee, err = s.findPerson(ctx, "CreateTask", *assigneeID); err != nil {
			return nil, err
		}
	}

	task, err := todo.NewTask(s.seqs.Task.Next(), it, assignee)
	if err != nil {
		return nil, err
	}

	err = s.observe(ctx, entityTask, "persist", func() error {
		_, err := s.stores.Tasks.Persist(task)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist task",
			slog.String("operation", "CreateTask"),
			slog.Int("task_id", task.ID()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("persisting task: %w", err)
	}

	return task, nil
}

// AssignTask sets the assignee of a stored task.
func (s *TodoService) AssignTask(ctx context.Context, taskID, personID int) (_ *todo.Task, err error) {
	ctx, span := startSpan(ctx, "AssignTask")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "assigning task",
		slog.Int("task_id", taskID),
		slog.Int("person_id", personID),
	)

	task, err := s.findTask(ctx, "AssignTask", taskID)
	if err != nil {
		return nil, err
	}
	assignee, err := s.findPerson(ctx, "AssignTask", personID)
	if err != nil {
		return nil, err
	}

	task.SetAssignee(assignee)
	return task, nil
}

// UnassignTask clears the assignee of a stored task.
func (s *TodoService) UnassignTask(ctx context.Context, taskID int) (_ *todo.Task, err error) {
	ctx, span := startSpan(ctx, "UnassignTask")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "unassigning task", slog.Int("task_id", taskID))

	task, err := s.findTask(ctx, "UnassignTask", taskID)
	if err != nil {
		return nil, err
	}

	task.SetAssignee(nil)
	return task, nil
}

// CompleteTodoItem marks a stored item done. Completing a done item is a no-op.
func (s *TodoService) CompleteTodoItem(ctx context.Context, id int) (_ *todo.Item, err error) {
	ctx, span := startSpan(ctx, "CompleteTodoItem")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "completing todo item", slog.Int("todo_item_id", id))

	it, err := s.findItem(ctx, "CompleteTodoItem", id)
	if err != nil {
		return nil, err
	}

	it.SetDone(true)
	return it, nil
}

// OverdueItems returns the not-done items whose deadline is before today,
// in store order.
func (s *TodoService) OverdueItems(ctx context.Context) (_ []*todo.Item, err error) {
	ctx, span := startSpan(ctx, "OverdueItems")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "listing overdue todo items")

	var candidates []*todo.Item
	err = s.observe(ctx, entityTodoItem, "find_by_deadline_before", func() error {
		var err error
		candidates, err = s.stores.Items.FindByDeadlineBefore(todo.DateOf(s.now()))
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list overdue todo items",
			slog.String("operation", "OverdueItems"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("finding todo items by deadline: %w", err)
	}

	overdue := make([]*todo.Item, 0, len(candidates))
	for _, it := range candidates {
		if !it.Done() {
			overdue = append(overdue, it)
		}
	}

	span.SetAttributes(attribute.Int("todo_item.overdue", len(overdue)))
	return overdue, nil
}

// RemovePerson deletes a stored person. Items they created and tasks
// assigned to them keep their references.
func (s *TodoService) RemovePerson(ctx context.Context, id int) (err error) {
	ctx, span := startSpan(ctx, "RemovePerson")
	defer func() { finishSpan(span, err) }()

	s.logger.InfoContext(ctx, "removing person", slog.Int("person_id", id))

	if _, err := s.findPerson(ctx, "RemovePerson", id); err != nil {
		return err
	}

	_ = s.observe(ctx, entityPerson, "remove", func() error {
		s.stores.People.Remove(id)
		return nil
	})
	return nil
}

func (s *TodoService) findPerson(ctx context.Context, operation string, id int) (*person.Person, error) {
	var p *person.Person
	_ = s.observe(ctx, entityPerson, "find_by_id", func() error {
		p = s.stores.People.FindByID(id)
		return nil
	})
	if p == nil {
		err := notFound(entityPerson, id)
		s.logger.WarnContext(ctx, "person not found",
			slog.String("operation", operation),
			slog.Int("person_id", id),
		)
		return nil, err
	}
	return p, nil
}

func (s *TodoService) findUser(ctx context.Context, operation, username string) (*user.AppUser, error) {
	var u *user.AppUser
	err := s.observe(ctx, entityAppUser, "find_by_username", func() error {
		var err error
		u, err = s.stores.Users.FindByUsername(username)
		return err
	})
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.logger.WarnContext(ctx, "user not found",
			slog.String("operation", operation),
			slog.String("username", username),
		)
		return nil, notFound(entityAppUser, username)
	}
	return u, nil
}

func (s *TodoService) findItem(ctx context.Context, operation string, id int) (*todo.Item, error) {
	var it *todo.Item
	_ = s.observe(ctx, entityTodoItem, "find_by_id", func() error {
		it = s.stores.Items.FindByID(id)
		return nil
	})
	if it == nil {
		s.logger.WarnContext(ctx, "todo item not found",
			slog.String("operation", operation),
			slog.Int("todo_item_id", id),
		)
		return nil, notFound(entityTodoItem, id)
	}
	return it, nil
}

func (s *TodoService) findTask(ctx context.Context, operation string, id int) (*todo.Task, error) {
	var task *todo.Task
	_ = s.observe(ctx, entityTask, "find_by_id", func() error {
		task = s.stores.Tasks.FindByID(id)
		return nil
	})
	if task == nil {
		s.logger.WarnContext(ctx, "task not found",
			slog.String("operation", operation),
			slog.Int("task_id", id),
		)
		return nil, notFound(entityTask, id)
	}
	return task, nil
}

func notFound(entity string, key any) error {
	return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
}

// observe runs a single store operation and records its duration and
// outcome. Safe to call with nil metrics.
func (s *TodoService) observe(ctx context.Context, entity, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	if s.metrics == nil {
		return err
	}

	attrs := metric.WithAttributes(
		telemetry.AttrEntity.String(entity),
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result(err)),
	)
	s.metrics.OperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.OperationTotal.Add(ctx, 1, attrs)
	return err
}

func result(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrDuplicateKey):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "error"
	}
}

func startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("app")
	return tracer.Start(ctx, "TodoService."+operation,
		trace.WithAttributes(attribute.String("todoapp.operation", operation)),
	)
}

// finishSpan records err on the span, if any, and ends it.
func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
