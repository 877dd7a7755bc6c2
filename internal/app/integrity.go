package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/RichardOelschlager/TodoApp/internal/ports"
)

// ErrDanglingReference is reported by the integrity checks for an entity
// that points at something no longer stored. Removals never cascade, so this
// is a reportable state rather than a failure of the stores.
var ErrDanglingReference = errors.New("dangling reference")

// Compile-time interface checks.
var (
	_ ports.HealthChecker = (*CreatorCheck)(nil)
	_ ports.HealthChecker = (*TaskReferenceCheck)(nil)
)

// CreatorCheck reports todo items whose creator is no longer stored.
type CreatorCheck struct {
	people ports.PersonDAO
	items  ports.TodoItemDAO
}

// NewCreatorCheck creates a CreatorCheck over the given stores.
func NewCreatorCheck(people ports.PersonDAO, items ports.TodoItemDAO) *CreatorCheck {
	return &CreatorCheck{people: people, items: items}
}

func (c *CreatorCheck) Name() string { return "todo-item-creators" }

func (c *CreatorCheck) HealthCheck(ctx context.Context) error {
	var errs []error
	for _, it := range c.items.FindAll() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.people.FindByID(it.Creator().ID()) == nil {
			errs = append(errs, fmt.Errorf("todo item %d: creator %d: %w",
				it.ID(), it.Creator().ID(), ErrDanglingReference))
		}
	}
	return errors.Join(errs...)
}

// TaskReferenceCheck reports tasks whose todo item or assignee is no longer
// stored. Unassigned tasks only have their item checked.
type TaskReferenceCheck struct {
	people ports.PersonDAO
	items  ports.TodoItemDAO
	tasks  ports.TodoItemTaskDAO
}

// NewTaskReferenceCheck creates a TaskReferenceCheck over the given stores.
func NewTaskReferenceCheck(people ports.PersonDAO, items ports.TodoItemDAO, tasks ports.TodoItemTaskDAO) *TaskReferenceCheck {
	return &TaskReferenceCheck{people: people, items: items, tasks: tasks}
}

func (c *TaskReferenceCheck) Name() string { return "task-references" }

func (c *TaskReferenceCheck) HealthCheck(ctx context.Context) error {
	var errs []error
	for _, task := range c.tasks.FindAll() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.items.FindByID(task.TodoItem().ID()) == nil {
			errs = append(errs, fmt.Errorf("task %d: todo item %d: %w",
				task.ID(), task.TodoItem().ID(), ErrDanglingReference))
		}
		if task.IsAssigned() && c.people.FindByID(task.Assignee().ID()) == nil {
			errs = append(errs, fmt.Errorf("task %d: assignee %d: %w",
				task.ID(), task.Assignee().ID(), ErrDanglingReference))
		}
	}
	return errors.Join(errs...)
}

// RegisterIntegrityChecks adds every store integrity check to reg.
func RegisterIntegrityChecks(reg ports.HealthRegistry, stores Stores) {
	reg.Register(NewCreatorCheck(stores.People, stores.Items))
	reg.Register(NewTaskReferenceCheck(stores.People, stores.Items, stores.Tasks))
}
