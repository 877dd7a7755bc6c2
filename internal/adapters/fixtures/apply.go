package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/RichardOelschlager/TodoApp/internal/domain/user"
	"github.com/RichardOelschlager/TodoApp/internal/platform/logging"
	"github.com/RichardOelschlager/TodoApp/internal/platform/optional"
	"github.com/RichardOelschlager/TodoApp/internal/ports"
)

// Result counts the records applied per entity.
type Result struct {
	Users     int
	People    int
	TodoItems int
	Tasks     int
}

// Apply registers the seed through svc in dependency order: users, people,
// todo items, tasks. It stops at the first failing record; records applied
// before it stay applied. The logger is taken from ctx.
func Apply(ctx context.Context, svc ports.TodoService, seed *Seed) (Result, error) {
	logger := logging.FromContext(ctx)
	var res Result

	for i, rec := range seed.Users {
		role, err := user.ParseRole(rec.Role)
		if err != nil {
			return res, fmt.Errorf("users[%d]: %w", i, err)
		}
		if _, err := svc.RegisterUser(ctx, rec.Username, rec.Password, role); err != nil {
			return res, fmt.Errorf("users[%d]: %w", i, err)
		}
		res.Users++
	}

	personIDs := make(map[string]int, len(seed.People))
	for i, rec := range seed.People {
		p, err := svc.RegisterPerson(ctx, rec.FirstName, rec.LastName, rec.Email, rec.Username)
		if err != nil {
			return res, fmt.Errorf("people[%d]: %w", i, err)
		}
		personIDs[strings.ToLower(rec.Email)] = p.ID()
		res.People++
	}

	itemIDs := make(map[string]int, len(seed.TodoItems))
	for i, rec := range seed.TodoItems {
		creatorID, ok := personIDs[strings.ToLower(rec.Creator)]
		if !ok {
			return res, fmt.Errorf("todo_items[%d]: creator %q: %w", i, rec.Creator, ErrUnknownReference)
		}
		deadline, err := time.Parse(time.DateOnly, rec.Deadline)
		if err != nil {
			return res, fmt.Errorf("todo_items[%d]: parsing deadline: %w", i, err)
		}

		description := optional.None[string]()
		if rec.Description != nil {
			description = optional.Some(*rec.Description)
		}

		it, err := svc.CreateTodoItem(ctx, rec.Title, description, deadline, creatorID)
		if err != nil {
			return res, fmt.Errorf("todo_items[%d]: %w", i, err)
		}
		if rec.Done {
			if _, err := svc.CompleteTodoItem(ctx, it.ID()); err != nil {
				return res, fmt.Errorf("todo_items[%d]: %w", i, err)
			}
		}
		itemIDs[rec.Key] = it.ID()
		res.TodoItems++
	}

	for i, rec := range seed.Tasks {
		itemID, ok := itemIDs[rec.TodoItem]
		if !ok {
			return res, fmt.Errorf("tasks[%d]: todo item %q: %w", i, rec.TodoItem, ErrUnknownReference)
		}

		var assigneeID *int
		if rec.Assignee != "" {
			id, ok := personIDs[strings.ToLower(rec.Assignee)]
			if !ok {
				return res, fmt.Errorf("tasks[%d]: assignee %q: %w", i, rec.Assignee, ErrUnknownReference)
			}
			assigneeID = &id
		}

		if _, err := svc.CreateTask(ctx, itemID, assigneeID); err != nil {
			return res, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		res.Tasks++
	}

	logger.InfoContext(ctx, "seed applied",
		slog.Int("users", res.Users),
		slog.Int("people", res.People),
		slog.Int("todo_items", res.TodoItems),
		slog.Int("tasks", res.Tasks),
	)
	return res, nil
}
