package memory

import (
	"slices"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/todo"
	"github.com/RichardOelschlager/TodoApp/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoItemTaskDAO = (*TodoItemTaskDAO)(nil)

// TodoItemTaskDAO is an in-memory ports.TodoItemTaskDAO.
type TodoItemTaskDAO struct {
	tasks collection[*todo.Task]
}

// NewTodoItemTaskDAO creates an empty TodoItemTaskDAO.
func NewTodoItemTaskDAO() *TodoItemTaskDAO {
	return &TodoItemTaskDAO{}
}

func taskByID(id int) func(*todo.Task) bool {
	return func(t *todo.Task) bool { return t.ID() == id }
}

func (d *TodoItemTaskDAO) Persist(t *todo.Task) (*todo.Task, error) {
	if t == nil {
		return nil, domain.NullArgument("todo_item_task", "TodoItemTask")
	}

	err := d.tasks.appendIf(t, func(tasks []*todo.Task) error {
		if slices.ContainsFunc(tasks, taskByID(t.ID())) {
			return &domain.DuplicateKeyError{Entity: "TodoItemTask", Key: "ID"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (d *TodoItemTaskDAO) FindByID(id int) *todo.Task {
	t, _ := d.tasks.first(taskByID(id))
	return t
}

func (d *TodoItemTaskDAO) FindAll() []*todo.Task {
	return d.tasks.snapshot()
}

func (d *TodoItemTaskDAO) FindByAssignedStatus(assigned bool) []*todo.Task {
	return d.tasks.filter(func(t *todo.Task) bool { return t.IsAssigned() == assigned })
}

// FindByPersonID matches on the assignee's id; unassigned tasks never match.
func (d *TodoItemTaskDAO) FindByPersonID(personID int) []*todo.Task {
	return d.tasks.filter(func(t *todo.Task) bool {
		return t.IsAssigned() && t.Assignee().ID() == personID
	})
}

func (d *TodoItemTaskDAO) Remove(id int) {
	d.tasks.removeIf(taskByID(id))
}
