package memory

import (
	"slices"
	"strings"
	"time"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/todo"
	"github.com/RichardOelschlager/TodoApp/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoItemDAO = (*TodoItemDAO)(nil)

// TodoItemDAO is an in-memory ports.TodoItemDAO.
type TodoItemDAO struct {
	items collection[*todo.Item]
}

// NewTodoItemDAO creates an empty TodoItemDAO.
func NewTodoItemDAO() *TodoItemDAO {
	return &TodoItemDAO{}
}

func itemByID(id int) func(*todo.Item) bool {
	return func(it *todo.Item) bool { return it.ID() == id }
}

func (d *TodoItemDAO) Persist(it *todo.Item) (*todo.Item, error) {
	if it == nil {
		return nil, domain.NullArgument("todo_item", "TodoItem")
	}

	err := d.items.appendIf(it, func(items []*todo.Item) error {
		if slices.ContainsFunc(items, itemByID(it.ID())) {
			return &domain.DuplicateKeyError{Entity: "TodoItem", Key: "ID"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (d *TodoItemDAO) FindByID(id int) *todo.Item {
	it, _ := d.items.first(itemByID(id))
	return it
}

func (d *TodoItemDAO) FindAll() []*todo.Item {
	return d.items.snapshot()
}

func (d *TodoItemDAO) FindAllByDoneStatus(done bool) []*todo.Item {
	return d.items.filter(func(it *todo.Item) bool { return it.Done() == done })
}

func (d *TodoItemDAO) FindByTitleContains(substr string) ([]*todo.Item, error) {
	if substr == "" {
		return nil, domain.NullArgument("title", "Title")
	}
	needle := strings.ToLower(substr)
	return d.items.filter(func(it *todo.Item) bool {
		return strings.Contains(strings.ToLower(it.Title()), needle)
	}), nil
}

// FindByPersonID matches on the creator's id. An item without a creator
// never matches.
func (d *TodoItemDAO) FindByPersonID(personID int) []*todo.Item {
	return d.items.filter(func(it *todo.Item) bool {
		return it.Creator() != nil && it.Creator().ID() == personID
	})
}

func (d *TodoItemDAO) FindByDeadlineBefore(date time.Time) ([]*todo.Item, error) {
	if date.IsZero() {
		return nil, domain.NullArgument("date", "Date")
	}
	day := todo.DateOf(date)
	return d.items.filter(func(it *todo.Item) bool { return it.Deadline().Before(day) }), nil
}

func (d *TodoItemDAO) FindByDeadlineAfter(date time.Time) ([]*todo.Item, error) {
	if date.IsZero() {
		return nil, domain.NullArgument("date", "Date")
	}
	day := todo.DateOf(date)
	return d.items.filter(func(it *todo.Item) bool { return it.Deadline().After(day) }), nil
}

func (d *TodoItemDAO) Remove(id int) {
	d.items.removeIf(itemByID(id))
}
