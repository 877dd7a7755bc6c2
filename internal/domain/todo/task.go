package todo

import (
	"fmt"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/person"
)

// Task is a unit of work on a todo item, optionally assigned to a person.
type Task struct {
	id       int
	item     *Item
	assignee *person.Person
}

// TaskKey is the comparable value identity of a Task.
type TaskKey struct {
	ID       int
	Item     ItemKey
	Assigned bool
	Assignee person.Key
}

// NewTask validates and creates a Task. assignee may be nil.
func NewTask(id int, item *Item, assignee *person.Person) (*Task, error) {
	t := &Task{id: id, assignee: assignee}
	if err := t.SetTodoItem(item); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Task) ID() int                  { return t.id }
func (t *Task) TodoItem() *Item          { return t.item }
func (t *Task) Assignee() *person.Person { return t.assignee }

// SetTodoItem replaces the todo item; nil is rejected.
func (t *Task) SetTodoItem(item *Item) error {
	if item == nil {
		return domain.NullArgument("todo_item", "TodoItem")
	}
	t.item = item
	return nil
}

// SetAssignee replaces the assignee. Passing nil unassigns the task.
func (t *Task) SetAssignee(assignee *person.Person) {
	t.assignee = assignee
}

// IsAssigned reports whether the task has an assignee.
func (t *Task) IsAssigned() bool {
	return t.assignee != nil
}

// Key returns the identity used for equality and map lookups.
func (t *Task) Key() TaskKey {
	k := TaskKey{ID: t.id, Item: t.item.Key(), Assigned: t.IsAssigned()}
	if t.assignee != nil {
		k.Assignee = t.assignee.Key()
	}
	return k
}

// Equal compares id, todo item and assignee. Two nil tasks are equal.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Key() == other.Key()
}

// String implements fmt.Stringer.
func (t *Task) String() string {
	assignee := nullText
	if t.assignee != nil {
		assignee = t.assignee.String()
	}
	return fmt.Sprintf("TodoItemTask{id=%d, todoItem=%s, assignee=%s}", t.id, t.item, assignee)
}

// Summary returns the compact display form.
func (t *Task) Summary() string {
	assignee := nullText
	if t.assignee != nil {
		assignee = t.assignee.Summary()
	}
	return fmt.Sprintf("{id: %d, assigned: %t, todoItem: %s, assignee: %s}",
		t.id, t.IsAssigned(), t.item.Summary(), assignee)
}
