// Package todo holds the TodoItem and TodoItemTask entities.
package todo

import (
	"fmt"
	"time"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/person"
	"github.com/RichardOelschlager/TodoApp/internal/platform/optional"
)

// nullText is printed wherever an optional value is absent.
const nullText = "null"

// Item is a todo item created by a person. Deadlines are calendar days.
type Item struct {
	id          int
	title       string
	description optional.Value[string]
	deadline    time.Time
	done        bool
	creator     *person.Person
}

// ItemKey is the comparable value identity of an Item. Every field takes part.
type ItemKey struct {
	ID          int
	Title       string
	Description optional.Value[string]
	Deadline    time.Time
	Done        bool
	Creator     person.Key
}

// NewItem validates and creates a not-done Item. The deadline is truncated to
// its calendar day.
func NewItem(id int, title string, description optional.Value[string], deadline time.Time, creator *person.Person) (*Item, error) {
	it := &Item{id: id, description: description}
	if err := it.SetTitle(title); err != nil {
		return nil, err
	}
	if err := it.SetDeadline(deadline); err != nil {
		return nil, err
	}
	if err := it.SetCreator(creator); err != nil {
		return nil, err
	}
	return it, nil
}

func (it *Item) ID() int                             { return it.id }
func (it *Item) Title() string                       { return it.title }
func (it *Item) Description() optional.Value[string] { return it.description }
func (it *Item) Deadline() time.Time                 { return it.deadline }
func (it *Item) Done() bool                          { return it.done }
func (it *Item) Creator() *person.Person             { return it.creator }

// SetTitle replaces the title; a blank value is rejected.
func (it *Item) SetTitle(title string) error {
	if err := domain.RequireText("title", "Title", title); err != nil {
		return err
	}
	it.title = title
	return nil
}

// SetDescription replaces the optional description.
func (it *Item) SetDescription(description optional.Value[string]) {
	it.description = description
}

// SetDeadline replaces the deadline; the zero time counts as missing.
func (it *Item) SetDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return domain.NullArgument("deadline", "Deadline")
	}
	it.deadline = DateOf(deadline)
	return nil
}

func (it *Item) SetDone(done bool) {
	it.done = done
}

// SetCreator replaces the creator; nil is rejected.
func (it *Item) SetCreator(creator *person.Person) error {
	if creator == nil {
		return domain.NullArgument("creator", "Creator")
	}
	it.creator = creator
	return nil
}

// IsOverdue reports whether today is strictly after the deadline.
func (it *Item) IsOverdue() bool {
	return it.IsOverdueAt(time.Now())
}

// IsOverdueAt is IsOverdue evaluated against the calendar day of now.
// An item due on that day is not overdue.
func (it *Item) IsOverdueAt(now time.Time) bool {
	return DateOf(now).After(it.deadline)
}

// Key returns the identity used for equality and map lookups.
func (it *Item) Key() ItemKey {
	return ItemKey{
		ID:          it.id,
		Title:       it.title,
		Description: it.description,
		Deadline:    it.deadline,
		Done:        it.done,
		Creator:     it.creator.Key(),
	}
}

// Equal compares every field, including the creator's value. Two nil items
// are equal.
func (it *Item) Equal(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	return it.Key() == other.Key()
}

// String implements fmt.Stringer.
func (it *Item) String() string {
	return fmt.Sprintf("TodoItem{id=%d, title='%s', description='%s', deadLine=%s, done=%t, creator=%s}",
		it.id, it.title, it.description.OrElse(nullText), it.deadline.Format(dateLayout), it.done, it.creator)
}

// Summary returns the compact display form, embedding the creator's summary.
func (it *Item) Summary() string {
	return fmt.Sprintf("{id: %d, title: %s, description: %s, deadLine: %s, done: %t, creator: %s}",
		it.id, it.title, it.description.OrElse(nullText), it.deadline.Format(dateLayout), it.done, it.creator.Summary())
}
