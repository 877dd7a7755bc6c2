package ports

import (
	"time"

	"github.com/RichardOelschlager/TodoApp/internal/domain/person"
	"github.com/RichardOelschlager/TodoApp/internal/domain/todo"
	"github.com/RichardOelschlager/TodoApp/internal/domain/user"
)

// PersonDAO stores people. Uniqueness: id, and email (case-insensitive).
// Lookups return nil when nothing matches; "not found" is never an error.
type PersonDAO interface {
	// Persist stores p and returns it. Returns domain.ErrInvalidArgument for
	// a nil person and domain.ErrDuplicateKey when the id or email is taken.
	Persist(p *person.Person) (*person.Person, error)

	// FindByID returns the person with the given id, or nil.
	FindByID(id int) *person.Person

	// FindByEmail returns the first person whose email matches
	// case-insensitively, or nil. Returns domain.ErrInvalidArgument for an
	// empty email.
	FindByEmail(email string) (*person.Person, error)

	// FindAll returns a snapshot of all people in insertion order.
	FindAll() []*person.Person

	// Remove deletes every person with the given id. Unknown ids are a no-op.
	Remove(id int)
}

// AppUserDAO stores login credentials. Uniqueness: username (case-insensitive).
type AppUserDAO interface {
	// Persist stores u and returns it. Returns domain.ErrInvalidArgument for
	// a nil user and domain.ErrDuplicateKey when the username is taken.
	Persist(u *user.AppUser) (*user.AppUser, error)

	// FindByUsername returns the matching user, or nil. Returns
	// domain.ErrInvalidArgument for an empty username.
	FindByUsername(username string) (*user.AppUser, error)

	// FindAll returns a snapshot of all users in insertion order.
	FindAll() []*user.AppUser

	// Remove deletes the users matching username case-insensitively.
	// Returns domain.ErrInvalidArgument for an empty username; unknown
	// usernames are a no-op.
	Remove(username string) error
}

// TodoItemDAO stores todo items. Uniqueness: id.
// All list queries return snapshots in insertion order.
type TodoItemDAO interface {
	// Persist stores it and returns it. Returns domain.ErrInvalidArgument for
	// a nil item and domain.ErrDuplicateKey when the id is taken.
	Persist(it *todo.Item) (*todo.Item, error)

	// FindByID returns the item with the given id, or nil.
	FindByID(id int) *todo.Item

	// FindAll returns a snapshot of all items.
	FindAll() []*todo.Item

	// FindAllByDoneStatus returns items whose done flag equals done.
	FindAllByDoneStatus(done bool) []*todo.Item

	// FindByTitleContains returns items whose title contains substr,
	// ignoring case. Returns domain.ErrInvalidArgument for an empty substr.
	FindByTitleContains(substr string) ([]*todo.Item, error)

	// FindByPersonID returns items created by the person with personID.
	FindByPersonID(personID int) []*todo.Item

	// FindByDeadlineBefore returns items due strictly before date's day.
	// Returns domain.ErrInvalidArgument for the zero date.
	FindByDeadlineBefore(date time.Time) ([]*todo.Item, error)

	// FindByDeadlineAfter returns items due strictly after date's day.
	// Returns domain.ErrInvalidArgument for the zero date.
	FindByDeadlineAfter(date time.Time) ([]*todo.Item, error)

	// Remove deletes every item with the given id. Unknown ids are a no-op.
	Remove(id int)
}

// TodoItemTaskDAO stores tasks. Uniqueness: id.
type TodoItemTaskDAO interface {
	// Persist stores t and returns it. Returns domain.ErrInvalidArgument for
	// a nil task and domain.ErrDuplicateKey when the id is taken.
	Persist(t *todo.Task) (*todo.Task, error)

	// FindByID returns the task with the given id, or nil.
	FindByID(id int) *todo.Task

	// FindAll returns a snapshot of all tasks in insertion order.
	FindAll() []*todo.Task

	// FindByAssignedStatus returns tasks whose IsAssigned equals assigned.
	FindByAssignedStatus(assigned bool) []*todo.Task

	// FindByPersonID returns tasks assigned to the person with personID.
	// Unassigned tasks never match.
	FindByPersonID(personID int) []*todo.Task

	// Remove deletes every task with the given id. Unknown ids are a no-op.
	Remove(id int)
}
