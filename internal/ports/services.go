package ports

import (
	"context"
	"time"

	"github.com/RichardOelschlager/TodoApp/internal/domain/person"
	"github.com/RichardOelschlager/TodoApp/internal/domain/todo"
	"github.com/RichardOelschlager/TodoApp/internal/domain/user"
	"github.com/RichardOelschlager/TodoApp/internal/platform/optional"
)

// TodoService defines the use cases over people, credentials, todo items and
// tasks. Implemented by the application layer; called by the composition
// root and the fixture loader. Ids are minted by the service, never by the
// caller.
type TodoService interface {
	// RegisterPerson creates and stores a person. A non-empty username links
	// already registered credentials.
	// Returns domain.ErrInvalidArgument for invalid fields,
	// domain.ErrDuplicateKey when the email is taken, and domain.ErrNotFound
	// when the username is unknown.
	RegisterPerson(ctx context.Context, firstName, lastName, email, username string) (*person.Person, error)

	// RegisterUser creates and stores credentials.
	// Returns domain.ErrDuplicateKey when the username is taken.
	RegisterUser(ctx context.Context, username, password string, role user.Role) (*user.AppUser, error)

	// AttachCredentials links stored credentials to a stored person.
	// Returns domain.ErrNotFound if either does not exist.
	AttachCredentials(ctx context.Context, personID int, username string) (*person.Person, error)

	// CreateTodoItem creates a not-done item owned by an existing person.
	// Returns domain.ErrNotFound if the creator does not exist.
	CreateTodoItem(ctx context.Context, title string, description optional.Value[string], deadline time.Time, creatorID int) (*todo.Item, error)

	// CreateTask creates a task for an existing item, optionally assigned.
	// Returns domain.ErrNotFound if the item or assignee does not exist.
	CreateTask(ctx context.Context, todoItemID int, assigneeID *int) (*todo.Task, error)

	// AssignTask sets the assignee of a task.
	// Returns domain.ErrNotFound if the task or person does not exist.
	AssignTask(ctx context.Context, taskID, personID int) (*todo.Task, error)

	// UnassignTask clears the assignee of a task.
	// Returns domain.ErrNotFound if the task does not exist.
	UnassignTask(ctx context.Context, taskID int) (*todo.Task, error)

	// CompleteTodoItem marks an item done.
	// Returns domain.ErrNotFound if the item does not exist.
	CompleteTodoItem(ctx context.Context, id int) (*todo.Item, error)

	// OverdueItems returns the not-done items whose deadline lies before today.
	OverdueItems(ctx context.Context) ([]*todo.Item, error)

	// RemovePerson deletes a person. Items and tasks that reference the
	// person are left untouched.
	// Returns domain.ErrNotFound if the person does not exist.
	RemovePerson(ctx context.Context, id int) error
}
