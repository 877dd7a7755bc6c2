// Package fixtures loads seed data from a YAML file and applies it through
// the application service. Records reference each other by natural keys
// (username, email, item key) because ids are minted while seeding.
package fixtures

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/RichardOelschlager/TodoApp/internal/domain/user"
)

// ErrUnknownReference is returned when a record names a user, person or
// item that the seed does not define.
var ErrUnknownReference = errors.New("unknown reference")

// Seed is the decoded fixture file.
type Seed struct {
	Users     []UserRecord     `koanf:"users" validate:"unique=Username,dive"`
	People    []PersonRecord   `koanf:"people" validate:"unique=Email,dive"`
	TodoItems []TodoItemRecord `koanf:"todo_items" validate:"unique=Key,dive"`
	Tasks     []TaskRecord     `koanf:"tasks" validate:"dive"`
}

// UserRecord describes one set of credentials.
type UserRecord struct {
	Username string `koanf:"username" validate:"required"`
	Password string `koanf:"password" validate:"required" masq:"secret"`
	Role     string `koanf:"role" validate:"required,role"`
}

// PersonRecord describes one person. Username optionally links a UserRecord.
type PersonRecord struct {
	FirstName string `koanf:"first_name" validate:"required"`
	LastName  string `koanf:"last_name" validate:"required"`
	Email     string `koanf:"email" validate:"required,email"`
	Username  string `koanf:"username"`
}

// TodoItemRecord describes one todo item. Key is the name tasks use to
// refer to it; Creator is the creator's email.
type TodoItemRecord struct {
	Key         string  `koanf:"key" validate:"required"`
	Title       string  `koanf:"title" validate:"required"`
	Description *string `koanf:"description"`
	Deadline    string  `koanf:"deadline" validate:"required,datetime=2006-01-02"`
	Done        bool    `koanf:"done"`
	Creator     string  `koanf:"creator" validate:"required,email"`
}

// TaskRecord describes one task. An empty Assignee leaves it unassigned.
type TaskRecord struct {
	TodoItem string `koanf:"todo_item" validate:"required"`
	Assignee string `koanf:"assignee" validate:"omitempty,email"`
}

// Load reads and validates the seed file at path.
func Load(path string) (*Seed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading seed %s: %w", path, err)
	}

	var seed Seed
	if err := k.Unmarshal("", &seed); err != nil {
		return nil, fmt.Errorf("unmarshalling seed %s: %w", path, err)
	}

	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("validating seed %s: %w", path, err)
	}

	return &seed, nil
}

// Validate checks every record's fields and that every reference resolves
// within the seed.
func (s *Seed) Validate() error {
	if err := newValidator().Struct(s); err != nil {
		return err
	}
	return s.checkReferences()
}

func (s *Seed) checkReferences() error {
	usernames := make(map[string]bool, len(s.Users))
	for _, u := range s.Users {
		usernames[strings.ToLower(u.Username)] = true
	}
	emails := make(map[string]bool, len(s.People))
	for _, p := range s.People {
		emails[strings.ToLower(p.Email)] = true
	}
	keys := make(map[string]bool, len(s.TodoItems))
	for _, it := range s.TodoItems {
		keys[it.Key] = true
	}

	var errs []error
	for i, p := range s.People {
		if p.Username != "" && !usernames[strings.ToLower(p.Username)] {
			errs = append(errs, fmt.Errorf("people[%d]: username %q: %w", i, p.Username, ErrUnknownReference))
		}
	}
	for i, it := range s.TodoItems {
		if !emails[strings.ToLower(it.Creator)] {
			errs = append(errs, fmt.Errorf("todo_items[%d]: creator %q: %w", i, it.Creator, ErrUnknownReference))
		}
	}
	for i, t := range s.Tasks {
		if !keys[t.TodoItem] {
			errs = append(errs, fmt.Errorf("tasks[%d]: todo item %q: %w", i, t.TodoItem, ErrUnknownReference))
		}
		if t.Assignee != "" && !emails[strings.ToLower(t.Assignee)] {
			errs = append(errs, fmt.Errorf("tasks[%d]: assignee %q: %w", i, t.Assignee, ErrUnknownReference))
		}
	}
	return errors.Join(errs...)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("role", validateRole)

	return v
}

func validateRole(fl validator.FieldLevel) bool {
	_, err := user.ParseRole(fl.Field().String())
	return err == nil
}
