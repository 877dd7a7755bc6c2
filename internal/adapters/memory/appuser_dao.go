package memory

import (
	"slices"
	"strings"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/user"
	"github.com/RichardOelschlager/TodoApp/internal/ports"
)

// Compile-time interface check.
var _ ports.AppUserDAO = (*AppUserDAO)(nil)

// AppUserDAO is an in-memory ports.AppUserDAO. Usernames are matched
// case-insensitively everywhere.
type AppUserDAO struct {
	users collection[*user.AppUser]
}

// NewAppUserDAO creates an empty AppUserDAO.
func NewAppUserDAO() *AppUserDAO {
	return &AppUserDAO{}
}

func userByUsername(username string) func(*user.AppUser) bool {
	return func(u *user.AppUser) bool { return strings.EqualFold(u.Username(), username) }
}

func (d *AppUserDAO) Persist(u *user.AppUser) (*user.AppUser, error) {
	if u == nil {
		return nil, domain.NullArgument("app_user", "AppUser")
	}

	err := d.users.appendIf(u, func(users []*user.AppUser) error {
		if slices.ContainsFunc(users, userByUsername(u.Username())) {
			return &domain.DuplicateKeyError{Entity: "AppUser", Key: "username"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (d *AppUserDAO) FindByUsername(username string) (*user.AppUser, error) {
	if username == "" {
		return nil, domain.NullArgument("username", "Username")
	}
	u, _ := d.users.first(userByUsername(username))
	return u, nil
}

func (d *AppUserDAO) FindAll() []*user.AppUser {
	return d.users.snapshot()
}

func (d *AppUserDAO) Remove(username string) error {
	if username == "" {
		return domain.NullArgument("username", "Username")
	}
	d.users.removeIf(userByUsername(username))
	return nil
}
