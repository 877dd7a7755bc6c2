// Package user holds the AppUser credentials entity and its Role enumeration.
package user

import (
	"fmt"
	"log/slog"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
)

// AppUser is a set of login credentials. Identity is username plus role;
// the password never takes part in equality, logging, or string output.
type AppUser struct {
	username string
	password string
	role     Role
}

// Key is the comparable identity of an AppUser.
type Key struct {
	Username string
	Role     Role
}

// New validates and creates an AppUser.
func New(username, password string, role Role) (*AppUser, error) {
	u := &AppUser{}
	if err := u.SetUsername(username); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	if err := u.SetRole(role); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *AppUser) Username() string { return u.username }
func (u *AppUser) Password() string { return u.password }
func (u *AppUser) Role() Role       { return u.role }

// SetUsername replaces the username. A blank value is rejected and leaves
// the user unchanged.
func (u *AppUser) SetUsername(username string) error {
	if err := domain.RequireText("username", "Username", username); err != nil {
		return err
	}
	u.username = username
	return nil
}

// SetPassword replaces the password. A blank value is rejected.
func (u *AppUser) SetPassword(password string) error {
	if err := domain.RequireText("password", "Password", password); err != nil {
		return err
	}
	u.password = password
	return nil
}

// SetRole replaces the role. The empty role is treated as missing; any other
// unknown value fails the same way ParseRole does.
func (u *AppUser) SetRole(role Role) error {
	if role == "" {
		return domain.NullArgument("role", "Role")
	}
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}
	u.role = role
	return nil
}

// Key returns the identity used for equality and map lookups.
func (u *AppUser) Key() Key {
	return Key{Username: u.username, Role: u.role}
}

// Equal reports whether both users share username and role. Two nil users
// are equal.
func (u *AppUser) Equal(other *AppUser) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.Key() == other.Key()
}

// String implements fmt.Stringer.
func (u *AppUser) String() string {
	return fmt.Sprintf("AppUser{username='%s', role=%s}", u.username, u.role)
}

// Summary returns the compact display form.
func (u *AppUser) Summary() string {
	return fmt.Sprintf("{username: %s, role: %s}", u.username, u.role)
}

// LogValue implements slog.LogValuer.
func (u *AppUser) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", u.username),
		slog.String("role", u.role.String()),
	)
}
