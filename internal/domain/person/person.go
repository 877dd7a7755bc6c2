// Package person holds the Person entity: someone who creates todo items and
// can be assigned tasks, optionally linked to login credentials.
package person

import (
	"fmt"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/user"
)

// Person is identified by its id. Credentials are optional and take no part
// in equality or string output.
type Person struct {
	id          int
	firstName   string
	lastName    string
	email       string
	credentials *user.AppUser
}

// Key is the comparable value identity of a Person.
type Key struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// New validates and creates a Person without credentials. The email is only
// required to be non-blank; its format is not checked.
func New(id int, firstName, lastName, email string) (*Person, error) {
	return NewWithCredentials(id, firstName, lastName, email, nil)
}

// NewWithCredentials is New with an attached AppUser (which may be nil).
func NewWithCredentials(id int, firstName, lastName, email string, credentials *user.AppUser) (*Person, error) {
	p := &Person{id: id, credentials: credentials}
	if err := p.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := p.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := p.SetEmail(email); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Person) ID() int                        { return p.id }
func (p *Person) FirstName() string              { return p.firstName }
func (p *Person) LastName() string               { return p.lastName }
func (p *Person) Email() string                  { return p.email }
func (p *Person) Credentials() *user.AppUser     { return p.credentials }
func (p *Person) HasCredentials() bool           { return p.credentials != nil }
func (p *Person) SetCredentials(u *user.AppUser) { p.credentials = u }

// SetFirstName replaces the first name; a blank value is rejected.
func (p *Person) SetFirstName(firstName string) error {
	if err := domain.RequireText("first_name", "First name", firstName); err != nil {
		return err
	}
	p.firstName = firstName
	return nil
}

// SetLastName replaces the last name; a blank value is rejected.
func (p *Person) SetLastName(lastName string) error {
	if err := domain.RequireText("last_name", "Last name", lastName); err != nil {
		return err
	}
	p.lastName = lastName
	return nil
}

// SetEmail replaces the email; a blank value is rejected.
func (p *Person) SetEmail(email string) error {
	if err := domain.RequireText("email", "Email", email); err != nil {
		return err
	}
	p.email = email
	return nil
}

// Key returns the identity used for equality and map lookups.
func (p *Person) Key() Key {
	return Key{ID: p.id, FirstName: p.firstName, LastName: p.lastName, Email: p.email}
}

// Equal compares id, names and email. Two nil people are equal.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Key() == other.Key()
}

// String implements fmt.Stringer.
func (p *Person) String() string {
	return fmt.Sprintf("Person{id=%d, firstName='%s', lastName='%s', email='%s'}",
		p.id, p.firstName, p.lastName, p.email)
}

// Summary returns the compact display form.
func (p *Person) Summary() string {
	return fmt.Sprintf("{id: %d, name: %s %s, email: %s}", p.id, p.firstName, p.lastName, p.email)
}
