package memory

import (
	"slices"
	"strings"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/person"
	"github.com/RichardOelschlager/TodoApp/internal/ports"
)

// Compile-time interface check.
var _ ports.PersonDAO = (*PersonDAO)(nil)

// PersonDAO is an in-memory ports.PersonDAO.
type PersonDAO struct {
	people collection[*person.Person]
}

// NewPersonDAO creates an empty PersonDAO.
func NewPersonDAO() *PersonDAO {
	return &PersonDAO{}
}

func personByID(id int) func(*person.Person) bool {
	return func(p *person.Person) bool { return p.ID() == id }
}

func personByEmail(email string) func(*person.Person) bool {
	return func(p *person.Person) bool { return strings.EqualFold(p.Email(), email) }
}

// Persist stores p. The id is checked before the email.
func (d *PersonDAO) Persist(p *person.Person) (*person.Person, error) {
	if p == nil {
		return nil, domain.NullArgument("person", "Person")
	}

	err := d.people.appendIf(p, func(people []*person.Person) error {
		if slices.ContainsFunc(people, personByID(p.ID())) {
			return &domain.DuplicateKeyError{Entity: "Person", Key: "ID"}
		}
		if slices.ContainsFunc(people, personByEmail(p.Email())) {
			return &domain.DuplicateKeyError{Entity: "Person", Key: "email"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (d *PersonDAO) FindByID(id int) *person.Person {
	p, _ := d.people.first(personByID(id))
	return p
}

func (d *PersonDAO) FindByEmail(email string) (*person.Person, error) {
	if email == "" {
		return nil, domain.NullArgument("email", "Email")
	}
	p, _ := d.people.first(personByEmail(email))
	return p, nil
}

func (d *PersonDAO) FindAll() []*person.Person {
	return d.people.snapshot()
}

func (d *PersonDAO) Remove(id int) {
	d.people.removeIf(personByID(id))
}
