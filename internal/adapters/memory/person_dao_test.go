package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RichardOelschlager/TodoApp/internal/adapters/memory"
	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/person"
	"github.com/RichardOelschlager/TodoApp/internal/platform/sequence"
)

func newPerson(t *testing.T, id int, first, last, email string) *person.Person {
	t.Helper()

	p, err := person.New(id, first, last, email)
	require.NoError(t, err)
	return p
}

func TestPersonDAO_PersistAndFindAll(t *testing.T) {
	t.Parallel()

	ids := sequence.New("person", 0)
	dao := memory.NewPersonDAO()
	john := newPerson(t, ids.Next(), "John", "Doe", "john@x.com")
	jane := newPerson(t, ids.Next(), "Jane", "Smith", "jane@x.com")

	got, err := dao.Persist(john)
	require.NoError(t, err)
	assert.Same(t, john, got)
	_, err = dao.Persist(jane)
	require.NoError(t, err)

	all := dao.FindAll()
	require.Len(t, all, 2)
	assert.Same(t, john, all[0])
	assert.Same(t, jane, all[1])

	found, err := dao.FindByEmail("john@x.com")
	require.NoError(t, err)
	assert.Same(t, john, found)

	dao.Remove(1)
	assert.Nil(t, dao.FindByID(1))
	assert.Len(t, dao.FindAll(), 1)
}

func TestPersonDAO_PersistDuplicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dup     func(t *testing.T) *person.Person
		wantMsg string
	}{
		{
			name:    "same id",
			dup:     func(t *testing.T) *person.Person { return newPerson(t, 1, "Jane", "Smith", "jane.smith@example.com") },
			wantMsg: "Person with this ID already exists.",
		},
		{
			name:    "same email",
			dup:     func(t *testing.T) *person.Person { return newPerson(t, 2, "Jane", "Smith", "john.doe@example.com") },
			wantMsg: "Person with this email already exists.",
		},
		{
			name:    "same email different case",
			dup:     func(t *testing.T) *person.Person { return newPerson(t, 2, "Jane", "Smith", "John.Doe@Example.com") },
			wantMsg: "Person with this email already exists.",
		},
		{
			name:    "id is checked before email",
			dup:     func(t *testing.T) *person.Person { return newPerson(t, 1, "John", "Doe", "john.doe@example.com") },
			wantMsg: "Person with this ID already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dao := memory.NewPersonDAO()
			_, err := dao.Persist(newPerson(t, 1, "John", "Doe", "john.doe@example.com"))
			require.NoError(t, err)

			got, err := dao.Persist(tt.dup(t))
			assert.Nil(t, got)
			require.ErrorIs(t, err, domain.ErrDuplicateKey)
			assert.EqualError(t, err, tt.wantMsg)
			assert.Len(t, dao.FindAll(), 1)
		})
	}
}

func TestPersonDAO_PersistNil(t *testing.T) {
	t.Parallel()

	_, err := memory.NewPersonDAO().Persist(nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.EqualError(t, err, "Person cannot be null.")
}

func TestPersonDAO_FindByID(t *testing.T) {
	t.Parallel()

	dao := memory.NewPersonDAO()
	p := newPerson(t, 1, "John", "Doe", "john.doe@example.com")
	_, err := dao.Persist(p)
	require.NoError(t, err)

	assert.Same(t, p, dao.FindByID(1))
	assert.Nil(t, dao.FindByID(999))
}

func TestPersonDAO_FindByEmail(t *testing.T) {
	t.Parallel()

	dao := memory.NewPersonDAO()
	p := newPerson(t, 1, "John", "Doe", "john.doe@example.com")
	_, err := dao.Persist(p)
	require.NoError(t, err)

	found, err := dao.FindByEmail("JOHN.DOE@example.com")
	require.NoError(t, err)
	assert.Same(t, p, found)

	found, err = dao.FindByEmail("nonexistent@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = dao.FindByEmail("")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.EqualError(t, err, "Email cannot be null.")
}

func TestPersonDAO_Remove(t *testing.T) {
	t.Parallel()

	dao := memory.NewPersonDAO()
	p := newPerson(t, 1, "John", "Doe", "john.doe@example.com")
	_, err := dao.Persist(p)
	require.NoError(t, err)
	require.Len(t, dao.FindAll(), 1)

	dao.Remove(p.ID())
	assert.Empty(t, dao.FindAll())
	assert.Nil(t, dao.FindByID(p.ID()))

	dao.Remove(999)
	assert.Empty(t, dao.FindAll())
}

func TestPersonDAO_FindAllReturnsCopy(t *testing.T) {
	t.Parallel()

	dao := memory.NewPersonDAO()
	_, err := dao.Persist(newPerson(t, 1, "John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)

	all := dao.FindAll()
	all[0] = nil
	_ = append(all, newPerson(t, 2, "Jane", "Smith", "jane@x.com"))

	again := dao.FindAll()
	require.Len(t, again, 1)
	assert.NotNil(t, again[0])
}

func TestPersonDAO_SharesReferences(t *testing.T) {
	t.Parallel()

	dao := memory.NewPersonDAO()
	p := newPerson(t, 1, "John", "Doe", "john.doe@example.com")
	_, err := dao.Persist(p)
	require.NoError(t, err)

	require.NoError(t, p.SetEmail("johnny@example.com"))

	found, err := dao.FindByEmail("johnny@example.com")
	require.NoError(t, err)
	assert.Same(t, p, found)
}
