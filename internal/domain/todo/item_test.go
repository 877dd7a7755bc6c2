package todo

import (
	"errors"
	"testing"
	"time"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
	"github.com/RichardOelschlager/TodoApp/internal/domain/person"
	"github.com/RichardOelschlager/TodoApp/internal/platform/optional"
)

func testPerson(t *testing.T, id int, first, last, email string) *person.Person {
	t.Helper()

	p, err := person.New(id, first, last, email)
	if err != nil {
		t.Fatalf("person.New(%d) error: %v", id, err)
	}
	return p
}

func testCreator(t *testing.T) *person.Person {
	t.Helper()
	return testPerson(t, 1, "Test", "Creator", "test.creator@example.com")
}

func mustItem(t *testing.T, id int, title, description string, deadline time.Time, creator *person.Person) *Item {
	t.Helper()

	it, err := NewItem(id, title, optional.Some(description), deadline, creator)
	if err != nil {
		t.Fatalf("NewItem(%d) error: %v", id, err)
	}
	return it
}

func TestNewItem(t *testing.T) {
	t.Parallel()

	creator := testCreator(t)
	deadline := Today().AddDate(0, 0, 7)
	it := mustItem(t, 1, "Buy groceries", "Milk, eggs, bread", deadline, creator)

	if it.ID() != 1 {
		t.Errorf("ID() = %d, want 1", it.ID())
	}
	if it.Title() != "Buy groceries" {
		t.Errorf("Title() = %q, want %q", it.Title(), "Buy groceries")
	}
	if got, ok := it.Description().Get(); !ok || got != "Milk, eggs, bread" {
		t.Errorf("Description() = (%q, %v), want (%q, true)", got, ok, "Milk, eggs, bread")
	}
	if !it.Deadline().Equal(deadline) {
		t.Errorf("Deadline() = %v, want %v", it.Deadline(), deadline)
	}
	if it.Done() {
		t.Error("Done() = true, want false by default")
	}
	if it.Creator() != creator {
		t.Errorf("Creator() = %v, want %v", it.Creator(), creator)
	}
}

func TestNewItem_WithoutDescription(t *testing.T) {
	t.Parallel()

	it, err := NewItem(2, "Walk dog", optional.None[string](), Date(2025, 1, 1), testCreator(t))
	if err != nil {
		t.Fatalf("NewItem() error: %v", err)
	}
	if it.Description().IsSet() {
		t.Error("Description().IsSet() = true, want false")
	}
}

func TestNewItem_TruncatesDeadlineToDay(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
	it := mustItem(t, 3, "Pi day", "", at, testCreator(t))

	if !it.Deadline().Equal(Date(2025, 3, 14)) {
		t.Errorf("Deadline() = %v, want 2025-03-14 midnight", it.Deadline())
	}
}

func TestNewItem_Invalid(t *testing.T) {
	t.Parallel()

	creator := testCreator(t)
	deadline := Date(2025, 1, 1)

	tests := []struct {
		name     string
		title    string
		deadline time.Time
		creator  *person.Person
		wantMsg  string
	}{
		{"empty title", "", deadline, creator, "Title cannot be null or empty."},
		{"blank title", "   ", deadline, creator, "Title cannot be null or empty."},
		{"missing deadline", "Title", time.Time{}, creator, "Deadline cannot be null."},
		{"missing creator", "Title", deadline, nil, "Creator cannot be null."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			it, err := NewItem(4, tt.title, optional.Some("Description"), tt.deadline, tt.creator)
			if it != nil {
				t.Errorf("NewItem() = %v, want nil", it)
			}
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("NewItem() error = %v, want ErrInvalidArgument", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("NewItem() error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestItemSetters(t *testing.T) {
	t.Parallel()

	it := mustItem(t, 5, "Old Title", "Old Description", Date(2025, 1, 1), testCreator(t))

	if err := it.SetTitle("New Title"); err != nil {
		t.Fatalf("SetTitle() error: %v", err)
	}
	it.SetDescription(optional.Some("New Description"))
	if err := it.SetDeadline(Date(2025, 1, 15)); err != nil {
		t.Fatalf("SetDeadline() error: %v", err)
	}
	it.SetDone(true)
	newCreator := testPerson(t, 2, "New", "Creator", "new.creator@example.com")
	if err := it.SetCreator(newCreator); err != nil {
		t.Fatalf("SetCreator() error: %v", err)
	}

	if it.Title() != "New Title" {
		t.Errorf("Title() = %q, want %q", it.Title(), "New Title")
	}
	if got := it.Description().OrElse(""); got != "New Description" {
		t.Errorf("Description() = %q, want %q", got, "New Description")
	}
	if !it.Deadline().Equal(Date(2025, 1, 15)) {
		t.Errorf("Deadline() = %v, want 2025-01-15", it.Deadline())
	}
	if !it.Done() {
		t.Error("Done() = false, want true")
	}
	if it.Creator() != newCreator {
		t.Errorf("Creator() = %v, want %v", it.Creator(), newCreator)
	}

	it.SetDescription(optional.None[string]())
	if it.Description().IsSet() {
		t.Error("Description() still set after clearing")
	}
}

func TestItemSetters_InvalidLeaveStateUnchanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		set     func(it *Item) error
		wantMsg string
	}{
		{"title", func(it *Item) error { return it.SetTitle("") }, "Title cannot be null or empty."},
		{"deadline", func(it *Item) error { return it.SetDeadline(time.Time{}) }, "Deadline cannot be null."},
		{"creator", func(it *Item) error { return it.SetCreator(nil) }, "Creator cannot be null."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			it := mustItem(t, 6, "Valid Title", "Description", Date(2025, 1, 1), testCreator(t))
			before := it.Key()

			err := tt.set(it)
			if err == nil || err.Error() != tt.wantMsg {
				t.Fatalf("setter error = %v, want %q", err, tt.wantMsg)
			}
			if it.Key() != before {
				t.Errorf("state changed: got %v, want %v", it.Key(), before)
			}
		})
	}
}

func TestIsOverdueAt(t *testing.T) {
	t.Parallel()

	deadline := Date(2025, 6, 10)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"day before deadline", time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC), false},
		{"deadline day morning", time.Date(2025, 6, 10, 0, 0, 1, 0, time.UTC), false},
		{"deadline day evening", time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC), false},
		{"day after deadline", time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), true},
		{"long past", time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), true},
	}

	it := mustItem(t, 9, "Deadline Task", "", deadline, testCreator(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := it.IsOverdueAt(tt.now); got != tt.want {
				t.Errorf("IsOverdueAt(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	t.Parallel()

	creator := testCreator(t)
	today := Today()

	if mustItem(t, 9, "Future Task", "", today.AddDate(0, 0, 1), creator).IsOverdue() {
		t.Error("future deadline reported overdue")
	}
	if !mustItem(t, 10, "Past Task", "", today.AddDate(0, 0, -1), creator).IsOverdue() {
		t.Error("past deadline not reported overdue")
	}
	if mustItem(t, 11, "Today Task", "", today, creator).IsOverdue() {
		t.Error("deadline of today reported overdue")
	}
}

func TestItemSummary(t *testing.T) {
	t.Parallel()

	it := mustItem(t, 12, "Summary Test", "Test description", Date(2025, 12, 31), testCreator(t))

	want := "{id: 12, title: Summary Test, description: Test description, deadLine: 2025-12-31, done: false, " +
		"creator: {id: 1, name: Test Creator, email: test.creator@example.com}}"
	if got := it.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestItemString(t *testing.T) {
	t.Parallel()

	it := mustItem(t, 1, "Test String", "Description", Date(2025, 1, 1), testCreator(t))

	want := "TodoItem{id=1, title='Test String', description='Description', deadLine=2025-01-01, done=false, " +
		"creator=Person{id=1, firstName='Test', lastName='Creator', email='test.creator@example.com'}}"
	if got := it.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestItemString_AbsentDescription(t *testing.T) {
	t.Parallel()

	it, err := NewItem(1, "T", optional.None[string](), Date(2025, 1, 1), testCreator(t))
	if err != nil {
		t.Fatalf("NewItem() error: %v", err)
	}

	want := "{id: 1, title: T, description: null, deadLine: 2025-01-01, done: false, " +
		"creator: {id: 1, name: Test Creator, email: test.creator@example.com}}"
	if got := it.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestItemEqualAndKey(t *testing.T) {
	t.Parallel()

	creator1 := testCreator(t)
	creator2 := testPerson(t, 2, "Another", "Creator", "another.creator@example.com")
	deadline1 := Date(2025, 1, 1)
	deadline2 := Date(2025, 1, 2)

	item1 := mustItem(t, 1, "Title", "Desc", deadline1, creator1)
	item2 := mustItem(t, 1, "Title", "Desc", deadline1, creator1)

	if !item1.Equal(item2) || item1.Key() != item2.Key() {
		t.Error("items with identical fields should be equal with equal keys")
	}

	done := mustItem(t, 1, "Title", "Desc", deadline1, creator1)
	done.SetDone(true)

	noDesc, _ := NewItem(1, "Title", optional.None[string](), deadline1, creator1)

	different := map[string]*Item{
		"id":          mustItem(t, 2, "Title", "Desc", deadline1, creator1),
		"title":       mustItem(t, 1, "Different Title", "Desc", deadline1, creator1),
		"description": mustItem(t, 1, "Title", "Different Desc", deadline1, creator1),
		"deadline":    mustItem(t, 1, "Title", "Desc", deadline2, creator1),
		"creator":     mustItem(t, 1, "Title", "Desc", deadline1, creator2),
		"done":        done,
		"absent desc": noDesc,
	}
	for field, other := range different {
		if item1.Equal(other) {
			t.Errorf("items differing in %s should not be equal", field)
		}
	}

	// The creator is compared by value, not by pointer.
	creatorCopy := testPerson(t, 1, "Test", "Creator", "test.creator@example.com")
	if !item1.Equal(mustItem(t, 1, "Title", "Desc", deadline1, creatorCopy)) {
		t.Error("items with equal-valued creators should be equal")
	}
}
