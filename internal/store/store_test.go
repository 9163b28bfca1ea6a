package store

import (
	"fmt"
	"slices"
	"testing"

	"github.com/kingrocfella/todolist/internal/model"
)

func counterIDs() func() string {
	n := 100
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestNewSeedsTwoRecords(t *testing.T) {
	s := New()
	got := s.Todos()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "1" || got[0].Name != "Learn React Native" || got[0].Completed {
		t.Errorf("seed[0] = %+v", got[0])
	}
	if got[1].ID != "2" || !got[1].Completed {
		t.Errorf("seed[1] = %+v", got[1])
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s := New(WithSeed(nil))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		td := s.Add(fmt.Sprintf("task %d", i), "")
		if seen[td.ID] {
			t.Fatalf("duplicate id %q after %d adds", td.ID, i)
		}
		seen[td.ID] = true
		if td.Completed {
			t.Fatalf("new todo %q is completed", td.ID)
		}
	}
	if s.Len() != 200 {
		t.Errorf("Len = %d, want 200", s.Len())
	}
}

func TestAddRetriesOnCollision(t *testing.T) {
	ids := []string{"1", "1", "x"}
	s := New(WithIDFunc(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))
	td := s.Add("n", "d")
	if td.ID != "x" {
		t.Errorf("ID = %q, want x", td.ID)
	}
}

func TestAddAppendsAndAllowsEmptyName(t *testing.T) {
	s := New(WithIDFunc(counterIDs()))
	td := s.Add("", "")
	todos := s.Todos()
	if todos[len(todos)-1] != td {
		t.Errorf("last = %+v, want %+v", todos[len(todos)-1], td)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	s := New()
	before := s.Todos()
	if !s.Toggle("1") {
		t.Fatal("Toggle(1) reported no match")
	}
	mid := s.Todos()
	if !mid[0].Completed {
		t.Error("record 1 not completed after one toggle")
	}
	if mid[1] != before[1] {
		t.Errorf("other record changed: %+v", mid[1])
	}
	s.Toggle("1")
	if !slices.Equal(s.Todos(), before) {
		t.Errorf("after two toggles = %+v, want %+v", s.Todos(), before)
	}
}

func TestUnknownIDIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		op   func(*Store) bool
	}{
		{"update", func(s *Store) bool { return s.Update("nope", "a", "b") }},
		{"toggle", func(s *Store) bool { return s.Toggle("nope") }},
		{"delete", func(s *Store) bool { return s.Delete("nope") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			before := s.Todos()
			var changes int
			s.Subscribe(func(Change) { changes++ })
			if tt.op(s) {
				t.Error("reported a match for unknown id")
			}
			if !slices.Equal(s.Todos(), before) {
				t.Errorf("store changed: %+v", s.Todos())
			}
			if changes != 0 {
				t.Errorf("published %d changes, want 0", changes)
			}
		})
	}
}

func TestDeleteKeepsOrder(t *testing.T) {
	s := New(WithSeed(nil), WithIDFunc(counterIDs()))
	a := s.Add("a", "")
	b := s.Add("b", "")
	c := s.Add("c", "")
	if !s.Delete(b.ID) {
		t.Fatal("Delete reported no match")
	}
	got := s.Todos()
	want := []model.Todo{a, c}
	if !slices.Equal(got, want) {
		t.Errorf("Todos = %+v, want %+v", got, want)
	}
}

func TestUpdateOnlyTouchesNameAndDescription(t *testing.T) {
	s := New()
	if !s.Update("2", "renamed", "new body") {
		t.Fatal("Update reported no match")
	}
	got, ok := s.Get("2")
	if !ok {
		t.Fatal("record 2 missing")
	}
	want := model.Todo{ID: "2", Name: "renamed", Description: "new body", Completed: true}
	if got != want {
		t.Errorf("Get(2) = %+v, want %+v", got, want)
	}
	if first, _ := s.Get("1"); first != model.Seed()[0] {
		t.Errorf("record 1 changed: %+v", first)
	}
}

func TestSeedScenario(t *testing.T) {
	s := New()
	s.Toggle("1")
	s.Delete("2")
	got := s.Todos()
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != "1" || !got[0].Completed {
		t.Errorf("remaining = %+v", got[0])
	}
}

func TestTodosReturnsCopy(t *testing.T) {
	s := New()
	got := s.Todos()
	got[0].Name = "mutated"
	if first, _ := s.Get("1"); first.Name == "mutated" {
		t.Error("caller mutated store state through snapshot")
	}
}

func TestSubscribePublishesInOrder(t *testing.T) {
	s := New(WithIDFunc(counterIDs()))
	var log []string
	unsubA := s.Subscribe(func(c Change) { log = append(log, "a:"+c.Op.String()) })
	s.Subscribe(func(c Change) {
		// listeners observe state that already includes the change
		if c.Op == OpDelete {
			if _, ok := s.Get(c.Todo.ID); ok {
				t.Error("deleted todo still visible to listener")
			}
		}
		log = append(log, "b:"+c.Op.String())
	})

	added := s.Add("x", "y")
	s.Toggle(added.ID)
	unsubA()
	unsubA()
	s.Update(added.ID, "x2", "y2")
	s.Delete(added.ID)

	want := []string{"a:add", "b:add", "a:toggle", "b:toggle", "b:update", "b:delete"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestMustFrom(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrNoStore {
			t.Errorf("recover() = %v, want ErrNoStore", r)
		}
	}()
	MustFrom(nil)
}
