// Package store holds the in-memory todo list and publishes every change to
// its subscribers.
package store

import (
	"errors"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/kingrocfella/todolist/internal/model"
)

// ErrNoStore is raised when a screen is wired without a store.
var ErrNoStore = errors.New("store: todo store used outside its owner")

// Op names the mutation behind a Change.
type Op int

const (
	OpAdd Op = iota + 1
	OpUpdate
	OpToggle
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpUpdate:
		return "update"
	case OpToggle:
		return "toggle"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Change describes one applied mutation. Todo is the record after the change,
// or the removed record for OpDelete.
type Change struct {
	Op   Op
	Todo model.Todo
}

// Listener receives changes after the store state has been updated.
type Listener func(Change)

// Option configures a Store.
type Option func(*Store)

// WithSeed replaces the default seed records.
func WithSeed(todos []model.Todo) Option {
	return func(s *Store) { s.todos = slices.Clone(todos) }
}

// WithIDFunc overrides ID generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithLogger sets the logger used for mutation tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store is the single source of truth for the todo list.
type Store struct {
	mu        sync.RWMutex
	todos     []model.Todo
	newID     func() string
	log       *log.Logger
	listeners map[int]Listener
	nextSub   int
}

// New returns a store initialized with model.Seed unless WithSeed says otherwise.
func New(opts ...Option) *Store {
	s := &Store{
		todos:     model.Seed(),
		newID:     timeID,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	return s
}

// MustFrom returns s, panicking with ErrNoStore when it is nil.
func MustFrom(s *Store) *Store {
	if s == nil {
		panic(ErrNoStore)
	}
	return s
}

// timeID returns a time-ordered UUIDv7, falling back to v4 if the clock
// source fails.
func timeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Todos returns a copy of the list in insertion order.
func (s *Store) Todos() []model.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.todos)
}

// Len reports the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos)
}

// Get looks up a record by ID.
func (s *Store) Get(id string) (model.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(id); i >= 0 {
		return s.todos[i], true
	}
	return model.Todo{}, false
}

// Add appends a new pending record with a fresh ID.
func (s *Store) Add(name, description string) model.Todo {
	s.mu.Lock()
	id := s.newID()
	for s.index(id) >= 0 {
		id = s.newID()
	}
	t := model.Todo{ID: id, Name: name, Description: description}
	s.todos = append(s.todos, t)
	s.mu.Unlock()

	s.log.Debug("todo added", "id", t.ID, "name", t.Name)
	s.publish(Change{Op: OpAdd, Todo: t})
	return t
}

// Update replaces name and description of the matching record. It reports
// whether a record matched.
func (s *Store) Update(id, name, description string) bool {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		s.log.Debug("update: no such todo", "id", id)
		return false
	}
	s.todos[i].Name = name
	s.todos[i].Description = description
	t := s.todos[i]
	s.mu.Unlock()

	s.log.Debug("todo updated", "id", id)
	s.publish(Change{Op: OpUpdate, Todo: t})
	return true
}

// Toggle flips the completion flag of the matching record.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		s.log.Debug("toggle: no such todo", "id", id)
		return false
	}
	s.todos[i].Completed = !s.todos[i].Completed
	t := s.todos[i]
	s.mu.Unlock()

	s.log.Debug("todo toggled", "id", id, "completed", t.Completed)
	s.publish(Change{Op: OpToggle, Todo: t})
	return true
}

// Delete removes the matching record, keeping the order of the rest.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		s.log.Debug("delete: no such todo", "id", id)
		return false
	}
	t := s.todos[i]
	s.todos = slices.Delete(s.todos, i, i+1)
	s.mu.Unlock()

	s.log.Debug("todo deleted", "id", id)
	s.publish(Change{Op: OpDelete, Todo: t})
	return true
}

// Subscribe registers fn for every later change. The returned func removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	key := s.nextSub
	s.nextSub++
	s.listeners[key] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, key)
			s.mu.Unlock()
		})
	}
}

// publish calls listeners in subscription order without holding the lock, so
// a listener may read the store.
func (s *Store) publish(c Change) {
	s.mu.RLock()
	keys := make([]int, 0, len(s.listeners))
	for k := range s.listeners {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fns := make([]Listener, 0, len(keys))
	for _, k := range keys {
		fns = append(fns, s.listeners[k])
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}

// index must be called with mu held.
func (s *Store) index(id string) int {
	return slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
}
