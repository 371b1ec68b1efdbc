// internal/store/list_store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrNotFound = errors.New("entity not found in list")

type ActionType int

const (
	ActionLoaded ActionType = iota
	ActionRemoved
	ActionReplaced
)

func (t ActionType) String() string {
	switch t {
	case ActionLoaded:
		return "loaded"
	case ActionRemoved:
		return "removed"
	case ActionReplaced:
		return "replaced"
	}
	return fmt.Sprintf("ActionType(%d)", int(t))
}

// Action is the only way list contents change.
type Action[T any] struct {
	Type  ActionType
	Items []T
	ID    string
	Item  T
}

func Loaded[T any](items []T) Action[T] {
	return Action[T]{Type: ActionLoaded, Items: items}
}

func Removed[T any](id string) Action[T] {
	return Action[T]{Type: ActionRemoved, ID: id}
}

func Replaced[T any](id string, item T) Action[T] {
	return Action[T]{Type: ActionReplaced, ID: id, Item: item}
}

type Fetcher[T any] func(ctx context.Context) ([]T, error)

// ListStore holds the last fetched copy of one remote collection. Callers must
// only dispatch Removed or Replaced after the shop API confirmed the mutation.
type ListStore[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
	fetch Fetcher[T]

	loadSeq    uint64
	appliedSeq uint64
	loaded     bool
}

func New[T any](idOf func(T) string, fetch Fetcher[T]) *ListStore[T] {
	return &ListStore[T]{
		idOf:  idOf,
		fetch: fetch,
	}
}

// Load replaces the list with a fresh fetch. On error the current list is kept.
// A slower fetch never overwrites the result of one started after it.
func (s *ListStore[T]) Load(ctx context.Context) error {
	if s.fetch == nil {
		return errors.New("list store has no fetcher")
	}

	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	items, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		return nil
	}
	s.appliedSeq = seq
	s.items, _ = reduce(s.items, Loaded(items), s.idOf)
	s.loaded = true
	return nil
}

// Dispatch applies one action. It returns ErrNotFound when a Replaced action
// targets an id that is not in the list; the list is left unchanged then.
func (s *ListStore[T]) Dispatch(action Action[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := reduce(s.items, action, s.idOf)
	if err != nil {
		return err
	}
	s.items = items
	if action.Type == ActionLoaded {
		s.loaded = true
	}
	return nil
}

// Remove drops the element with id. It reports whether anything was removed,
// so a second call with the same id is a no-op returning false.
func (s *ListStore[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.items)
	s.items, _ = reduce(s.items, Removed[T](id), s.idOf)
	return len(s.items) != before
}

func (s *ListStore[T]) ReplaceOne(id string, updated T) error {
	return s.Dispatch(Replaced(id, updated))
}

// Update replaces the element with id by fn applied to its current value, in
// one step, so concurrent updates to the same element are not lost.
func (s *ListStore[T]) Update(id string, fn func(T) T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if s.idOf(item) == id {
			items, err := reduce(s.items, Replaced(id, fn(item)), s.idOf)
			if err != nil {
				return err
			}
			s.items = items
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Items returns a copy of the list in its current order.
func (s *ListStore[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ListStore[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if s.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *ListStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Loaded reports whether at least one fetch has succeeded.
func (s *ListStore[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// reduce never mutates items in place; every change yields a new slice.
func reduce[T any](items []T, action Action[T], idOf func(T) string) ([]T, error) {
	switch action.Type {
	case ActionLoaded:
		out := make([]T, len(action.Items))
		copy(out, action.Items)
		return out, nil

	case ActionRemoved:
		out := make([]T, 0, len(items))
		for _, item := range items {
			if idOf(item) != action.ID {
				out = append(out, item)
			}
		}
		return out, nil

	case ActionReplaced:
		for i, item := range items {
			if idOf(item) == action.ID {
				out := make([]T, len(items))
				copy(out, items)
				out[i] = action.Item
				return out, nil
			}
		}
		return items, fmt.Errorf("%w: %s", ErrNotFound, action.ID)
	}

	return items, fmt.Errorf("unknown action %v", action.Type)
}
