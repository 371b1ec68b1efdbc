// internal/store/list_store_test.go
package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

func itemID(i item) string { return i.ID }

func fixed(items ...item) Fetcher[item] {
	return func(ctx context.Context) ([]item, error) {
		return items, nil
	}
}

func ids(items []item) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

func TestLoad(t *testing.T) {
	s := New(itemID, fixed(item{"a", "A"}, item{"b", "B"}))
	assert.False(t, s.Loaded())

	require.NoError(t, s.Load(context.Background()))

	assert.True(t, s.Loaded())
	assert.Equal(t, []string{"a", "b"}, ids(s.Items()))
}

func TestLoadFailureKeepsList(t *testing.T) {
	fail := false
	s := New(itemID, func(ctx context.Context) ([]item, error) {
		if fail {
			return nil, errors.New("down")
		}
		return []item{{"a", "A"}}, nil
	})
	require.NoError(t, s.Load(context.Background()))

	fail = true
	assert.Error(t, s.Load(context.Background()))
	assert.Equal(t, []string{"a"}, ids(s.Items()))
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := New(itemID, fixed(item{"a", "A"}, item{"b", "B"}, item{"c", "C"}))
	require.NoError(t, s.Load(context.Background()))

	assert.True(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, ids(s.Items()))
	assert.Equal(t, 2, s.Len())

	assert.False(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, ids(s.Items()))

	_, ok := s.Get("b")
	assert.False(t, ok)
}

func TestReplaceOne(t *testing.T) {
	s := New(itemID, fixed(item{"a", "A"}, item{"b", "B"}))
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.ReplaceOne("b", item{"b", "Bee"}))
	got, ok := s.Get("b")
	require.True(t, ok)
	assert.Equal(t, "Bee", got.Name)
	assert.Equal(t, []string{"a", "b"}, ids(s.Items()))

	err := s.ReplaceOne("zzz", item{"zzz", "Z"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, s.Len())
}

func TestUpdate(t *testing.T) {
	s := New(itemID, fixed(item{"a", "A"}, item{"b", "B"}))
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.Update("b", func(i item) item {
		i.Name += "ee"
		return i
	}))
	require.NoError(t, s.Update("b", func(i item) item {
		i.Name += "!"
		return i
	}))
	got, _ := s.Get("b")
	assert.Equal(t, "Bee!", got.Name)

	called := false
	err := s.Update("zzz", func(i item) item {
		called = true
		return i
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
}

func TestItemsReturnsCopy(t *testing.T) {
	s := New(itemID, fixed(item{"a", "A"}))
	require.NoError(t, s.Load(context.Background()))

	items := s.Items()
	items[0].Name = "mutated"

	got, _ := s.Get("a")
	assert.Equal(t, "A", got.Name)
}

func TestDispatchLoaded(t *testing.T) {
	s := New[item](itemID, nil)
	require.NoError(t, s.Dispatch(Loaded([]item{{"x", "X"}})))

	assert.True(t, s.Loaded())
	assert.Equal(t, []string{"x"}, ids(s.Items()))
	assert.Error(t, s.Load(context.Background()))
}

func TestStaleLoadDoesNotOverwrite(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var first int32
	s := New(itemID, func(ctx context.Context) ([]item, error) {
		if atomic.CompareAndSwapInt32(&first, 0, 1) {
			close(entered)
			<-release
			return []item{{"old", "Old"}}, nil
		}
		return []item{{"new", "New"}}, nil
	})

	done := make(chan error)
	go func() { done <- s.Load(context.Background()) }()
	<-entered

	require.NoError(t, s.Load(context.Background()))
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"new"}, ids(s.Items()))
}

func TestActionTypeString(t *testing.T) {
	assert.Equal(t, "loaded", ActionLoaded.String())
	assert.Equal(t, "removed", ActionRemoved.String())
	assert.Equal(t, "replaced", ActionReplaced.String())
}
