package entityplus

import (
	"sort"

	"github.com/entityplus/entityplus/types"
)

// holder is the type-erased view of a component store that the manager uses
// for destruction, queries, and the state dump.
type holder interface {
	remove(id types.EntityID) bool
	contains(id types.EntityID) bool
	size() int
	// each visits stored ids in ascending order; returning false stops.
	each(fn func(id types.EntityID) bool)
	// valueOf returns the stored value for id as an opaque interface.
	valueOf(id types.EntityID) (any, bool)
}

type entry[T types.Component] struct {
	id  types.EntityID
	val T
}

// store is the component holder for one registered type: entries kept
// contiguously, sorted by entity id, so queries walk it as a linear merge.
// Lookup is a binary search; insert and remove shift the tail.
type store[T types.Component] struct {
	entries []entry[T]
}

func newStore[T types.Component](capacity int) *store[T] {
	return &store[T]{
		entries: make([]entry[T], 0, capacity),
	}
}

func (s *store[T]) indexOf(id types.EntityID) (int, bool) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].id >= id
	})
	if i < len(s.entries) && s.entries[i].id == id {
		return i, true
	}
	return i, false
}

// insert stores val for id unless id is already present. It returns a pointer
// to the stored value and whether an insertion happened; a second insert for
// the same id leaves the existing value untouched.
func (s *store[T]) insert(id types.EntityID, val T) (*T, bool) {
	i, ok := s.indexOf(id)
	if ok {
		return &s.entries[i].val, false
	}
	s.entries = append(s.entries, entry[T]{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = entry[T]{id: id, val: val}
	return &s.entries[i].val, true
}

// get returns a pointer to the stored value for id. The pointer is borrowed:
// it is valid until the next insert or remove on this store.
func (s *store[T]) get(id types.EntityID) (*T, bool) {
	i, ok := s.indexOf(id)
	if !ok {
		return nil, false
	}
	return &s.entries[i].val, true
}

func (s *store[T]) remove(id types.EntityID) bool {
	i, ok := s.indexOf(id)
	if !ok {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

func (s *store[T]) contains(id types.EntityID) bool {
	_, ok := s.indexOf(id)
	return ok
}

func (s *store[T]) size() int {
	return len(s.entries)
}

func (s *store[T]) each(fn func(id types.EntityID) bool) {
	for i := range s.entries {
		if !fn(s.entries[i].id) {
			return
		}
	}
}

func (s *store[T]) valueOf(id types.EntityID) (any, bool) {
	i, ok := s.indexOf(id)
	if !ok {
		return nil, false
	}
	return s.entries[i].val, true
}
