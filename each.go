package entityplus

import (
	"github.com/entityplus/entityplus/filter"
	"github.com/entityplus/entityplus/types"
)

// Each1 iterates over every entity holding component A, in ascending id
// order, passing a borrowed pointer to the stored value alongside the
// handle. Extra filters narrow the match further; tags contribute to the
// filtering but never to the argument list. Returning false from the
// callback stops the iteration.
func Each1[A types.Component](m *Manager, callback func(Handle, *A) bool, extra ...filter.ComponentFilter) error {
	filters := append([]filter.ComponentFilter{filter.Contains(filter.Component[A]())}, extra...)
	return m.Search(filters...).Each(func(h Handle) bool {
		a, err := GetComponent[A](h)
		if err != nil {
			return true
		}
		return callback(h, a)
	})
}

// Each2 is Each1 for entities holding both A and B.
func Each2[A, B types.Component](m *Manager, callback func(Handle, *A, *B) bool, extra ...filter.ComponentFilter) error {
	filters := append([]filter.ComponentFilter{
		filter.Contains(filter.Component[A](), filter.Component[B]()),
	}, extra...)
	return m.Search(filters...).Each(func(h Handle) bool {
		a, err := GetComponent[A](h)
		if err != nil {
			return true
		}
		b, err := GetComponent[B](h)
		if err != nil {
			return true
		}
		return callback(h, a, b)
	})
}

// Each3 is Each1 for entities holding A, B, and C.
func Each3[A, B, C types.Component](m *Manager, callback func(Handle, *A, *B, *C) bool, extra ...filter.ComponentFilter) error {
	filters := append([]filter.ComponentFilter{
		filter.Contains(filter.Component[A](), filter.Component[B](), filter.Component[C]()),
	}, extra...)
	return m.Search(filters...).Each(func(h Handle) bool {
		a, err := GetComponent[A](h)
		if err != nil {
			return true
		}
		b, err := GetComponent[B](h)
		if err != nil {
			return true
		}
		c, err := GetComponent[C](h)
		if err != nil {
			return true
		}
		return callback(h, a, b, c)
	})
}
