package entityplus

import (
	"github.com/entityplus/entityplus/filter"
	"github.com/entityplus/entityplus/types"
)

// CallbackFn receives each matching entity. Returning false stops the
// iteration; this is the breakout control. The decision never carries over
// to a later iteration.
type CallbackFn func(Handle) bool

// FilterFn is an arbitrary user-defined predicate evaluated after the mask
// test.
type FilterFn func(Handle) (bool, error)

// Search finds the set of entities whose masks satisfy the given filters.
// Entities are visited in ascending id order, walking the smallest component
// holder among the required components (or the registry when only tags or
// nothing are required), so the cost is bounded by the sparsest participant.
type Search struct {
	m *Manager

	// componentFilter defines the component and tag criteria.
	componentFilter filter.ComponentFilter

	// whereFilter is an arbitrary user-defined filter that can be evaluated
	// to filter entities.
	whereFilter FilterFn
}

// Search creates a search over the given filters. Multiple filters combine
// as a conjunction; no filters at all matches every live entity.
func (m *Manager) Search(filters ...filter.ComponentFilter) *Search {
	var f filter.ComponentFilter
	switch len(filters) {
	case 0:
		f = filter.All()
	case 1:
		f = filters[0]
	default:
		f = filter.And(filters...)
	}
	return &Search{m: m, componentFilter: f}
}

// Where narrows the search with a user predicate. Chained where clauses
// combine as a conjunction.
func (s *Search) Where(whereFn FilterFn) *Search {
	var whereFilter FilterFn
	if s.whereFilter != nil {
		prev := s.whereFilter
		whereFilter = func(h Handle) (bool, error) {
			ok, err := prev(h)
			if err != nil || !ok {
				return ok, err
			}
			return whereFn(h)
		}
	} else {
		whereFilter = whereFn
	}

	return &Search{
		m:               s.m,
		componentFilter: s.componentFilter,
		whereFilter:     whereFilter,
	}
}

// Each iterates over all entities that match the search, in ascending id
// order, with a fresh-snapshot handle for each. If you would like to stop
// the iteration, return false to the callback. To continue iterating, return
// true.
//
// The callback must not mutate the manager; reads are fine.
func (s *Search) Each(callback CallbackFn) error {
	pred, err := s.componentFilter.Evaluate(s.m)
	if err != nil {
		return s.m.fail(err)
	}

	visit := func(rec *entityRecord) bool {
		if !pred.Match(rec.mask) {
			return true
		}
		h := Handle{mgr: s.m, id: rec.id, snapshot: rec.mask}
		if s.whereFilter != nil {
			eligible, err := s.whereFilter(h)
			if err != nil || !eligible {
				return true
			}
		}
		return callback(h)
	}

	if substrate := s.m.smallestHolder(pred.Required); substrate != nil {
		substrate.each(func(id types.EntityID) bool {
			// Holder membership is mirrored in the registry, so the record
			// always exists.
			return visit(s.m.registry.record(id))
		})
	} else {
		s.m.registry.each(visit)
	}
	return nil
}

// Entities collects every matching entity into a slice of fresh handles.
func (s *Search) Entities() ([]Handle, error) {
	acc := make([]Handle, 0)
	err := s.Each(func(h Handle) bool {
		acc = append(acc, h)
		return true
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Count returns the number of entities that match the search.
func (s *Search) Count() (int, error) {
	count := 0
	err := s.Each(func(Handle) bool {
		count++
		return true
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// First returns the first entity that matches the search, in id order.
func (s *Search) First() (Handle, error) {
	var first Handle
	found := false
	err := s.Each(func(h Handle) bool {
		first = h
		found = true
		return false
	})
	if err != nil {
		return Handle{}, err
	}
	if !found {
		return Handle{}, s.m.fail(ErrNoMatchingEntities)
	}
	return first, nil
}

// MustFirst is First, panicking when nothing matches.
func (s *Search) MustFirst() Handle {
	h, err := s.First()
	if err != nil {
		panic("no entity matches the search")
	}
	return h
}

// smallestHolder picks the iteration substrate: among the component bits in
// required, the holder with the fewest entries. A nil return means no
// component is required and the registry is the substrate.
func (m *Manager) smallestHolder(required types.Mask) holder {
	var smallest holder
	for _, cid := range required.ComponentIDs() {
		h := m.holders[cid]
		if smallest == nil || h.size() < smallest.size() {
			smallest = h
		}
	}
	return smallest
}
