package filter

import (
	"github.com/entityplus/entityplus/types"
)

type not struct {
	filter ComponentFilter
}

// Not matches entities that do not satisfy the child filter.
func Not(filter ComponentFilter) ComponentFilter {
	return &not{filter: filter}
}

func (f *not) Evaluate(r Resolver) (Predicate, error) {
	p, err := f.filter.Evaluate(r)
	if err != nil {
		return Predicate{}, err
	}
	return Predicate{
		Match: func(m types.Mask) bool {
			return !p.Match(m)
		},
	}, nil
}
