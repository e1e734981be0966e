package filter

import (
	"github.com/entityplus/entityplus/types"
)

type all struct {
}

// All matches every live entity.
func All() ComponentFilter {
	return &all{}
}

func (f *all) Evaluate(Resolver) (Predicate, error) {
	return Predicate{
		Match: func(types.Mask) bool { return true },
	}, nil
}
