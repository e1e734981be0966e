package filter

import (
	"github.com/entityplus/entityplus/types"
)

type exact struct {
	components []types.Component
}

// Exact matches entities that hold exactly the components and tags specified,
// and nothing else.
func Exact(components ...types.Component) ComponentFilter {
	return exact{
		components: components,
	}
}

func (f exact) Evaluate(r Resolver) (Predicate, error) {
	required, err := maskOf(r, f.components)
	if err != nil {
		return Predicate{}, err
	}
	return Predicate{
		Required: required,
		Match: func(m types.Mask) bool {
			return m == required
		},
	}, nil
}
