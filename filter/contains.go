package filter

import (
	"github.com/entityplus/entityplus/types"
)

type contains struct {
	components []types.Component
}

// Contains matches entities that hold all the components and tags specified.
func Contains(components ...types.Component) ComponentFilter {
	return &contains{components: components}
}

func (f *contains) Evaluate(r Resolver) (Predicate, error) {
	required, err := maskOf(r, f.components)
	if err != nil {
		return Predicate{}, err
	}
	return Predicate{
		Required: required,
		Match: func(m types.Mask) bool {
			return m.ContainsAll(required)
		},
	}, nil
}
