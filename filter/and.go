package filter

import (
	"github.com/entityplus/entityplus/types"
)

type and struct {
	filters []ComponentFilter
}

// And matches entities that satisfy every child filter.
func And(filters ...ComponentFilter) ComponentFilter {
	return &and{filters: filters}
}

func (f *and) Evaluate(r Resolver) (Predicate, error) {
	preds := make([]Predicate, 0, len(f.filters))
	var required types.Mask
	for _, child := range f.filters {
		p, err := child.Evaluate(r)
		if err != nil {
			return Predicate{}, err
		}
		required = required.Or(p.Required)
		preds = append(preds, p)
	}
	return Predicate{
		Required: required,
		Match: func(m types.Mask) bool {
			for _, p := range preds {
				if !p.Match(m) {
					return false
				}
			}
			return true
		},
	}, nil
}
