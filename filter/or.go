package filter

import (
	"github.com/entityplus/entityplus/types"
)

type or struct {
	filters []ComponentFilter
}

// Or matches entities that satisfy at least one child filter.
func Or(filters ...ComponentFilter) ComponentFilter {
	return &or{filters: filters}
}

func (f *or) Evaluate(r Resolver) (Predicate, error) {
	preds := make([]Predicate, 0, len(f.filters))
	for _, child := range f.filters {
		p, err := child.Evaluate(r)
		if err != nil {
			return Predicate{}, err
		}
		preds = append(preds, p)
	}
	return Predicate{
		Match: func(m types.Mask) bool {
			for _, p := range preds {
				if p.Match(m) {
					return true
				}
			}
			return false
		},
	}, nil
}
