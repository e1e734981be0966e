package filter

import (
	"github.com/entityplus/entityplus/types"
)

// Resolver maps a component or tag type to its mask bit. The entity manager
// implements this.
type Resolver interface {
	// MaskFor returns a mask with only the bit of the given component or tag
	// set. Unregistered types are an error.
	MaskFor(c types.Component) (types.Mask, error)
}

// Predicate is a compiled filter: a single mask test plus the set of bits
// every match must carry. Required drives substrate selection; queries walk
// the smallest component holder among the required bits.
type Predicate struct {
	// Required holds the bits that every matching entity must have set.
	// Filters without a fixed requirement (Or, Not, All) leave it zero.
	Required types.Mask

	// Match reports whether an entity mask satisfies the filter.
	Match func(types.Mask) bool
}

// ComponentFilter is a filter that filters entities based on their components
// and tags.
type ComponentFilter interface {
	// Evaluate compiles the filter against a resolver into a Predicate.
	Evaluate(r Resolver) (Predicate, error)
}

type componentWrapper struct {
	types.Component
	name string
}

var _ types.Component = componentWrapper{}

func (c componentWrapper) Name() string {
	return c.name
}

// Component is public but contains an unexported return type
// this is done with intent as the user should never use componentWrapper
// explicitly.
//
//revive:disable-next-line:unexported-return
func Component[T types.Component]() componentWrapper {
	var t T
	return componentWrapper{
		name: t.Name(),
	}
}

// Tag is the tag-flavored spelling of Component. Both resolve by name, so
// either wrapper works for either kind; the distinction is for readers.
//
//revive:disable-next-line:unexported-return
func Tag[T types.Tag]() componentWrapper {
	var t T
	return componentWrapper{
		name: t.Name(),
	}
}

// ComponentWithName references a registered component or tag by name alone.
//
//revive:disable-next-line:unexported-return
func ComponentWithName(name string) componentWrapper {
	return componentWrapper{
		name: name,
	}
}

func maskOf(r Resolver, components []types.Component) (types.Mask, error) {
	var mask types.Mask
	for _, c := range components {
		m, err := r.MaskFor(c)
		if err != nil {
			return types.Mask{}, err
		}
		mask = mask.Or(m)
	}
	return mask, nil
}
