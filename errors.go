package entityplus

import "github.com/rotisserie/eris"

var (
	// Handle validation failures, in the order they are detected.
	ErrUninitializedHandle = eris.New("handle is not bound to a manager")
	ErrForeignManager      = eris.New("handle belongs to a different manager")
	ErrEntityNotFound      = eris.New("entity does not exist")
	ErrStaleHandle         = eris.New("handle is stale")

	// ErrInvalidComponent is returned when a component is read from an entity
	// that does not hold it.
	ErrInvalidComponent = eris.New("component not on entity")

	// Registration failures. These are the runtime counterparts of the
	// closed-list checks: uniqueness within a role, disjointness across
	// roles, and a bound on how many types one manager can carry.
	ErrMustRegisterComponent      = eris.New("must register component")
	ErrMustRegisterTag            = eris.New("must register tag")
	ErrComponentAlreadyRegistered = eris.New("component already registered")
	ErrTagAlreadyRegistered       = eris.New("tag already registered")
	ErrComponentTagOverlap        = eris.New("type is registered as both component and tag")
	ErrComponentNameCollision     = eris.New("two distinct types share a component name")
	ErrTooManyComponents          = eris.New("component type limit exceeded")
	ErrTooManyTags                = eris.New("tag type limit exceeded")

	// ErrNoMatchingEntities is returned by Search.First when nothing matches.
	ErrNoMatchingEntities = eris.New("no entities for the given criteria found")
)
