package types

import (
	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

// ComponentID is the bit index assigned to a component type at registration.
type ComponentID int

// TagID is the bit index assigned to a tag type at registration, relative to
// the tag region of a Mask.
type TagID int

// Component is the interface that the user needs to implement to create a new
// component type. Tag types implement the same interface; they are registered
// through the tag path and carry no stored value.
type Component interface {
	// Name returns the name of the component.
	Name() string
}

// Tag marks an empty user type used as a boolean marker on entities.
type Tag = Component

// SerializeComponentSchema reflects the JSON schema of a component type.
// The schema is captured at registration and used to tell two distinct Go
// types sharing a Name() apart.
func SerializeComponentSchema(component Component) ([]byte, error) {
	componentSchema := jsonschema.Reflect(component)
	schema, err := componentSchema.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "component must be json serializable")
	}
	return schema, nil
}

// IsSchemaValid reports whether two serialized schemas describe the same
// component shape.
func IsSchemaValid(jsonSchemaBytes1 []byte, jsonSchemaBytes2 []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(jsonSchemaBytes1, jsonSchemaBytes2)
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return patch.String() == "", nil
}
