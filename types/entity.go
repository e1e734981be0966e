package types

import "github.com/goccy/go-json"

// EntityID identifies an entity within one manager. IDs are allocated from a
// monotone counter and are never reused, even after the entity is destroyed.
type EntityID uint64

// EntityStateResponse is an ordered dump of every live entity in a manager.
type EntityStateResponse []EntityStateElement

// EntityStateElement describes a single live entity: its id, the marshaled
// value of every component it holds, and the names of its set tags.
type EntityStateElement struct {
	ID         EntityID                   `json:"id"`
	Components map[string]json.RawMessage `json:"components"`
	Tags       []string                   `json:"tags,omitempty"`
}
