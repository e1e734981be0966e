package entityplus

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/entityplus/entityplus/types"
)

// State dumps every live entity in id order: component values marshaled to
// JSON and set tag names. This is introspection for debugging and tests, not
// a persistence format.
func (m *Manager) State() (types.EntityStateResponse, error) {
	byComponentID := make(map[types.ComponentID]string, len(m.components))
	for name, rec := range m.components {
		byComponentID[rec.id] = name
	}
	byTagID := make(map[types.TagID]string, len(m.tags))
	for name, rec := range m.tags {
		byTagID[rec.id] = name
	}

	state := make(types.EntityStateResponse, 0, m.registry.len())
	var failure error
	m.registry.each(func(rec *entityRecord) bool {
		elem := types.EntityStateElement{
			ID:         rec.id,
			Components: map[string]json.RawMessage{},
		}
		for _, cid := range rec.mask.ComponentIDs() {
			val, ok := m.holders[cid].valueOf(rec.id)
			if !ok {
				failure = eris.Errorf("mask claims entity %d holds %q but the holder has no entry",
					rec.id, byComponentID[cid])
				return false
			}
			bz, err := json.Marshal(val)
			if err != nil {
				failure = eris.Wrapf(err, "failed to marshal %q on entity %d", byComponentID[cid], rec.id)
				return false
			}
			elem.Components[byComponentID[cid]] = bz
		}
		for _, tid := range rec.mask.TagIDs() {
			elem.Tags = append(elem.Tags, byTagID[tid])
		}
		state = append(state, elem)
		return true
	})
	if failure != nil {
		return nil, m.fail(failure)
	}
	return state, nil
}
