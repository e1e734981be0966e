package entityplus_test

import (
	"testing"

	"github.com/goccy/go-json"
	"gotest.tools/v3/assert"

	"github.com/entityplus/entityplus"
)

func TestStateDump(t *testing.T) {
	m := newTestManager(t)

	e1, err := m.Create()
	assert.NilError(t, err)
	_, _, err = entityplus.AddComponent(&e1, Health{Value: 9})
	assert.NilError(t, err)
	_, err = entityplus.SetTag[Active](&e1, true)
	assert.NilError(t, err)

	e2, err := m.Create()
	assert.NilError(t, err)
	_, _, err = entityplus.AddComponent(&e2, Position{X: 1, Y: 2})
	assert.NilError(t, err)

	state, err := m.State()
	assert.NilError(t, err)
	assert.Equal(t, 2, len(state))

	assert.Equal(t, e1.ID(), state[0].ID)
	var hp Health
	assert.NilError(t, json.Unmarshal(state[0].Components["health"], &hp))
	assert.Equal(t, 9, hp.Value)
	assert.DeepEqual(t, []string{"active"}, state[0].Tags)

	assert.Equal(t, e2.ID(), state[1].ID)
	var pos Position
	assert.NilError(t, json.Unmarshal(state[1].Components["position"], &pos))
	assert.Equal(t, 1, pos.X)
	assert.Equal(t, 0, len(state[1].Tags))
}

// Every entity whose mask reports the component must appear in the state dump
// with that component, and vice versa.
func TestStateMirrorsComponentMembership(t *testing.T) {
	m := newTestManager(t)

	var withHealth []entityplus.Handle
	for i := 0; i < 8; i++ {
		e, err := m.Create()
		assert.NilError(t, err)
		if i%3 == 0 {
			_, _, err = entityplus.AddComponent(&e, Health{Value: i})
			assert.NilError(t, err)
			withHealth = append(withHealth, e)
		}
	}
	removed, err := entityplus.RemoveComponent[Health](&withHealth[1])
	assert.NilError(t, err)
	assert.Assert(t, removed)

	state, err := m.State()
	assert.NilError(t, err)

	fromState := map[uint64]bool{}
	for _, elem := range state {
		if _, ok := elem.Components["health"]; ok {
			fromState[uint64(elem.ID)] = true
		}
	}
	fromMask := map[uint64]bool{}
	for _, h := range withHealth {
		has, err := entityplus.HasComponent[Health](h)
		assert.NilError(t, err)
		if has {
			fromMask[uint64(h.ID())] = true
		}
	}
	assert.DeepEqual(t, fromMask, fromState)
}
