package entityplus_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/entityplus/entityplus"
)

func TestStatusTransitions(t *testing.T) {
	m := newTestManager(t)

	var h entityplus.Handle
	assert.Equal(t, entityplus.StatusUninitialized, h.Status())
	assert.Assert(t, h.Manager() == nil)

	h, err := m.Create()
	assert.NilError(t, err)
	assert.Equal(t, entityplus.StatusOk, h.Status())
	assert.Assert(t, h.Manager() == m)

	copied := h
	_, _, err = entityplus.AddComponent(&h, Position{X: 1})
	assert.NilError(t, err)
	assert.Equal(t, entityplus.StatusOk, h.Status())
	assert.Equal(t, entityplus.StatusStale, copied.Status())

	other := h
	assert.NilError(t, m.Destroy(&h))
	assert.Equal(t, entityplus.StatusDeleted, h.Status())
	assert.Equal(t, entityplus.StatusNotFound, other.Status())
}

func TestStatusStrings(t *testing.T) {
	for status, want := range map[entityplus.Status]string{
		entityplus.StatusUninitialized:  "uninitialized",
		entityplus.StatusOk:             "ok",
		entityplus.StatusInvalidManager: "invalid_manager",
		entityplus.StatusNotFound:       "not_found",
		entityplus.StatusStale:          "stale",
		entityplus.StatusDeleted:        "deleted",
	} {
		assert.Equal(t, want, status.String())
	}
}

func TestHandleIsCheapToCopy(t *testing.T) {
	m := newTestManager(t)

	h, err := m.Create()
	assert.NilError(t, err)
	_, _, err = entityplus.AddComponent(&h, Health{Value: 1})
	assert.NilError(t, err)

	// Copies are plain values; both resolve the same entity while the mask
	// is unchanged.
	copied := h
	assert.Equal(t, h.ID(), copied.ID())
	assert.Equal(t, entityplus.StatusOk, copied.Status())

	hp1, err := entityplus.GetComponent[Health](h)
	assert.NilError(t, err)
	hp2, err := entityplus.GetComponent[Health](copied)
	assert.NilError(t, err)
	assert.Equal(t, hp1, hp2)
}
