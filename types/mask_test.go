package types_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/entityplus/entityplus/types"
)

func TestMaskRegionsAreDisjoint(t *testing.T) {
	var m types.Mask
	m.Set(types.ComponentBit(0))
	m.Set(types.TagBit(0))

	assert.DeepEqual(t, []types.ComponentID{0}, m.ComponentIDs())
	assert.DeepEqual(t, []types.TagID{0}, m.TagIDs())

	m.Clear(types.ComponentBit(0))
	assert.Equal(t, 0, len(m.ComponentIDs()))
	assert.DeepEqual(t, []types.TagID{0}, m.TagIDs())
}

func TestMaskSetClearHas(t *testing.T) {
	var m types.Mask
	assert.Assert(t, m.IsZero())

	for _, bit := range []int{0, 1, 63, 64, 127, 128, 200, 255} {
		assert.Assert(t, !m.Has(bit))
		m.Set(bit)
		assert.Assert(t, m.Has(bit))
	}
	assert.Assert(t, !m.IsZero())

	m.Clear(63)
	assert.Assert(t, !m.Has(63))
	assert.Assert(t, m.Has(64))
}

func TestMaskContainsAll(t *testing.T) {
	var sup, sub types.Mask
	sup.Set(types.ComponentBit(3))
	sup.Set(types.ComponentBit(90))
	sup.Set(types.TagBit(1))
	sub.Set(types.ComponentBit(3))
	sub.Set(types.TagBit(1))

	assert.Assert(t, sup.ContainsAll(sub))
	assert.Assert(t, !sub.ContainsAll(sup))
	assert.Assert(t, sup.ContainsAll(types.Mask{}))

	sub.Set(types.TagBit(2))
	assert.Assert(t, !sup.ContainsAll(sub))
	assert.Assert(t, sup.Intersects(sub))
}

func TestMaskIDsComeBackSorted(t *testing.T) {
	var m types.Mask
	for _, id := range []types.ComponentID{100, 2, 65, 0} {
		m.Set(types.ComponentBit(id))
	}
	assert.DeepEqual(t, []types.ComponentID{0, 2, 65, 100}, m.ComponentIDs())

	for _, id := range []types.TagID{90, 5, 64} {
		m.Set(types.TagBit(id))
	}
	assert.DeepEqual(t, []types.TagID{5, 64, 90}, m.TagIDs())
}
