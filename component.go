package entityplus

import (
	"github.com/rotisserie/eris"

	"github.com/entityplus/entityplus/types"
)

// RegisterComponent registers the component type T with the manager and
// assigns it the next free component bit. Registering a name twice fails, as
// does registering a name already taken by a tag. Two distinct Go types that
// report the same Name() are told apart by their reflected schemas.
func RegisterComponent[T types.Component](m *Manager) error {
	var t T
	name := t.Name()

	schema, err := types.SerializeComponentSchema(t)
	if err != nil {
		return m.fail(eris.Wrapf(err, "failed to register component %q", name))
	}

	if _, ok := m.tags[name]; ok {
		return m.fail(eris.Wrapf(ErrComponentTagOverlap, "%q", name))
	}
	if existing, ok := m.components[name]; ok {
		same, err := types.IsSchemaValid(existing.schema, schema)
		if err != nil {
			return m.fail(eris.Wrapf(err, "failed to compare schemas for %q", name))
		}
		if !same {
			return m.fail(eris.Wrapf(ErrComponentNameCollision, "%q", name))
		}
		return m.fail(eris.Wrapf(ErrComponentAlreadyRegistered, "%q", name))
	}
	if len(m.components) >= types.MaxComponentTypes {
		return m.fail(eris.Wrapf(ErrTooManyComponents, "limit is %d", types.MaxComponentTypes))
	}

	rec := &componentRecord{
		id:     types.ComponentID(len(m.components)),
		name:   name,
		schema: schema,
	}
	m.components[name] = rec
	m.holders = append(m.holders, newStore[T](m.initialCapacity))

	m.logger.Debug().
		Int("component_id", int(rec.id)).
		Str("component_name", name).
		Msg("component registered")
	return nil
}

// RegisterTag registers the tag type T with the manager and assigns it the
// next free tag bit. The same uniqueness and disjointness rules apply as for
// components.
func RegisterTag[T types.Tag](m *Manager) error {
	var t T
	name := t.Name()

	schema, err := types.SerializeComponentSchema(t)
	if err != nil {
		return m.fail(eris.Wrapf(err, "failed to register tag %q", name))
	}

	if _, ok := m.components[name]; ok {
		return m.fail(eris.Wrapf(ErrComponentTagOverlap, "%q", name))
	}
	if _, ok := m.tags[name]; ok {
		return m.fail(eris.Wrapf(ErrTagAlreadyRegistered, "%q", name))
	}
	if len(m.tags) >= types.MaxTagTypes {
		return m.fail(eris.Wrapf(ErrTooManyTags, "limit is %d", types.MaxTagTypes))
	}

	rec := &tagRecord{
		id:     types.TagID(len(m.tags)),
		name:   name,
		schema: schema,
	}
	m.tags[name] = rec

	m.logger.Debug().
		Int("tag_id", int(rec.id)).
		Str("tag_name", name).
		Msg("tag registered")
	return nil
}

// componentOf resolves T to its registration record and typed store.
func componentOf[T types.Component](m *Manager) (*componentRecord, *store[T], error) {
	var t T
	rec, ok := m.components[t.Name()]
	if !ok {
		return nil, nil, eris.Wrapf(ErrMustRegisterComponent, "%q", t.Name())
	}
	st, ok := m.holders[rec.id].(*store[T])
	if !ok {
		// A different Go type was registered under this name.
		return nil, nil, eris.Wrapf(ErrComponentNameCollision, "%q", t.Name())
	}
	return rec, st, nil
}

func tagOf[T types.Tag](m *Manager) (*tagRecord, error) {
	var t T
	rec, ok := m.tags[t.Name()]
	if !ok {
		return nil, eris.Wrapf(ErrMustRegisterTag, "%q", t.Name())
	}
	return rec, nil
}

// AddComponent attaches value to the entity as its T component. The insert is
// strict: if the entity already holds T, the stored value is returned
// unchanged with inserted=false and the mask is untouched. On a successful
// insert the acting handle is refreshed; every other copy of the handle
// becomes stale.
//
// The returned pointer borrows manager-owned storage and is valid until the
// next mutation on the same manager.
func AddComponent[T types.Component](h *Handle, value T) (*T, bool, error) {
	m := h.mgr
	if err := m.validate(*h); err != nil {
		return nil, false, m.fail(err)
	}
	rec, st, err := componentOf[T](m)
	if err != nil {
		return nil, false, m.fail(err)
	}

	entity := m.registry.record(h.id)
	bit := types.ComponentBit(rec.id)
	if entity.mask.Has(bit) {
		ptr, _ := st.get(h.id)
		return ptr, false, nil
	}

	ptr, _ := st.insert(h.id, value)
	entity.mask.Set(bit)
	h.snapshot = entity.mask

	m.logger.Debug().
		Uint64("entity_id", uint64(h.id)).
		Str("component_name", rec.name).
		Msg("component added")
	return ptr, true, nil
}

// RemoveComponent detaches T from the entity. It reports whether anything was
// removed. On removal the acting handle is refreshed and other copies become
// stale.
func RemoveComponent[T types.Component](h *Handle) (bool, error) {
	m := h.mgr
	if err := m.validate(*h); err != nil {
		return false, m.fail(err)
	}
	rec, st, err := componentOf[T](m)
	if err != nil {
		return false, m.fail(err)
	}

	entity := m.registry.record(h.id)
	bit := types.ComponentBit(rec.id)
	if !entity.mask.Has(bit) {
		return false, nil
	}

	st.remove(h.id)
	entity.mask.Clear(bit)
	h.snapshot = entity.mask

	m.logger.Debug().
		Uint64("entity_id", uint64(h.id)).
		Str("component_name", rec.name).
		Msg("component removed")
	return true, nil
}

// GetComponent returns a borrowed pointer to the entity's T component. The
// pointer is valid until the next mutation on the same manager.
func GetComponent[T types.Component](h Handle) (*T, error) {
	m := h.mgr
	if err := m.validate(h); err != nil {
		return nil, m.fail(err)
	}
	rec, st, err := componentOf[T](m)
	if err != nil {
		return nil, m.fail(err)
	}

	entity := m.registry.record(h.id)
	if !entity.mask.Has(types.ComponentBit(rec.id)) {
		return nil, m.fail(eris.Wrapf(ErrInvalidComponent, "entity %d does not hold %q", h.id, rec.name))
	}
	ptr, ok := st.get(h.id)
	if !ok {
		// The mask and the holder disagree; the manager's invariant is broken.
		panic(eris.Errorf("mask claims entity %d holds %q but the holder has no entry", h.id, rec.name))
	}
	return ptr, nil
}

// HasComponent reports whether the entity holds T. Lacking the component is
// not an error.
func HasComponent[T types.Component](h Handle) (bool, error) {
	m := h.mgr
	if err := m.validate(h); err != nil {
		return false, m.fail(err)
	}
	rec, _, err := componentOf[T](m)
	if err != nil {
		return false, m.fail(err)
	}
	return h.snapshot.Has(types.ComponentBit(rec.id)), nil
}

// UpdateComponent reads the entity's T component, applies fn to it, and
// leaves the result in place.
func UpdateComponent[T types.Component](h *Handle, fn func(*T)) error {
	ptr, err := GetComponent[T](*h)
	if err != nil {
		return err
	}
	fn(ptr)
	return nil
}

// SetTag sets or clears the entity's T tag bit and returns the prior value.
// A toggle that changes the bit refreshes the acting handle and stales other
// copies; setting a bit to its current value invalidates nothing.
func SetTag[T types.Tag](h *Handle, value bool) (bool, error) {
	m := h.mgr
	if err := m.validate(*h); err != nil {
		return false, m.fail(err)
	}
	rec, err := tagOf[T](m)
	if err != nil {
		return false, m.fail(err)
	}

	entity := m.registry.record(h.id)
	bit := types.TagBit(rec.id)
	prior := entity.mask.Has(bit)
	if prior == value {
		return prior, nil
	}

	if value {
		entity.mask.Set(bit)
	} else {
		entity.mask.Clear(bit)
	}
	h.snapshot = entity.mask

	m.logger.Debug().
		Uint64("entity_id", uint64(h.id)).
		Str("tag_name", rec.name).
		Bool("value", value).
		Msg("tag toggled")
	return prior, nil
}

// HasTag reports whether the entity carries the T tag.
func HasTag[T types.Tag](h Handle) (bool, error) {
	m := h.mgr
	if err := m.validate(h); err != nil {
		return false, m.fail(err)
	}
	rec, err := tagOf[T](m)
	if err != nil {
		return false, m.fail(err)
	}
	return h.snapshot.Has(types.TagBit(rec.id)), nil
}
