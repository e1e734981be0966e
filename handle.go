package entityplus

import (
	"fmt"

	"github.com/entityplus/entityplus/types"
)

// Status describes the validity of a Handle with respect to its manager.
type Status int

const (
	// StatusUninitialized is the status of a default-constructed handle that
	// was never bound to a manager.
	StatusUninitialized Status = iota
	// StatusOk means the handle is fresh and every operation is permitted.
	StatusOk
	// StatusInvalidManager means the handle was presented to a manager other
	// than the one it was created by.
	StatusInvalidManager
	// StatusNotFound means the entity has been removed from the registry.
	StatusNotFound
	// StatusStale means the entity still exists but its mask has changed
	// since this handle's snapshot was taken.
	StatusStale
	// StatusDeleted is the post-destroy form of StatusNotFound for the
	// handle that performed the destroy.
	StatusDeleted
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusOk:
		return "ok"
	case StatusInvalidManager:
		return "invalid_manager"
	case StatusNotFound:
		return "not_found"
	case StatusStale:
		return "stale"
	case StatusDeleted:
		return "deleted"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Handle is a cheap, copyable reference to an entity. It carries the owning
// manager, the entity id, and a snapshot of the entity's mask taken when the
// handle was created or last refreshed. Any mutation that changes the
// entity's mask refreshes the acting handle and leaves every other copy
// detectably stale.
//
// Handles are weak references: they do not keep the manager alive and must
// not be used after the manager is gone.
type Handle struct {
	mgr      *Manager
	id       types.EntityID
	snapshot types.Mask
	deleted  bool
}

// ID returns the entity id the handle refers to.
func (h Handle) ID() types.EntityID {
	return h.id
}

// Manager returns the manager the handle was created by, or nil for a
// default-constructed handle.
func (h Handle) Manager() *Manager {
	return h.mgr
}

// Status computes the handle's validity against the live registry. Only
// StatusOk permits further operations.
func (h Handle) Status() Status {
	if h.mgr == nil {
		return StatusUninitialized
	}
	if h.deleted {
		return StatusDeleted
	}
	rec := h.mgr.registry.record(h.id)
	if rec == nil {
		return StatusNotFound
	}
	if rec.mask != h.snapshot {
		return StatusStale
	}
	return StatusOk
}

// Destroy removes the entity through the owning manager. See Manager.Destroy.
func (h *Handle) Destroy() error {
	if h.mgr == nil {
		return ErrUninitializedHandle
	}
	return h.mgr.Destroy(h)
}

func (h Handle) String() string {
	return fmt.Sprintf("entity %d (%s)", h.id, h.Status())
}
