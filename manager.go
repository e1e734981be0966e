package entityplus

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/entityplus/entityplus/types"
)

// componentRecord is the registration metadata for one component type.
type componentRecord struct {
	id     types.ComponentID
	name   string
	schema []byte
}

// tagRecord is the registration metadata for one tag type.
type tagRecord struct {
	id     types.TagID
	name   string
	schema []byte
}

// Manager is the entity manager: it owns the entity registry, one component
// holder per registered component type, and the tag bits of every entity.
// All mutations go through it, so the registry mask and the holder contents
// never disagree.
//
// A Manager is not safe for concurrent use; the caller serializes access.
type Manager struct {
	instanceID uuid.UUID
	logger     zerolog.Logger
	onError    func(error)

	registry *entityRegistry

	components map[string]*componentRecord
	tags       map[string]*tagRecord
	// holders is indexed by ComponentID; entry i is the store created when
	// component i was registered.
	holders []holder

	initialCapacity int
}

// NewManager creates an empty manager. Component and tag types are added
// afterwards with RegisterComponent and RegisterTag.
func NewManager(opts ...Option) (*Manager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, eris.Wrap(err, "failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	m := &Manager{
		instanceID:      uuid.New(),
		registry:        newEntityRegistry(cfg.InitialCapacity),
		components:      map[string]*componentRecord{},
		tags:            map[string]*tagRecord{},
		initialCapacity: cfg.InitialCapacity,
	}
	m.logger = log.Logger.Level(level).With().
		Str("manager_id", m.instanceID.String()).
		Logger()

	for _, opt := range opts {
		opt(m)
	}

	m.logger.Debug().Msg("entity manager created")
	return m, nil
}

// InstanceID returns the unique identity of this manager instance.
func (m *Manager) InstanceID() uuid.UUID {
	return m.instanceID
}

// Logger returns the manager's logger.
func (m *Manager) Logger() *zerolog.Logger {
	return &m.logger
}

func (m *Manager) String() string {
	return fmt.Sprintf("entity manager %s", m.instanceID)
}

// fail routes an error through the registered error callback, if any, before
// returning it to the caller.
func (m *Manager) fail(err error) error {
	if m == nil || err == nil {
		return err
	}
	if m.onError != nil {
		m.onError(err)
	}
	return err
}

// validate checks a handle in the fixed order: unbound, foreign, missing,
// stale. The first failing condition determines the error.
func (m *Manager) validate(h Handle) error {
	if h.mgr == nil {
		return ErrUninitializedHandle
	}
	if h.mgr != m {
		return ErrForeignManager
	}
	rec := m.registry.record(h.id)
	if rec == nil {
		return ErrEntityNotFound
	}
	if rec.mask != h.snapshot {
		return ErrStaleHandle
	}
	return nil
}

// Create allocates a new entity with no components and no tags, and returns
// a fresh handle to it.
func (m *Manager) Create() (Handle, error) {
	id := m.registry.create()
	m.logger.Debug().
		Uint64("entity_id", uint64(id)).
		Msg("entity created")
	return Handle{mgr: m, id: id}, nil
}

// Destroy validates the handle, removes the entity from every component
// holder it appears in, clears its tags, and deletes the record. The acting
// handle reports StatusDeleted afterwards; other copies report
// StatusNotFound.
func (m *Manager) Destroy(h *Handle) error {
	if m == nil {
		return ErrUninitializedHandle
	}
	if err := m.validate(*h); err != nil {
		return m.fail(err)
	}

	rec := m.registry.record(h.id)
	for _, cid := range rec.mask.ComponentIDs() {
		m.holders[cid].remove(h.id)
	}
	m.registry.remove(h.id)
	h.deleted = true

	m.logger.Debug().
		Uint64("entity_id", uint64(h.id)).
		Msg("entity destroyed")
	return nil
}

// EntityCount returns the number of live entities.
func (m *Manager) EntityCount() int {
	return m.registry.len()
}

// MaskFor resolves a component or tag type to its mask bit. It implements
// filter.Resolver.
func (m *Manager) MaskFor(c types.Component) (types.Mask, error) {
	name := c.Name()
	var mask types.Mask
	if rec, ok := m.components[name]; ok {
		mask.Set(types.ComponentBit(rec.id))
		return mask, nil
	}
	if rec, ok := m.tags[name]; ok {
		mask.Set(types.TagBit(rec.id))
		return mask, nil
	}
	return types.Mask{}, eris.Wrapf(ErrMustRegisterComponent, "%q is not a registered component or tag", name)
}
