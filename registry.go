package entityplus

import (
	"sort"

	"github.com/entityplus/entityplus/types"
)

// entityRecord is the authoritative state of one live entity: its id and the
// combined component/tag mask.
type entityRecord struct {
	id   types.EntityID
	mask types.Mask
}

// entityRegistry owns the set of live entity records, kept sorted by id.
// Because ids are allocated from a monotone counter, creation is always an
// append and the slice stays sorted without shifting.
type entityRegistry struct {
	records []entityRecord
	nextID  types.EntityID
}

func newEntityRegistry(capacity int) *entityRegistry {
	return &entityRegistry{
		records: make([]entityRecord, 0, capacity),
	}
}

// create allocates the next id and inserts an empty record for it.
func (r *entityRegistry) create() types.EntityID {
	id := r.nextID
	r.nextID++
	r.records = append(r.records, entityRecord{id: id})
	return id
}

func (r *entityRegistry) indexOf(id types.EntityID) (int, bool) {
	i := sort.Search(len(r.records), func(i int) bool {
		return r.records[i].id >= id
	})
	if i < len(r.records) && r.records[i].id == id {
		return i, true
	}
	return i, false
}

// record returns the live record for id, or nil. The pointer is only valid
// until the next create or remove.
func (r *entityRegistry) record(id types.EntityID) *entityRecord {
	i, ok := r.indexOf(id)
	if !ok {
		return nil
	}
	return &r.records[i]
}

func (r *entityRegistry) live(id types.EntityID) bool {
	_, ok := r.indexOf(id)
	return ok
}

func (r *entityRegistry) remove(id types.EntityID) bool {
	i, ok := r.indexOf(id)
	if !ok {
		return false
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return true
}

func (r *entityRegistry) len() int {
	return len(r.records)
}

// each visits every live record in ascending id order. Returning false from
// the callback stops the walk.
func (r *entityRegistry) each(fn func(rec *entityRecord) bool) {
	for i := range r.records {
		if !fn(&r.records[i]) {
			return
		}
	}
}
