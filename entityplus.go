// Package entityplus is an entity-component-system container. Game and
// simulation code models objects as compositions of small data pieces
// (components) plus boolean markers (tags), and iterates efficiently over
// subsets filtered by the set of pieces an object owns.
//
// A Manager owns the entities; component and tag types implement
// types.Component and are registered up front:
//
//	m, _ := entityplus.NewManager()
//	_ = entityplus.RegisterComponent[Position](m)
//	_ = entityplus.RegisterTag[Frozen](m)
//
//	e, _ := m.Create()
//	entityplus.AddComponent(&e, Position{X: 1, Y: 2})
//	entityplus.SetTag[Frozen](&e, true)
//
//	m.Search(filter.Contains(filter.Component[Position]())).Each(func(h entityplus.Handle) bool {
//		pos, _ := entityplus.GetComponent[Position](h)
//		pos.X++
//		return true
//	})
//
// Handles are cheap value types carrying a snapshot of the entity's
// component/tag mask. A mutation through one handle that changes that mask
// leaves every other copy detectably stale, which distinguishes "entity changed under me" from
// "entity is gone" without any per-handle bookkeeping in the manager.
//
// The manager is a pure in-process data structure: single-threaded, no
// internal locking. Callers serialize access.
package entityplus
