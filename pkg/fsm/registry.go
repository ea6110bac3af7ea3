package fsm

import "slices"

// MapRegistry is a Registry backed by an explicit identifier to factory map.
type MapRegistry struct {
	factories map[StateID]Factory
}

func NewRegistry() *MapRegistry {
	return &MapRegistry{
		factories: make(map[StateID]Factory),
	}
}

// Register binds id to f, replacing any previous binding.
func (r *MapRegistry) Register(id StateID, f Factory) *MapRegistry {
	r.factories[id] = f
	return r
}

func (r *MapRegistry) Lookup(id StateID) (Factory, bool) {
	f, ok := r.factories[id]
	if !ok || f == nil {
		return nil, false
	}
	return f, true
}

func (r *MapRegistry) IDs() []StateID {
	ids := make([]StateID, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Wrap returns a copy of the registry with every factory passed through wrap.
func (r *MapRegistry) Wrap(wrap func(id StateID, f Factory) Factory) *MapRegistry {
	wrapped := NewRegistry()
	for id, f := range r.factories {
		if f == nil {
			continue
		}
		wrapped.factories[id] = wrap(id, f)
	}
	return wrapped
}
