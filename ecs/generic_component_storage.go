package ecs

import (
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent worlds to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

// genericComponentStorage is a dense column of T values. Rows are removed by
// moving the last row into the hole, so row numbers are only stable between
// structural changes.
type genericComponentStorage[T any] struct {
	items []T
}

// Append adds a component (given as T or *T) and reports whether the type matched.
func (cs *genericComponentStorage[T]) Append(item any) bool {
	switch v := item.(type) {
	case T:
		cs.items = append(cs.items, v)
	case *T:
		cs.items = append(cs.items, *v)
	default:
		return false
	}
	return true
}

// Get returns a pointer to the component at row, or nil when out of range.
func (cs *genericComponentStorage[T]) Get(row int) any {
	if row < 0 || row >= len(cs.items) {
		return nil
	}
	return &cs.items[row]
}

// Value returns a copy of the component at row, or nil when out of range.
func (cs *genericComponentStorage[T]) Value(row int) any {
	if row < 0 || row >= len(cs.items) {
		return nil
	}
	return cs.items[row]
}

func (cs *genericComponentStorage[T]) SwapRemove(row int) {
	last := len(cs.items) - 1
	if row < 0 || row > last {
		return
	}
	cs.items[row] = cs.items[last]
	var zero T
	cs.items[last] = zero
	cs.items = cs.items[:last]
}

func (cs *genericComponentStorage[T]) Len() int {
	return len(cs.items)
}
