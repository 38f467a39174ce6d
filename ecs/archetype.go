package ecs

import (
	"hash/fnv"
	"iter"
	"reflect"
	"slices"
	"strings"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return typeKey(a[i]) < typeKey(a[j]) }

// typeKey names a type unambiguously across packages.
func typeKey(t reflect.Type) string {
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// archetypeKey joins the keys of an already sorted type list.
func archetypeKey(types []reflect.Type) string {
	var b strings.Builder
	for i, t := range types {
		if i > 0 {
			b.WriteByte(0)
		}
		b.WriteString(typeKey(t))
	}
	return b.String()
}

// Archetype stores every entity that has exactly the same set of component types.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	columns  []iComponentStorage
	index    map[reflect.Type]int
	entities []EntityId
}

func newArchetype(key string, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	h := fnv.New32a()
	h.Write([]byte(key))

	a := &Archetype{
		id:      h.Sum32(),
		types:   types,
		columns: make([]iComponentStorage, len(types)),
		index:   make(map[reflect.Type]int, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[idx] = factory()
		a.index[typ] = idx
	}

	return a
}

// insert appends a row for id. components must hold exactly one value per archetype type.
func (a *Archetype) insert(id EntityId, components []any) int {
	for _, comp := range components {
		idx, ok := a.index[componentType(comp)]
		if !ok || !a.columns[idx].Append(comp) {
			panic("component " + componentType(comp).String() + " does not belong to archetype")
		}
	}
	a.entities = append(a.entities, id)
	return len(a.entities) - 1
}

// remove swap-removes row. If another entity was moved into row it is returned.
func (a *Archetype) remove(row int) (EntityId, bool) {
	last := len(a.entities) - 1
	for _, col := range a.columns {
		col.SwapRemove(row)
	}

	if row == last {
		a.entities = a.entities[:last]
		return 0, false
	}

	moved := a.entities[last]
	a.entities[row] = moved
	a.entities = a.entities[:last]
	return moved, true
}

func (a *Archetype) component(row int, compType reflect.Type) any {
	idx, ok := a.index[compType]
	if !ok {
		return nil
	}
	return a.columns[idx].Get(row)
}

// values copies every component of row, in archetype type order.
func (a *Archetype) values(row int) []any {
	out := make([]any, 0, len(a.columns))
	for _, col := range a.columns {
		out = append(out, col.Value(row))
	}
	return out
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	_, ok := a.index[compType]
	return ok
}

// ID returns a hash of the archetype's component set.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return slices.Clone(a.types)
}

// Len returns the number of live entities in the archetype.
func (a *Archetype) Len() int {
	return len(a.entities)
}

// Iter returns an iterator over the entities in this archetype.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range a.entities {
			if !yield(id) {
				return
			}
		}
	}
}
