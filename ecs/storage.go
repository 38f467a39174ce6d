package ecs

import (
	"iter"
	"reflect"
	"slices"
	"sort"

	"github.com/kamstrup/intmap"
)

type entityLocation struct {
	archetype *Archetype
	row       int
}

// Storage is the main ECS storage interface. It owns every entity, grouped
// into archetypes, plus the singleton components.
//
// Component pointers handed out by GetComponent, views and queries stay valid
// until the next structural change (spawn, delete, add or remove component).
// Systems should make structural changes through frame Commands.
type Storage struct {
	registry   *ComponentRegistry
	archetypes []*Archetype
	byKey      map[string]*Archetype
	locations  *intmap.Map[EntityId, entityLocation]
	singletons map[reflect.Type]any
	nextId     EntityId
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		byKey:      make(map[string]*Archetype),
		locations:  intmap.New[EntityId, entityLocation](64),
		singletons: make(map[reflect.Type]any),
	}
}

// Registry returns the registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetype := s.archetypeFor(types)

	s.nextId++
	id := s.nextId
	row := archetype.insert(id, components)
	s.locations.Put(id, entityLocation{archetype: archetype, row: row})
	return id
}

// Delete removes all data related to the entity ID. It reports whether the entity existed.
func (s *Storage) Delete(id EntityId) bool {
	loc, ok := s.locations.Get(id)
	if !ok {
		return false
	}
	s.detach(loc)
	s.locations.Del(id)
	return true
}

// Alive reports whether id names an entity in this storage.
func (s *Storage) Alive(id EntityId) bool {
	_, ok := s.locations.Get(id)
	return ok
}

// AddComponent attaches component to the entity. An existing component of the
// same type is overwritten in place; otherwise the entity moves to the
// archetype with the extra type. The entity keeps its id.
func (s *Storage) AddComponent(id EntityId, component any) bool {
	loc, ok := s.locations.Get(id)
	if !ok {
		return false
	}

	compType := extractComponentTypes([]any{component})[0]
	if existing := loc.archetype.component(loc.row, compType); existing != nil {
		reflect.ValueOf(existing).Elem().Set(reflect.Indirect(reflect.ValueOf(component)))
		return true
	}

	types := append(slices.Clone(loc.archetype.types), compType)
	components := append(loc.archetype.values(loc.row), component)
	s.relocate(id, loc, types, components)
	return true
}

// RemoveComponent detaches the component of compType from the entity. Removing
// the last component deletes the entity.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) bool {
	loc, ok := s.locations.Get(id)
	if !ok || !loc.archetype.HasComponent(compType) {
		return false
	}

	if len(loc.archetype.types) == 1 {
		return s.Delete(id)
	}

	types := make([]reflect.Type, 0, len(loc.archetype.types)-1)
	components := make([]any, 0, len(loc.archetype.types)-1)
	for i, typ := range loc.archetype.types {
		if typ == compType {
			continue
		}
		types = append(types, typ)
		components = append(components, loc.archetype.columns[i].Value(loc.row))
	}

	s.relocate(id, loc, types, components)
	return true
}

// GetComponent returns a pointer to the component of compType, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	loc, ok := s.locations.Get(id)
	if !ok {
		return nil
	}
	return loc.archetype.component(loc.row, compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	loc, ok := s.locations.Get(id)
	if !ok {
		return false
	}
	return loc.archetype.HasComponent(compType)
}

// Archetypes returns every archetype created so far, in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return slices.Clone(s.archetypes)
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return s.locations.Len()
}

// AddSingleton stores value as the singleton of its type. If a singleton of
// that type already exists it is overwritten in place, so pointers obtained
// earlier keep observing it.
func (s *Storage) AddSingleton(value any) {
	v := reflect.Indirect(reflect.ValueOf(value))
	if existing, ok := s.singletons[v.Type()]; ok {
		reflect.ValueOf(existing).Elem().Set(v)
		return
	}

	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	s.singletons[v.Type()] = ptr.Interface()
}

// ReadSingleton points *target at the stored singleton. target must be a
// pointer to a pointer, e.g. `var m *Match; storage.ReadSingleton(&m)`.
func (s *Storage) ReadSingleton(target any) bool {
	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Ptr || tv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry, ok := s.singletons[tv.Elem().Type().Elem()]
	if !ok {
		return false
	}
	tv.Elem().Set(reflect.ValueOf(entry))
	return true
}

func (s *Storage) getSingleton(t reflect.Type) any {
	return s.singletons[t]
}

// Singletons iterates over singleton types and pointers, ordered by type name.
func (s *Storage) Singletons() iter.Seq2[reflect.Type, any] {
	types := make([]reflect.Type, 0, len(s.singletons))
	for t := range s.singletons {
		types = append(types, t)
	}
	sort.Sort(byTypeName(types))

	return func(yield func(reflect.Type, any) bool) {
		for _, t := range types {
			if !yield(t, s.singletons[t]) {
				return
			}
		}
	}
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	sort.Sort(byTypeName(types))
	for i := 1; i < len(types); i++ {
		if types[i] == types[i-1] {
			panic("duplicate component type " + types[i].String())
		}
	}

	key := archetypeKey(types)
	if archetype, ok := s.byKey[key]; ok {
		return archetype
	}

	archetype := newArchetype(key, types, s.registry)
	s.byKey[key] = archetype
	s.archetypes = append(s.archetypes, archetype)
	return archetype
}

// detach removes the entity's row and fixes up the entity moved into its place.
func (s *Storage) detach(loc entityLocation) {
	if moved, ok := loc.archetype.remove(loc.row); ok {
		s.locations.Put(moved, loc)
	}
}

func (s *Storage) relocate(id EntityId, loc entityLocation, types []reflect.Type, components []any) {
	target := s.archetypeFor(types)
	s.detach(loc)
	row := target.insert(id, components)
	s.locations.Put(id, entityLocation{archetype: target, row: row})
}

func componentType(comp any) reflect.Type {
	compType := reflect.TypeOf(comp)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}
	return compType
}

// extractComponentTypes validates components and returns their value types.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		if comp == nil {
			panic("components cannot be nil")
		}
		compType := componentType(comp)

		// Components can be structs or primitives (int, string, etc.)
		// but not pointers, maps, channels, or functions.
		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	return types
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's component of type T, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
