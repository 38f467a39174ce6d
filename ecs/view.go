package ecs

import (
	"iter"
	"reflect"
)

type viewFieldKind uint8

const (
	viewFieldRequired viewFieldKind = iota
	viewFieldOptional
	viewFieldEntity
)

type viewField struct {
	index int
	kind  viewFieldKind
	typ   reflect.Type
}

var entityIdType = reflect.TypeFor[EntityId]()

// View represents a query for entities with a specific combination of components.
// The type T must be a struct whose fields are pointers to component types.
// Embedded fields are always required; named fields can be marked optional
// with the `ecs:"optional"` struct tag. A field of type EntityId receives the
// entity's id.
type View[T any] struct {
	storage *Storage
	fields  []viewField
}

// NewView creates a new view for the given struct type. It panics if T does
// not follow the rules described on View.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	fields := make([]viewField, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			panic("View struct field " + field.Name + " must be exported")
		}

		if field.Type == entityIdType {
			fields = append(fields, viewField{index: i, kind: viewFieldEntity})
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		kind := viewFieldRequired
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				kind = viewFieldOptional
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		fields = append(fields, viewField{index: i, kind: kind, typ: field.Type.Elem()})
	}

	return &View[T]{
		storage: storage,
		fields:  fields,
	}
}

// Fill populates ptr with the entity's components. It returns false if the
// entity is missing or lacks a required component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	loc, ok := v.storage.locations.Get(id)
	if !ok {
		return false
	}
	return v.fill(loc.archetype, loc.row, id, reflect.ValueOf(ptr).Elem())
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// matchesArchetype checks if an archetype contains every required component type.
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for _, f := range v.fields {
		if f.kind == viewFieldRequired && !archetype.HasComponent(f.typ) {
			return false
		}
	}
	return true
}

func (v *View[T]) fill(archetype *Archetype, row int, id EntityId, dst reflect.Value) bool {
	for _, f := range v.fields {
		field := dst.Field(f.index)
		if f.kind == viewFieldEntity {
			field.SetUint(uint64(id))
			continue
		}

		component := archetype.component(row, f.typ)
		if component == nil {
			if f.kind == viewFieldOptional {
				field.SetZero()
				continue
			}
			return false
		}
		field.Set(reflect.ValueOf(component))
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for row, id := range archetype.entities {
			var result T
			if !v.fill(archetype, row, id, reflect.ValueOf(&result).Elem()) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Iter returns an iterator over all entities that have the required components.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.archetypes {
			if !v.matchesArchetype(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
