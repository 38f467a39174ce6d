package ecs

// EntityId identifies an entity for the lifetime of its Storage.
// Ids are issued in increasing order starting at 1; zero never names an entity.
type EntityId uint64

// IsValid reports whether the id could refer to an entity.
func (e EntityId) IsValid() bool {
	return e != 0
}
