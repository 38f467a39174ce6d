package ecs

// iComponentStorage is a type-erased column holding one component type for
// every row of an archetype.
type iComponentStorage interface {
	Append(item any) bool
	Get(row int) any
	Value(row int) any
	SwapRemove(row int)
	Len() int
}
