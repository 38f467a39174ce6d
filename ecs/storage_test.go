package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(&Position{X: 1.0, Y: 2.0}, &Velocity{DX: 0.5, DY: 0.5}, Score(32))
	second := storage.Spawn(Position{X: 3, Y: 4})

	assert.True(t, first.IsValid())
	assert.Greater(t, second, first)
	assert.True(t, storage.Alive(first))
	assert.Equal(t, 2, storage.EntityCount())
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() }, "no components")
	assert.Panics(t, func() { storage.Spawn(Position{}, Position{}) }, "duplicate type")
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) }, "map component")
	assert.Panics(t, func() { storage.Spawn(uint8(1)) }, "unregistered type")
}

func TestGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 3.0, Y: 4.0}, Name{Value: "Test Entity"})

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, float32(3.0), pos.X)
	assert.Equal(t, float32(4.0), pos.Y)

	name := storage.GetComponent(id, reflect.TypeOf(Name{})).(*Name)
	assert.Equal(t, "Test Entity", name.Value)

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.Nil(t, ecs.ReadComponent[Position](storage, ecs.EntityId(999)))

	pos.X = 10
	assert.Equal(t, float32(10), ecs.ReadComponent[Position](storage, id).X)
}

func TestDeleteKeepsOtherEntities(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{X: 1})
	b := storage.Spawn(Position{X: 2})
	c := storage.Spawn(Position{X: 3})

	assert.True(t, storage.Delete(a))
	assert.False(t, storage.Delete(a))
	assert.False(t, storage.Alive(a))

	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, b).X)
	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, c).X)
	assert.Equal(t, 2, storage.EntityCount())
}

func TestAddComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	t.Run("moves entity and keeps id", func(t *testing.T) {
		id := storage.Spawn(Position{X: 1, Y: 2})
		other := storage.Spawn(Position{X: 5, Y: 6})

		require.True(t, storage.AddComponent(id, Velocity{DX: 3}))

		assert.True(t, storage.HasComponent(id, reflect.TypeOf(Velocity{})))
		assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, id).X)
		assert.Equal(t, float32(3), ecs.ReadComponent[Velocity](storage, id).DX)
		assert.Equal(t, float32(5), ecs.ReadComponent[Position](storage, other).X)
	})

	t.Run("overwrites existing component", func(t *testing.T) {
		id := storage.Spawn(Health{Current: 10, Max: 100})
		before := len(storage.Archetypes())

		require.True(t, storage.AddComponent(id, &Health{Current: 50, Max: 100}))

		assert.Equal(t, 50, ecs.ReadComponent[Health](storage, id).Current)
		assert.Equal(t, before, len(storage.Archetypes()))
	})

	t.Run("unknown entity", func(t *testing.T) {
		assert.False(t, storage.AddComponent(ecs.EntityId(12345), Velocity{}))
	})
}

func TestRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Velocity{DX: 2})

	require.True(t, storage.RemoveComponent(id, reflect.TypeOf(Velocity{})))
	assert.False(t, storage.HasComponent(id, reflect.TypeOf(Velocity{})))
	assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, id).X)

	assert.False(t, storage.RemoveComponent(id, reflect.TypeOf(Velocity{})))

	require.True(t, storage.RemoveComponent(id, reflect.TypeOf(Position{})))
	assert.False(t, storage.Alive(id), "removing the last component deletes the entity")
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var health *Health
	assert.False(t, storage.ReadSingleton(&health))

	storage.AddSingleton(Health{Current: 1, Max: 2})
	require.True(t, storage.ReadSingleton(&health))
	assert.Equal(t, 1, health.Current)

	storage.AddSingleton(&Health{Current: 7, Max: 9})
	assert.Equal(t, 7, health.Current, "replacement is visible through earlier pointers")

	storage.AddSingleton(Name{Value: "n"})

	var names []string
	for typ := range storage.Singletons() {
		names = append(names, typ.Name())
	}
	assert.Equal(t, []string{"Health", "Name"}, names)

	assert.Panics(t, func() { storage.ReadSingleton(health) })
}
