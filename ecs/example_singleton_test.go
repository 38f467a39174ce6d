package ecs_test

import (
	"fmt"

	"github.com/plus3/pong/ecs"
)

type GameConfig struct {
	MaxPlayers int
	Difficulty string
}

type GameScore struct {
	Points int
	Level  int
}

// ExampleNewSingleton demonstrates creating and accessing singleton components.
// Singletons are global components not associated with any entity, useful for
// game state, configuration, or other application-wide data.
func ExampleNewSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	config := ecs.NewSingleton[GameConfig](storage, GameConfig{
		MaxPlayers: 2,
		Difficulty: "Normal",
	})

	fmt.Printf("Config: %d players, %s difficulty\n", config.Get().MaxPlayers, config.Get().Difficulty)

	config.Get().Difficulty = "Hard"

	// A second accessor sees the same value; the initializer is ignored.
	sameConfig := ecs.NewSingleton[GameConfig](storage, GameConfig{Difficulty: "Easy"})
	fmt.Printf("Same config: %s difficulty\n", sameConfig.Get().Difficulty)

	// Output:
	// Config: 2 players, Normal difficulty
	// Same config: Hard difficulty
}

// ExampleStorage_ReadSingleton demonstrates the ReadSingleton API for
// reading singletons without holding a typed accessor.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	storage.AddSingleton(GameScore{Points: 1200, Level: 3})

	var score *GameScore
	if storage.ReadSingleton(&score) {
		fmt.Printf("Score: %d (level %d)\n", score.Points, score.Level)
	}

	var config *GameConfig
	fmt.Println("Config present:", storage.ReadSingleton(&config))

	// Output:
	// Score: 1200 (level 3)
	// Config present: false
}
