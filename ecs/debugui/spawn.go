package debugui

import (
	"reflect"

	"github.com/plus3/pong/ecs"
)

// SpawnDebugUI spawns the performance, singleton and entity windows. The
// ImguiItem component must be registered first.
func SpawnDebugUI(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	storage.Spawn(ImguiItem{Render: NewPerformanceStats(storage, scheduler, 120).Render})
	storage.Spawn(ImguiItem{Render: NewSingletonInspector(storage).Render})
	storage.Spawn(ImguiItem{Render: NewEntityBrowser(storage).Render})
}

func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

func reflectElem(v any) reflect.Value {
	return reflect.Indirect(reflect.ValueOf(v))
}
