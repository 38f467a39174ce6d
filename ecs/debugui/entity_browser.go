package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// EntityBrowser is an ImGui window listing archetypes and their entities.
// Expanding an entity shows its components with the same editors as the
// singleton inspector.
type EntityBrowser struct {
	storage    *ecs.Storage
	filterText string
}

func NewEntityBrowser(storage *ecs.Storage) *EntityBrowser {
	return &EntityBrowser{storage: storage}
}

func (eb *EntityBrowser) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 300), imgui.CondOnce)
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Filter components...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		eb.filterText = ""
	}

	for _, archetype := range eb.storage.Archetypes() {
		if archetype.Len() == 0 {
			continue
		}
		names := archetypeName(archetype)
		if !matchesFilter(names, eb.filterText) {
			continue
		}

		header := fmt.Sprintf("%s (%d)##0x%X", names, archetype.Len(), archetype.ID())
		if !imgui.TreeNodeStr(header) {
			continue
		}
		for id := range archetype.Iter() {
			eb.renderEntity(archetype, id)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (eb *EntityBrowser) renderEntity(archetype *ecs.Archetype, id ecs.EntityId) {
	if !imgui.TreeNodeStr(fmt.Sprintf("Entity %d", id)) {
		return
	}
	for _, compType := range archetype.Types() {
		component := eb.storage.GetComponent(id, compType)
		if component == nil {
			continue
		}
		widgetID := fmt.Sprintf("%d.%s", id, compType.Name())
		if imgui.TreeNodeStr(compType.String() + "##" + widgetID) {
			renderFields(widgetID, reflectElem(component))
			imgui.TreePop()
		}
	}
	imgui.TreePop()
}

func archetypeName(archetype *ecs.Archetype) string {
	types := archetype.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name()
	}
	return strings.Join(names, ", ")
}

func matchesFilter(names, filter string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.Contains(strings.ToLower(names), strings.ToLower(filter))
}
