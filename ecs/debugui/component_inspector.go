package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// SingletonInspector is an ImGui window that shows every singleton in a
// storage and lets numeric, boolean and string fields be edited in place.
type SingletonInspector struct {
	storage *ecs.Storage
}

func NewSingletonInspector(storage *ecs.Storage) *SingletonInspector {
	return &SingletonInspector{storage: storage}
}

func (si *SingletonInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 250), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 220), imgui.CondOnce)
	if !imgui.BeginV("Singletons", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for t, ptr := range si.storage.Singletons() {
		if imgui.TreeNodeStr(t.String()) {
			renderFields(t.String(), reflect.ValueOf(ptr).Elem())
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderFields draws the exported fields of a struct value. id keeps widget
// labels unique within the window.
func renderFields(id string, val reflect.Value) {
	if val.Kind() != reflect.Struct {
		renderValue("value", id, val)
		return
	}
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		renderValue(field.Name, id+"."+field.Name, val.Field(field.Index))
	}
}

func renderValue(name, id string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		label(name)
		if imgui.InputInt("##"+id, &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		label(name)
		if imgui.InputInt("##"+id, &v) && val.CanSet() && v >= 0 {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		label(name)
		if imgui.InputFloat("##"+id, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name+"##"+id, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		label(name)
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint("##"+id, "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name + "##" + id) {
			renderFields(id, val)
			imgui.TreePop()
		}

	case reflect.Array:
		if imgui.TreeNodeStr(fmt.Sprintf("%s [%d]##%s", name, val.Len(), id)) {
			for i := 0; i < val.Len(); i++ {
				renderValue(fmt.Sprintf("[%d]", i), fmt.Sprintf("%s[%d]", id, i), val.Index(i))
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Func, reflect.Pointer, reflect.Interface:
		state := "set"
		if val.IsNil() {
			state = "nil"
		}
		imgui.Text(fmt.Sprintf("%s: %s %s", name, val.Kind(), state))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func label(name string) {
	imgui.Text(name + ":")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
}
