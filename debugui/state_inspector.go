package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/brickfall/engine"
)

// StateInspector shows the game state and lets the ball and paddle be edited in place.
type StateInspector struct{}

func (si *StateInspector) Render(world *engine.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 320), imgui.CondOnce)

	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := &world.State
	imgui.Text(fmt.Sprintf("Tick: %d", s.Tick))
	imgui.Text(fmt.Sprintf("Mode: %s", s.Pause))
	imgui.Text(fmt.Sprintf("Lives: %d / %d", s.Lives, s.Config.Lives))
	imgui.Text(fmt.Sprintf("Blocks: %d", len(s.Blocks)))
	imgui.Text(fmt.Sprintf("Explosions: %d", len(s.Explosions)))
	imgui.Text(fmt.Sprintf("Trail: %d", len(s.Trail)))

	label := "Pause"
	if s.Paused() {
		label = "Resume"
	}
	if imgui.Button(label) {
		world.Click()
	}
	imgui.SameLine()
	imgui.Checkbox("Pause on life lost", &s.Config.PauseOnLifeLost)

	imgui.Separator()
	if imgui.TreeNodeStr("Ball") {
		renderStruct(reflect.ValueOf(&s.Ball).Elem())
		imgui.TreePop()
	}
	if imgui.TreeNodeStr("Paddle") {
		renderStruct(reflect.ValueOf(&s.Paddle).Elem())
		imgui.TreePop()
	}

	imgui.End()
}

// renderStruct draws the exported fields of an addressable struct value.
// Float fields are editable.
func renderStruct(val reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		renderField(field.Name, val.Field(field.Index))
	}
}

func renderField(name string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderStruct(val)
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
