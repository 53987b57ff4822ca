// Package debugui provides Dear ImGui panels for inspecting a running game.
// Panels are rendered through engine.Commands so they observe the final state
// of each frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/brickfall/engine"
)

// Panel is one ImGui window rendered every frame.
type Panel interface {
	Render(world *engine.World)
}

// PanelFunc adapts a function to the Panel interface.
type PanelFunc func(world *engine.World)

func (f PanelFunc) Render(world *engine.World) { f(world) }

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends should not forward input to the game while it does.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render of every panel and refreshes InputState.
type ImguiSystem struct {
	Panels     []Panel
	InputState InputState
}

func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	world := frame.World
	for _, panel := range i.Panels {
		frame.Commands.Defer(func() {
			panel.Render(world)
		})
	}
}
