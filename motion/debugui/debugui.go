// Package debugui provides immediate-mode GUI panels for motion scenes using Dear ImGui.
// Panels are registered with an ImguiSystem, which queues their render functions
// to run after the frame's structural changes have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/motionlab/motion/scene"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming input this frame.
// Check it before routing mouse or keyboard input to the scene.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render functions of its items every frame and
// refreshes InputState.
type ImguiSystem struct {
	Items      []*ImguiItem
	InputState ImguiInputState
}

// Add registers a render function and returns its item.
func (i *ImguiSystem) Add(render func()) *ImguiItem {
	item := &ImguiItem{Render: render}
	i.Items = append(i.Items, item)
	return item
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *scene.UpdateFrame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
