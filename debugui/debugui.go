// Package debugui renders Dear ImGui panels that inspect and steer a fabric scene.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spacefabric/scene"
)

// Item holds a Dear ImGui render function run once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System renders every item and records the input capture state. It must
// run between the backend's BeginFrame and EndFrame.
type System struct {
	Items []Item
	Input InputState
}

// Add appends a render function.
func (s *System) Add(render func()) {
	s.Items = append(s.Items, Item{Render: render})
}

func (s *System) Execute(frame *scene.UpdateFrame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		item.Render()
	}
}
