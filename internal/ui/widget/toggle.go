package widget

import (
	"globe/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Toggle struct {
	BaseComponent
	Label     string
	IsOn      bool
	OnToggle  func(isOn bool)
	IsHovered bool
}

func NewToggle(label string, x, y, w, h float32, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Label:         label,
		IsOn:          initial,
		OnToggle:      onToggle,
	}
}

func (t *Toggle) Render(u *ui.UI, window *glfw.Window) {
	mx, my := window.GetCursorPos()
	t.IsHovered = t.Contains(float32(mx), float32(my))

	bgColor := mgl32.Vec3{0.5, 0.2, 0.2}
	if t.IsOn {
		bgColor = mgl32.Vec3{0.2, 0.5, 0.2}
	}
	if t.IsHovered {
		bgColor = bgColor.Mul(1.2)
	}
	u.DrawFilledRect(t.X, t.Y, t.W, t.H, bgColor, 0.85)

	// Knob sits on the side matching the state
	knobW := t.W / 2
	knobX := t.X
	if t.IsOn {
		knobX += knobW
	}
	u.DrawFilledRect(knobX+2, t.Y+2, knobW-4, t.H-4, mgl32.Vec3{0.9, 0.9, 0.9}, 0.9)
}

func (t *Toggle) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if t.IsHovered && justPressedLeft {
		t.IsOn = !t.IsOn
		if t.OnToggle != nil {
			t.OnToggle(t.IsOn)
		}
		return true
	}
	return false
}
