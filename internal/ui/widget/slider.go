package widget

import (
	"globe/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Range converts between a slider's value and its thumb position in [0,1].
// *interaction.Binding is the usual implementation.
type Range interface {
	Normalize(v float32) float32
	Denormalize(n float32) float32
	Steps() int
}

// Slider edits a value in Range units. OnChange only fires when a drag
// produces a different value.
type Slider struct {
	BaseComponent
	Range    Range
	Value    float32
	ID       string
	OnChange func(value float32)
}

func NewSlider(x, y, w, h float32, r Range, value float32, id string, onChange func(value float32)) *Slider {
	return &Slider{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Range:         r,
		Value:         value,
		ID:            id,
		OnChange:      onChange,
	}
}

// Thumb is the normalized position drawn for the current value
func (s *Slider) Thumb() float32 {
	return s.Range.Normalize(s.Value)
}

func (s *Slider) Render(u *ui.UI, window *glfw.Window) {
	thumb := s.Thumb()
	moved := u.DrawSlider(s.X, s.Y, s.W, s.H, thumb, window, s.Range.Steps(), s.ID)
	if moved == thumb {
		return
	}
	s.drag(moved)
}

func (s *Slider) drag(thumb float32) {
	v := s.Range.Denormalize(thumb)
	if v == s.Value {
		return
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// HandleInput is a no-op; dragging is resolved in DrawSlider
func (s *Slider) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	return false
}
