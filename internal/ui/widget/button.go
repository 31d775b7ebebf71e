package widget

import (
	"globe/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Button struct {
	BaseComponent
	Text      string
	OnClick   func()
	IsHovered bool

	NormalColor mgl32.Vec3
	HoverColor  mgl32.Vec3
	TextColor   mgl32.Vec3
}

func NewButton(text string, x, y, w, h float32, onClick func()) *Button {
	return &Button{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Text:          text,
		OnClick:       onClick,
		NormalColor:   mgl32.Vec3{0.2, 0.2, 0.2},
		HoverColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		TextColor:     mgl32.Vec3{1, 1, 1},
	}
}

func (b *Button) Render(u *ui.UI, window *glfw.Window) {
	mx, my := window.GetCursorPos()
	b.IsHovered = b.Contains(float32(mx), float32(my))

	color := b.NormalColor
	if b.IsHovered {
		color = b.HoverColor
	}
	u.DrawFilledRect(b.X, b.Y, b.W, b.H, color, 0.9)

	// Fit the label to 40% of the button height, shrinking to stay inside 90% of its width
	_, rawH := u.MeasureText(b.Text, 1.0)
	if rawH == 0 {
		return
	}
	scale := b.H * 0.4 / rawH
	textW, _ := u.MeasureText(b.Text, scale)
	if maxW := b.W * 0.9; textW > maxW {
		scale *= maxW / textW
		textW = maxW
	}
	_, textH := u.MeasureText(b.Text, scale)

	u.DrawText(b.Text, b.X+(b.W-textW)/2, b.Y+(b.H+textH)/2, scale, b.TextColor)
}

func (b *Button) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if b.IsHovered && justPressedLeft {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}
