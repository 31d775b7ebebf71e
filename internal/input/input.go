package input

import (
	"sync"

	"globe/internal/interaction"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionToggleControls Action = iota
	ActionReset
	ActionToggleProfiling
	ActionToggleWireframe
	ActionQuit
	ActionMouseLeft
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and buttons to actions and collects the
// pointer and wheel events GLFW delivers between two frames
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	cursorX, cursorY float64
	cursorSeen       bool
	wheel            interaction.WheelQueue
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyH, ActionToggleControls)
	im.BindKey(glfw.KeyR, ActionReset)
	im.BindKey(glfw.KeyP, ActionToggleProfiling)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

func (im *InputManager) apply(actions []Action, isPressed bool) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, act := range actions {
		if act < 0 || act >= ActionCount {
			continue
		}
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// HandleKeyEvent processes a key event from the GLFW callback
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if exists {
		im.apply(actions, action == glfw.Press || action == glfw.Repeat)
	}
}

// HandleMouseButtonEvent processes a mouse button event from the GLFW callback
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.mouseButtonToActions[button]
	im.mu.RUnlock()

	if exists {
		im.apply(actions, action == glfw.Press)
	}
}

// HandleCursorPos records the latest pointer position in window coordinates
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	im.cursorX, im.cursorY = x, y
	im.cursorSeen = true
	im.mu.Unlock()
}

// HandleScroll queues one vertical wheel offset until the next ConsumeScroll
func (im *InputManager) HandleScroll(yoff float64) {
	im.wheel.Push(yoff)
}

// Install registers the key, mouse button, cursor and scroll callbacks
func (im *InputManager) Install(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		im.HandleCursorPos(x, y)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})
}

// CursorPos returns the last reported pointer position. ok is false until
// the pointer has moved over the window at least once.
func (im *InputManager) CursorPos() (x, y float64, ok bool) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.cursorX, im.cursorY, im.cursorSeen
}

// ConsumeScroll returns the wheel offsets received since the last call, one
// per event, and clears them
func (im *InputManager) ConsumeScroll() []float64 {
	return im.wheel.Drain()
}

// PostUpdate must be called at the end of each frame to reset edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
