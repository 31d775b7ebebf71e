package interaction

import (
	"fmt"
	"sync"
	"time"

	"globe/internal/config"
)

// ZoomDirection says how the last wheel event moved the camera
type ZoomDirection int

const (
	ZoomReceding ZoomDirection = iota
	ZoomApproaching
)

func (d ZoomDirection) String() string {
	if d == ZoomApproaching {
		return "approaching"
	}
	return "receding"
}

// ZoomEvent describes one applied wheel event
type ZoomEvent struct {
	Previous  float32
	Current   float32
	Direction ZoomDirection
}

// WheelZoom moves the camera along its forward axis. Distance is not
// clamped; the camera may pass through the globe or recede indefinitely.
type WheelZoom struct {
	Factor    float32
	WheelStep float32

	ApproachingLabel string
	RecedingLabel    string

	// Shown on every wheel event: the new distance and the direction label
	Distance *Notice
	Label    *Notice
}

func NewWheelZoom(zc config.ZoomConfig, hc config.HUDConfig) *WheelZoom {
	return &WheelZoom{
		Factor:           zc.Factor,
		WheelStep:        zc.WheelStep,
		ApproachingLabel: hc.ApproachingLabel,
		RecedingLabel:    hc.RecedingLabel,
		Distance:         NewNotice(zc.NoticeDuration),
		Label:            NewNotice(zc.NoticeDuration),
	}
}

// DeltaFromScroll converts a GLFW vertical scroll offset (positive when the
// wheel turns away from the user) into a wheel delta where positive pushes
// the camera away from the globe.
func (z *WheelZoom) DeltaFromScroll(yoff float64) float32 {
	return -float32(yoff) * z.WheelStep
}

// Apply adds delta*Factor to the camera distance and shows both notices
func (z *WheelZoom) Apply(s *State, delta float32, now time.Time) ZoomEvent {
	ev := ZoomEvent{Previous: s.CameraDistance}
	s.CameraDistance += delta * z.Factor
	ev.Current = s.CameraDistance

	if ev.Previous > ev.Current {
		ev.Direction = ZoomApproaching
	}

	label := z.RecedingLabel
	if ev.Direction == ZoomApproaching {
		label = z.ApproachingLabel
	}
	z.Label.Show(label, now)
	z.Distance.Show(fmt.Sprintf("Camera Z Position: %.2f", ev.Current), now)

	return ev
}

// ApplyScroll applies each queued GLFW offset as its own wheel event, in
// arrival order. The notices end up showing the last event.
func (z *WheelZoom) ApplyScroll(s *State, offsets []float64, now time.Time) []ZoomEvent {
	events := make([]ZoomEvent, 0, len(offsets))
	for _, yoff := range offsets {
		events = append(events, z.Apply(s, z.DeltaFromScroll(yoff), now))
	}
	return events
}

// WheelQueue keeps scroll offsets in arrival order between two frames
type WheelQueue struct {
	mu      sync.Mutex
	offsets []float64
}

func (q *WheelQueue) Push(yoff float64) {
	q.mu.Lock()
	q.offsets = append(q.offsets, yoff)
	q.mu.Unlock()
}

// Drain returns the queued offsets and empties the queue
func (q *WheelQueue) Drain() []float64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.offsets) == 0 {
		return nil
	}
	out := q.offsets
	q.offsets = nil
	return out
}
