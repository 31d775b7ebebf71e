package interaction

import (
	"fmt"
	"time"
)

// Session counts what happened while the window was open, for the log line
// printed on exit
type Session struct {
	Started     time.Time
	Frames      uint64
	WheelEvents int
	Approaches  int
	Recessions  int
	Resets      int
}

func NewSession(now time.Time) *Session {
	return &Session{Started: now}
}

// RecordZoom counts one applied wheel event
func (s *Session) RecordZoom(ev ZoomEvent) {
	s.WheelEvents++
	if ev.Direction == ZoomApproaching {
		s.Approaches++
	} else {
		s.Recessions++
	}
}

// Summary formats the counters with the average frame rate up to now
func (s *Session) Summary(now time.Time) string {
	elapsed := now.Sub(s.Started)
	var fps float64
	if secs := elapsed.Seconds(); secs > 0 {
		fps = float64(s.Frames) / secs
	}
	return fmt.Sprintf("session %s: %d frames (%.1f fps avg), %d wheel events (%d approaching, %d receding), %d resets",
		elapsed.Round(time.Millisecond), s.Frames, fps, s.WheelEvents, s.Approaches, s.Recessions, s.Resets)
}
