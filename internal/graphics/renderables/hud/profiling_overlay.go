package hud

import (
	"fmt"
	"strings"
	"time"

	"globe/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// ProfilingStats holds the timings the app reports each frame
type ProfilingStats struct {
	render *profiling.FrameHistory

	lastTotalFrameDuration time.Duration
	lastUpdateDuration     time.Duration
	lastEventsDuration     time.Duration
	lastSwapDuration       time.Duration
}

func newProfilingStats() ProfilingStats {
	return ProfilingStats{render: profiling.NewFrameHistory(profiling.DefaultHistory)}
}

// ProfilingSetLastTotalFrameDuration stores the previous frame's wall time
func (h *HUD) ProfilingSetLastTotalFrameDuration(d time.Duration) {
	h.stats.lastTotalFrameDuration = d
}

// ProfilingSetLastUpdateDuration stores the time spent in the driver step
func (h *HUD) ProfilingSetLastUpdateDuration(d time.Duration) {
	h.stats.lastUpdateDuration = d
}

// ProfilingSetPhases stores event polling and buffer swap times
func (h *HUD) ProfilingSetPhases(events, swap time.Duration) {
	h.stats.lastEventsDuration = events
	h.stats.lastSwapDuration = swap
}

// ProfilingSetRenderDuration adds the render call duration to the rolling window
func (h *HUD) ProfilingSetRenderDuration(d time.Duration) {
	h.stats.render.Add(d)
}

// RenderProfilingInfo draws the timing breakdown below the FPS counter
func (h *HUD) RenderProfilingInfo() {
	r := h.stats.render
	lines := make([]string, 0, 16)

	lines = append(lines, fmt.Sprintf("Render: %s (avg %s, min %s, max %s)",
		profiling.FormatMs(r.Last), profiling.FormatMs(r.Avg), profiling.FormatMs(r.Min), profiling.FormatMs(r.Max)))

	if h.stats.lastUpdateDuration > 0 {
		lines = append(lines, "Update: "+profiling.FormatMs(h.stats.lastUpdateDuration))
	}
	if total := h.stats.lastTotalFrameDuration; total > 0 {
		overhead := max(0, total-r.Last)
		lines = append(lines, fmt.Sprintf("Frame: %s | non-render: %s", profiling.FormatMs(total), profiling.FormatMs(overhead)))
		lines = append(lines, fmt.Sprintf("Events: %s | swap: %s",
			profiling.FormatMs(h.stats.lastEventsDuration), profiling.FormatMs(h.stats.lastSwapDuration)))
	}

	if top := profiling.TopN(8); top != "" {
		for line := range strings.SplitSeq(top, ", ") {
			if line != "" && !strings.HasSuffix(line, ":0ms") {
				lines = append(lines, line)
			}
		}
	}

	h.font.RenderLines(lines, 10, 44, h.font.LineHeight(0.5), 0.5, mgl32.Vec3{1, 1, 1})
}
