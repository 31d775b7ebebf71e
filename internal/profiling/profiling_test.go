package profiling

import (
	"strings"
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTopNOrdersBySlowest(t *testing.T) {
	ResetFrame()
	record("renderer.stars", 2*time.Millisecond)
	record("renderer.globe", 4200*time.Microsecond)
	record("app.update", 500*time.Microsecond)

	got := TopN(2)
	expected := "renderer.globe:4.2ms, renderer.stars:2ms"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	if all := TopN(10); strings.Count(all, ",") != 2 {
		t.Errorf("Expected three entries, got %q", all)
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	record("renderer.stars", time.Millisecond)
	record("renderer.globe", 3*time.Millisecond)
	record("app.update", 7*time.Millisecond)

	if got := SumWithPrefix("renderer."); got != 4*time.Millisecond {
		t.Errorf("Expected 4ms, got %v", got)
	}
	if got := SumWithPrefix("nothing."); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
}

func TestResetFrame(t *testing.T) {
	record("renderer.hud", time.Millisecond)
	ResetFrame()
	if n := len(Snapshot()); n != 0 {
		t.Errorf("Expected empty snapshot after reset, got %d entries", n)
	}
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	Track("app.tick")()
	Track("app.tick")()
	if _, ok := Snapshot()["app.tick"]; !ok {
		t.Fatal("Expected app.tick to be recorded")
	}
}

func TestFormatMs(t *testing.T) {
	cases := []struct {
		in       time.Duration
		expected string
	}{
		{0, "0ms"},
		{1500 * time.Microsecond, "1.5ms"},
		{16 * time.Millisecond, "16ms"},
		{16670 * time.Microsecond, "16.7ms"},
	}
	for _, c := range cases {
		if got := FormatMs(c.in); got != c.expected {
			t.Errorf("FormatMs(%v): expected %q, got %q", c.in, c.expected, got)
		}
	}
}

func TestFrameHistoryWindow(t *testing.T) {
	h := NewFrameHistory(3)
	for _, ms := range []int{10, 20, 30, 40} {
		h.Add(time.Duration(ms) * time.Millisecond)
	}

	if h.Len() != 3 {
		t.Fatalf("Expected window of 3, got %d", h.Len())
	}
	if h.Min != 20*time.Millisecond {
		t.Errorf("Expected min 20ms, got %v", h.Min)
	}
	if h.Max != 40*time.Millisecond {
		t.Errorf("Expected max 40ms, got %v", h.Max)
	}
	if h.Avg != 30*time.Millisecond {
		t.Errorf("Expected avg 30ms, got %v", h.Avg)
	}
	if h.Last != 40*time.Millisecond {
		t.Errorf("Expected last 40ms, got %v", h.Last)
	}
}

func TestFrameHistoryDefaultSize(t *testing.T) {
	h := NewFrameHistory(0)
	for i := 0; i < DefaultHistory+5; i++ {
		h.Add(time.Millisecond)
	}
	if h.Len() != DefaultHistory {
		t.Errorf("Expected %d samples, got %d", DefaultHistory, h.Len())
	}
}
