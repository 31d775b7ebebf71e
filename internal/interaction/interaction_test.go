package interaction

import (
	"errors"
	"math"
	"testing"
	"time"

	"globe/internal/config"
	"globe/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const frameDT = 1.0 / 60.0

func newTestDriver(t *testing.T, easing string) (*Driver, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.Stars.Count = 10
	cfg.Globe.WidthSegments = 8
	cfg.Globe.HeightSegments = 6
	cfg.Parallax.Easing = easing

	s := NewState(cfg)
	return NewDriver(s, scene.New(cfg), NewParallax(cfg.Parallax)), cfg
}

func approx(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestParallaxConverges(t *testing.T) {
	pointers := []Pointer{
		{0, 0}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}, {0.25, -0.75}, {-0.5, 0.5},
	}

	for _, easing := range []string{config.EasingTween, config.EasingSpring} {
		for _, ptr := range pointers {
			d, _ := newTestDriver(t, easing)
			d.State.Pointer = ptr

			for i := 0; i < 60*10; i++ {
				d.Step(frameDT)
			}

			wantYaw := ptr.X * (1.2 + d.State.RotationSpeed*10)
			wantPitch := -ptr.Y * 1.2
			rot := d.Scene.Group.Transform.Rotation
			if !approx(rot.Y(), wantYaw, 1e-3) || !approx(rot.X(), wantPitch, 1e-3) {
				t.Errorf("%s %+v: expected yaw %.4f pitch %.4f, got yaw %.4f pitch %.4f",
					easing, ptr, wantYaw, wantPitch, rot.Y(), rot.X())
			}
		}
	}
}

func TestTweenLandsExactlyAfterDuration(t *testing.T) {
	a := NewTweenAxis(2)
	a.Update(1, 0)
	if a.Value() != 0 {
		t.Fatalf("Expected tween to start at 0, got %v", a.Value())
	}

	v := a.Update(1, 1)
	// power1.out at t=0.5 is 0.75
	if !approx(v, 0.75, 1e-6) {
		t.Errorf("Expected 0.75 halfway, got %v", v)
	}
	v = a.Update(1, 1)
	if v != 1 {
		t.Errorf("Expected exactly 1 at the end, got %v", v)
	}
}

func TestTweenRestartsFromCurrentOnNewTarget(t *testing.T) {
	a := NewTweenAxis(2)
	a.Update(1, 1) // 0.75
	v := a.Update(-1, 0)
	if !approx(v, 0.75, 1e-6) {
		t.Errorf("Expected retarget to start from 0.75, got %v", v)
	}
	v = a.Update(-1, 2)
	if v != -1 {
		t.Errorf("Expected -1 after full duration, got %v", v)
	}
}

func TestPower1Out(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{-1, 0}, {0, 0}, {0.5, 0.75}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := Power1Out(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Power1Out(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSpringIgnoresZeroDT(t *testing.T) {
	a := NewSpringAxis(3, 1)
	a.Reset(0.5)
	if v := a.Update(10, 0); v != 0.5 {
		t.Errorf("Expected no motion for dt=0, got %v", v)
	}
}

func TestZeroSpeedHaltsRotationButNotParallax(t *testing.T) {
	d, _ := newTestDriver(t, config.EasingTween)
	controls := NewControls(d.State, config.Default().Sliders)

	for i := 0; i < 10; i++ {
		d.Step(frameDT)
	}
	if _, err := controls.Set(OrbitSpeedSlider, 0); err != nil {
		t.Fatal(err)
	}

	before := d.Scene.Globe.Transform.Rotation.Y()
	d.State.Pointer = Pointer{X: 1, Y: 0}
	for i := 0; i < 30; i++ {
		d.Step(frameDT)
	}
	after := d.Scene.Globe.Transform.Rotation.Y()
	if before != after {
		t.Errorf("Expected self rotation to stay at %v, got %v", before, after)
	}
	if yaw := d.Scene.Group.Transform.Rotation.Y(); yaw <= 0 {
		t.Errorf("Expected parallax yaw to move toward the pointer, got %v", yaw)
	}
}

func TestNegativeSpeedReversesRotation(t *testing.T) {
	d, _ := newTestDriver(t, config.EasingTween)
	d.State.RotationSpeed = -0.01
	d.Step(frameDT)
	d.Step(frameDT)
	if got := d.Scene.Globe.Transform.Rotation.Y(); !approx(got, -0.02, 1e-7) {
		t.Errorf("Expected -0.02, got %v", got)
	}
}

func TestWheelZoomExactSteps(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	z := NewWheelZoom(cfg.Zoom, cfg.HUD)
	now := time.Now()

	ev := z.Apply(s, 100, now)
	if ev.Current-ev.Previous != 1 || s.CameraDistance != 16 {
		t.Errorf("Expected +1.0 to 16, got %v -> %v", ev.Previous, ev.Current)
	}
	if ev.Direction != ZoomReceding {
		t.Errorf("Expected receding, got %v", ev.Direction)
	}

	ev = z.Apply(s, -100, now)
	if s.CameraDistance != 15 {
		t.Errorf("Expected back to 15, got %v", s.CameraDistance)
	}
	if ev.Direction != ZoomApproaching || z.Label.Text() != cfg.HUD.ApproachingLabel {
		t.Errorf("Expected approaching label, got %v %q", ev.Direction, z.Label.Text())
	}
	if z.Distance.Text() != "Camera Z Position: 15.00" {
		t.Errorf("Unexpected distance text %q", z.Distance.Text())
	}

	ev = z.Apply(s, 0, now)
	if ev.Direction != ZoomReceding {
		t.Errorf("Expected zero delta to read as receding, got %v", ev.Direction)
	}
}

func TestWheelZoomUnclamped(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	z := NewWheelZoom(cfg.Zoom, cfg.HUD)
	for i := 0; i < 20; i++ {
		z.Apply(s, -100, time.Now())
	}
	if s.CameraDistance != -5 {
		t.Errorf("Expected camera to pass through to -5, got %v", s.CameraDistance)
	}
}

func TestDeltaFromScroll(t *testing.T) {
	cfg := config.Default()
	z := NewWheelZoom(cfg.Zoom, cfg.HUD)
	if got := z.DeltaFromScroll(-1); got != 100 {
		t.Errorf("Expected wheel toward user to give +100, got %v", got)
	}
	if got := z.DeltaFromScroll(1); got != -100 {
		t.Errorf("Expected wheel away from user to give -100, got %v", got)
	}
}

func TestWheelEventsInOneFrameApplyInOrder(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	z := NewWheelZoom(cfg.Zoom, cfg.HUD)
	sess := NewSession(time.Now())

	var q WheelQueue
	q.Push(-1)  // one notch toward the user
	q.Push(0.5) // half a notch back

	events := z.ApplyScroll(s, q.Drain(), time.Now())
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	for _, ev := range events {
		sess.RecordZoom(ev)
	}

	if events[0].Direction != ZoomReceding || events[1].Direction != ZoomApproaching {
		t.Errorf("Expected receding then approaching, got %v, %v", events[0].Direction, events[1].Direction)
	}
	if !approx(s.CameraDistance, 15.5, 1e-6) {
		t.Errorf("Expected distance 15.5, got %v", s.CameraDistance)
	}
	if z.Label.Text() != cfg.HUD.ApproachingLabel {
		t.Errorf("Expected label of the last event, got %q", z.Label.Text())
	}
	if sess.WheelEvents != 2 || sess.Approaches != 1 || sess.Recessions != 1 {
		t.Errorf("Expected two recorded events, got %+v", sess)
	}
	if rest := q.Drain(); rest != nil {
		t.Errorf("Expected empty queue after drain, got %v", rest)
	}
}

func TestNoticesHideAfterDuration(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	z := NewWheelZoom(cfg.Zoom, cfg.HUD)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if z.Distance.Visible(t0) || z.Label.Visible(t0) {
		t.Fatalf("Expected notices hidden before any wheel event")
	}

	z.Apply(s, 100, t0)
	if !z.Distance.Visible(t0) || !z.Label.Visible(t0) {
		t.Fatalf("Expected both notices visible right after wheel event")
	}
	if !z.Label.Visible(t0.Add(1999 * time.Millisecond)) {
		t.Errorf("Expected label still visible just before 2s")
	}
	at := t0.Add(2 * time.Second)
	if z.Distance.Visible(at) || z.Label.Visible(at) {
		t.Errorf("Expected both notices hidden after 2s")
	}
}

func TestNoticeRetriggerExtendsVisibility(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	z := NewWheelZoom(cfg.Zoom, cfg.HUD)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	z.Apply(s, 100, t0)
	z.Apply(s, 100, t0.Add(1500*time.Millisecond))

	if !z.Label.Visible(t0.Add(2500 * time.Millisecond)) {
		t.Errorf("Expected retrigger to keep the label up past the first deadline")
	}
	if z.Label.Visible(t0.Add(3500 * time.Millisecond)) {
		t.Errorf("Expected label hidden 2s after the latest trigger")
	}

	z.Label.Hide()
	if z.Label.Visible(t0.Add(2 * time.Second)) {
		t.Errorf("Expected Hide to cancel the pending deadline")
	}
}

func TestSlidersScaleOnlyTheirMesh(t *testing.T) {
	d, _ := newTestDriver(t, config.EasingTween)
	controls := NewControls(d.State, config.Default().Sliders)

	if _, err := controls.Set(EarthSlider, 2.0); err != nil {
		t.Fatal(err)
	}
	d.Step(frameDT)
	if got := d.Scene.Globe.Transform.Scale; got != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("Expected globe scale (2,2,2), got %v", got)
	}
	if got := d.Scene.Atmosphere.Transform.Scale; got != (mgl32.Vec3{1.1, 1.1, 1.1}) {
		t.Errorf("Expected atmosphere untouched at 1.1, got %v", got)
	}

	if _, err := controls.Set(AtmosphereSlider, 1.5); err != nil {
		t.Fatal(err)
	}
	d.Step(frameDT)
	if got := d.Scene.Atmosphere.Transform.Scale; got != (mgl32.Vec3{1.5, 1.5, 1.5}) {
		t.Errorf("Expected atmosphere scale (1.5,1.5,1.5), got %v", got)
	}
	if got := d.Scene.Globe.Transform.Scale; got != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("Expected globe still at 2, got %v", got)
	}
}

func TestSliderIdempotent(t *testing.T) {
	s := NewState(config.Default())
	controls := NewControls(s, config.Default().Sliders)

	for _, id := range []SliderID{EarthSlider, AtmosphereSlider, OrbitSpeedSlider} {
		changed, err := controls.Set(id, 0.5)
		if err != nil || !changed {
			t.Fatalf("%s: expected first set to change, got changed=%v err=%v", id, changed, err)
		}
		snapshot := *s
		changed, err = controls.Set(id, 0.5)
		if err != nil || changed {
			t.Errorf("%s: expected second set to be a no-op, got changed=%v err=%v", id, changed, err)
		}
		if *s != snapshot {
			t.Errorf("%s: state changed on repeated set", id)
		}
		if v, _ := controls.Get(id); v != 0.5 {
			t.Errorf("%s: expected 0.5, got %v", id, v)
		}
	}
}

func TestUnknownSlider(t *testing.T) {
	controls := NewControls(NewState(config.Default()), config.Default().Sliders)
	if _, err := controls.Set("Nope", 1); !errors.Is(err, ErrUnknownSlider) {
		t.Errorf("Expected ErrUnknownSlider, got %v", err)
	}
	if len(controls.Bindings()) != 3 {
		t.Errorf("Expected 3 bindings, got %d", len(controls.Bindings()))
	}
}

func TestPointerNormalization(t *testing.T) {
	s := NewState(config.Default())
	if s.Pointer != (Pointer{}) {
		t.Fatalf("Expected pointer to start centered, got %+v", s.Pointer)
	}

	tests := []struct {
		x, y float64
		want Pointer
	}{
		{0, 0, Pointer{-1, 1}},
		{800, 600, Pointer{1, -1}},
		{400, 300, Pointer{0, 0}},
		{200, 450, Pointer{-0.5, -0.5}},
	}
	for _, tt := range tests {
		s.SetPointerFromWindow(tt.x, tt.y, 800, 600)
		if !approx(s.Pointer.X, tt.want.X, 1e-6) || !approx(s.Pointer.Y, tt.want.Y, 1e-6) {
			t.Errorf("(%v,%v): expected %+v, got %+v", tt.x, tt.y, tt.want, s.Pointer)
		}
	}

	s.SetPointerFromWindow(10, 10, 0, 0)
	if !approx(s.Pointer.X, -0.5, 1e-6) {
		t.Errorf("Expected zero-size window to keep pointer, got %+v", s.Pointer)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	s.CameraDistance = 99
	s.Pointer = Pointer{0.3, 0.3}
	s.Reset(cfg)
	if *s != *NewState(cfg) {
		t.Errorf("Expected defaults after reset, got %+v", *s)
	}

	p := NewParallax(cfg.Parallax)
	s.Pointer = Pointer{1, 1}
	p.Step(s, 1)
	p.Reset()
	if y, pt := p.Current(); y != 0 || pt != 0 {
		t.Errorf("Expected neutral pose after reset, got %v %v", y, pt)
	}
}

func TestBindingRangeMapping(t *testing.T) {
	controls := NewControls(NewState(config.Default()), config.Default().Sliders)
	earth, err := controls.Binding(EarthSlider)
	if err != nil {
		t.Fatal(err)
	}

	if got := earth.Steps(); got != 291 {
		t.Errorf("Expected 291 steps over [0.1,3] by 0.01, got %d", got)
	}
	if got := earth.Normalize(0.1); got != 0 {
		t.Errorf("Expected min to normalize to 0, got %v", got)
	}
	if got := earth.Normalize(3); got != 1 {
		t.Errorf("Expected max to normalize to 1, got %v", got)
	}
	if got := earth.Normalize(10); got != 1 {
		t.Errorf("Expected out-of-range value to clamp to 1, got %v", got)
	}
	if got := earth.Denormalize(0); got != 0.1 {
		t.Errorf("Expected 0 to map to min, got %v", got)
	}
	if got := earth.Denormalize(1.5); !approx(got, 3, 1e-6) {
		t.Errorf("Expected overshoot to clamp to max, got %v", got)
	}

	// 0.1 + 0.5*2.9 = 1.55, already on a step
	if got := earth.Denormalize(0.5); !approx(got, 1.55, 1e-5) {
		t.Errorf("Expected 1.55, got %v", got)
	}
	// 0.1 + 0.3*2.9 = 0.97
	if got := earth.Denormalize(0.3); !approx(got, 0.97, 1e-5) {
		t.Errorf("Expected 0.97, got %v", got)
	}

	orbit, _ := controls.Binding(OrbitSpeedSlider)
	if got := orbit.Denormalize(0.5); !approx(got, 0, 1e-6) {
		t.Errorf("Expected centered orbit slider to stop rotation, got %v", got)
	}
	if got := orbit.Normalize(config.Default().Globe.RotationSpeed); !approx(got, 0.51, 1e-5) {
		t.Errorf("Expected default speed at 0.51, got %v", got)
	}

	continuous := &Binding{Range: config.SliderRange{Min: 0, Max: 2}}
	if continuous.Steps() != 0 {
		t.Errorf("Expected continuous slider to report 0 steps, got %d", continuous.Steps())
	}
	if got := continuous.Denormalize(0.123); !approx(got, 0.246, 1e-6) {
		t.Errorf("Expected unsnapped 0.246, got %v", got)
	}
}

func TestSessionSummary(t *testing.T) {
	start := time.Unix(1000, 0)
	sess := NewSession(start)
	s := NewState(config.Default())
	z := NewWheelZoom(config.Default().Zoom, config.Default().HUD)

	sess.RecordZoom(z.Apply(s, -100, start))
	sess.RecordZoom(z.Apply(s, 100, start))
	sess.RecordZoom(z.Apply(s, 100, start))
	sess.Frames = 240
	sess.Resets = 1

	if sess.Approaches != 1 || sess.Recessions != 2 || sess.WheelEvents != 3 {
		t.Fatalf("Expected 1 approach and 2 recessions, got %+v", sess)
	}

	got := sess.Summary(start.Add(4 * time.Second))
	expected := "session 4s: 240 frames (60.0 fps avg), 3 wheel events (1 approaching, 2 receding), 1 resets"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
