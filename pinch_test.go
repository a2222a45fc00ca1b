package pinchzoom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPinchStartSnapshotsScale(t *testing.T) {
	z := newTestZoomable(t)
	zoomAtCenter(z, 3)

	z.PinchStart()
	if z.PinchState() != PinchArmed {
		t.Fatalf("PinchState = %s, want armed", z.PinchState())
	}
	if z.IsPinching() {
		t.Error("armed pinch should not count as pinching")
	}
	if b := z.Baseline(); b.Scale != 3 {
		t.Errorf("Baseline scale = %v, want 3", b.Scale)
	}
}

func TestPinchFocalPointInvariance(t *testing.T) {
	z := newTestZoomable(t)

	z.PinchStart()
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 1, FocalX: 200, FocalY: 100})
	if !z.IsPinching() {
		t.Fatal("expected anchored pinch")
	}
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 3, FocalX: 210, FocalY: 90})

	// translation = prevTranslation - (s1 - s0) * (focal - center), using
	// the focal point captured at anchoring.
	want := Transform{
		X:     0 - (3-1)*(200-150),
		Y:     0 - (3-1)*(100-300),
		Scale: 3,
	}
	if diff := cmp.Diff(want, z.Transform()); diff != "" {
		t.Errorf("transform mismatch (-want +got):\n%s", diff)
	}
}

func TestPinchKeepsFocalPointStationaryOnScreen(t *testing.T) {
	z := newTestZoomable(t)
	zoomAtCenter(z, 2)
	z.PanStart()
	z.PanUpdate(PanEvent{TranslationX: -30, TranslationY: 45})
	z.PanEnd()

	fx, fy := 90.0, 420.0
	z.PinchStart()
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 1, FocalX: fx, FocalY: fy})
	sx0, sy0 := z.Transform().LocalToScreen(300, 600, fx, fy)

	for _, f := range []float64{1.1, 1.7, 2.5, 3.9, 1.2} {
		z.PinchUpdate(PinchEvent{Pointers: 2, Scale: f, FocalX: fx, FocalY: fy})
		sx, sy := z.Transform().LocalToScreen(300, 600, fx, fy)
		if !approx(sx, sx0, 1e-9) || !approx(sy, sy0, 1e-9) {
			t.Errorf("factor %v: focal point moved from (%v, %v) to (%v, %v)", f, sx0, sy0, sx, sy)
		}
	}
}

func TestPinchRejectsOutOfRange(t *testing.T) {
	z := newTestZoomable(t)
	z.PinchStart()
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 2, FocalX: 200, FocalY: 200})
	before := z.Transform()

	changes := 0
	z.OnChange(func(Transform) { changes++ })

	tests := []struct {
		name  string
		scale float64
	}{
		{"above maximum", 8.5},
		{"below minimum", 0.4},
		{"far above", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z.PinchUpdate(PinchEvent{Pointers: 2, Scale: tt.scale, FocalX: 0, FocalY: 0})
			if got := z.Transform(); got != before {
				t.Errorf("Transform = %+v, want unchanged %+v", got, before)
			}
		})
	}
	if changes != 0 {
		t.Errorf("rejected updates fired %d change notifications", changes)
	}
}

func TestPinchRejectedFirstUpdateDoesNotAnchor(t *testing.T) {
	z := newTestZoomable(t)
	z.PinchStart()
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 0.5, FocalX: 10, FocalY: 10})
	if z.IsPinching() {
		t.Error("rejected update should not anchor the pinch")
	}
}

func TestPinchScaleStaysInRange(t *testing.T) {
	z := newTestZoomable(t)
	cfg := z.Config()

	factors := []float64{1, 1.5, 3, 6, 9, 12, 7.9, 0.5, 0.9, 0.1, 2, 8, 8.01}
	for round := 0; round < 3; round++ {
		z.PinchStart()
		for i, f := range factors {
			z.PinchUpdate(PinchEvent{Pointers: 2, Scale: f, FocalX: float64(i * 20), FocalY: float64(i * 40)})
			s := z.Transform().Scale
			if s < cfg.MinimumZoomScale || s > cfg.MaximumZoomScale {
				t.Fatalf("round %d factor %v: scale %v outside [%v, %v]",
					round, f, s, cfg.MinimumZoomScale, cfg.MaximumZoomScale)
			}
		}
		z.PinchEnd()
	}
}

func TestPinchDegradeToOnePointer(t *testing.T) {
	z := newTestZoomable(t)
	z.PinchStart()
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 1, FocalX: 200, FocalY: 100})
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 2, FocalX: 200, FocalY: 100})
	anchored := z.Transform()

	z.PinchUpdate(PinchEvent{Pointers: 1, Scale: 2, FocalX: 250, FocalY: 150})
	if z.IsPinching() {
		t.Fatal("one pointer should clear pinching")
	}
	if z.PinchState() != PinchArmed {
		t.Fatalf("PinchState = %s, want armed", z.PinchState())
	}
	if got := z.Transform(); got != anchored {
		t.Fatalf("Transform = %+v, want frozen at %+v", got, anchored)
	}
	if b := z.Baseline(); b.X != anchored.X || b.Y != anchored.Y {
		t.Errorf("Baseline = %+v, want committed %+v", b, anchored)
	}

	// Further single-pointer updates change nothing.
	z.PinchUpdate(PinchEvent{Pointers: 1, Scale: 2, FocalX: 0, FocalY: 0})
	if got := z.Transform(); got != anchored {
		t.Fatalf("Transform = %+v, want frozen at %+v", got, anchored)
	}

	// A second finger returns: re-anchor at the new midpoint and scale.
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 2.5, FocalX: 100, FocalY: 500})
	if !z.IsPinching() {
		t.Fatal("expected re-anchored pinch")
	}
	reanchored := z.Transform()
	if reanchored.X != anchored.X || reanchored.Y != anchored.Y || reanchored.Scale != 2.5 {
		t.Fatalf("Transform = %+v, want translation kept and scale 2.5", reanchored)
	}

	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 3, FocalX: 120, FocalY: 520})
	want := Transform{
		X:     anchored.X - (3-2.5)*(100-150),
		Y:     anchored.Y - (3-2.5)*(500-300),
		Scale: 3,
	}
	if diff := cmp.Diff(want, z.Transform()); diff != "" {
		t.Errorf("after re-anchor (-want +got):\n%s", diff)
	}
}

func TestPinchEndCommits(t *testing.T) {
	z := newTestZoomable(t)
	z.PinchStart()
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 1, FocalX: 200, FocalY: 100})
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 2, FocalX: 200, FocalY: 100})
	z.PinchEnd()

	if z.PinchState() != PinchIdle || z.IsPinching() {
		t.Fatalf("PinchState = %s, want idle", z.PinchState())
	}
	got := z.Transform()
	if b := z.Baseline(); b.X != got.X || b.Y != got.Y {
		t.Errorf("Baseline = %+v, want %+v", b, got)
	}

	// The next pinch builds on the committed state.
	z.PinchStart()
	if b := z.Baseline(); b.Scale != 2 {
		t.Errorf("Baseline scale = %v, want 2", b.Scale)
	}
}

func TestPinchUpdateWithoutStartIgnored(t *testing.T) {
	z := newTestZoomable(t)
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 2, FocalX: 10, FocalY: 10})
	if diff := cmp.Diff(IdentityTransform, z.Transform()); diff != "" {
		t.Errorf("transform mismatch (-want +got):\n%s", diff)
	}
}

func TestPinchThreePointersIgnored(t *testing.T) {
	z := newTestZoomable(t)
	z.PinchStart()
	z.PinchUpdate(PinchEvent{Pointers: 3, Scale: 2, FocalX: 10, FocalY: 10})
	if diff := cmp.Diff(IdentityTransform, z.Transform()); diff != "" {
		t.Errorf("transform mismatch (-want +got):\n%s", diff)
	}
}

func TestPinchStartCancelsAnimation(t *testing.T) {
	z := newTestZoomable(t)
	z.DoubleTap(TapEvent{X: 200, Y: 100})
	z.Animate(0.1)
	mid := z.Transform()

	z.PinchStart()
	if z.Animating() {
		t.Fatal("PinchStart should cancel running animations")
	}
	if b := z.Baseline(); b.Scale != mid.Scale || b.X != mid.X || b.Y != mid.Y {
		t.Errorf("Baseline = %+v, want %+v", b, mid)
	}
}

func TestPinchBackToScaleOneResets(t *testing.T) {
	z := newTestZoomable(t)
	z.PinchStart()
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 1, FocalX: 250, FocalY: 100})
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 2, FocalX: 250, FocalY: 100})
	z.PinchEnd()

	z.PinchStart()
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 1, FocalX: 50, FocalY: 500})
	z.PinchUpdate(PinchEvent{Pointers: 2, Scale: 0.5, FocalX: 50, FocalY: 500})
	if s := z.Transform().Scale; s != 1 {
		t.Fatalf("Scale = %v, want 1", s)
	}
	z.PinchEnd()

	if diff := cmp.Diff(IdentityTransform, z.Target()); diff != "" {
		t.Errorf("target after pinching back to 1 (-want +got):\n%s", diff)
	}
	if !z.Animating() {
		t.Error("expected translation to animate back to 0")
	}
	z.Animate(1)
	if diff := cmp.Diff(IdentityTransform, z.Transform()); diff != "" {
		t.Errorf("transform after animation (-want +got):\n%s", diff)
	}
}

func approx(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}
