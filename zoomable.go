package pinchzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional ECS integration.
// When set on a Zoomable, every transform change is forwarded to it.
type EventSink interface {
	EmitTransform(event TransformEvent)
}

// TransformEvent carries one transform change for the ECS bridge.
type TransformEvent struct {
	Transform Transform
	// Target is where running animations are heading; equal to Transform
	// when nothing animates.
	Target   Transform
	Zoomed   bool
	Pinching bool
}

// Zoomable owns the transform state of one element and the gesture bindings
// that drive it. All methods must be called from the goroutine running the
// game loop; there is no locking.
type Zoomable struct {
	cfg   Config
	state transformState
	debug bool

	arbiter    arbiter
	recognizer *Recognizer
	script     *ScriptRunner

	projected Transform
	dirty     bool
	changed   bool

	handlers handlerRegistry
	sink     EventSink
}

// NewZoomable creates a Zoomable at identity using cfg.
func NewZoomable(cfg Config) (*Zoomable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	z := &Zoomable{
		cfg:       cfg,
		state:     newTransformState(),
		projected: IdentityTransform,
		debug:     cfg.Debug,
	}
	return z, nil
}

// Config returns the active configuration.
func (z *Zoomable) Config() Config {
	return z.cfg
}

// SetConfig replaces the configuration and rebuilds the gesture bindings:
// in-flight gestures are forgotten and an attached recognizer starts over
// with the new thresholds. The transform itself is kept.
func (z *Zoomable) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	z.cfg = cfg
	z.debug = cfg.Debug
	z.arbiter.reset()
	st := &z.state
	if st.pan.state == PanApplying || st.pinch.state != PinchIdle {
		st.commitTranslation()
	}
	st.pan = panSession{}
	st.pinch = pinchSession{prevScale: st.scale.value, offsetScale: st.scale.value}
	if z.recognizer != nil {
		z.recognizer.configure(cfg)
	}
	z.debugf("config rebuilt: zoom [%v, %v]", cfg.MinimumZoomScale, cfg.MaximumZoomScale)
	return nil
}

// Attach connects a recognizer whose events UpdateInput will dispatch.
// Passing nil detaches.
func (z *Zoomable) Attach(r *Recognizer) {
	z.recognizer = r
	if r != nil {
		r.configure(z.cfg)
	}
}

// SetEventSink sets the optional ECS bridge.
func (z *Zoomable) SetEventSink(sink EventSink) {
	z.sink = sink
}

// SetDebugMode enables or disables debug output. When enabled, gesture
// transitions and rejected updates are printed to stderr.
func (z *Zoomable) SetDebugMode(enabled bool) {
	z.debug = enabled
}

// Update advances running animations by one tick and then polls the attached
// recognizer, if any. Call it once per ebiten Game.Update.
func (z *Zoomable) Update() {
	z.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step is Update with an explicit time step in seconds.
func (z *Zoomable) Step(dt float32) {
	z.Animate(dt)
	z.UpdateInput(dt)
}

// Animate advances running animations by dt seconds.
func (z *Zoomable) Animate(dt float32) {
	st := &z.state
	x := st.translationX.step(dt)
	y := st.translationY.step(dt)
	s := st.scale.step(dt)
	if x || y || s {
		z.markDirty()
	}
	z.flush()
}

// UpdateInput runs the attached script, then polls the attached recognizer
// and dispatches its events. Focal and tap points are converted from the
// recognizer's Bounds-relative space to element-local coordinates first.
func (z *Zoomable) UpdateInput(dt float32) {
	if z.recognizer == nil {
		return
	}
	if z.script != nil {
		z.script.step(z.recognizer)
	}
	for _, e := range z.recognizer.Poll(dt) {
		z.Dispatch(z.toLocal(e))
	}
}

// toLocal maps the points of a recognizer event from the element's on-screen
// box into element-local coordinates through the current transform. Pan
// translations are screen distances and pass through unchanged.
func (z *Zoomable) toLocal(e GestureEvent) GestureEvent {
	t := z.Transform()
	w, h := z.state.viewWidth, z.state.viewHeight
	switch e.Kind {
	case GesturePinchChanged:
		e.Pinch.FocalX, e.Pinch.FocalY = t.ScreenToLocal(w, h, e.Pinch.FocalX, e.Pinch.FocalY)
	case GestureDoubleTap:
		e.Tap.X, e.Tap.Y = t.ScreenToLocal(w, h, e.Tap.X, e.Tap.Y)
	}
	return e
}

// Animating reports whether any double-tap animation is still running.
func (z *Zoomable) Animating() bool {
	st := &z.state
	return st.translationX.animating() || st.translationY.animating() || st.scale.animating()
}

// IsZoomed reports whether the element is magnified (scale above 1).
func (z *Zoomable) IsZoomed() bool {
	return z.state.isZoomed()
}

// IsPinching reports whether a two-finger pinch is anchored.
func (z *Zoomable) IsPinching() bool {
	return z.state.isPinching()
}

// PanState returns the phase of the pan binding.
func (z *Zoomable) PanState() PanState {
	return z.state.pan.state
}

// PinchState returns the phase of the pinch binding.
func (z *Zoomable) PinchState() PinchState {
	return z.state.pinch.state
}

// Baseline returns the committed translation and scale that the next
// gesture increment builds on.
func (z *Zoomable) Baseline() Transform {
	return Transform{
		X:     z.state.prevTranslationX,
		Y:     z.state.prevTranslationY,
		Scale: z.state.pinch.prevScale,
	}
}
