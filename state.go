package pinchzoom

// PanState is the phase of the pan binding.
type PanState uint8

const (
	PanIdle     PanState = iota // no finger down
	PanTracking                 // receiving input but suppressed (pinching or not zoomed)
	PanApplying                 // driving the translation
)

func (s PanState) String() string {
	switch s {
	case PanIdle:
		return "idle"
	case PanTracking:
		return "tracking"
	case PanApplying:
		return "applying"
	default:
		return "unknown"
	}
}

// PinchState is the phase of the pinch binding.
type PinchState uint8

const (
	PinchIdle     PinchState = iota // no pinch gesture
	PinchArmed                      // gesture started, fewer than two pointers anchored
	PinchAnchored                   // two pointers down, focal point fixed
)

func (s PinchState) String() string {
	switch s {
	case PinchIdle:
		return "idle"
	case PinchArmed:
		return "armed"
	case PinchAnchored:
		return "anchored"
	default:
		return "unknown"
	}
}

// panSession is the payload of an in-flight pan gesture.
type panSession struct {
	state PanState
	// offsetX/Y is the raw gesture translation at the moment the pan last
	// switched to applying. It is subtracted from later raw translations so
	// the switch does not move the element.
	offsetX, offsetY float64
}

// pinchSession is the payload of an in-flight pinch gesture.
type pinchSession struct {
	state PinchState
	// prevScale is the committed scale when the gesture started.
	// Incremental pinch factors multiply onto it.
	prevScale float64
	// offsetScale is the scale at the last anchoring. Focal displacement is
	// proportional to scale - offsetScale.
	offsetScale float64
	// originX/Y is the focal point captured at the last anchoring.
	originX, originY float64
}

// transformState is the shared mutable state every binding and the
// projection read and write. It is owned by a single Zoomable and touched
// only from the goroutine driving the game loop.
type transformState struct {
	translationX cell
	translationY cell
	scale        cell

	// prevTranslationX/Y is the committed translation each gesture adds its
	// delta onto.
	prevTranslationX float64
	prevTranslationY float64

	pan   panSession
	pinch pinchSession

	viewWidth  float64
	viewHeight float64
}

func newTransformState() transformState {
	st := transformState{}
	st.scale.value = 1
	st.pinch.prevScale = 1
	st.pinch.offsetScale = 1
	return st
}

// reset returns every baseline and gesture payload to identity. Gestures in
// flight survive but lose their anchors. The visible cells are left to the
// caller, which either writes or animates them.
func (st *transformState) reset() {
	st.prevTranslationX = 0
	st.prevTranslationY = 0
	pinchState := st.pinch.state
	if pinchState == PinchAnchored {
		pinchState = PinchArmed
	}
	st.pinch = pinchSession{state: pinchState, prevScale: 1, offsetScale: 1}
	// A pan still in progress keeps receiving input, suppressed until it
	// can rebase.
	if st.pan.state != PanIdle {
		st.pan = panSession{state: PanTracking}
	}
}

// isZoomed reports whether the element is magnified. While a tween drives
// the scale the tween's destination decides, so a running reset already
// counts as not zoomed.
func (st *transformState) isZoomed() bool {
	return st.scale.target() > 1
}

func (st *transformState) isPinching() bool {
	return st.pinch.state == PinchAnchored
}

// center returns the element's center in local coordinates.
func (st *transformState) center() (float64, float64) {
	return st.viewWidth / 2, st.viewHeight / 2
}

// cancelAnimations stops tweens on all three cells. Reports whether any
// tween was running.
func (st *transformState) cancelAnimations() bool {
	x := st.translationX.cancel()
	y := st.translationY.cancel()
	s := st.scale.cancel()
	return x || y || s
}

// commitTranslation makes the current translation the baseline for the next
// increment.
func (st *transformState) commitTranslation() {
	st.prevTranslationX = st.translationX.value
	st.prevTranslationY = st.translationY.value
}

func (st *transformState) current() Transform {
	return Transform{
		X:     st.translationX.value,
		Y:     st.translationY.value,
		Scale: st.scale.value,
	}
}

func (st *transformState) targets() Transform {
	return Transform{
		X:     st.translationX.target(),
		Y:     st.translationY.target(),
		Scale: st.scale.target(),
	}
}
