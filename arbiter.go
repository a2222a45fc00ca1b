package pinchzoom

// gestureGroup is one side of the exclusive race between recognizers.
type gestureGroup uint8

const (
	groupNone      gestureGroup = iota
	groupDoubleTap              // double-tap alone
	groupPanPinch               // pan and pinch, running simultaneously
)

func (g gestureGroup) String() string {
	switch g {
	case groupNone:
		return "none"
	case groupDoubleTap:
		return "double-tap"
	case groupPanPinch:
		return "pan+pinch"
	default:
		return "unknown"
	}
}

// arbiter implements the composition policy: the first group to be
// recognized owns input until every gesture in it has ended. Pan and pinch
// share a group and never exclude each other; the effect of one on the other
// is governed by the bindings' own guards.
type arbiter struct {
	owner       gestureGroup
	panActive   bool
	pinchActive bool
}

// admit records e and reports whether it should reach its binding.
func (a *arbiter) admit(e GestureEvent) bool {
	g := e.group()
	if a.owner != groupNone && a.owner != g {
		return false
	}

	switch e.Kind {
	case GestureDoubleTap:
		// Discrete: recognized and finished in the same instant.
		return true
	case GesturePanBegan:
		a.panActive = true
	case GesturePanChanged:
		if !a.panActive {
			return false
		}
	case GesturePanEnded:
		if !a.panActive {
			return false
		}
		a.panActive = false
	case GesturePinchBegan:
		a.pinchActive = true
	case GesturePinchChanged:
		if !a.pinchActive {
			return false
		}
	case GesturePinchEnded:
		if !a.pinchActive {
			return false
		}
		a.pinchActive = false
	}

	if a.panActive || a.pinchActive {
		a.owner = groupPanPinch
	} else {
		a.owner = groupNone
	}
	return true
}

// reset forgets every in-flight gesture.
func (a *arbiter) reset() {
	*a = arbiter{}
}
