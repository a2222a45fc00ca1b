package pinchzoom

// GestureKind identifies a recognizer callback.
type GestureKind uint8

const (
	GesturePanBegan GestureKind = iota
	GesturePanChanged
	GesturePanEnded
	GesturePinchBegan
	GesturePinchChanged
	GesturePinchEnded
	GestureDoubleTap
)

func (k GestureKind) String() string {
	switch k {
	case GesturePanBegan:
		return "pan-began"
	case GesturePanChanged:
		return "pan-changed"
	case GesturePanEnded:
		return "pan-ended"
	case GesturePinchBegan:
		return "pinch-began"
	case GesturePinchChanged:
		return "pinch-changed"
	case GesturePinchEnded:
		return "pinch-ended"
	case GestureDoubleTap:
		return "double-tap"
	default:
		return "unknown"
	}
}

// GestureEvent is one callback from a gesture recognizer. Only the payload
// matching Kind is meaningful.
type GestureEvent struct {
	Kind  GestureKind
	Pan   PanEvent
	Pinch PinchEvent
	Tap   TapEvent
}

// group returns the exclusive gesture group the event belongs to.
func (e GestureEvent) group() gestureGroup {
	switch e.Kind {
	case GestureDoubleTap:
		return groupDoubleTap
	default:
		return groupPanPinch
	}
}

// Dispatch routes a recognizer event through the composition policy to the
// matching binding. Events from a gesture group that lost the race are
// dropped. Reports whether the event was delivered.
func (z *Zoomable) Dispatch(e GestureEvent) bool {
	if !z.arbiter.admit(e) {
		z.debugf("%s dropped: %s owns input", e.Kind, z.arbiter.owner)
		return false
	}
	switch e.Kind {
	case GesturePanBegan:
		z.PanStart()
	case GesturePanChanged:
		z.PanUpdate(e.Pan)
	case GesturePanEnded:
		z.PanEnd()
	case GesturePinchBegan:
		z.PinchStart()
	case GesturePinchChanged:
		z.PinchUpdate(e.Pinch)
	case GesturePinchEnded:
		z.PinchEnd()
	case GestureDoubleTap:
		z.DoubleTap(e.Tap)
	}
	for _, h := range z.handlers.gesture {
		h.fn(e)
	}
	return true
}
