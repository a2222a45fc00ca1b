package pinchzoom

// PinchEvent is one update of a pinch gesture.
type PinchEvent struct {
	// Pointers is the number of fingers currently down.
	Pointers int
	// Scale is the cumulative scale factor since the gesture started.
	Scale float64
	// FocalX and FocalY locate the midpoint between the two touches in
	// element-local coordinates.
	FocalX, FocalY float64
}

// PinchStart begins a pinch gesture: running animations are cancelled and
// the current scale becomes the baseline.
func (z *Zoomable) PinchStart() {
	st := &z.state
	if st.cancelAnimations() {
		st.commitTranslation()
		z.markDirty()
	}
	scale := st.scale.value
	st.pinch = pinchSession{
		state:       PinchArmed,
		prevScale:   scale,
		offsetScale: scale,
	}
	z.debugf("pinch start at scale %.3f", scale)
	z.flush()
}

// PinchUpdate applies one pinch update. Updates that would take the scale
// outside [MinimumZoomScale, MaximumZoomScale] are dropped whole.
func (z *Zoomable) PinchUpdate(e PinchEvent) {
	st := &z.state
	if st.pinch.state == PinchIdle {
		return
	}

	if e.Pointers == 1 {
		if st.pinch.state == PinchAnchored {
			// Down to one finger: freeze where the focal math left off until
			// a second finger returns.
			st.commitTranslation()
			st.pinch.state = PinchArmed
			z.debugf("pinch degraded to one pointer")
		}
		return
	}
	if e.Pointers != 2 {
		return
	}

	newScale := st.pinch.prevScale * e.Scale
	if newScale < z.cfg.MinimumZoomScale || newScale > z.cfg.MaximumZoomScale {
		z.debugf("pinch update rejected: scale %.3f outside [%v, %v]",
			newScale, z.cfg.MinimumZoomScale, z.cfg.MaximumZoomScale)
		return
	}
	st.scale.set(newScale)

	if st.pinch.state != PinchAnchored {
		st.pinch.state = PinchAnchored
		st.pinch.originX = e.FocalX
		st.pinch.originY = e.FocalY
		st.pinch.offsetScale = newScale
		st.commitTranslation()
		z.debugf("pinch anchored at (%.2f, %.2f) scale %.3f", e.FocalX, e.FocalY, newScale)
	}

	cx, cy := st.center()
	ds := st.scale.value - st.pinch.offsetScale
	st.translationX.set(st.prevTranslationX - ds*(st.pinch.originX-cx))
	st.translationY.set(st.prevTranslationY - ds*(st.pinch.originY-cy))
	z.markDirty()
	z.flush()
}

// PinchEnd finishes the pinch gesture and commits the translation. A pinch
// that leaves the element at exactly scale 1 returns everything to identity.
func (z *Zoomable) PinchEnd() {
	st := &z.state
	if st.pinch.state == PinchIdle {
		return
	}
	st.pinch.state = PinchIdle
	st.commitTranslation()
	z.debugf("pinch end at scale %.3f", st.scale.value)

	if st.scale.value == 1 && (st.translationX.value != 0 || st.translationY.value != 0) {
		z.resetAnimated()
	}
	z.flush()
}
