package pinchzoom

// PanEvent carries the cumulative translation of a pan gesture since its own
// start.
type PanEvent struct {
	TranslationX, TranslationY float64
}

// panSuppressed reports whether pan input must be tracked without moving the
// element.
func (z *Zoomable) panSuppressed() bool {
	return z.state.isPinching() || !z.state.isZoomed()
}

// PanStart begins a pan gesture. A pan that starts while pinching or while
// not zoomed stays suppressed and leaves running animations alone.
//
// An applying pan that interrupts a double-tap animation stops it where it
// is and commits that translation as the baseline, so Baseline reports the
// interrupted position rather than the animation's target. PinchStart does
// the same.
func (z *Zoomable) PanStart() {
	st := &z.state
	st.pan.offsetX, st.pan.offsetY = 0, 0
	if z.panSuppressed() {
		st.pan.state = PanTracking
		z.debugf("pan start (suppressed)")
		return
	}
	if st.cancelAnimations() {
		// The tween stopped short of the baseline it was heading for.
		st.commitTranslation()
		z.markDirty()
	}
	st.pan.state = PanApplying
	z.debugf("pan start")
	z.flush()
}

// PanUpdate feeds the cumulative gesture translation.
func (z *Zoomable) PanUpdate(e PanEvent) {
	st := &z.state
	if st.pan.state == PanIdle {
		return
	}
	if z.panSuppressed() {
		if st.pan.state == PanApplying {
			z.debugf("pan suppressed")
		}
		st.pan.state = PanTracking
		st.pan.offsetX = e.TranslationX
		st.pan.offsetY = e.TranslationY
		return
	}
	if st.pan.state == PanTracking {
		// Switching mid-gesture: rebase on this frame so the element stays put.
		st.pan.state = PanApplying
		st.pan.offsetX = e.TranslationX
		st.pan.offsetY = e.TranslationY
		z.debugf("pan applying")
	}
	st.translationX.set(st.prevTranslationX + e.TranslationX - st.pan.offsetX)
	st.translationY.set(st.prevTranslationY + e.TranslationY - st.pan.offsetY)
	z.markDirty()
	z.flush()
}

// PanEnd finishes the pan gesture, committing the translation if the pan
// was applying.
func (z *Zoomable) PanEnd() {
	st := &z.state
	if st.pan.state == PanApplying {
		st.commitTranslation()
		z.debugf("pan end at (%.2f, %.2f)", st.prevTranslationX, st.prevTranslationY)
	}
	st.pan = panSession{}
}
