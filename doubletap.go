package pinchzoom

// TapEvent locates a recognized double-tap in element-local coordinates.
type TapEvent struct {
	X, Y float64
}

// DoubleTap toggles between identity and maximum zoom. From any zoomed
// state it animates back to identity; from scale 1 it animates to
// MaximumZoomScale with the tapped point brought to the center.
//
// Baselines are written before the animations start, so a gesture that
// begins mid-animation sees consistent state.
func (z *Zoomable) DoubleTap(e TapEvent) {
	if z.state.scale.target() != 1 {
		z.resetAnimated()
		z.flush()
		return
	}
	z.zoomTo(e.X, e.Y, z.cfg.MaximumZoomScale)
	z.flush()
}

// zoomTo animates to scale with (x, y) brought to the element's center.
func (z *Zoomable) zoomTo(x, y, scale float64) {
	st := &z.state
	cx, cy := st.center()
	tx := -scale * (x - cx)
	ty := -scale * (y - cy)

	st.reset()
	st.prevTranslationX = tx
	st.prevTranslationY = ty
	st.pinch.prevScale = scale
	st.pinch.offsetScale = scale

	d, fn := z.cfg.ZoomDuration, z.cfg.Ease
	st.translationX.animateTo(tx, d, fn)
	st.translationY.animateTo(ty, d, fn)
	st.scale.animateTo(scale, d, fn)
	z.markDirty()
	z.debugf("zoom to (%.2f, %.2f) scale %v", x, y, scale)
}

// resetAnimated animates the transform back to identity and resets every
// baseline synchronously.
func (z *Zoomable) resetAnimated() {
	st := &z.state
	st.reset()
	d, fn := z.cfg.ResetDuration, z.cfg.Ease
	st.translationX.animateTo(0, d, fn)
	st.translationY.animateTo(0, d, fn)
	st.scale.animateTo(1, d, fn)
	z.markDirty()
	z.debugf("reset")
}

// Reset returns the transform to identity immediately, without animation.
func (z *Zoomable) Reset() {
	st := &z.state
	st.reset()
	st.translationX.set(0)
	st.translationY.set(0)
	st.scale.set(1)
	z.markDirty()
	z.flush()
}
