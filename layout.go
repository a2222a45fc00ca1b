package pinchzoom

// SetLayout records the element's current size. Call it on every layout
// change. Sizes are not validated; zero or negative values only skew the
// focal math.
func (z *Zoomable) SetLayout(width, height float64) {
	if z.state.viewWidth == width && z.state.viewHeight == height {
		return
	}
	z.state.viewWidth = width
	z.state.viewHeight = height
	z.debugf("layout %vx%v", width, height)
}

// Layout returns the last recorded element size.
func (z *Zoomable) Layout() (width, height float64) {
	return z.state.viewWidth, z.state.viewHeight
}
