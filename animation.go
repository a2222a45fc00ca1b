package pinchzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cell is one animatable value of the transform. At most one tween drives a
// cell at a time; a manual write must cancel it first so the tween cannot
// clobber the gesture on the next frame.
//
// There is no global animation manager. Zoomable.Update steps every cell.
type cell struct {
	value float64
	tween *gween.Tween
	to    float64
}

// set cancels any running tween and writes v.
func (c *cell) set(v float64) {
	c.tween = nil
	c.value = v
}

// animateTo replaces any running tween with one from the current value to
// to. A non-positive duration writes to immediately.
func (c *cell) animateTo(to float64, duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		c.set(to)
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	c.tween = gween.New(float32(c.value), float32(to), duration, fn)
	c.to = to
}

// cancel stops the running tween, leaving the value where the last frame put
// it. Reports whether a tween was running.
func (c *cell) cancel() bool {
	if c.tween == nil {
		return false
	}
	c.tween = nil
	return true
}

// animating reports whether a tween is driving the cell.
func (c *cell) animating() bool {
	return c.tween != nil
}

// target returns the value the cell is headed for: the tween's end value
// while animating, otherwise the current value.
func (c *cell) target() float64 {
	if c.tween != nil {
		return c.to
	}
	return c.value
}

// step advances the tween by dt seconds. It reports whether the value
// changed. The final frame writes the exact target, not gween's float32
// approximation of it.
func (c *cell) step(dt float32) bool {
	if c.tween == nil {
		return false
	}
	prev := c.value
	val, finished := c.tween.Update(dt)
	if finished {
		c.value = c.to
		c.tween = nil
	} else {
		c.value = float64(val)
	}
	return c.value != prev
}
