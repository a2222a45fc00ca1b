package pinchzoom

import (
	"fmt"
	"os"
)

// debugf prints a gesture trace line to stderr when debug mode is on.
func (z *Zoomable) debugf(format string, args ...any) {
	if !z.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[pinchzoom] "+format+"\n", args...)
}

// String renders the state for debug output.
func (z *Zoomable) String() string {
	t := z.Transform()
	return fmt.Sprintf("pinchzoom{x: %.2f, y: %.2f, scale: %.3f, pan: %s, pinch: %s}",
		t.X, t.Y, t.Scale, z.state.pan.state, z.state.pinch.state)
}
