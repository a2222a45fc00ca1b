package pinchzoom

// Synthetic touch IDs stay clear of the small integers ebiten hands out.
const (
	syntheticTouchA = 1 << 20
	syntheticTouchB = syntheticTouchA + 1
)

// InjectFrame queues one frame of touches in screen coordinates. While
// frames are queued, Poll consumes one per call instead of reading the
// touch source. An empty frame releases every finger.
func (r *Recognizer) InjectFrame(touches ...Touch) {
	frame := make([]Touch, len(touches))
	copy(frame, touches)
	r.injectQueue = append(r.injectQueue, frame)
}

// InjectTap queues a single tap: one frame down at (x, y), one frame up.
func (r *Recognizer) InjectTap(x, y float64) {
	r.InjectFrame(Touch{ID: syntheticTouchA, X: x, Y: y})
	r.InjectFrame()
}

// InjectDoubleTap queues two taps at (x, y). Consumes four frames.
func (r *Recognizer) InjectDoubleTap(x, y float64) {
	r.InjectTap(x, y)
	r.InjectTap(x, y)
}

// InjectDrag queues a one-finger drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, the final position
// at (toX, toY), then a release. Minimum frames is 2.
func (r *Recognizer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectFrame(Touch{ID: syntheticTouchA, X: fromX, Y: fromY})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectFrame(Touch{
			ID: syntheticTouchA,
			X:  fromX + (toX-fromX)*t,
			Y:  fromY + (toY-fromY)*t,
		})
	}
	r.InjectFrame(Touch{ID: syntheticTouchA, X: toX, Y: toY})
	r.InjectFrame()
}

// InjectPinch queues a two-finger pinch centered on (cx, cy): the fingers
// start fromDist apart horizontally and spread (or close) linearly to
// toDist over frames frames, then both lift. Minimum frames is 2.
func (r *Recognizer) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		half := (fromDist + (toDist-fromDist)*t) / 2
		r.InjectFrame(
			Touch{ID: syntheticTouchA, X: cx - half, Y: cy},
			Touch{ID: syntheticTouchB, X: cx + half, Y: cy},
		)
	}
	r.InjectFrame()
}
