package pinchzoom

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers  = 10 // touch slots tracked at once
	mouseTouchID = -1 // Touch.ID used for the mouse under MouseAsTouch
)

// Touch is one finger on the screen, in screen coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// TouchSource reports the touches that are down this frame.
type TouchSource interface {
	AppendTouches(buf []Touch) []Touch
}

// EbitenTouches reads touches from ebiten. With MouseAsTouch set, a held
// left mouse button is reported as a single touch when no finger is down.
type EbitenTouches struct {
	MouseAsTouch bool
	ids          []ebiten.TouchID
}

// AppendTouches implements TouchSource.
func (s *EbitenTouches) AppendTouches(buf []Touch) []Touch {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if s.MouseAsTouch && len(s.ids) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		buf = append(buf, Touch{ID: mouseTouchID, X: float64(mx), Y: float64(my)})
	}
	return buf
}

// --- Per-pointer state ---

type pointerState struct {
	used   bool
	seen   bool // present in the current frame
	id     int
	order  uint64 // press order, for picking the pinch pair
	startX float64
	startY float64
	lastX  float64
	lastY  float64
}

// Recognizer turns a raw touch stream into pan, pinch and double-tap
// events. It plays the role of the platform gesture engine for games that
// only have raw touches, such as ebiten on mobile.
//
// Coordinates in emitted events are relative to Bounds, (0, 0) being its
// top-left, and do not account for the zoom transform. Zoomable.UpdateInput
// maps them into element-local space before dispatching.
// Touches that land outside Bounds are ignored; a touch that started inside
// keeps being tracked when it moves out. An empty Bounds accepts every touch.
type Recognizer struct {
	// Bounds is the element's rectangle on screen.
	Bounds Rect

	source      TouchSource
	deadZone    float64
	tapSlop     float64
	tapInterval time.Duration

	injectQueue [][]Touch
	frame       []Touch
	pointers    [maxPointers]pointerState
	pressSeq    uint64
	clock       time.Duration
	events      []GestureEvent

	// Touch sequence: from the first finger down to the last finger up.
	seqActive    bool
	seqStart     time.Duration
	tapCandidate bool
	lastX        float64
	lastY        float64

	pan struct {
		began        bool
		baseX, baseY float64 // centroid minus accumulated translation
		tx, ty       float64
		ids          [2]int // identity of the tracked pointer set
		count        int
	}

	pinch struct {
		active      bool
		p0, p1      int
		initialDist float64
		baseScale   float64
		scale       float64
		pointers    int
	}

	tap struct {
		pending bool
		at      time.Duration
		x, y    float64
	}
}

// NewRecognizer creates a recognizer reading from source. A nil source
// reads nothing but still plays injected frames.
func NewRecognizer(source TouchSource, bounds Rect) *Recognizer {
	r := &Recognizer{Bounds: bounds, source: source}
	r.configure(DefaultConfig())
	return r
}

// configure applies cfg thresholds and drops all in-flight recognition.
func (r *Recognizer) configure(cfg Config) {
	r.deadZone = cfg.PanDeadZone
	r.tapSlop = cfg.DoubleTapSlop
	r.tapInterval = cfg.DoubleTapInterval
	if es, ok := r.source.(*EbitenTouches); ok {
		es.MouseAsTouch = cfg.MouseAsTouch
	}
	r.pointers = [maxPointers]pointerState{}
	r.seqActive = false
	r.tapCandidate = false
	r.pan.began = false
	r.pinch.active = false
	r.tap.pending = false
}

// Poll advances the recognizer by dt seconds, reads one frame of touches and
// returns the gesture events it produced. The returned slice is reused by
// the next call.
func (r *Recognizer) Poll(dt float32) []GestureEvent {
	r.events = r.events[:0]
	r.clock += time.Duration(float64(dt) * float64(time.Second))

	r.frame = r.frame[:0]
	if len(r.injectQueue) > 0 {
		r.frame = append(r.frame, r.injectQueue[0]...)
		copy(r.injectQueue, r.injectQueue[1:])
		r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]
	} else if r.source != nil {
		r.frame = r.source.AppendTouches(r.frame)
	}

	r.updatePointers()
	count := r.activeCount()

	switch {
	case count > 0 && !r.seqActive:
		r.beginSequence(count)
	case count > 1:
		r.tapCandidate = false
	}

	if count > 0 {
		r.detectPinch(count)
		r.detectPan()
		r.lastX, r.lastY = r.centroid()
	} else if r.seqActive {
		r.endSequence()
	}
	return r.events
}

// Pending reports whether injected frames are still queued.
func (r *Recognizer) Pending() bool {
	return len(r.injectQueue) > 0
}

// updatePointers maps frame touches onto pointer slots, releasing slots
// whose touch disappeared.
func (r *Recognizer) updatePointers() {
	for i := range r.pointers {
		r.pointers[i].seen = false
	}
	for _, t := range r.frame {
		lx, ly := t.X-r.Bounds.X, t.Y-r.Bounds.Y
		slot := r.touchSlot(t, lx, ly)
		if slot < 0 {
			continue
		}
		ps := &r.pointers[slot]
		ps.seen = true
		ps.lastX, ps.lastY = lx, ly
		if r.tapCandidate {
			dx, dy := lx-ps.startX, ly-ps.startY
			if math.Sqrt(dx*dx+dy*dy) > r.deadZone {
				r.tapCandidate = false
			}
		}
	}
	for i := range r.pointers {
		if r.pointers[i].used && !r.pointers[i].seen {
			r.pointers[i] = pointerState{}
		}
	}
}

// touchSlot maps a touch to a pointer slot. Returns the existing slot or
// allocates a new one. Returns -1 if full, or if a new touch lands outside a
// non-empty Bounds.
func (r *Recognizer) touchSlot(t Touch, lx, ly float64) int {
	id := t.ID
	for i := range r.pointers {
		if r.pointers[i].used && r.pointers[i].id == id {
			return i
		}
	}
	if !r.Bounds.Empty() && !r.Bounds.Contains(t.X, t.Y) {
		return -1
	}
	for i := range r.pointers {
		if !r.pointers[i].used {
			r.pressSeq++
			r.pointers[i] = pointerState{
				used: true, id: id, order: r.pressSeq,
				startX: lx, startY: ly, lastX: lx, lastY: ly,
			}
			return i
		}
	}
	return -1
}

func (r *Recognizer) activeCount() int {
	n := 0
	for i := range r.pointers {
		if r.pointers[i].used {
			n++
		}
	}
	return n
}

// firstTwo returns the two earliest-pressed active slots. The second is -1
// when only one pointer is down.
func (r *Recognizer) firstTwo() (int, int) {
	p0, p1 := -1, -1
	for i := range r.pointers {
		ps := &r.pointers[i]
		if !ps.used {
			continue
		}
		switch {
		case p0 < 0 || ps.order < r.pointers[p0].order:
			p1 = p0
			p0 = i
		case p1 < 0 || ps.order < r.pointers[p1].order:
			p1 = i
		}
	}
	return p0, p1
}

// centroid returns the mean position of the active pointers.
func (r *Recognizer) centroid() (float64, float64) {
	var sx, sy float64
	n := 0
	for i := range r.pointers {
		if r.pointers[i].used {
			sx += r.pointers[i].lastX
			sy += r.pointers[i].lastY
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sx / float64(n), sy / float64(n)
}

func (r *Recognizer) emit(e GestureEvent) {
	r.events = append(r.events, e)
}

// --- Sequence ---

func (r *Recognizer) beginSequence(count int) {
	r.seqActive = true
	r.seqStart = r.clock
	r.tapCandidate = count == 1
	cx, cy := r.centroid()
	r.pan.began = false
	r.pan.tx, r.pan.ty = 0, 0
	r.pan.baseX, r.pan.baseY = cx, cy
	r.pan.ids, r.pan.count = r.pointerSet()
}

func (r *Recognizer) endSequence() {
	if r.pinch.active {
		r.pinch.active = false
		r.emit(GestureEvent{Kind: GesturePinchEnded})
	}
	if r.pan.began {
		r.pan.began = false
		r.emit(GestureEvent{Kind: GesturePanEnded})
	}
	if r.tapCandidate && r.clock-r.seqStart <= r.tapInterval {
		r.detectDoubleTap(r.lastX, r.lastY)
	}
	r.seqActive = false
	r.tapCandidate = false
}

// --- Pan detection ---

// pointerSet identifies the active pointers, so translation can be rebased
// when fingers are added or lifted.
func (r *Recognizer) pointerSet() ([2]int, int) {
	p0, p1 := r.firstTwo()
	var ids [2]int
	if p0 >= 0 {
		ids[0] = r.pointers[p0].id
	}
	if p1 >= 0 {
		ids[1] = r.pointers[p1].id
	}
	return ids, r.activeCount()
}

func (r *Recognizer) detectPan() {
	cx, cy := r.centroid()
	ids, n := r.pointerSet()
	if ids != r.pan.ids || n != r.pan.count {
		// Rebase so the cumulative translation continues without a jump.
		r.pan.baseX = cx - r.pan.tx
		r.pan.baseY = cy - r.pan.ty
		r.pan.ids, r.pan.count = ids, n
	}
	tx, ty := cx-r.pan.baseX, cy-r.pan.baseY

	if !r.pan.began {
		if math.Sqrt(tx*tx+ty*ty) <= r.deadZone {
			return
		}
		r.pan.began = true
		r.tapCandidate = false
		r.emit(GestureEvent{Kind: GesturePanBegan})
	} else if tx == r.pan.tx && ty == r.pan.ty {
		return
	}
	r.pan.tx, r.pan.ty = tx, ty
	r.emit(GestureEvent{Kind: GesturePanChanged, Pan: PanEvent{TranslationX: tx, TranslationY: ty}})
}

// --- Pinch detection ---

func (r *Recognizer) detectPinch(count int) {
	p0, p1 := r.firstTwo()

	if count < 2 {
		if r.pinch.active && r.pinch.pointers != 1 {
			r.pinch.pointers = 1
			ps := &r.pointers[p0]
			r.emit(GestureEvent{Kind: GesturePinchChanged, Pinch: PinchEvent{
				Pointers: 1,
				Scale:    r.pinch.scale,
				FocalX:   ps.lastX,
				FocalY:   ps.lastY,
			}})
		}
		return
	}

	ps0 := &r.pointers[p0]
	ps1 := &r.pointers[p1]
	fx := (ps0.lastX + ps1.lastX) / 2
	fy := (ps0.lastY + ps1.lastY) / 2
	dx := ps1.lastX - ps0.lastX
	dy := ps1.lastY - ps0.lastY
	dist := math.Sqrt(dx*dx + dy*dy)

	if !r.pinch.active {
		r.pinch.active = true
		r.pinch.baseScale = 1
		r.pinch.scale = 1
		r.pinch.p0, r.pinch.p1 = ps0.id, ps1.id
		r.pinch.initialDist = dist
		r.pinch.pointers = 0
		r.tapCandidate = false
		r.emit(GestureEvent{Kind: GesturePinchBegan})
	} else if r.pinch.p0 != ps0.id || r.pinch.p1 != ps1.id || r.pinch.pointers == 1 {
		// A different pair, or a finger back after a degrade (platforms
		// reuse touch IDs): continue the cumulative scale from here.
		r.pinch.baseScale = r.pinch.scale
		r.pinch.p0, r.pinch.p1 = ps0.id, ps1.id
		r.pinch.initialDist = dist
	}

	scale := r.pinch.baseScale
	if r.pinch.initialDist > 0 {
		scale = r.pinch.baseScale * dist / r.pinch.initialDist
	}
	if r.pinch.pointers == count && scale == r.pinch.scale {
		return
	}
	r.pinch.scale = scale
	r.pinch.pointers = count
	r.emit(GestureEvent{Kind: GesturePinchChanged, Pinch: PinchEvent{
		Pointers: count,
		Scale:    scale,
		FocalX:   fx,
		FocalY:   fy,
	}})
}

// --- Double-tap detection ---

func (r *Recognizer) detectDoubleTap(x, y float64) {
	if r.tap.pending && r.clock-r.tap.at <= r.tapInterval {
		dx, dy := x-r.tap.x, y-r.tap.y
		if math.Sqrt(dx*dx+dy*dy) <= r.tapSlop {
			r.tap.pending = false
			r.emit(GestureEvent{Kind: GestureDoubleTap, Tap: TapEvent{X: x, Y: y}})
			return
		}
	}
	r.tap.pending = true
	r.tap.at = r.clock
	r.tap.x, r.tap.y = x, y
}
