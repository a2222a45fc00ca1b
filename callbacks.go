package pinchzoom

// --- Handler registry ---

type changeHandler struct {
	id uint32
	fn func(Transform)
}

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

type handlerRegistry struct {
	change  []changeHandler
	gesture []gestureHandler
	nextID  uint32
}

type handlerKind uint8

const (
	handlerChange handlerKind = iota
	handlerGesture
)

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerChange:
		h.reg.change = removeChangeHandler(h.reg.change, h.id)
	case handlerGesture:
		h.reg.gesture = removeGestureHandler(h.reg.gesture, h.id)
	}
}

func removeChangeHandler(s []changeHandler, id uint32) []changeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeGestureHandler(s []gestureHandler, id uint32) []gestureHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnChange registers a callback fired with the new transform after each
// batch of state changes: a gesture callback, a double-tap, or an animation
// frame. Handlers fire once per batch, never with an intermediate state.
func (z *Zoomable) OnChange(fn func(Transform)) CallbackHandle {
	z.handlers.nextID++
	id := z.handlers.nextID
	z.handlers.change = append(z.handlers.change, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &z.handlers, kind: handlerChange}
}

// OnGesture registers a callback fired for every gesture event that passes
// the composition policy, after its binding has run.
func (z *Zoomable) OnGesture(fn func(GestureEvent)) CallbackHandle {
	z.handlers.nextID++
	id := z.handlers.nextID
	z.handlers.gesture = append(z.handlers.gesture, gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &z.handlers, kind: handlerGesture}
}

// flush delivers the pending change, if any, to OnChange handlers and the
// event sink.
func (z *Zoomable) flush() {
	if !z.changed {
		return
	}
	z.changed = false
	t := z.Transform()
	for _, h := range z.handlers.change {
		h.fn(t)
	}
	if z.sink != nil {
		z.sink.EmitTransform(TransformEvent{
			Transform: t,
			Target:    z.state.targets(),
			Zoomed:    z.state.isZoomed(),
			Pinching:  z.state.isPinching(),
		})
	}
}
