package ecs

import (
	"testing"

	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, donburi.Null)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitTransform(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, donburi.Null)

	var received []ZoomEvent
	ZoomEventType.Subscribe(world, func(w donburi.World, e ZoomEvent) {
		received = append(received, e)
	})

	sink.EmitTransform(pinchzoom.TransformEvent{
		Transform: pinchzoom.Transform{X: -400, Y: 1600, Scale: 8},
		Zoomed:    true,
	})
	sink.EmitTransform(pinchzoom.TransformEvent{
		Transform: pinchzoom.IdentityTransform,
		Pinching:  true,
	})

	// Events are queued; process them.
	ZoomEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Transform.Scale != 8 || e0.Transform.X != -400 || e0.Transform.Y != 1600 || !e0.Zoomed {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Entity != donburi.Null {
		t.Errorf("event 0 entity = %v, want Null", e0.Entity)
	}
	if !received[1].Pinching || received[1].Transform != pinchzoom.IdentityTransform {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_UpdatesComponent(t *testing.T) {
	world := donburi.NewWorld()
	photo := world.Create(Zoom)
	sink := NewDonburiSink(world, photo)

	var tagged donburi.Entity
	ZoomEventType.Subscribe(world, func(w donburi.World, e ZoomEvent) {
		tagged = e.Entity
	})

	want := pinchzoom.Transform{X: 12, Y: -3, Scale: 2.5}
	sink.EmitTransform(pinchzoom.TransformEvent{Transform: want, Target: want, Zoomed: true})
	events.ProcessAllEvents(world)

	if tagged != photo {
		t.Errorf("event entity = %v, want %v", tagged, photo)
	}
	got := Zoom.Get(world.Entry(photo))
	if got.Transform != want || !got.Zoomed {
		t.Errorf("component = %+v, want transform %+v zoomed", *got, want)
	}
}

func TestDonburiSink_EntityWithoutComponent(t *testing.T) {
	world := donburi.NewWorld()
	other := donburi.NewComponentType[int]()
	e := world.Create(other)
	sink := NewDonburiSink(world, e)

	count := 0
	ZoomEventType.Subscribe(world, func(w donburi.World, ev ZoomEvent) { count++ })
	sink.EmitTransform(pinchzoom.TransformEvent{Transform: pinchzoom.IdentityTransform})
	events.ProcessAllEvents(world)

	if count != 1 {
		t.Errorf("expected the event to be published, got %d", count)
	}
	if world.Entry(e).HasComponent(Zoom) {
		t.Error("sink must not add the Zoom component")
	}
}

func TestDonburiSink_RemovedEntity(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(Zoom)
	sink := NewDonburiSink(world, e)
	world.Remove(e)

	count := 0
	ZoomEventType.Subscribe(world, func(w donburi.World, ev ZoomEvent) { count++ })
	sink.EmitTransform(pinchzoom.TransformEvent{Transform: pinchzoom.IdentityTransform})
	events.ProcessAllEvents(world)

	if count != 1 {
		t.Errorf("expected 1 event after the entity was removed, got %d", count)
	}
}

func TestDonburiSink_FromZoomable(t *testing.T) {
	world := donburi.NewWorld()
	photo := world.Create(Zoom)
	z, err := pinchzoom.NewZoomable(pinchzoom.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	z.SetLayout(300, 600)
	z.SetEventSink(NewDonburiSink(world, photo))

	var last ZoomEvent
	var count int
	ZoomEventType.Subscribe(world, func(w donburi.World, e ZoomEvent) {
		last = e
		count++
	})

	z.DoubleTap(pinchzoom.TapEvent{X: 200, Y: 100})
	events.ProcessAllEvents(world)

	if count != 1 {
		t.Fatalf("expected 1 event after double-tap, got %d", count)
	}
	want := pinchzoom.Transform{X: -400, Y: 1600, Scale: 8}
	if last.Target != want {
		t.Errorf("Target = %+v, want %+v", last.Target, want)
	}
	if !last.Zoomed {
		t.Error("expected Zoomed once a zoom-in animation is running")
	}
	if got := Zoom.Get(world.Entry(photo)); got.Target != want {
		t.Errorf("component Target = %+v, want %+v", got.Target, want)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, donburi.Null)

	var count1, count2 int
	ZoomEventType.Subscribe(world, func(w donburi.World, e ZoomEvent) {
		count1++
	})
	ZoomEventType.Subscribe(world, func(w donburi.World, e ZoomEvent) {
		count2++
	})

	sink.EmitTransform(pinchzoom.TransformEvent{Transform: pinchzoom.IdentityTransform})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
