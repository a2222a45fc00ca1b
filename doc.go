// Package pinchzoom adds pinch-to-zoom, pan and double-tap-to-zoom to a
// visual element in an [Ebitengine] game.
//
// A [Zoomable] converts gesture callbacks into a [Transform]: a translation
// and a uniform scale about the element's center, kept within
// [Config.MinimumZoomScale] and [Config.MaximumZoomScale]. Pinching keeps the
// point under the fingers stationary, panning moves the element only while
// it is zoomed in, and a double-tap toggles between identity and maximum
// zoom with an animation (via [gween]).
//
// # Quick start
//
//	z, err := pinchzoom.NewZoomable(pinchzoom.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	z.SetLayout(300, 600)
//	z.Attach(pinchzoom.NewRecognizer(&pinchzoom.EbitenTouches{}, pinchzoom.Rect{Width: 300, Height: 600}))
//
//	// In Game.Update:
//	z.Update()
//
//	// In Game.Draw:
//	var op ebiten.DrawImageOptions
//	z.Transform().Apply(&op, 300, 600)
//	screen.DrawImage(photo, &op)
//
// # Gesture sources
//
// The bundled [Recognizer] derives pan, pinch and double-tap events from raw
// ebiten touches. Applications with their own gesture engine call
// [Zoomable.Dispatch] (or the PanStart/PinchUpdate/DoubleTap family directly)
// instead. Dispatch applies the composition policy: a double-tap is dropped
// while a pan or pinch is in progress; pan and pinch run together.
//
// # Threading
//
// Everything runs on the game loop goroutine. Animations are stepped by
// [Zoomable.Update]; a gesture that starts while an animation runs cancels it
// and takes over from wherever the animation left the element.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package pinchzoom
