// Package fontfx provides animated 2D text and sprite effects driven by a
// per-frame clock tick.
//
// Every effect is a small state machine: text that drops in and bounces,
// fades, slides, cycles colors or types itself out, plus panels that expand
// and collapse and sprites that glide. Effects announce their transitions to
// subscribers, and a [Sequence] reports when a whole group of them has
// reached a state.
//
// The package draws nothing itself. Objects hand resolved transforms to a
// [Renderer]; the ebitenfx and termfx packages provide renderers for
// [Ebitengine] and for terminals.
//
// # Quick start
//
//	drop, _ := fontfx.NewDropInFont(font, "READY?", fontfx.Vec2{X: 100, Y: -40},
//		fontfx.Vec2{X: 100, Y: 200}, fontfx.Vec2{Y: 6}, fontfx.ColorWhite,
//		fontfx.DefaultConfig().Drop)
//	stage := fontfx.NewStage(drop)
//
//	// each frame:
//	stage.Update(dt)
//	stage.Draw(renderer)
//
// # Notifications
//
// State changes are delivered synchronously, inside the Update or control
// call that caused them:
//
//	drop.OnStateChanged(func(ev fontfx.StateEvent) {
//		if ev.State == fontfx.DropDone {
//			title.Slide()
//		}
//	})
//
// Tuning for every effect lives in [Config], loadable from YAML with
// [LoadConfig].
//
// [Ebitengine]: https://ebitengine.org
package fontfx
