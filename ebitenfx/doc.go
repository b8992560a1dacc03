// Package ebitenfx draws fontfx objects with [Ebitengine].
//
// [Batch] implements fontfx.Renderer by recording commands and submitting them
// on Flush, sorted by depth. Text is drawn from a [TTFFont] (text/v2) or the
// built-in [DebugFont]. [Run] wires a fontfx.Stage into an ebiten.Game:
//
//	stage := fontfx.NewStage(title, subtitle)
//	if err := ebitenfx.Run(stage, ebitenfx.RunConfig{
//		Title:  "Titles",
//		Width:  800,
//		Height: 600,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenfx
