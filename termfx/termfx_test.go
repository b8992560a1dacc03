package termfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/fontfx"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func plain(x, y float64) fontfx.Transform {
	return fontfx.Transform{Position: fontfx.Vec2{X: x, Y: y}, Scale: fontfx.Vec2One, Tint: fontfx.ColorWhite}
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCellFontCountsColumns(t *testing.T) {
	w, h := CellFont{}.MeasureString("日本\nabc")
	if w != 4 || h != 2 {
		t.Errorf("MeasureString = %v x %v, want 4 x 2", w, h)
	}
}

func TestDrawTextPlacesRunes(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	r.DrawText(CellFont{}, "hi\n日x", plain(2, 1))

	if runeAt(screen, 2, 1) != 'h' || runeAt(screen, 3, 1) != 'i' {
		t.Errorf("first line = %q%q", runeAt(screen, 2, 1), runeAt(screen, 3, 1))
	}
	if runeAt(screen, 2, 2) != '日' || runeAt(screen, 4, 2) != 'x' {
		t.Errorf("wide rune not advanced by two columns")
	}
	_, _, style, _ := screen.GetContent(2, 1)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("fg = %v, want white", fg)
	}
}

func TestDrawTextUsesScaledOrigin(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	tr := plain(10, 5)
	tr.Origin = fontfx.Vec2{X: 2, Y: 0.5}
	tr.Scale = fontfx.Vec2{X: 2, Y: 2}
	r.DrawText(CellFont{}, "ab", tr)
	if runeAt(screen, 6, 4) != 'a' {
		t.Errorf("text not at (6, 4)")
	}
}

func TestDrawTextBlendsAlpha(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	tr := plain(0, 0)
	tr.Tint = fontfx.Color{R: 1, G: 1, B: 1, A: 0.5}
	r.DrawText(CellFont{}, "x", tr)
	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(128, 128, 128) {
		t.Errorf("fg = %v, want mid grey", fg)
	}

	tr.Tint.A = 0
	r.DrawText(CellFont{}, "y", tr)
	if runeAt(screen, 0, 0) != 'x' {
		t.Error("transparent text drawn")
	}
}

func TestDrawTextMirrored(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	tr := plain(0, 0)
	tr.Mirror = fontfx.MirrorHorizontal
	r.DrawText(CellFont{}, "ab", tr)
	if runeAt(screen, 0, 0) != 'b' || runeAt(screen, 1, 0) != 'a' {
		t.Error("mirrored text not reversed")
	}
}

func TestDrawRectFillsScaledCells(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	tr := plain(1, 1)
	tr.Tint = fontfx.Color{R: 0, G: 0, B: 1, A: 1}
	tr.Scale = fontfx.Vec2{X: 2, Y: 1}
	r.DrawRect(fontfx.Vec2{X: 3, Y: 2}, tr)

	blue := tcell.NewRGBColor(0, 0, 255)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 6; x++ {
			_, _, style, _ := screen.GetContent(x, y)
			if _, bg, _ := style.Decompose(); bg != blue {
				t.Fatalf("cell (%d, %d) bg = %v, want blue", x, y, bg)
			}
		}
	}
	_, _, style, _ := screen.GetContent(7, 1)
	if _, bg, _ := style.Decompose(); bg == blue {
		t.Error("rect overflowed its width")
	}

	// Text over the rect keeps the rect's background.
	r.DrawText(CellFont{}, "z", plain(2, 1))
	_, _, style, _ = screen.GetContent(2, 1)
	if _, bg, _ := style.Decompose(); bg != blue {
		t.Errorf("text replaced background with %v", bg)
	}
}

func TestDrawImageSamplesPixels(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	// Pixel (1, 0) stays transparent.
	r.DrawImage(img, nil, plain(0, 0))

	_, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("bg = %v, want red", bg)
	}
	_, _, style, _ = screen.GetContent(1, 0)
	if _, bg, _ := style.Decompose(); bg == tcell.NewRGBColor(255, 0, 0) {
		t.Error("transparent pixel painted")
	}
}

func TestRendererDrawsStage(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	label, err := fontfx.NewLabel(CellFont{}, "stage", fontfx.Vec2{X: 3, Y: 3}, fontfx.ColorWhite)
	if err != nil {
		t.Fatal(err)
	}
	r.Clear()
	fontfx.NewStage(label).Draw(r)
	r.Show()
	if runeAt(screen, 3, 3) != 's' || runeAt(screen, 7, 3) != 'e' {
		t.Error("stage label not drawn")
	}
}
