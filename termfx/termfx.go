// Package termfx draws fontfx objects on a terminal through tcell.
//
// Coordinates are character cells: one unit is one column horizontally and
// one row vertically. Text is measured with [CellFont], which counts display
// columns the way the terminal does (wide runes take two). Terminals cannot
// rotate or scale glyphs, so text is placed at its scaled origin and drawn at
// its natural size; rectangles and images do honor scale.
package termfx

import (
	"image"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/fontfx"
)

// CellFont measures text in terminal cells.
type CellFont struct{}

// MeasureString returns the widest line in columns and the number of rows.
func (CellFont) MeasureString(s string) (width, height float64) {
	lines := strings.Split(s, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, runewidth.StringWidth(l))
	}
	return float64(widest), float64(len(lines))
}

// LineHeight is one row.
func (CellFont) LineHeight() float64 { return 1 }

// Renderer is a fontfx.Renderer writing cells to a tcell screen. Translucent
// tints are blended against Background.
type Renderer struct {
	Background fontfx.Color

	screen tcell.Screen
}

// NewRenderer creates a renderer for screen. The background starts black.
func NewRenderer(screen tcell.Screen) *Renderer {
	if screen == nil {
		panic("fontfx: termfx needs a screen")
	}
	return &Renderer{screen: screen, Background: fontfx.ColorBlack}
}

// Screen returns the underlying screen.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// Clear fills the screen with the background color.
func (r *Renderer) Clear() {
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.color(r.Background, r.Background)))
}

// Show flushes pending cells to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// DrawText writes s with its top-left at the scaled origin, over the cells'
// existing background. A horizontal mirror reverses each line and a vertical
// one reverses the line order.
func (r *Renderer) DrawText(f fontfx.Font, s string, t fontfx.Transform) {
	if s == "" || t.Tint.A <= 0 {
		return
	}
	x0, y0 := topLeft(t)
	fg := r.color(t.Tint, r.Background)

	lines := strings.Split(s, "\n")
	if t.Mirror&fontfx.MirrorVertical != 0 {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	for row, line := range lines {
		runes := []rune(line)
		if t.Mirror&fontfx.MirrorHorizontal != 0 {
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
		}
		x, y := x0, y0+row
		for _, c := range runes {
			// Keep whatever background is already under the glyph.
			_, _, under, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, c, nil, under.Foreground(fg))
			x += max(runewidth.RuneWidth(c), 1)
		}
	}
}

// DrawImage samples the texture once per covered cell and paints the cell
// background with the sampled color times the tint. Textures that are not
// image.Image values, and fully transparent pixels, are skipped.
func (r *Renderer) DrawImage(tex fontfx.Texture, src *image.Rectangle, t fontfx.Transform) {
	img, ok := tex.(image.Image)
	if !ok || t.Tint.A <= 0 {
		return
	}
	b := img.Bounds()
	if src != nil {
		b = src.Intersect(b)
	}
	if b.Empty() {
		return
	}
	size := fontfx.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
	r.cells(size, t, func(u, v float64) (fontfx.Color, bool) {
		px := b.Min.X + int(u*size.X)
		py := b.Min.Y + int(v*size.Y)
		if t.Mirror&fontfx.MirrorHorizontal != 0 {
			px = b.Max.X - 1 - (px - b.Min.X)
		}
		if t.Mirror&fontfx.MirrorVertical != 0 {
			py = b.Max.Y - 1 - (py - b.Min.Y)
		}
		cr, cg, cb, ca := img.At(px, py).RGBA()
		if ca == 0 {
			return fontfx.Color{}, false
		}
		a := float64(ca)
		c := fontfx.Color{R: float64(cr) / a, G: float64(cg) / a, B: float64(cb) / a, A: a / 0xffff}
		return c.Mul(t.Tint), true
	})
}

// DrawRect paints the covered cells in the tint of t.
func (r *Renderer) DrawRect(size fontfx.Vec2, t fontfx.Transform) {
	if t.Tint.A <= 0 {
		return
	}
	r.cells(size, t, func(_, _ float64) (fontfx.Color, bool) { return t.Tint, true })
}

// cells visits every cell covered by content of the given size under t,
// passing the cell center in normalized content coordinates.
func (r *Renderer) cells(size fontfx.Vec2, t fontfx.Transform, shade func(u, v float64) (fontfx.Color, bool)) {
	x0, y0 := topLeft(t)
	w := int(math.Round(size.X * t.Scale.X))
	h := int(math.Round(size.Y * t.Scale.Y))
	sw, sh := r.screen.Size()
	for j := 0; j < h; j++ {
		y := y0 + j
		if y < 0 || y >= sh {
			continue
		}
		for i := 0; i < w; i++ {
			x := x0 + i
			if x < 0 || x >= sw {
				continue
			}
			c, ok := shade((float64(i)+0.5)/float64(w), (float64(j)+0.5)/float64(h))
			if !ok {
				continue
			}
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(r.color(c, r.Background)))
		}
	}
}

// color converts c, composited over bg by its alpha, to a terminal color.
func (r *Renderer) color(c, bg fontfx.Color) tcell.Color {
	c = c.Clamp()
	mix := func(fg, bg float64) int32 {
		return int32(math.Round((fg*c.A + bg*(1-c.A)) * 255))
	}
	return tcell.NewRGBColor(mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B))
}

// topLeft returns the cell at which the content's top-left corner lands.
func topLeft(t fontfx.Transform) (int, int) {
	x := t.Position.X - t.Origin.X*t.Scale.X
	y := t.Position.Y - t.Origin.Y*t.Scale.Y
	return int(math.Round(x)), int(math.Round(y))
}
