package ebitenfx

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/fontfx"
)

// batchFont is a font a Batch knows how to draw. Both fonts here measure
// line by line, so multi-line text gets the same box in either.
type batchFont interface {
	fontfx.Font
	lineWidth(line string) float64
	draw(b *Batch, dst *ebiten.Image, cmd *Command)
}

// measureLines returns the widest line of s and LineHeight per line.
func measureLines(f batchFont, s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	n := 0
	for line := range strings.SplitSeq(s, "\n") {
		width = max(width, f.lineWidth(line))
		n++
	}
	return width, float64(n) * f.LineHeight()
}

// TTFFont is a TrueType or OpenType face drawn through text/v2.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64
}

// LoadTTFFont parses ttfData and returns a face of the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("fontfx: parse font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

func (f *TTFFont) MeasureString(s string) (width, height float64) { return measureLines(f, s) }
func (f *TTFFont) LineHeight() float64                             { return f.lh }

// Size returns the size the face was loaded at.
func (f *TTFFont) Size() float64 { return f.face.Size }

// Face returns the underlying text/v2 face.
func (f *TTFFont) Face() *text.GoTextFace { return f.face }

func (f *TTFFont) lineWidth(line string) float64 { return text.Advance(line, f.face) }

func (f *TTFFont) draw(_ *Batch, dst *ebiten.Image, cmd *Command) {
	op := &text.DrawOptions{}
	op.GeoM = GeoM(cmd.Transform, cmd.Size)
	op.ColorScale = colorScale(cmd.Transform.Tint)
	op.LineSpacing = f.lh
	text.Draw(dst, cmd.Text, f.face, op)
}

// Debug font cell size, in pixels.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// DebugFont is Ebitengine's built-in debug-print font: fixed 6x16 cells,
// ASCII only. It needs no font file, which makes it handy for examples
// and tools.
type DebugFont struct{}

func (f DebugFont) MeasureString(s string) (width, height float64) { return measureLines(f, s) }
func (DebugFont) LineHeight() float64                               { return debugGlyphH }

func (DebugFont) lineWidth(line string) float64 {
	return float64(utf8.RuneCountInString(line) * debugGlyphW)
}

// draw blits a cached white rendering of the string, tinted by cmd.
func (DebugFont) draw(b *Batch, dst *ebiten.Image, cmd *Command) {
	img := b.debugString(cmd.Text, cmd.Size)
	var op ebiten.DrawImageOptions
	op.GeoM = GeoM(cmd.Transform, cmd.Size)
	op.ColorScale = colorScale(cmd.Transform.Tint)
	dst.DrawImage(img, &op)
}

func debugPrint(img *ebiten.Image, s string) {
	ebitenutil.DebugPrint(img, s)
}
