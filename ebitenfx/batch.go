package ebitenfx

import (
	"image"
	"image/color"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/fontfx"
)

// maxCachedStrings bounds the images kept for DebugFont strings.
const maxCachedStrings = 256

// Batch is a fontfx.Renderer that records draw calls and submits them to an
// Ebitengine image on Flush, ordered by Transform.Depth (lowest first) with
// ties kept in call order.
type Batch struct {
	commands []Command
	next     int

	white   *ebiten.Image
	images  map[fontfx.Texture]*ebiten.Image
	strings map[string]*ebiten.Image
	warned  map[string]bool
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{
		images:  make(map[fontfx.Texture]*ebiten.Image),
		strings: make(map[string]*ebiten.Image),
		warned:  make(map[string]bool),
	}
}

// DrawText records s in f.
func (b *Batch) DrawText(f fontfx.Font, s string, t fontfx.Transform) {
	if f == nil || s == "" {
		return
	}
	w, h := f.MeasureString(s)
	b.push(Command{Type: CommandText, Transform: t, Font: f, Text: s, Size: fontfx.Vec2{X: w, Y: h}})
}

// DrawImage records tex, or the src region of it when src is non-nil.
func (b *Batch) DrawImage(tex fontfx.Texture, src *image.Rectangle, t fontfx.Transform) {
	if tex == nil {
		return
	}
	r := tex.Bounds()
	if src != nil {
		r = *src
	}
	b.push(Command{
		Type:      CommandImage,
		Transform: t,
		Texture:   tex,
		Source:    src,
		Size:      fontfx.Vec2{X: float64(r.Dx()), Y: float64(r.Dy())},
	})
}

// DrawRect records a solid rectangle of size pixels in the tint of t.
func (b *Batch) DrawRect(size fontfx.Vec2, t fontfx.Transform) {
	b.push(Command{Type: CommandRect, Transform: t, Size: size})
}

func (b *Batch) push(cmd Command) {
	b.next++
	cmd.order = b.next
	b.commands = append(b.commands, cmd)
}

// Commands returns the recorded commands. The slice is only valid until the
// next Flush or Reset.
func (b *Batch) Commands() []Command { return b.commands }

// Sort orders the recorded commands for submission.
func (b *Batch) Sort() {
	slices.SortFunc(b.commands, compareCommands)
}

// Reset drops the recorded commands, keeping cached images.
func (b *Batch) Reset() {
	b.commands = b.commands[:0]
	b.next = 0
}

// Flush sorts the recorded commands, draws them onto target and resets.
func (b *Batch) Flush(target *ebiten.Image) {
	b.Sort()
	var op ebiten.DrawImageOptions
	for i := range b.commands {
		cmd := &b.commands[i]
		if cmd.Transform.Tint.A <= 0 {
			continue
		}
		switch cmd.Type {
		case CommandText:
			b.submitText(target, cmd)
		case CommandImage:
			b.submitImage(target, cmd, &op)
		case CommandRect:
			b.submitRect(target, cmd, &op)
		}
	}
	b.Reset()
}

// Dispose releases every cached image.
func (b *Batch) Dispose() {
	for k, img := range b.images {
		img.Deallocate()
		delete(b.images, k)
	}
	b.clearStrings()
	if b.white != nil {
		b.white.Deallocate()
		b.white = nil
	}
}

func (b *Batch) submitText(target *ebiten.Image, cmd *Command) {
	f, ok := cmd.Font.(batchFont)
	if !ok {
		b.warnOnce("font", "fontfx: ebitenfx cannot draw text in font %T", cmd.Font)
		return
	}
	f.draw(b, target, cmd)
}

func (b *Batch) submitImage(target *ebiten.Image, cmd *Command, op *ebiten.DrawImageOptions) {
	img := b.resolve(cmd.Texture)
	if img == nil {
		return
	}
	if cmd.Source != nil {
		img = img.SubImage(*cmd.Source).(*ebiten.Image)
	}
	op.GeoM = GeoM(cmd.Transform, cmd.Size)
	op.ColorScale = colorScale(cmd.Transform.Tint)
	target.DrawImage(img, op)
}

func (b *Batch) submitRect(target *ebiten.Image, cmd *Command, op *ebiten.DrawImageOptions) {
	if b.white == nil {
		b.white = ebiten.NewImage(1, 1)
		b.white.Fill(color.White)
	}
	op.GeoM.Reset()
	op.GeoM.Scale(cmd.Size.X, cmd.Size.Y)
	op.GeoM.Concat(GeoM(cmd.Transform, cmd.Size))
	op.ColorScale = colorScale(cmd.Transform.Tint)
	target.DrawImage(b.white, op)
}

// resolve returns an Ebitengine image for tex, uploading plain image.Image
// values once.
func (b *Batch) resolve(tex fontfx.Texture) *ebiten.Image {
	switch t := tex.(type) {
	case *ebiten.Image:
		return t
	case image.Image:
		if img, ok := b.images[tex]; ok {
			return img
		}
		img := ebiten.NewImageFromImage(t)
		b.images[tex] = img
		return img
	}
	b.warnOnce("texture", "fontfx: ebitenfx cannot draw texture %T", tex)
	return nil
}

func (b *Batch) debugString(s string, size fontfx.Vec2) *ebiten.Image {
	if img, ok := b.strings[s]; ok {
		return img
	}
	if len(b.strings) >= maxCachedStrings {
		b.clearStrings()
	}
	img := ebiten.NewImage(max(int(size.X), 1), max(int(size.Y), 1))
	debugPrint(img, s)
	b.strings[s] = img
	return img
}

func (b *Batch) clearStrings() {
	for k, img := range b.strings {
		img.Deallocate()
		delete(b.strings, k)
	}
}

func (b *Batch) warnOnce(kind, format string, v any) {
	if b.warned[kind] {
		return
	}
	b.warned[kind] = true
	log.Printf(format, v)
}
