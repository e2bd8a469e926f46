package ghelper

import (
	"hangman/ui/gui/gbase"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	// create a context with alpha and draw rounded rectangle using gg (anti-aliased)
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func DrawRect(screen *ebiten.Image, r gbase.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawImageStretched scales img over the whole w x h area.
func DrawImageStretched(screen, img *ebiten.Image, w, h int) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// DrawText draws s with its top-left corner at x, y.
func DrawText(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, x, y+ascent, c)
}

func TextWidth(s string, face font.Face) int {
	return text.BoundString(face, s).Dx()
}
