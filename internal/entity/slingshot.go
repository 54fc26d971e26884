package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"slingshot/internal/handle"
)

var (
	ColBand  = color.RGBA{0xd3, 0xd3, 0xd3, 0xff} // lightgray
	ColDisc  = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	ColRim   = color.RGBA{0x80, 0x80, 0x80, 0xff} // gray
	ColInner = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

const lineWidth = 2

// Slingshot draws the band and the handle. Everything is drawn onto its own
// layer first so the punched hole shows whatever is under the slingshot.
type Slingshot struct {
	geo   handle.Geometry
	layer *ebiten.Image
	hole  *ebiten.Image
}

func NewSlingshot(geo handle.Geometry, width, height int) *Slingshot {
	size := int(geo.InnerRadius*2) + 2
	hole := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(hole, c, c, float32(geo.InnerRadius), color.White, true)

	return &Slingshot{
		geo:   geo,
		layer: ebiten.NewImage(width, height),
		hole:  hole,
	}
}

// Draw renders the slingshot with the handle at pos. It only touches dst.
func (s *Slingshot) Draw(dst *ebiten.Image, pos handle.Vec) {
	s.layer.Clear()

	rx, ry := float32(s.geo.Rest.X), float32(s.geo.Rest.Y)
	px, py := float32(pos.X), float32(pos.Y)
	outer, inner := float32(s.geo.OuterRadius), float32(s.geo.InnerRadius)

	// 1. Band
	vector.StrokeLine(s.layer, rx, ry, px, py, lineWidth, ColBand, true)

	// 2. Disc
	vector.DrawFilledCircle(s.layer, px, py, outer, ColDisc, true)
	vector.StrokeCircle(s.layer, px, py, outer, lineWidth, ColRim, true)

	// 3. Hole
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationOut}
	half := float64(s.hole.Bounds().Dx()) / 2
	op.GeoM.Translate(pos.X-half, pos.Y-half)
	s.layer.DrawImage(s.hole, op)

	// 4. Inner ring
	vector.StrokeCircle(s.layer, px, py, inner, lineWidth, ColInner, true)

	dst.DrawImage(s.layer, nil)
}
