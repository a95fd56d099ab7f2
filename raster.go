package gammas

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster is a Canvas painting anti-aliased lines and bitmap text into an
// image. Plot coordinates are multiplied by the scale factor and offset by
// the origin of the image bounds.
type Raster struct {
	dst   *image.NRGBA
	scale int
	width float32
	face  font.Face
	z     vector.Rasterizer
}

var _ Canvas = (*Raster)(nil)

func NewRaster(dst *image.NRGBA, scale int) *Raster {
	scale = max(1, scale)
	return &Raster{dst: dst, scale: scale, width: float32(scale), face: basicfont.Face7x13}
}

func (r *Raster) point(x, y int) (float32, float32) {
	s := float32(r.scale)
	return (float32(x) + 0.5) * s, (float32(y) + 0.5) * s
}

func (r *Raster) Line(x0, y0, x1, y1 int, c Color) {
	ax, ay := r.point(x0, y0)
	bx, by := r.point(x1, y1)
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		dx, dy, length = 1, 0, 1
	}
	hw := r.width / 2
	// unit direction scaled to the half width gives square caps, its
	// perpendicular gives the stroke edges
	ex, ey := dx/length*hw, dy/length*hw
	nx, ny := -ey, ex
	quad := [4][2]float32{
		{ax - ex + nx, ay - ey + ny},
		{bx + ex + nx, by + ey + ny},
		{bx + ex - nx, by + ey - ny},
		{ax - ex - nx, ay - ey - ny},
	}
	b := r.dst.Bounds()
	minx, miny := float32(b.Dx()), float32(b.Dy())
	var maxx, maxy float32
	for _, p := range quad {
		minx, maxx = min(minx, p[0]), max(maxx, p[0])
		miny, maxy = min(miny, p[1]), max(maxy, p[1])
	}
	left, top := max(0, int(math.Floor(float64(minx)))), max(0, int(math.Floor(float64(miny))))
	right, bottom := min(b.Dx(), int(math.Ceil(float64(maxx)))), min(b.Dy(), int(math.Ceil(float64(maxy))))
	if right <= left || bottom <= top {
		return
	}
	r.z.Reset(right-left, bottom-top)
	ox, oy := float32(left), float32(top)
	r.z.MoveTo(quad[0][0]-ox, quad[0][1]-oy)
	for _, p := range quad[1:] {
		r.z.LineTo(p[0]-ox, p[1]-oy)
	}
	r.z.ClosePath()
	target := image.Rect(b.Min.X+left, b.Min.Y+top, b.Min.X+right, b.Min.Y+bottom)
	r.z.Draw(r.dst, target, image.NewUniform(c.NRGBA()), image.Point{})
}

func (r *Raster) Text(x, y int, c Color, s string) {
	b := r.dst.Bounds()
	d := font.Drawer{
		Dst:  r.dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: r.face,
		Dot:  fixed.P(b.Min.X+x*r.scale, b.Min.Y+y*r.scale),
	}
	d.DrawString(s)
}
