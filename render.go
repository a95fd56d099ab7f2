package gammas

import (
	"image/color"
)

type Color uint8

const (
	Black Color = iota
	Red
	Green
	Blue
)

var channel_colors = [NumChannels]Color{Red, Green, Blue}

func (c Color) NRGBA() color.NRGBA {
	switch c {
	case Red:
		return color.NRGBA{R: 0xdd, G: 0x08, B: 0x06, A: 0xff}
	case Green:
		return color.NRGBA{R: 0x00, G: 0x80, B: 0x11, A: 0xff}
	case Blue:
		return color.NRGBA{R: 0x00, G: 0x00, B: 0xd4, A: 0xff}
	default:
		return color.NRGBA{A: 0xff}
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "black"
	}
}

// Canvas receives the drawing commands of the renderer, in plot
// coordinates with the origin at the top left.
type Canvas interface {
	Text(x, y int, c Color, s string)
	Line(x0, y0, x1, y1 int, c Color)
}

// PlotSize is the width and height of the plot area.
const PlotSize = 256

const (
	text_x      = 5
	text_y      = 15
	line_height = 15
)

// Draw renders the label, the gamma values and the three curves of c.
func Draw(dst Canvas, c *Curves) {
	y := text_y
	if c.Label != "" {
		dst.Text(text_x, y, Black, c.Label)
	}
	y += line_height
	if c.HasGamma() {
		if c.UniformGamma() {
			dst.Text(text_x, y, Black, c.Gamma[0].String())
		} else {
			for t, g := range c.Gamma {
				dst.Text(text_x, y, channel_colors[t], g.String())
				y += line_height
			}
		}
	}
	draw_curves(dst, c)
}

// draw_curves connects successive samples of each channel. Where channels
// coincide a single black segment is drawn, so only diverging channels show
// in color.
func draw_curves(dst Canvas, c *Curves) {
	const last = PlotSize - 1
	lx, ly := 0, [NumChannels]int{last, last, last}
	segment := func(x int, y [NumChannels]int, t int, col Color) {
		dst.Line(lx, ly[t], x, y[t], col)
	}
	for i := range c.Count {
		x := 0
		if c.Count > 1 {
			x = i * last / (c.Count - 1)
		}
		var y [NumChannels]int
		for t := range y {
			y[t] = last - int(c.Sample(t, i))
		}
		switch {
		case y[0] == y[1] && y[1] == y[2]:
			segment(x, y, 0, Black)
		case y[0] == y[1]:
			segment(x, y, 0, Black)
			segment(x, y, 2, channel_colors[2])
		case y[1] == y[2]:
			segment(x, y, 1, Black)
			segment(x, y, 0, channel_colors[0])
		case y[0] == y[2]:
			segment(x, y, 0, Black)
			segment(x, y, 1, channel_colors[1])
		default:
			for t := range NumChannels {
				segment(x, y, t, channel_colors[t])
			}
		}
		lx, ly = x, y
	}
}
