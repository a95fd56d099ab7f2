package gammas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/gammas/display"
)

var _ = fmt.Print

type renderConfig struct {
	scale      int
	background color.NRGBA
	label      bool
	caption    string
}

type RenderOption func(*renderConfig)

// WithScale multiplies the size of the plot, and the width of its lines, by
// s. Values below one are treated as one.
func WithScale(s int) RenderOption {
	return func(c *renderConfig) { c.scale = max(1, s) }
}

// WithBackground sets the color the plot area is cleared to. Defaults to
// opaque white.
func WithBackground(bg color.Color) RenderOption {
	return func(c *renderConfig) { c.background = color.NRGBAModel.Convert(bg).(color.NRGBA) }
}

// WithoutLabel suppresses the profile description line.
func WithoutLabel() RenderOption {
	return func(c *renderConfig) { c.label = false }
}

// WithCaption draws s along the bottom edge of the plot.
func WithCaption(s string) RenderOption {
	return func(c *renderConfig) { c.caption = s }
}

func new_render_config(opts []RenderOption) *renderConfig {
	ans := renderConfig{scale: 1, background: color.NRGBA{0xff, 0xff, 0xff, 0xff}, label: true}
	for _, o := range opts {
		o(&ans)
	}
	return &ans
}

func (cfg *renderConfig) side() int { return PlotSize * cfg.scale }

func (cfg *renderConfig) render_into(img *image.NRGBA, c *Curves) {
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.background), image.Point{}, draw.Src)
	if !cfg.label && c.Label != "" {
		cc := *c
		cc.Label = ""
		c = &cc
	}
	r := NewRaster(img, cfg.scale)
	Draw(r, c)
	if cfg.caption != "" {
		r.Text(text_x, PlotSize-text_x, Black, cfg.caption)
	}
}

// RenderPlot paints c into a new square image of side PlotSize times the
// scale.
func RenderPlot(c *Curves, opts ...RenderOption) *image.NRGBA {
	cfg := new_render_config(opts)
	s := cfg.side()
	img := image.NewNRGBA(image.Rect(0, 0, s, s))
	cfg.render_into(img, c)
	return img
}

// RenderSheet decodes the curves of every display from the source selected
// by m and lays out their plots left to right in a single image. Displays
// are decoded and painted in parallel, so p must be safe for concurrent
// use. A display whose curves cannot be decoded is shown as the identity
// and its error is included in the returned error, which does not
// invalidate the image.
func RenderSheet(p display.Provider, displays []display.Display, m Mode, opts ...RenderOption) (*image.NRGBA, error) {
	cfg := new_render_config(opts)
	s := cfg.side()
	img := image.NewNRGBA(image.Rect(0, 0, s*len(displays), s))
	if len(displays) == 0 {
		return img, nil
	}
	start := time.Now()
	errs := make([]error, len(displays))
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			d := displays[i]
			c, err := LoadOrDefault(p, d.ID, m)
			if err != nil {
				errs[i] = fmt.Errorf("display %d (%s): %w", d.ID, d.Name, err)
			}
			if c.Label == "" {
				c.Label = d.Name
			}
			cell := img.SubImage(image.Rect(i*s, 0, (i+1)*s, s)).(*image.NRGBA)
			cfg.render_into(cell, c)
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, len(displays)); err != nil {
		return nil, err
	}
	Logger().Debug("rendered sheet", "mode", m, "displays", len(displays), "elapsed", time.Since(start))
	return img, errors.Join(errs...)
}
