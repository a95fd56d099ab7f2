package gammas

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/kettek/apng"
	"github.com/kovidgoyal/gammas/display"
)

var _ = fmt.Print

// DefaultFrameDelay is how long each mode is shown in an animation, the same
// interval the live view redraws at.
const DefaultFrameDelay = 2 * time.Second

// EncodeModeAnimation writes a looping APNG to w with one frame per Mode,
// in the order of Modes, each captioned with the mode title. Modes whose
// curves cannot be decoded show the identity. A delay <= 0 means
// DefaultFrameDelay.
func EncodeModeAnimation(w io.Writer, p display.Provider, id display.ID, delay time.Duration, opts ...RenderOption) error {
	if delay <= 0 {
		delay = DefaultFrameDelay
	}
	num, den := as_fraction(delay)
	anim := apng.APNG{Frames: make([]apng.Frame, 0, len(Modes))}
	for _, m := range Modes {
		c, _ := LoadOrDefault(p, id, m)
		img := RenderPlot(c, append(opts[:len(opts):len(opts)], WithCaption(m.Title()))...)
		anim.Frames = append(anim.Frames, apng.Frame{
			Image: img, DelayNumerator: num, DelayDenominator: den,
			DisposeOp: apng.DISPOSE_OP_NONE, BlendOp: apng.BLEND_OP_SOURCE,
		})
	}
	return apng.Encode(w, anim)
}

// as_fraction converts d to the closest number of seconds expressible as a
// ratio of two uint16 values, using continued fraction convergents.
func as_fraction(d time.Duration) (num, den uint16) {
	if d <= 0 {
		return 0, 1
	}
	val := d.Seconds()
	if val >= math.MaxUint16 {
		return math.MaxUint16, 1
	}
	num, den = 0, 1
	best := val
	var h, k [3]int64
	h[0], k[0] = 0, 1
	h[1], k[1] = 1, 0
	f := val
	for range 100 {
		a := int64(f)
		h[2] = a*h[1] + h[0]
		k[2] = a*k[1] + k[0]
		if h[2] > math.MaxUint16 || k[2] > math.MaxUint16 {
			break
		}
		if e := math.Abs(val - float64(h[2])/float64(k[2])); e < best {
			best, num, den = e, uint16(h[2]), uint16(k[2])
		}
		if f-float64(a) == 0 {
			break
		}
		f = 1 / (f - float64(a))
		h[0], h[1] = h[1], h[2]
		k[0], k[1] = k[1], k[2]
	}
	return
}
