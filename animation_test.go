package gammas

import (
	"bytes"
	"image"
	"testing"
	"time"

	"github.com/kettek/apng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeModeAnimation(t *testing.T) {
	p, _ := sheet_provider(t)
	buf := bytes.Buffer{}
	require.NoError(t, EncodeModeAnimation(&buf, p, 3, 1500*time.Millisecond, WithScale(2)))
	anim, err := apng.DecodeAll(&buf)
	require.NoError(t, err)
	var frames []apng.Frame
	for _, f := range anim.Frames {
		if !f.IsDefault {
			frames = append(frames, f)
		}
	}
	require.Len(t, frames, len(Modes))
	for _, f := range frames {
		assert.Equal(t, image.Rect(0, 0, 2*PlotSize, 2*PlotSize), f.Image.Bounds())
		assert.InDelta(t, 1.5, f.GetDelay(), 0.001)
	}
}

func TestAsFraction(t *testing.T) {
	for _, tc := range []struct {
		d        time.Duration
		num, den uint16
	}{
		{0, 0, 1},
		{2 * time.Second, 2, 1},
		{1500 * time.Millisecond, 3, 2},
		{40 * time.Millisecond, 1, 25},
		{100000 * time.Second, 65535, 1},
	} {
		num, den := as_fraction(tc.d)
		assert.Equal(t, [2]uint16{tc.num, tc.den}, [2]uint16{num, den}, "%v", tc.d)
	}
}
