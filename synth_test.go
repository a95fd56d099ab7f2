package gammas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeIdentity(t *testing.T) {
	c := IdentityCurves()
	c.Synthesize()
	require.Equal(t, TableSize, c.Count)
	for ch := range NumChannels {
		for i := range TableSize {
			assert.InDelta(t, i, int(c.Table[ch][i]), 1, "channel %d index %d", ch, i)
		}
	}
}

func TestSynthesizeMonotonic(t *testing.T) {
	for _, g := range []float64{0.45, 1.8, 2.2, 3} {
		c := Curves{Max: uniform(FixedOne), Gamma: uniform(FixedFromFloat(g))}
		c.Synthesize()
		for ch := range NumChannels {
			for i := 1; i < TableSize; i++ {
				require.LessOrEqual(t, c.Table[ch][i-1], c.Table[ch][i], "gamma %v channel %d index %d", g, ch, i)
			}
		}
		assert.Equal(t, uint8(0), c.Table[0][0])
		assert.Equal(t, uint8(255), c.Table[0][255])
	}
}

func TestSynthesizeChannelsIndependent(t *testing.T) {
	c := Curves{
		Max:   [NumChannels]Fixed{FixedOne, 0x8000, FixedOne},
		Gamma: [NumChannels]Fixed{FixedOne, FixedOne, FixedFromFloat(2)},
	}
	c.Synthesize()
	assert.Equal(t, uint8(255), c.Table[0][255])
	assert.Equal(t, uint8(128), c.Table[1][255])
	assert.Equal(t, uint8(64), c.Table[2][128])
}

func TestSynthesizeSample(t *testing.T) {
	assert.Equal(t, uint8(0), synthesize_sample(0, 1, -1), "infinite")
	assert.Equal(t, uint8(0), synthesize_sample(-1, 1, 0.5), "NaN")
	assert.Equal(t, uint8(0), synthesize_sample(1, math.Inf(1), 1), "infinite max")
	// out of range values wrap to the sample width
	assert.Equal(t, uint8(254), synthesize_sample(1, 2, 1))
	assert.Equal(t, uint8(255), synthesize_sample(0, 1, 0))
}
