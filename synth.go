package gammas

import (
	"math"
)

// Values that cannot be represented in an int64 are stored as zero, anything
// else wraps to the 8 bit sample width.
const max_representable = 1 << 53

func synthesize_sample(v, m, g float64) uint8 {
	d := math.Pow(v, g)*m*255 + 0.5
	if math.IsNaN(d) || math.Abs(d) >= max_representable {
		return 0
	}
	return uint8(int64(d))
}

// Synthesize fills every channel of the table from its Max and Gamma
// parameters and sets Count to TableSize.
func (c *Curves) Synthesize() {
	for t := range NumChannels {
		m, g := c.Max[t].Float64(), c.Gamma[t].Float64()
		for i := range TableSize {
			c.Table[t][i] = synthesize_sample(float64(i)/255, m, g)
		}
	}
	c.Count = TableSize
}
