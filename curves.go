package gammas

import (
	"fmt"
)

const (
	NumChannels = 3
	TableSize   = 256
)

// Curves is the normalized response of the three channels of one display as
// read from one source. Either Table holds Count samples per channel, or
// Count is zero and Max/Gamma describe each channel as out = in^Gamma * Max.
type Curves struct {
	Table [NumChannels][TableSize]uint8
	// Number of valid samples per channel. Values above TableSize mean the
	// source table was too large to be represented and Table was left
	// untouched.
	Count int
	Max   [NumChannels]Fixed
	// Only populated by formula based video card tables, informational.
	Min   [NumChannels]Fixed
	Gamma [NumChannels]Fixed
	// Profile description, empty for driver tables
	Label string
}

// Sample returns the sample for channel t at index i, samples outside the
// table read as zero.
func (c *Curves) Sample(t, i int) uint8 {
	if i < 0 || i >= TableSize {
		return 0
	}
	return c.Table[t][i]
}

// Overflowed reports whether the source table had more entries than can
// be stored.
func (c *Curves) Overflowed() bool { return c.Count > TableSize }

// HasGamma reports whether every channel carries a gamma exponent.
func (c *Curves) HasGamma() bool {
	return c.Gamma[0] != 0 && c.Gamma[1] != 0 && c.Gamma[2] != 0
}

// UniformGamma reports whether all three channels share one gamma exponent.
func (c *Curves) UniformGamma() bool {
	return c.Gamma[0] == c.Gamma[1] && c.Gamma[1] == c.Gamma[2]
}

func (c *Curves) String() string {
	return fmt.Sprintf("Curves{label: %q count: %d max: %v gamma: %v}", c.Label, c.Count, c.Max, c.Gamma)
}

// IdentityCurves returns the buffer substituted when a source cannot be
// decoded. Synthesizing it produces the diagonal.
func IdentityCurves() *Curves {
	return &Curves{
		Max:   [NumChannels]Fixed{FixedOne, FixedOne, FixedOne},
		Gamma: [NumChannels]Fixed{FixedOne, FixedOne, FixedOne},
	}
}

func (c *Curves) set_identity_table(t int) {
	for i := range TableSize {
		c.Table[t][i] = uint8(i)
	}
}
