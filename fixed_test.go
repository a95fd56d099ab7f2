package gammas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedString(t *testing.T) {
	for _, tc := range []struct {
		f        Fixed
		expected string
	}{
		{FixedOne, "1.000"},
		{0x8000, "0.500"},
		{0x18000, "1.500"},
		{0x23333, "2.199"},
		{0, "0.000"},
		{0x28f, "0.009"},
		{FixedFromFloat(2.2), "2.199"},
		{100 * FixedOne, "100.000"},
		{-0x8000, "-0.500"},
		{-3 * FixedOne, "-3.000"},
	} {
		assert.Equal(t, tc.expected, tc.f.String(), "%#x", int32(tc.f))
	}
}

func TestFixedStringShape(t *testing.T) {
	for f := Fixed(-1 << 22); f < 1<<22; f += 997 {
		s := f.String()
		require.Equal(t, 1, strings.Count(s, "."), s)
		require.Len(t, s[strings.Index(s, ".")+1:], 3, s)
	}
}

func TestFixedFloat(t *testing.T) {
	assert.Equal(t, FixedOne, FixedFromFloat(1))
	assert.Equal(t, Fixed(0x8000), FixedFromFloat(0.5))
	assert.InDelta(t, 2.2, FixedFromFloat(2.2).Float64(), 1.0/65536)
}
