package gammas

import (
	"math"
	"strconv"
	"strings"
)

// Fixed is a signed 16.16 fixed point number.
type Fixed int32

const FixedOne Fixed = 0x00010000

func FixedFromFloat(f float64) Fixed { return Fixed(math.Round(f * float64(FixedOne))) }

func (f Fixed) Float64() float64 { return float64(f) / float64(FixedOne) }

// String formats f with three decimals, truncating rather than rounding,
// so 0x00018000 is "1.500" and 0x00023333 is "2.199".
func (f Fixed) String() string {
	n := (int64(f) * 1000) >> 16
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) < 4 {
		s = strings.Repeat("0", 4-len(s)) + s
	}
	return sign + s[:len(s)-3] + "." + s[len(s)-3:]
}
