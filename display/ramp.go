package display

import (
	"encoding/binary"
	"fmt"
)

// Type codes of a video card gamma body, as used by driver tables and by the
// 'vcgt' profile tag.
const (
	VideoCardGammaTable   uint32 = 0
	VideoCardGammaFormula uint32 = 1
)

// Ramp is a 16 bit per entry gamma ramp as loaded into most graphics
// hardware, indexed by channel then input value.
type Ramp [3][256]uint16

const RampBlobSize = 4 + 3*2 + 3*256*2

// EncodeRamp converts r into a video card gamma table body: a big endian
// u32 type code followed by u16 channel count, entry count and entry size
// and then the packed entries channel by channel.
func EncodeRamp(r *Ramp) []byte {
	ans := make([]byte, 0, RampBlobSize)
	ans = binary.BigEndian.AppendUint32(ans, VideoCardGammaTable)
	ans = binary.BigEndian.AppendUint16(ans, uint16(len(r)))
	ans = binary.BigEndian.AppendUint16(ans, uint16(len(r[0])))
	ans = binary.BigEndian.AppendUint16(ans, 2)
	for _, channel := range r {
		for _, v := range channel {
			ans = binary.BigEndian.AppendUint16(ans, v)
		}
	}
	return ans
}

// DecodeRamp parses a raw ramp dump, 768 big endian u16 values.
func DecodeRamp(data []byte) (*Ramp, error) {
	var r Ramp
	if n, err := binary.Decode(data, binary.BigEndian, &r); err != nil {
		return nil, fmt.Errorf("invalid gamma ramp of %d bytes: %w", len(data), err)
	} else if n != len(data) {
		return nil, fmt.Errorf("invalid gamma ramp: %d trailing bytes", len(data)-n)
	}
	return &r, nil
}

// LinearRamp returns the identity ramp.
func LinearRamp() *Ramp {
	var r Ramp
	for t := range r {
		for i := range r[t] {
			r[t][i] = uint16(i) * 0x101
		}
	}
	return &r
}
