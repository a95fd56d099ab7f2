package icc

import (
	"bytes"
	"encoding/binary"
	"slices"
	"unicode/utf16"
)

// EncodeProfile serializes a display class RGB profile containing the
// specified tag elements. Tags are laid out in signature order, each aligned
// to four bytes.
func EncodeProfile(tags map[Signature][]byte) []byte {
	sigs := make([]Signature, 0, len(tags))
	for sig := range tags {
		sigs = append(sigs, sig)
	}
	slices.Sort(sigs)

	table, data := &bytes.Buffer{}, &bytes.Buffer{}
	offset := HeaderSize + 4 + 12*len(sigs)
	_ = binary.Write(table, binary.BigEndian, uint32(len(sigs)))
	for _, sig := range sigs {
		tag := tags[sig]
		_ = binary.Write(table, binary.BigEndian, [3]uint32{uint32(sig), uint32(offset), uint32(len(tag))})
		data.Write(tag)
		if extra := len(tag) % 4; extra != 0 {
			data.Write(make([]byte, 4-extra))
		}
		offset += align_to_4(len(tag))
	}
	h := Header{
		ProfileSize:       uint32(offset),
		Version:           0x02100000,
		DeviceClass:       DisplayClassSignature,
		DataColorSpace:    RGBSpaceSignature,
		ProfileConnection: XYZSpaceSignature,
		FileSignature:     ProfileFileSignature,
		PCSIlluminant:     [3]int32{0xf6d6, 0x10000, 0xd32d},
	}
	ans := h.encode()
	ans = append(ans, table.Bytes()...)
	return append(ans, data.Bytes()...)
}

// EncodeTextDescription serializes a v2 'desc' element holding s.
func EncodeTextDescription(s string) []byte {
	b := bytes.NewBuffer([]byte("desc\x00\x00\x00\x00"))
	_ = binary.Write(b, binary.BigEndian, uint32(len(s)+1))
	b.WriteString(s)
	b.WriteByte(0)
	// empty unicode and scriptcode sections
	b.Write(make([]byte, 4+4+2+1+67))
	return b.Bytes()
}

// EncodeMultiLocalisedUnicode serializes a v4 'mluc' element with a single
// en_US record.
func EncodeMultiLocalisedUnicode(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := bytes.NewBuffer([]byte("mluc\x00\x00\x00\x00"))
	_ = binary.Write(b, binary.BigEndian, [2]uint32{1, 12})
	b.WriteString("enUS")
	_ = binary.Write(b, binary.BigEndian, [2]uint32{uint32(2 * len(units)), 28})
	_ = binary.Write(b, binary.BigEndian, units)
	return b.Bytes()
}

// EncodeCurve serializes a 'curv' element with the specified entries.
func EncodeCurve(entries ...uint16) []byte {
	b := bytes.NewBuffer([]byte("curv\x00\x00\x00\x00"))
	_ = binary.Write(b, binary.BigEndian, uint32(len(entries)))
	_ = binary.Write(b, binary.BigEndian, entries)
	return b.Bytes()
}

func align_to_4(x int) int {
	if extra := x % 4; extra > 0 {
		x += 4 - extra
	}
	return x
}
