package icc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type TextDescription struct {
	ASCII string
}

func parseTextDescription(data []byte) (TextDescription, error) {
	desc := TextDescription{}
	var b [3]uint32
	if n, err := binary.Decode(data, binary.BigEndian, b[:]); err != nil {
		return desc, err
	} else {
		data = data[n:]
	}

	if s := Signature(b[0]); s != DescSignature {
		return desc, fmt.Errorf("expected %v but got %v", DescSignature, s)
	}
	asciiCount := b[2]
	if uint64(asciiCount) > uint64(len(data)) {
		return desc, fmt.Errorf("desc tag truncated: need %d ASCII bytes, have %d", asciiCount, len(data))
	}

	if asciiCount > 1 {
		desc.ASCII = string(data[:asciiCount-1]) // skip terminating null
	}

	return desc, nil
}

// parseText decodes a 'text' type element, which some v2 display profiles
// use for their description.
func parseText(data []byte) string {
	if len(data) < 8 {
		return ""
	}
	return string(bytes.TrimRight(data[8:], "\x00 "))
}
