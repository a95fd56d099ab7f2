package gammas

import (
	"encoding/binary"
	"fmt"

	"github.com/kovidgoyal/gammas/display"
	"github.com/kovidgoyal/gammas/icc"
)

// Layout of the 'ndin' tag as big endian 32 bit words
const (
	ndin_size_word      = 2
	ndin_gamma_word     = 11
	ndin_table_word     = 14
	ndin_min_with_table = 48
	ndin_header_words   = ndin_table_word + 1
)

type nativeResponseDecoder struct {
	src display.ProfileProvider
}

func (nativeResponseDecoder) Mode() Mode { return NativeResponse }
func (nativeResponseDecoder) decoder()   {}

func (c *Curves) decode_ndin(data []byte) error {
	if err := check_signature(data, icc.NativeDisplayInfoSignature); err != nil {
		return err
	}
	if len(data) < 4*ndin_header_words {
		return fmt.Errorf("%w: ndin tag of %d bytes", ErrTruncated, len(data))
	}
	word := func(i int) uint32 { return binary.BigEndian.Uint32(data[4*i:]) }
	for t := range NumChannels {
		c.Max[t] = FixedOne
		c.Gamma[t] = Fixed(word(ndin_gamma_word + t))
	}
	if word(ndin_size_word) > ndin_min_with_table && word(ndin_table_word) != 0 {
		sub := data[4*ndin_table_word:]
		if len(sub) < 6 {
			return fmt.Errorf("%w: ndin table header", ErrTruncated)
		}
		channels := int(binary.BigEndian.Uint16(sub[0:2]))
		entryCount := int(binary.BigEndian.Uint16(sub[2:4]))
		entrySize := int(binary.BigEndian.Uint16(sub[4:6]))
		return c.decode_table(sub[6:], channels, entryCount, entrySize)
	}
	return nil
}

func (d nativeResponseDecoder) Decode(id display.ID) (*Curves, error) {
	c := &Curves{}
	err := with_profile(d.src, id, c, func(h display.ProfileHandle) error {
		data, err := read_tag(h, icc.NativeDisplayInfoSignature)
		if err != nil {
			return err
		}
		return c.decode_ndin(data)
	})
	if err != nil {
		return nil, fmt.Errorf("display %d native response: %w", id, err)
	}
	return c, nil
}
