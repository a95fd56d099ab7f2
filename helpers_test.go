package gammas

import (
	"encoding/binary"
	"testing"

	"github.com/kovidgoyal/gammas/display"
	"github.com/kovidgoyal/gammas/icc"
	"github.com/stretchr/testify/require"
)

func gamma_table_body(channels, entryCount, entrySize int, data []byte) []byte {
	ans := binary.BigEndian.AppendUint32(nil, display.VideoCardGammaTable)
	ans = binary.BigEndian.AppendUint16(ans, uint16(channels))
	ans = binary.BigEndian.AppendUint16(ans, uint16(entryCount))
	ans = binary.BigEndian.AppendUint16(ans, uint16(entrySize))
	return append(ans, data...)
}

func gamma_formula_body(gamma, min, max [NumChannels]Fixed) []byte {
	ans := binary.BigEndian.AppendUint32(nil, display.VideoCardGammaFormula)
	for t := range NumChannels {
		ans = binary.BigEndian.AppendUint32(ans, uint32(gamma[t]))
		ans = binary.BigEndian.AppendUint32(ans, uint32(min[t]))
		ans = binary.BigEndian.AppendUint32(ans, uint32(max[t]))
	}
	return ans
}

func vcgt_tag(body []byte) []byte {
	return append([]byte("vcgt\x00\x00\x00\x00"), body...)
}

// ndin_tag builds a native display info element. A nil table produces the
// 60 byte form without a sampled table.
func ndin_tag(gamma [NumChannels]Fixed, channels, entryCount, entrySize int, table []byte) []byte {
	words := make([]uint32, ndin_table_word)
	words[0] = uint32(icc.NativeDisplayInfoSignature)
	words[ndin_size_word] = 4 * ndin_header_words
	for t := range NumChannels {
		words[ndin_gamma_word+t] = uint32(gamma[t])
	}
	if table != nil {
		words[ndin_size_word] = uint32(4*ndin_table_word + 6 + len(table))
	}
	var ans []byte
	for _, w := range words {
		ans = binary.BigEndian.AppendUint32(ans, w)
	}
	if table == nil {
		return binary.BigEndian.AppendUint32(ans, 0)
	}
	ans = binary.BigEndian.AppendUint16(ans, uint16(channels))
	ans = binary.BigEndian.AppendUint16(ans, uint16(entryCount))
	ans = binary.BigEndian.AppendUint16(ans, uint16(entrySize))
	return append(ans, table...)
}

func ramp_of(f func(t, i int) uint16) *display.Ramp {
	var r display.Ramp
	for t := range r {
		for i := range r[t] {
			r[t][i] = f(t, i)
		}
	}
	return &r
}

func profile_with(t *testing.T, tags map[icc.Signature][]byte) *icc.Profile {
	t.Helper()
	p, err := icc.DecodeProfile(icc.EncodeProfile(tags))
	require.NoError(t, err)
	return p
}

func uniform(f Fixed) [NumChannels]Fixed { return [NumChannels]Fixed{f, f, f} }

// closeCounter tracks profile handles so tests can check every opened handle
// is released.
type closeCounter struct {
	display.Provider
	opened, closed int
}

type countedHandle struct {
	display.ProfileHandle
	owner *closeCounter
}

func (h countedHandle) Close() error {
	h.owner.closed++
	return h.ProfileHandle.Close()
}

func (c *closeCounter) OpenProfile(id display.ID) (display.ProfileHandle, error) {
	h, err := c.Provider.OpenProfile(id)
	if err != nil {
		return nil, err
	}
	c.opened++
	return countedHandle{h, c}, nil
}
