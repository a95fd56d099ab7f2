package gammas

import (
	"fmt"
)

// decode_table copies a packed sampled table into the buffer. Only the first
// byte of each entry is used, which for big endian 16 bit entries is the
// most significant byte. A single channel table is broadcast to all three
// channels. Tables with more than TableSize entries record their count but
// copy nothing.
func (c *Curves) decode_table(data []byte, channels, entryCount, entrySize int) error {
	c.Count = entryCount
	if entryCount > TableSize || entryCount == 0 {
		return nil
	}
	stride := entryCount * entrySize
	if channels == 1 {
		stride = 0
	}
	if last := stride*(NumChannels-1) + entrySize*(entryCount-1); last >= len(data) {
		return fmt.Errorf("%w: table of %d channels x %d entries x %d bytes needs %d bytes, have %d",
			ErrTruncated, channels, entryCount, entrySize, last+1, len(data))
	}
	for t := range NumChannels {
		base := stride * t
		for i := range entryCount {
			c.Table[t][i] = data[base+entrySize*i]
		}
	}
	return nil
}
