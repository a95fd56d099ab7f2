package gammas

import (
	"encoding/binary"
	"fmt"

	"github.com/kovidgoyal/gammas/display"
	"github.com/kovidgoyal/gammas/icc"
)

// Decoder produces the curves of one source for a display. The set of
// decoders is closed, one per Mode.
type Decoder interface {
	Mode() Mode
	Decode(id display.ID) (*Curves, error)
	decoder()
}

func allocate(size int) ([]byte, error) {
	if size <= 0 || size > MaxBlobSize {
		return nil, fmt.Errorf("%w of %d bytes", ErrAllocation, size)
	}
	return make([]byte, size), nil
}

func read_tag(h display.ProfileHandle, sig icc.Signature) ([]byte, error) {
	size, err := h.TagSize(sig)
	if err != nil {
		return nil, err
	}
	buf, err := allocate(size)
	if err != nil {
		return nil, fmt.Errorf("tag %v: %w", sig, err)
	}
	n, err := h.ReadTag(sig, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func check_signature(data []byte, expected icc.Signature) error {
	if len(data) < 4 {
		return fmt.Errorf("%w: %v tag of %d bytes", ErrTruncated, expected, len(data))
	}
	if s := icc.Signature(binary.BigEndian.Uint32(data)); s != expected {
		return fmt.Errorf("%w: expected %v but got %v", ErrSignatureMismatch, expected, s)
	}
	return nil
}

// with_profile opens the profile of the display, fills in the label and
// runs f, closing the profile on every path.
func with_profile(p display.ProfileProvider, id display.ID, c *Curves, f func(display.ProfileHandle) error) (err error) {
	h, err := p.OpenProfile(id)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := h.Close(); err == nil {
			err = cerr
		}
	}()
	if label, derr := h.Description(); derr == nil {
		c.Label = label
	}
	return f(h)
}

// decode_gamma_body decodes the video card gamma layout shared by driver
// tables and the 'vcgt' tag. Unknown type codes leave c untouched.
func (c *Curves) decode_gamma_body(body []byte) error {
	if len(body) < 4 {
		return fmt.Errorf("%w: video card gamma of %d bytes", ErrTruncated, len(body))
	}
	switch binary.BigEndian.Uint32(body) {
	case display.VideoCardGammaFormula:
		const size = 4 + NumChannels*3*4
		if len(body) < size {
			return fmt.Errorf("%w: video card gamma formula needs %d bytes, have %d", ErrTruncated, size, len(body))
		}
		p := body[4:]
		for t := range NumChannels {
			c.Gamma[t] = Fixed(binary.BigEndian.Uint32(p[0:4]))
			c.Min[t] = Fixed(binary.BigEndian.Uint32(p[4:8]))
			c.Max[t] = Fixed(binary.BigEndian.Uint32(p[8:12]))
			p = p[12:]
		}
	case display.VideoCardGammaTable:
		if len(body) < 10 {
			return fmt.Errorf("%w: video card gamma table header of %d bytes", ErrTruncated, len(body))
		}
		channels := int(binary.BigEndian.Uint16(body[4:6]))
		entryCount := int(binary.BigEndian.Uint16(body[6:8]))
		entrySize := int(binary.BigEndian.Uint16(body[8:10]))
		return c.decode_table(body[10:], channels, entryCount, entrySize)
	}
	return nil
}
