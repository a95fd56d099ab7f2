package gammas

import (
	"encoding/binary"
	"fmt"

	"github.com/kovidgoyal/gammas/display"
	"github.com/kovidgoyal/gammas/icc"
)

type profileResponseDecoder struct {
	src display.ProfileProvider
}

func (profileResponseDecoder) Mode() Mode { return ProfileResponse }
func (profileResponseDecoder) decoder()   {}

// decode_curve handles one 'curv' element. An empty curve is linear, a
// single entry is a u8.8 gamma exponent. Sampled curves of arbitrary length
// are not resampled, the channel is shown as the identity instead.
func (c *Curves) decode_curve(t int, data []byte) error {
	if err := check_signature(data, icc.CurveTypeSignature); err != nil {
		return err
	}
	if len(data) < 12 {
		return fmt.Errorf("%w: curv tag of %d bytes", ErrTruncated, len(data))
	}
	count := binary.BigEndian.Uint32(data[8:12])
	c.Max[t], c.Gamma[t] = FixedOne, FixedOne
	switch count {
	case 0:
	case 1:
		if len(data) < 14 {
			return fmt.Errorf("%w: curv tag missing gamma value", ErrTruncated)
		}
		c.Gamma[t] = Fixed(binary.BigEndian.Uint16(data[12:14])) << 8
	default:
		c.set_identity_table(t)
	}
	return nil
}

func (d profileResponseDecoder) Decode(id display.ID) (*Curves, error) {
	c := &Curves{}
	err := with_profile(d.src, id, c, func(h display.ProfileHandle) error {
		for t, sig := range icc.TRCTagSignatures {
			data, err := read_tag(h, sig)
			if err != nil {
				return err
			}
			if err = c.decode_curve(t, data); err != nil {
				return fmt.Errorf("%v: %w", sig, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("display %d profile response: %w", id, err)
	}
	return c, nil
}
