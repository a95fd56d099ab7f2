package gammas

import (
	"fmt"

	"github.com/kovidgoyal/gammas/display"
	"github.com/kovidgoyal/gammas/icc"
)

type profileCorrectionDecoder struct {
	src display.ProfileProvider
}

func (profileCorrectionDecoder) Mode() Mode { return ProfileCorrection }
func (profileCorrectionDecoder) decoder()   {}

// Decode reads the 'vcgt' tag: the tag type signature, four reserved bytes
// and then a video card gamma body.
func (d profileCorrectionDecoder) Decode(id display.ID) (*Curves, error) {
	c := &Curves{}
	err := with_profile(d.src, id, c, func(h display.ProfileHandle) error {
		data, err := read_tag(h, icc.VideoCardGammaTagSignature)
		if err != nil {
			return err
		}
		if err = check_signature(data, icc.VideoCardGammaTagSignature); err != nil {
			return err
		}
		if len(data) < 8 {
			return fmt.Errorf("%w: vcgt tag of %d bytes", ErrTruncated, len(data))
		}
		return c.decode_gamma_body(data[8:])
	})
	if err != nil {
		return nil, fmt.Errorf("display %d profile correction: %w", id, err)
	}
	return c, nil
}
