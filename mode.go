package gammas

import (
	"fmt"
	"strings"
	"time"

	"github.com/kovidgoyal/gammas/display"
)

// Mode selects which source of curves is shown.
type Mode int

const (
	// The correction table currently loaded into the display driver
	DriverTable Mode = iota
	// The rTRC/gTRC/bTRC tags of the display profile: the combined response
	// of display and video card
	ProfileResponse
	// The vcgt tag of the display profile: the correction needed for the
	// native response to appear as the target response
	ProfileCorrection
	// The ndin tag of the display profile: the native response of the
	// display with a linear video card table
	NativeResponse
)

var Modes = []Mode{DriverTable, ProfileResponse, ProfileCorrection, NativeResponse}

var mode_names = map[Mode]string{
	DriverTable:       "lut",
	ProfileResponse:   "trc",
	ProfileCorrection: "vcgt",
	NativeResponse:    "ndin",
}

func (m Mode) String() string {
	if ans, ok := mode_names[m]; ok {
		return ans
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Title is the human readable name of the source.
func (m Mode) Title() string {
	switch m {
	case DriverTable:
		return "Video Card Table"
	case ProfileResponse:
		return "Profile TRC Tags"
	case ProfileCorrection:
		return "Profile vcgt Tag"
	case NativeResponse:
		return "Profile ndin Tag"
	default:
		return "Unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range mode_names {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Decoder returns the decoder for m reading from p.
func (m Mode) Decoder(p display.Provider) (Decoder, error) {
	switch m {
	case DriverTable:
		return driverTableDecoder{p}, nil
	case ProfileResponse:
		return profileResponseDecoder{p}, nil
	case ProfileCorrection:
		return profileCorrectionDecoder{p}, nil
	case NativeResponse:
		return nativeResponseDecoder{p}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
}

// Load decodes the curves of the display from the source selected by m,
// synthesizing the table from the gamma formula when the source has no
// sampled table.
func Load(p display.Provider, id display.ID, m Mode) (*Curves, error) {
	d, err := m.Decoder(p)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	c, err := d.Decode(id)
	if err != nil {
		return nil, err
	}
	if c.Count == 0 {
		c.Synthesize()
	}
	Logger().Debug("decoded curves", "display", id, "mode", m, "count", c.Count, "label", c.Label, "elapsed", time.Since(start))
	return c, nil
}

// LoadOrDefault is like Load but never fails to produce curves: when the
// source cannot be decoded the failure is logged and returned alongside the
// synthesized identity curves.
func LoadOrDefault(p display.Provider, id display.ID, m Mode) (*Curves, error) {
	c, err := Load(p, id, m)
	if err != nil {
		Logger().Warn("cannot decode curves, showing identity", "display", id, "mode", m, "err", err)
		c = IdentityCurves()
		c.Synthesize()
	}
	return c, err
}
