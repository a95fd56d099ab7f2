// Package display defines the sources of raw curve data for connected
// displays and provides implementations backed by files and by the
// operating system.
package display

import (
	"errors"
	"fmt"
	"image"

	"github.com/kovidgoyal/gammas/icc"
)

var _ = fmt.Print

// ErrNotAvailable is returned when a display has no driver table, no
// profile or the profile lacks the requested tag.
var ErrNotAvailable = errors.New("not available")

// ID is an opaque display identifier.
type ID uint32

type Display struct {
	ID     ID
	Name   string
	Bounds image.Rectangle
}

type Enumerator interface {
	Displays() ([]Display, error)
}

// DriverTableProvider reads the correction table currently loaded into the
// display driver, in video card gamma layout (see EncodeRamp).
type DriverTableProvider interface {
	DriverTableSize(id ID) (int, error)
	ReadDriverTable(id ID, dst []byte) (int, error)
}

// ProfileHandle gives access to the active color profile of a display. It
// must be closed once the caller is done with it.
type ProfileHandle interface {
	Description() (string, error)
	TagSize(sig icc.Signature) (int, error)
	ReadTag(sig icc.Signature, dst []byte) (int, error)
	Close() error
}

type ProfileProvider interface {
	OpenProfile(id ID) (ProfileHandle, error)
}

type Provider interface {
	Enumerator
	DriverTableProvider
	ProfileProvider
}

var _ ProfileHandle = (*icc.Profile)(nil)
var _ ProfileHandle = (*profileHandle)(nil)

// profileHandle maps missing tags to ErrNotAvailable.
type profileHandle struct {
	*icc.Profile
}

func (h profileHandle) TagSize(sig icc.Signature) (int, error) {
	n, err := h.Profile.TagSize(sig)
	if errors.Is(err, icc.ErrNoSuchTag) {
		err = fmt.Errorf("%w: %w", ErrNotAvailable, err)
	}
	return n, err
}

func (h profileHandle) ReadTag(sig icc.Signature, dst []byte) (int, error) {
	n, err := h.Profile.ReadTag(sig, dst)
	if errors.Is(err, icc.ErrNoSuchTag) {
		err = fmt.Errorf("%w: %w", ErrNotAvailable, err)
	}
	return n, err
}

// NewProfileHandle wraps an in memory profile as a ProfileHandle.
func NewProfileHandle(p *icc.Profile) ProfileHandle {
	return profileHandle{p}
}
