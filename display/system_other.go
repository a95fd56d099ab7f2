//go:build !windows

package display

import (
	"fmt"
)

// System is the operating system display provider. On this platform there
// is no supported way to read driver tables or display profiles, so every
// request fails with ErrNotAvailable.
type System struct{}

var _ Provider = System{}

func NewSystem() System { return System{} }

func (System) Displays() ([]Display, error) {
	return nil, fmt.Errorf("%w: display enumeration is not supported on this platform", ErrNotAvailable)
}

func (System) DriverTableSize(id ID) (int, error) {
	return 0, fmt.Errorf("%w: driver tables are not supported on this platform", ErrNotAvailable)
}

func (System) ReadDriverTable(id ID, dst []byte) (int, error) {
	return 0, fmt.Errorf("%w: driver tables are not supported on this platform", ErrNotAvailable)
}

func (System) OpenProfile(id ID) (ProfileHandle, error) {
	return nil, fmt.Errorf("%w: display profiles are not supported on this platform", ErrNotAvailable)
}
