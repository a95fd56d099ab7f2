package display

import (
	"fmt"
	"os"

	"github.com/kovidgoyal/gammas/icc"
)

// Source supplies the data of one display of a Static provider. Either
// loader may be nil, meaning the display has no such data. Loaders are
// called afresh on every request so that changes to the underlying data are
// picked up.
type Source struct {
	Display     Display
	Profile     func() (*icc.Profile, error)
	DriverTable func() ([]byte, error)
}

// Static is a Provider serving a fixed set of displays. It is safe for
// concurrent use as long as the loaders of its sources are.
type Static struct {
	sources []Source
	by_id   map[ID]int
}

var _ Provider = (*Static)(nil)

func NewStatic(sources ...Source) *Static {
	ans := &Static{sources: sources, by_id: make(map[ID]int, len(sources))}
	for i, s := range sources {
		ans.by_id[s.Display.ID] = i
	}
	return ans
}

// ProfileValue returns a profile loader that always yields p.
func ProfileValue(p *icc.Profile) func() (*icc.Profile, error) {
	return func() (*icc.Profile, error) { return p, nil }
}

// BytesValue returns a driver table loader that always yields a copy of b.
func BytesValue(b []byte) func() ([]byte, error) {
	return func() ([]byte, error) { return append([]byte(nil), b...), nil }
}

// FromConfig builds a file backed Static provider.
func FromConfig(c *Config) *Static {
	sources := make([]Source, len(c.Displays))
	for i, dc := range c.Displays {
		s := Source{Display: dc.Display()}
		if dc.Profile != "" {
			path := dc.Profile
			s.Profile = func() (*icc.Profile, error) { return LoadProfileFile(path) }
		}
		switch {
		case dc.DriverTable != "":
			path := dc.DriverTable
			s.DriverTable = func() ([]byte, error) { return os.ReadFile(path) }
		case dc.Ramp != "":
			path := dc.Ramp
			s.DriverTable = func() ([]byte, error) {
				data, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				r, err := DecodeRamp(data)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
				return EncodeRamp(r), nil
			}
		}
		sources[i] = s
	}
	return NewStatic(sources...)
}

func (s *Static) Displays() ([]Display, error) {
	ans := make([]Display, len(s.sources))
	for i, src := range s.sources {
		ans[i] = src.Display
	}
	return ans, nil
}

func (s *Static) source(id ID) (*Source, error) {
	idx, ok := s.by_id[id]
	if !ok {
		return nil, fmt.Errorf("%w: unknown display %d", ErrNotAvailable, id)
	}
	return &s.sources[idx], nil
}

func (s *Static) driver_table(id ID) ([]byte, error) {
	src, err := s.source(id)
	if err != nil {
		return nil, err
	}
	if src.DriverTable == nil {
		return nil, fmt.Errorf("%w: display %d has no driver table", ErrNotAvailable, id)
	}
	return src.DriverTable()
}

func (s *Static) DriverTableSize(id ID) (int, error) {
	data, err := s.driver_table(id)
	return len(data), err
}

func (s *Static) ReadDriverTable(id ID, dst []byte) (int, error) {
	data, err := s.driver_table(id)
	if err != nil {
		return 0, err
	}
	return copy(dst, data), nil
}

func (s *Static) OpenProfile(id ID) (ProfileHandle, error) {
	src, err := s.source(id)
	if err != nil {
		return nil, err
	}
	if src.Profile == nil {
		return nil, fmt.Errorf("%w: display %d has no profile", ErrNotAvailable, id)
	}
	p, err := src.Profile()
	if err != nil {
		return nil, err
	}
	return NewProfileHandle(p), nil
}
