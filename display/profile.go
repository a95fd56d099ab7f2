package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kovidgoyal/gammas/icc"
	exif_tiff "github.com/rwcarlsen/goexif/tiff"
)

// TIFF tag holding an embedded ICC profile
const tiffICCProfileTag = 34675

// LoadProfileFile reads a color profile from an .icc/.icm file or from the
// profile embedded in a TIFF image.
func LoadProfileFile(path string) (*icc.Profile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		data, err := ExtractTIFFProfile(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return icc.DecodeProfile(data)
	default:
		return icc.ReadProfileFile(path)
	}
}

// ExtractTIFFProfile returns the raw bytes of the ICC profile embedded in a
// TIFF stream.
func ExtractTIFFProfile(r io.Reader) ([]byte, error) {
	t, err := exif_tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TIFF: %w", err)
	}
	for _, d := range t.Dirs {
		for _, tag := range d.Tags {
			if tag.Id == tiffICCProfileTag {
				return tag.Val, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no ICC profile in TIFF", ErrNotAvailable)
}
