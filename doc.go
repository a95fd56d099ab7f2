/*
Package gammas reads the tone response curves of a display from its video
card gamma table and from the tags of its ICC profile (rTRC/gTRC/bTRC, vcgt
and ndin), normalizes them to 256 eight bit samples per channel and plots
them.

Sources without a sampled table are described by a per channel gamma
exponent and maximum and are synthesized into a table. The renderer emits
drawing commands to any Canvas; Raster paints them into an image and
DisplayList records them.
*/
package gammas

import "fmt"

type GammasVersion struct {
	Major, Minor, Patch uint
}

func (v GammasVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v GammasVersion) Equal(o GammasVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v GammasVersion) After(o GammasVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v GammasVersion) Before(o GammasVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = GammasVersion{1, 0, 0}
