package gammas

import (
	"errors"

	"github.com/kovidgoyal/gammas/display"
)

var (
	// ErrNotAvailable means the requested source does not exist for the
	// display: no driver table, no profile or a missing tag.
	ErrNotAvailable = display.ErrNotAvailable
	// ErrSignatureMismatch means a tag's embedded type signature is not the
	// one its decoder expects.
	ErrSignatureMismatch = errors.New("tag signature mismatch")
	// ErrAllocation means a byte provider reported a size no buffer can be
	// made for.
	ErrAllocation  = errors.New("cannot allocate buffer")
	ErrTruncated   = errors.New("data truncated")
	ErrUnknownMode = errors.New("unknown mode")
)

// Largest tag or driver table that will be read
const MaxBlobSize = 16 << 20
