package camera

import "fmt"

// Flip selects the mirroring applied to the capture transform before the
// video pipeline starts.
type Flip string

const (
	FlipNone Flip = "none"
	FlipH    Flip = "h"
	FlipV    Flip = "v"
	FlipHV   Flip = "hv"
)

func ParseFlip(value string) (Flip, error) {
	switch Flip(value) {
	case FlipNone, FlipH, FlipV, FlipHV:
		return Flip(value), nil
	}
	return FlipNone, fmt.Errorf("invalid flip mode %q: must be one of none, h, v, hv", value)
}

func (f Flip) Horizontal() bool {
	return f == FlipH || f == FlipHV
}

func (f Flip) Vertical() bool {
	return f == FlipV || f == FlipHV
}
