package tubemap

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported while annotating lines and building paths. They describe
// malformed network definitions, so callers never need to retry.
var (
	// ErrUnknownBearing is returned when a bearing symbol is not one of the
	// eight compass points.
	ErrUnknownBearing = errors.New("tubemap: unknown compass bearing")

	// ErrNoMatchingBearing is returned when a vector is not a multiple of
	// 45 degrees.
	ErrNoMatchingBearing = errors.New("tubemap: no compass bearing matches vector, only 45 degree angles are supported")

	// ErrRepeatedCoordinates is returned when two consecutive nodes round to
	// the same grid point.
	ErrRepeatedCoordinates = errors.New("tubemap: repeated coordinates")

	// ErrDirectionDiscontinuity is returned when a straight displacement is
	// not aligned with the established bearing.
	ErrDirectionDiscontinuity = errors.New("tubemap: direction discontinuity")

	// ErrInvalidCorner is returned when a turning displacement matches no
	// supported corner shape.
	ErrInvalidCorner = errors.New("tubemap: invalid corner")

	// ErrTooFewNodes is returned for lines with fewer than two nodes.
	ErrTooFewNodes = errors.New("tubemap: line needs at least two nodes")

	// ErrNotAnnotated is returned when a line's bearings do not match its
	// nodes.
	ErrNotAnnotated = errors.New("tubemap: line is not annotated")

	// ErrDegenerateScale is returned when neither scale maps one grid unit to
	// a nonzero device distance.
	ErrDegenerateScale = errors.New("tubemap: degenerate scale")

	// ErrInvalidTickRatio is returned when the tick ratio is not positive.
	ErrInvalidTickRatio = errors.New("tubemap: tick ratio must be positive")
)

// BearingError reports a bearing symbol that could not be parsed.
type BearingError struct {
	Input string
}

func (e *BearingError) Error() string {
	names := make([]string, 0, len(bearings))
	for _, b := range bearings {
		names = append(names, b.String())
	}
	return fmt.Sprintf("tubemap: %q is not a recognised compass bearing, options are %s",
		e.Input, strings.Join(names, ", "))
}

// Unwrap returns ErrUnknownBearing.
func (e *BearingError) Unwrap() error { return ErrUnknownBearing }

// SegmentError reports the segment of a line that failed validation.
// Index is the position of the segment's end node, so the offending pair is
// nodes Index-1 and Index.
type SegmentError struct {
	Index    int
	From, To Vec2
	Err      error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("tubemap: segment %d from %v to %v: %v", e.Index, e.From, e.To, e.Err)
}

func (e *SegmentError) Unwrap() error { return e.Err }
