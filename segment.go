package tubemap

import "fmt"

// SegmentKind classifies the displacement between two consecutive nodes.
type SegmentKind uint8

const (
	// Straight continues along the incoming bearing.
	Straight SegmentKind = iota
	// CornerDiagonal is a one-by-one step that turns the line.
	CornerDiagonal
	// CornerKnight is a one-by-two or two-by-one step that turns the line.
	CornerKnight
	// CornerKink is a single grid step along a bearing 45 degrees off the
	// incoming one, giving a sharp bend.
	CornerKink
)

func (k SegmentKind) String() string {
	switch k {
	case Straight:
		return "straight"
	case CornerDiagonal:
		return "corner-diagonal"
	case CornerKnight:
		return "corner-knight"
	case CornerKink:
		return "corner-kink"
	}
	return fmt.Sprintf("SegmentKind(%d)", uint8(k))
}

// Segment describes one step of a line.
type Segment struct {
	Kind SegmentKind
	In   Bearing // bearing at the start node
	Out  Bearing // bearing at the end node
	Diff Vec2    // rounded grid displacement
}

// IsCorner reports whether the segment changes bearing.
func (s Segment) IsCorner() bool {
	return s.Kind != Straight
}

// ClassifySegment works out how a line travelling along in reaches a node
// displaced by diff. A corner always resolves to the sum of the incoming
// and outgoing direction vectors, so the outgoing bearing is diff minus the
// incoming vector.
func ClassifySegment(in Bearing, diff Vec2) (Segment, error) {
	if diff.IsZero() {
		return Segment{}, ErrRepeatedCoordinates
	}
	if !in.Valid() {
		return Segment{}, &BearingError{Input: in.String()}
	}
	pv := in.Vector()
	if diff.IsParallel(pv) {
		return Segment{Kind: Straight, In: in, Out: in, Diff: diff}, nil
	}
	if diff.IsCollinear(pv) {
		// A reversal can never be the sum of two direction vectors.
		return Segment{}, fmt.Errorf("%w: displacement %v reverses bearing %v",
			ErrInvalidCorner, diff, in)
	}

	var kind SegmentKind
	switch diff.Abs() {
	case V2(1, 1):
		kind = CornerDiagonal
	case V2(1, 2), V2(2, 1):
		kind = CornerKnight
	default:
		if b, err := CompassBearing(diff); err == nil {
			if isAdjacent(in, b) && diff == b.Vector() {
				return Segment{Kind: CornerKink, In: in, Out: b, Diff: diff}, nil
			}
			return Segment{}, fmt.Errorf("%w: displacement %v along %v cannot follow %v",
				ErrDirectionDiscontinuity, diff, b, in)
		}
		return Segment{}, fmt.Errorf("%w: displacement %v from bearing %v",
			ErrInvalidCorner, diff, in)
	}

	out, err := CompassBearing(diff.Sub(pv))
	if err != nil {
		return Segment{}, fmt.Errorf("%w: displacement %v cannot leave bearing %v",
			ErrInvalidCorner, diff, in)
	}
	return Segment{Kind: kind, In: in, Out: out, Diff: diff}, nil
}

// isAdjacent reports whether a and b are 45 degrees apart.
func isAdjacent(a, b Bearing) bool {
	d := (int(a) - int(b) + len(bearings)) % len(bearings)
	return d == 1 || d == len(bearings)-1
}
