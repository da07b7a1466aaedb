package tubemap

// Annotate assigns a bearing to every node. The first segment is assumed to
// be straight, so its displacement fixes the starting bearing; each later
// segment either continues that bearing or turns through a corner.
//
// Coordinates are rounded to the grid before comparison. The returned slice
// is parallel to nodes.
func Annotate(nodes []Node) ([]Bearing, error) {
	segs, err := Segments(nodes)
	if err != nil {
		return nil, err
	}
	out := make([]Bearing, len(nodes))
	out[0] = segs[0].In
	for i, s := range segs {
		out[i+1] = s.Out
	}
	return out, nil
}

// Segments classifies every step of nodes. Segment i joins nodes i and i+1.
func Segments(nodes []Node) ([]Segment, error) {
	if len(nodes) < 2 {
		return nil, ErrTooFewNodes
	}
	segs := make([]Segment, 0, len(nodes)-1)
	var prev Bearing
	for i := 1; i < len(nodes); i++ {
		from := nodes[i-1].Coords
		to := nodes[i].Coords
		diff := to.Round().Sub(from.Round())

		if i == 1 && !diff.IsZero() {
			b, err := CompassBearing(diff)
			if err != nil {
				return nil, &SegmentError{Index: i, From: from, To: to, Err: err}
			}
			prev = b
		}

		s, err := ClassifySegment(prev, diff)
		if err != nil {
			return nil, &SegmentError{Index: i, From: from, To: to, Err: err}
		}
		segs = append(segs, s)
		prev = s.Out
	}
	return segs, nil
}
