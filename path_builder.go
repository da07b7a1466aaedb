package tubemap

import "fmt"

// BuildPath converts an annotated line into device-space path elements.
//
// Every node is offset perpendicular to its own bearing by ShiftNormal line
// widths and uniformly by ShiftCoords line widths. The first and last nodes
// are also moved along their tangents, backwards and forwards respectively,
// by line width / (2 * tick ratio) so stroke ends meet the station ticks.
// Nodes where the bearing changes are reached with a quadratic curve whose
// control point lies where the incoming and outgoing tangents meet.
//
// Nothing is returned on error.
func BuildPath(line *AnnotatedLine, sx, sy ScaleFunc, opts ...PathOption) (*Path, error) {
	o := defaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.tickRatio > 0) {
		return nil, ErrInvalidTickRatio
	}
	n := len(line.Nodes)
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	if len(line.Bearings) != n {
		return nil, fmt.Errorf("%w: %d bearings for %d nodes", ErrNotAnnotated, len(line.Bearings), n)
	}
	for i, b := range line.Bearings {
		if !b.Valid() {
			return nil, fmt.Errorf("%w: node %d has bearing %v", ErrNotAnnotated, i, b)
		}
	}
	unit, err := UnitLength(sx, sy)
	if err != nil {
		return nil, err
	}

	pl := placer{line: line, laneScale: o.lineWidth / unit}
	end := o.lineWidth / (2 * o.tickRatio * unit)

	// Built in grid space and scaled once at the end.
	p := NewPath()
	start := pl.place(0, -end)
	p.MoveTo(start.X, start.Y)

	for i := 1; i < n; i++ {
		var along float64
		if i == n-1 {
			along = end
		}
		prev := pl.place(i-1, 0)
		next := pl.place(i, along)

		in, out := line.Bearings[i-1], line.Bearings[i]
		if in == out {
			p.LineTo(next.X, next.Y)
			continue
		}
		c := controlPoint(prev, next, in.Vector(), out.Vector())
		p.QuadraticTo(c.X, c.Y, next.X, next.Y)
	}
	return p.Transform(sx, sy), nil
}

// placer positions nodes in grid space, before scaling.
type placer struct {
	line      *AnnotatedLine
	laneScale float64 // grid units per line width
}

// place returns node i moved along its tangent by along grid units and
// shifted into its lane.
func (pl placer) place(i int, along float64) Vec2 {
	b := pl.line.Bearings[i]
	t := b.Tangent()
	lane := LaneOffset(b, pl.line.ShiftCoords, pl.line.ShiftNormal)
	return pl.line.Nodes[i].Coords.
		Add(t.Mul(along)).
		Add(lane.Mul(pl.laneScale))
}

// LaneOffset returns the offset, in line widths, of a line travelling along
// b with the given shifts.
func LaneOffset(b Bearing, shiftCoords Vec2, shiftNormal float64) Vec2 {
	return shiftCoords.Add(b.Tangent().Normal().Mul(shiftNormal))
}

// controlPoint blends the end points of a corner per axis so that the
// result lies on the incoming tangent through p and the outgoing tangent
// through q. pv and nv are the raw direction vectors. When an axis has
// pv+nv == 0 (turns of 135 degrees) the blend for that axis is undefined,
// so the step along pv is taken from the other axis instead.
func controlPoint(p, q, pv, nv Vec2) Vec2 {
	sum := pv.Add(nv)
	switch {
	case sum.X != 0 && sum.Y != 0:
		return V2(
			(p.X*nv.X+q.X*pv.X)/sum.X,
			(p.Y*nv.Y+q.Y*pv.Y)/sum.Y,
		)
	case sum.X != 0:
		a := (q.X - p.X) / sum.X
		return V2((p.X*nv.X+q.X*pv.X)/sum.X, p.Y+a*pv.Y)
	case sum.Y != 0:
		a := (q.Y - p.Y) / sum.Y
		return V2(p.X+a*pv.X, (p.Y*nv.Y+q.Y*pv.Y)/sum.Y)
	}
	// Opposite bearings never form a corner; fall back to the midpoint.
	return p.Add(q).Mul(0.5)
}

// LinePath annotates l and builds its path.
func LinePath(l *Line, sx, sy ScaleFunc, opts ...PathOption) (*Path, error) {
	a, err := l.Annotate()
	if err != nil {
		return nil, err
	}
	return BuildPath(a, sx, sy, opts...)
}
