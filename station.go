package tubemap

// Station glyph proportions, relative to the line width.
const (
	interchangeRadius = 1.25
	interchangeStroke = 0.5
	stationStroke     = 0.5
	// tickInset keeps the tick start just inside the line's edge so no gap
	// shows between them.
	tickInset = 2.05
)

// StationTick returns the tick marking a station on a line: a short stroke
// from the edge of the line outwards towards the station's label.
//
// lane is the line's offset at the station in line widths, as returned by
// LaneOffset. The tick extends line width / tick ratio beyond the line.
func StationTick(coords, lane Vec2, label Bearing, sx, sy ScaleFunc, opts ...PathOption) (*Path, error) {
	o := defaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.tickRatio > 0) {
		return nil, ErrInvalidTickRatio
	}
	if !label.Valid() {
		return nil, &BearingError{Input: label.String()}
	}
	unit, err := UnitLength(sx, sy)
	if err != nil {
		return nil, err
	}

	k := o.lineWidth / unit
	dir := label.Tangent()
	base := coords.Add(lane.Mul(k))
	from := base.Add(dir.Mul(k / tickInset))
	to := base.Add(dir.Mul(k/2 + k/o.tickRatio))

	p := NewPath()
	p.MoveTo(from.X, from.Y)
	p.LineTo(to.X, to.Y)
	return p.Transform(sx, sy), nil
}

// StationStrokeWidth returns the stroke width of station ticks.
func StationStrokeWidth(lineWidth float64) float64 {
	return stationStroke * lineWidth
}

// Glyph is a circular interchange marker in device coordinates.
type Glyph struct {
	Center      Vec2
	Radius      float64
	StrokeWidth float64
}

// InterchangeGlyph places the interchange marker of a station. lane is the
// uniform offset of the station in line widths; the markers of the lines
// calling there pull the glyph onto the middle of their tracks.
func InterchangeGlyph(coords, lane Vec2, markers []Marker, sx, sy ScaleFunc, lineWidth float64) (Glyph, error) {
	unit, err := UnitLength(sx, sy)
	if err != nil {
		return Glyph{}, err
	}
	shift := lane.Add(InterchangeShift(markers))
	c := coords.Add(shift.Mul(lineWidth / unit))
	return Glyph{
		Center:      V2(sx(c.X), sy(c.Y)),
		Radius:      interchangeRadius * lineWidth,
		StrokeWidth: interchangeStroke * lineWidth,
	}, nil
}
