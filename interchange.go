package tubemap

import "math"

// Marker is one line's visit to a station, as seen by the interchange
// calculator.
type Marker struct {
	Bearing     Bearing
	ShiftNormal float64
}

// family is a set of markers travelling along one axis, in either sense.
type family struct {
	vector   Vec2 // unit vector of the first marker
	min, max float64
}

func newFamily(v Vec2, shift float64) *family {
	return &family{vector: v, min: shift, max: shift}
}

// add widens the shift range with a marker collinear with the family. The
// shift is projected so that opposite senses agree on which side is which.
func (f *family) add(v Vec2, shift float64) {
	s := shift * v.Dot(f.vector)
	f.min = math.Min(f.min, s)
	f.max = math.Max(f.max, s)
}

func (f *family) mid() float64 {
	return (f.min + f.max) / 2
}

// InterchangeShift returns the offset, in line widths, that centres an
// interchange glyph on the tracks meeting at a station.
//
// Markers are grouped by axis. With one axis the glyph moves across the
// tracks to the middle of their lanes. With two, it moves to where the
// middle lanes of both groups cross. Directions beyond the first two are
// ignored.
func InterchangeShift(markers []Marker) Vec2 {
	var f1, f2 *family
	ignored := 0
	for _, m := range markers {
		v := m.Bearing.Tangent()
		if v.IsZero() {
			ignored++
			continue
		}
		switch {
		case f1 == nil:
			f1 = newFamily(v, m.ShiftNormal)
		case v.IsCollinear(f1.vector):
			f1.add(v, m.ShiftNormal)
		case f2 == nil:
			f2 = newFamily(v, m.ShiftNormal)
		case v.IsCollinear(f2.vector):
			f2.add(v, m.ShiftNormal)
		default:
			ignored++
		}
	}
	if ignored > 0 {
		Logger().Debug("tubemap: interchange markers ignored",
			"markers", len(markers),
			"ignored", ignored)
	}

	switch {
	case f1 == nil:
		return Vec2{}
	case f2 == nil:
		return f1.vector.Normal().Mul(f1.mid())
	}
	cross := f1.vector.Cross(f2.vector)
	mid1, mid2 := f1.mid(), f2.mid()
	return f1.vector.Mul(mid2).Sub(f2.vector.Mul(mid1)).Mul(1 / cross)
}
