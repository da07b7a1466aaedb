package tubemap

import "math"

// ScaleFunc maps one grid axis to device coordinates. It must be monotonic
// and affine over the grid; the path builder infers the unit length from it.
type ScaleFunc func(float64) float64

// Identity is the scale that leaves coordinates unchanged.
func Identity(v float64) float64 { return v }

// Linear is an affine scale from a domain interval to a range interval.
// A reversed range (Range[0] > Range[1]) flips the axis.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear creates a linear scale mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Scale maps v from the domain to the range. A degenerate domain maps
// everything to the middle of the range.
func (l Linear) Scale(v float64) float64 {
	d := l.Domain[1] - l.Domain[0]
	t := 0.5
	if d != 0 {
		t = (v - l.Domain[0]) / d
	}
	return l.Range[0] + t*(l.Range[1]-l.Range[0])
}

// Invert maps a range value back to the domain.
func (l Linear) Invert(v float64) float64 {
	r := l.Range[1] - l.Range[0]
	t := 0.5
	if r != 0 {
		t = (v - l.Range[0]) / r
	}
	return l.Domain[0] + t*(l.Domain[1]-l.Domain[0])
}

// Func returns the scale as a ScaleFunc.
func (l Linear) Func() ScaleFunc {
	return l.Scale
}

// UnitLength returns the device distance of one grid unit, taken from the x
// scale or, if that is degenerate, from the y scale.
func UnitLength(sx, sy ScaleFunc) (float64, error) {
	u := sx(1) - sx(0)
	if u == 0 {
		u = sy(1) - sy(0)
	}
	u = math.Abs(u)
	if u == 0 || math.IsNaN(u) || math.IsInf(u, 0) {
		return 0, ErrDegenerateScale
	}
	return u, nil
}
