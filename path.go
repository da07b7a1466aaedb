package tubemap

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/tubemap/internal/flatten"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Vec2
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Vec2
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Vec2
	Point   Vec2
}

func (QuadTo) isPathElement() {}

// Path is a sequence of path elements. Builders work in grid space and
// hand out paths scaled to device coordinates.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: V2(x, y)})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: V2(x, y)})
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: V2(cx, cy), Point: V2(x, y)})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// PathSink receives path elements. A *gg.Context from github.com/gogpu/gg
// satisfies it, as does *Path.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
}

// Replay issues every element of p to s, in order.
func (p *Path) Replay(s PathSink) {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			s.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			s.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			s.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		}
	}
}

// Transform returns a copy of p with every point mapped through the scales.
// Quadratic curves stay exact because the scales are affine per axis.
func (p *Path) Transform(sx, sy ScaleFunc) *Path {
	tp := func(v Vec2) Vec2 { return V2(sx(v.X), sy(v.Y)) }
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := tp(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := tp(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl, pt := tp(e.Control), tp(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		}
	}
	return result
}

// Flatten returns the path as polylines, one per subpath, with curves
// approximated to within tolerance.
func (p *Path) Flatten(tolerance float64) [][]Vec2 {
	var (
		out [][]Vec2
		cur []flatten.Point
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		poly := make([]Vec2, len(cur))
		for i, pt := range cur {
			poly[i] = V2(pt.X, pt.Y)
		}
		out = append(out, poly)
		cur = nil
	}
	last := flatten.Point{}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			last = flatten.Point{X: e.Point.X, Y: e.Point.Y}
			cur = append(cur, last)
		case LineTo:
			last = flatten.Point{X: e.Point.X, Y: e.Point.Y}
			cur = append(cur, last)
		case QuadTo:
			ctrl := flatten.Point{X: e.Control.X, Y: e.Control.Y}
			end := flatten.Point{X: e.Point.X, Y: e.Point.Y}
			cur = flatten.Quad(cur, last, ctrl, end, tolerance)
			last = end
		}
	}
	flush()
	return out
}

// Length returns the approximate drawn length of the path.
func (p *Path) Length() float64 {
	var l float64
	for _, poly := range p.Flatten(flatten.Tolerance) {
		pts := make([]flatten.Point, len(poly))
		for i, v := range poly {
			pts[i] = flatten.Point{X: v.X, Y: v.Y}
		}
		l += flatten.Length(pts)
	}
	return l
}

// Bounds returns the bounding box of the drawn path. ok is false for an
// empty path.
func (p *Path) Bounds() (lo, hi Vec2, ok bool) {
	lo = V2(math.Inf(1), math.Inf(1))
	hi = V2(math.Inf(-1), math.Inf(-1))
	for _, poly := range p.Flatten(flatten.Tolerance) {
		for _, v := range poly {
			lo = V2(math.Min(lo.X, v.X), math.Min(lo.Y, v.Y))
			hi = V2(math.Max(hi.X, v.X), math.Max(hi.Y, v.Y))
			ok = true
		}
	}
	if !ok {
		return Vec2{}, Vec2{}, false
	}
	return lo, hi, true
}

// SVG returns the path as SVG path data using absolute M, L and Q commands
// with no separating whitespace, e.g. "M0,0L1,0Q2,0,2,1".
func (p *Path) SVG() string {
	var b strings.Builder
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			b.WriteByte('M')
			writePoint(&b, e.Point)
		case LineTo:
			b.WriteByte('L')
			writePoint(&b, e.Point)
		case QuadTo:
			b.WriteByte('Q')
			writePoint(&b, e.Control)
			b.WriteByte(',')
			writePoint(&b, e.Point)
		}
	}
	return b.String()
}

// String implements fmt.Stringer using SVG path data.
func (p *Path) String() string {
	return p.SVG()
}

func writePoint(b *strings.Builder, v Vec2) {
	b.WriteString(FormatNumber(v.X))
	b.WriteByte(',')
	b.WriteString(FormatNumber(v.Y))
}

// FormatNumber formats f for path data using the shortest representation
// that round-trips. Magnitudes from 1e-6 up to 1e21 use plain decimal
// notation; others use an exponent without leading zeros, e.g. "1e-7".
func FormatNumber(f float64) string {
	switch {
	case f == 0:
		return "0" // also covers negative zero
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if a := math.Abs(f); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	expSign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mant + "e" + expSign + exp
}
