// Package flatten approximates quadratic Bezier curves with polylines.
package flatten

import "math"

// Point is a 2D point (internal copy to avoid an import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the default maximum distance from the curve.
const Tolerance = 0.1

// maxDepth bounds the subdivision of degenerate curves, e.g. ones whose
// control point lies far behind both end points.
const maxDepth = 16

// Quad appends to dst the points approximating the quadratic curve from p0
// through control p1 to p2, excluding p0 and ending with p2.
func Quad(dst []Point, p0, p1, p2 Point, tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	return quadRec(dst, p0, p1, p2, tolerance, 0)
}

func quadRec(dst []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}

	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(q0, q1, 0.5)

	dst = quadRec(dst, p0, q0, q2, tolerance, depth+1)
	return quadRec(dst, q2, q1, p2, tolerance, depth+1)
}

// Length returns the length of the polyline through pts.
func Length(pts []Point) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += dist(pts[i-1], pts[i])
	}
	return l
}

func lerp(p, q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func dist(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// distanceToSegment returns the distance from p to the segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 < 1e-20 {
		return dist(p, a)
	}

	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / l2
	switch {
	case t < 0:
		return dist(p, a)
	case t > 1:
		return dist(p, b)
	}
	return dist(p, Point{X: a.X + abx*t, Y: a.Y + aby*t})
}
