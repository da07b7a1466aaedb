package tubemap

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustAnnotate(t *testing.T, l *Line) *AnnotatedLine {
	t.Helper()
	a, err := l.Annotate()
	if err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}
	return a
}

func TestBuildPath(t *testing.T) {
	const sixth = 1.0 / 6
	tests := []struct {
		name string
		line Line
		opts []PathOption
		want []PathElement
	}{
		{
			name: "straight no width",
			line: Line{Nodes: nodes(V2(0, 0), V2(1, 0), V2(2, 0))},
			opts: []PathOption{WithLineWidth(0)},
			want: []PathElement{
				MoveTo{Point: V2(0, 0)},
				LineTo{Point: V2(1, 0)},
				LineTo{Point: V2(2, 0)},
			},
		},
		{
			name: "end corrections",
			line: Line{Nodes: nodes(V2(0, 0), V2(1, 0), V2(2, 0))},
			opts: []PathOption{WithLineWidth(1), WithTickRatio(3)},
			want: []PathElement{
				MoveTo{Point: V2(-sixth, 0)},
				LineTo{Point: V2(1, 0)},
				LineTo{Point: V2(2+sixth, 0)},
			},
		},
		{
			name: "normal shift",
			line: Line{Nodes: nodes(V2(0, 0), V2(1, 0), V2(2, 0)), ShiftNormal: 1},
			opts: []PathOption{WithLineWidth(2), WithTickRatio(3)},
			want: []PathElement{
				MoveTo{Point: V2(-1.0/3, -2)},
				LineTo{Point: V2(1, -2)},
				LineTo{Point: V2(2+1.0/3, -2)},
			},
		},
		{
			name: "coordinate shift",
			line: Line{Nodes: nodes(V2(0, 0), V2(1, 0), V2(2, 0)), ShiftCoords: V2(1, -0.5)},
			opts: []PathOption{WithLineWidth(1)},
			want: []PathElement{
				MoveTo{Point: V2(1-sixth, -0.5)},
				LineTo{Point: V2(2, -0.5)},
				LineTo{Point: V2(3+sixth, -0.5)},
			},
		},
		{
			name: "kink",
			line: Line{Nodes: nodes(V2(0, 0), V2(1, 1), V2(2, 1))},
			opts: []PathOption{WithLineWidth(0)},
			want: []PathElement{
				MoveTo{Point: V2(0, 0)},
				LineTo{Point: V2(1, 1)},
				QuadTo{Control: V2(1.5, 1), Point: V2(2, 1)},
			},
		},
		{
			name: "knight corner",
			line: Line{Nodes: nodes(V2(0, 0), V2(1, 0), V2(3, 1))},
			opts: []PathOption{WithLineWidth(0)},
			want: []PathElement{
				MoveTo{Point: V2(0, 0)},
				LineTo{Point: V2(1, 0)},
				QuadTo{Control: V2(2, 0), Point: V2(3, 1)},
			},
		},
		{
			name: "right angle",
			line: Line{Nodes: nodes(V2(0, 0), V2(1, 0), V2(2, 1), V2(2, 3))},
			opts: []PathOption{WithLineWidth(0)},
			want: []PathElement{
				MoveTo{Point: V2(0, 0)},
				LineTo{Point: V2(1, 0)},
				QuadTo{Control: V2(2, 0), Point: V2(2, 1)},
				LineTo{Point: V2(2, 3)},
			},
		},
		{
			name: "sharp turn",
			line: Line{Nodes: nodes(V2(0, 0), V2(1, 1), V2(2, 0))},
			opts: []PathOption{WithLineWidth(0)},
			want: []PathElement{
				MoveTo{Point: V2(0, 0)},
				LineTo{Point: V2(1, 1)},
				QuadTo{Control: V2(2, 2), Point: V2(2, 0)},
			},
		},
		{
			name: "shifted corner",
			line: Line{Nodes: nodes(V2(0, 0), V2(2, 0), V2(3, 1), V2(3, 3)), ShiftNormal: 1},
			opts: []PathOption{WithLineWidth(1), WithTickRatio(1e12)},
			want: []PathElement{
				MoveTo{Point: V2(0, -1)},
				LineTo{Point: V2(2, -1)},
				QuadTo{Control: V2(4, -1), Point: V2(4, 1)},
				LineTo{Point: V2(4, 3)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustAnnotate(t, &tt.line)
			p, err := BuildPath(a, Identity, Identity, tt.opts...)
			if err != nil {
				t.Fatalf("BuildPath() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, p.Elements(), approx); diff != "" {
				t.Errorf("BuildPath() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildPath_StraightHasNoCurves(t *testing.T) {
	a := mustAnnotate(t, &Line{Nodes: nodes(V2(0, 0), V2(0, 1), V2(0, 5), V2(0, 6))})
	p, err := BuildPath(a, Identity, Identity)
	if err != nil {
		t.Fatalf("BuildPath() error: %v", err)
	}
	for i, e := range p.Elements() {
		if _, ok := e.(QuadTo); ok {
			t.Errorf("element %d is a curve on a straight line", i)
		}
	}
}

func TestBuildPath_OneCurvePerCorner(t *testing.T) {
	a := mustAnnotate(t, &Line{Nodes: nodes(V2(0, 0), V2(1, 1), V2(2, 1))})
	p, err := BuildPath(a, Identity, Identity)
	if err != nil {
		t.Fatalf("BuildPath() error: %v", err)
	}
	var curves []int
	for i, e := range p.Elements() {
		if _, ok := e.(QuadTo); ok {
			curves = append(curves, i)
		}
	}
	// Element i ends at node i.
	if diff := cmp.Diff(a.Corners(), curves); diff != "" {
		t.Errorf("curves not at corners (-corners +curves):\n%s", diff)
	}
}

func TestBuildPath_SVG(t *testing.T) {
	a := mustAnnotate(t, &Line{Nodes: nodes(V2(0, 0), V2(1, 1), V2(2, 1))})
	p, err := BuildPath(a, Identity, Identity, WithLineWidth(0))
	if err != nil {
		t.Fatalf("BuildPath() error: %v", err)
	}
	if got, want := p.SVG(), "M0,0L1,1Q1.5,1,2,1"; got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

// Control points lie on both tangents for unshifted corners, and for right
// angles and 135 degree turns in any lane.
func TestBuildPath_ControlOnTangents(t *testing.T) {
	lines := []Line{
		{Nodes: nodes(V2(0, 0), V2(2, 0), V2(3, 1), V2(3, 3)), ShiftNormal: 1},
		{Nodes: nodes(V2(0, 0), V2(2, 0), V2(4, 1), V2(6, 3))},
		{Nodes: nodes(V2(0, 0), V2(0, -2), V2(1, -3), V2(3, -3)), ShiftNormal: 2},
		{Nodes: nodes(V2(0, 0), V2(1, 1), V2(2, 0), V2(2, -3)), ShiftNormal: 0.5},
	}
	for i := range lines {
		a := mustAnnotate(t, &lines[i])
		p, err := BuildPath(a, Identity, Identity, WithLineWidth(1))
		if err != nil {
			t.Fatalf("line %d: BuildPath() error: %v", i, err)
		}
		elems := p.Elements()
		for j := 1; j < len(elems); j++ {
			q, ok := elems[j].(QuadTo)
			if !ok {
				continue
			}
			var prev Vec2
			switch e := elems[j-1].(type) {
			case MoveTo:
				prev = e.Point
			case LineTo:
				prev = e.Point
			case QuadTo:
				prev = e.Point
			}
			pv := a.Bearings[j-1].Vector()
			nv := a.Bearings[j].Vector()
			if c := q.Control.Sub(prev).Cross(pv); math.Abs(c) > 1e-9 {
				t.Errorf("line %d node %d: control %v not on incoming tangent from %v", i, j, q.Control, prev)
			}
			if c := q.Point.Sub(q.Control).Cross(nv); math.Abs(c) > 1e-9 {
				t.Errorf("line %d node %d: control %v not on outgoing tangent to %v", i, j, q.Control, q.Point)
			}
		}
	}
}

func TestBuildPath_Scales(t *testing.T) {
	sx := NewLinear(0, 10, 0, 100).Func()
	sy := NewLinear(0, 10, 100, 0).Func()
	a := mustAnnotate(t, &Line{Nodes: nodes(V2(0, 0), V2(1, 0), V2(2, 1))})

	p, err := BuildPath(a, sx, sy, WithLineWidth(10), WithTickRatio(3))
	if err != nil {
		t.Fatalf("BuildPath() error: %v", err)
	}
	// One grid unit is 10 device units, so the end correction is 1/6 of a
	// grid unit and the y axis is flipped.
	want := []PathElement{
		MoveTo{Point: V2(-10.0/6, 100)},
		LineTo{Point: V2(10, 100)},
		QuadTo{Control: V2(20, 100), Point: V2(20, 90-10.0/6)},
	}
	if diff := cmp.Diff(want, p.Elements(), approx); diff != "" {
		t.Errorf("BuildPath() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPath_DegenerateXScale(t *testing.T) {
	flat := func(float64) float64 { return 0 }
	a := mustAnnotate(t, &Line{Nodes: nodes(V2(0, 0), V2(0, 1))})
	p, err := BuildPath(a, flat, Identity, WithLineWidth(3), WithTickRatio(1))
	if err != nil {
		t.Fatalf("BuildPath() error: %v", err)
	}
	// Unit length comes from the y scale.
	want := []PathElement{
		MoveTo{Point: V2(0, -1.5)},
		LineTo{Point: V2(0, 2.5)},
	}
	if diff := cmp.Diff(want, p.Elements(), approx); diff != "" {
		t.Errorf("BuildPath() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPath_Errors(t *testing.T) {
	good := &AnnotatedLine{
		Line:     Line{Nodes: nodes(V2(0, 0), V2(1, 0))},
		Bearings: []Bearing{East, East},
	}
	flat := func(float64) float64 { return 4 }

	tests := []struct {
		name   string
		line   *AnnotatedLine
		sx, sy ScaleFunc
		opts   []PathOption
		want   error
	}{
		{"zero tick ratio", good, Identity, Identity, []PathOption{WithTickRatio(0)}, ErrInvalidTickRatio},
		{"negative tick ratio", good, Identity, Identity, []PathOption{WithTickRatio(-1)}, ErrInvalidTickRatio},
		{"nan tick ratio", good, Identity, Identity, []PathOption{WithTickRatio(math.NaN())}, ErrInvalidTickRatio},
		{"degenerate scales", good, flat, flat, nil, ErrDegenerateScale},
		{"one node", &AnnotatedLine{Line: Line{Nodes: nodes(V2(0, 0))}, Bearings: []Bearing{East}}, Identity, Identity, nil, ErrTooFewNodes},
		{"missing bearings", &AnnotatedLine{Line: good.Line}, Identity, Identity, nil, ErrNotAnnotated},
		{"invalid bearing", &AnnotatedLine{Line: good.Line, Bearings: []Bearing{East, 0}}, Identity, Identity, nil, ErrNotAnnotated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BuildPath(tt.line, tt.sx, tt.sy, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("BuildPath() error = %v, want %v", err, tt.want)
			}
			if p != nil {
				t.Errorf("BuildPath() = %v, want nil on error", p)
			}
		})
	}
}

func TestLinePath(t *testing.T) {
	l := &Line{Nodes: nodes(V2(0, 0), V2(1, 0), V2(2, 1))}
	p, err := LinePath(l, Identity, Identity, WithLineWidth(0))
	if err != nil {
		t.Fatalf("LinePath() error: %v", err)
	}
	if got, want := p.SVG(), "M0,0L1,0Q2,0,2,1"; got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}

	bad := &Line{Nodes: nodes(V2(0, 0), V2(1, 0), V2(5, 1))}
	if _, err := LinePath(bad, Identity, Identity); !errors.Is(err, ErrInvalidCorner) {
		t.Errorf("LinePath() error = %v, want ErrInvalidCorner", err)
	}
}

func TestLaneOffset(t *testing.T) {
	tests := []struct {
		b     Bearing
		shift Vec2
		n     float64
		want  Vec2
	}{
		{East, Vec2{}, 1, V2(0, -1)},
		{North, Vec2{}, 2, V2(2, 0)},
		{West, V2(1, 1), 1, V2(1, 2)},
		{NorthEast, Vec2{}, math.Sqrt2, V2(1, -1)},
	}
	for _, tt := range tests {
		if got := LaneOffset(tt.b, tt.shift, tt.n); !got.Approx(tt.want, 1e-12) {
			t.Errorf("LaneOffset(%v, %v, %v) = %v, want %v", tt.b, tt.shift, tt.n, got, tt.want)
		}
	}
}
