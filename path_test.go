package tubemap

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{1.5, "1.5"},
		{math.Nextafter(0.3, 1), "0.30000000000000004"},
		{123456789012, "123456789012"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-8, "-2.5e-8"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPath_SVG(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1.5, -2)
	p.QuadraticTo(1e21, 0.0000001, 3, 4)

	want := "M0,0L1.5,-2Q1e+21,1e-7,3,4"
	if got := p.SVG(); got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := NewPath().SVG(); got != "" {
		t.Errorf("empty SVG() = %q", got)
	}
}

func TestPath_Elements(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)

	want := []PathElement{
		MoveTo{Point: V2(1, 2)},
		LineTo{Point: V2(3, 4)},
		QuadTo{Control: V2(5, 6), Point: V2(7, 8)},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("Elements() mismatch (-want +got):\n%s", diff)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestPath_Replay(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)

	dst := NewPath()
	p.Replay(dst)
	if diff := cmp.Diff(p.Elements(), dst.Elements()); diff != "" {
		t.Errorf("Replay() mismatch (-want +got):\n%s", diff)
	}
}

func TestPath_Transform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.QuadraticTo(2, 2, 3, 4)

	sx := NewLinear(0, 1, 10, 20).Func()
	sy := NewLinear(0, 1, 0, -1).Func()
	got := p.Transform(sx, sy)

	want := []PathElement{
		MoveTo{Point: V2(20, -2)},
		QuadTo{Control: V2(30, -2), Point: V2(40, -4)},
	}
	if diff := cmp.Diff(want, got.Elements()); diff != "" {
		t.Errorf("Transform() mismatch (-want +got):\n%s", diff)
	}
	// The original is untouched.
	if p.Elements()[0] != (MoveTo{Point: V2(1, 2)}) {
		t.Error("Transform() modified the receiver")
	}
}

func TestPath_Bounds(t *testing.T) {
	if _, _, ok := NewPath().Bounds(); ok {
		t.Error("empty path should have no bounds")
	}

	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(1, 0, 1, 1)
	p.MoveTo(-2, 0.5)
	p.LineTo(-1, 0.5)

	lo, hi, ok := p.Bounds()
	if !ok {
		t.Fatal("Bounds() not ok")
	}
	if lo != V2(-2, 0) || hi != V2(1, 1) {
		t.Errorf("Bounds() = %v, %v, want (-2, 0), (1, 1)", lo, hi)
	}
}

func TestPath_Length(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(3, 4)
	p.MoveTo(10, 10)
	p.LineTo(10, 12)
	if got := p.Length(); math.Abs(got-7) > 1e-12 {
		t.Errorf("Length() = %v, want 7", got)
	}

	q := NewPath()
	q.MoveTo(0, 0)
	q.QuadraticTo(10, 0, 10, 10)
	if l := q.Length(); l <= 10*math.Sqrt2 || l >= 20 {
		t.Errorf("curve Length() = %v, want between chord and control polygon", l)
	}
}

func TestPath_Flatten(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.MoveTo(5, 5)
	p.LineTo(6, 6)
	p.LineTo(7, 7)

	polys := p.Flatten(0)
	if len(polys) != 2 {
		t.Fatalf("Flatten() = %d polylines, want 2", len(polys))
	}
	if len(polys[0]) != 2 || len(polys[1]) != 3 {
		t.Errorf("Flatten() lengths = %d, %d, want 2, 3", len(polys[0]), len(polys[1]))
	}
}
