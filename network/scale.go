package network

import (
	"github.com/paulmach/orb"

	"github.com/gogpu/tubemap"
)

// DefaultLineWidthMultiplier is the line width in grid units.
const DefaultLineWidthMultiplier = 1.2

// Margin is the space left around the map, in device units.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargin leaves room for labels above and beside the map.
var DefaultMargin = Margin{Top: 80, Right: 80, Bottom: 20, Left: 80}

// UniformMargin returns a margin of v on every side.
func UniformMargin(v float64) Margin {
	return Margin{Top: v, Right: v, Bottom: v, Left: v}
}

// Scales map grid coordinates onto an output surface.
type Scales struct {
	X, Y tubemap.Linear
	// LineWidth is the stroke width of a line in device units.
	LineWidth float64
	// Multiplier is the line width in grid units.
	Multiplier float64
}

// SX returns the x scale as a function.
func (s Scales) SX() tubemap.ScaleFunc { return s.X.Func() }

// SY returns the y scale as a function.
func (s Scales) SY() tubemap.ScaleFunc { return s.Y.Func() }

// FitOption configures FitScales.
type FitOption func(*fitOptions)

type fitOptions struct {
	margin     Margin
	multiplier float64
}

// WithMargin sets the margin around the map.
func WithMargin(m Margin) FitOption {
	return func(o *fitOptions) {
		o.margin = m
	}
}

// WithLineWidthMultiplier sets the line width in grid units.
func WithLineWidthMultiplier(f float64) FitOption {
	return func(o *fitOptions) {
		o.multiplier = f
	}
}

// Bounds returns the grid extent of every line node in m.
func (m *Map) Bounds() (orb.Bound, error) {
	var pts orb.MultiPoint
	for _, l := range m.Lines {
		for _, n := range l.Nodes {
			pts = append(pts, orb.Point{n.Coords.X, n.Coords.Y})
		}
	}
	if len(pts) == 0 {
		return orb.Bound{}, ErrEmptyMap
	}
	return pts.Bound(), nil
}

// FitScales fits the map's lines into a width by height surface, keeping
// the grid's aspect ratio. The y axis is flipped so north points up the
// screen. The map is anchored at the top left corner inside the margin.
func FitScales(m *Map, width, height float64, opts ...FitOption) (Scales, error) {
	o := fitOptions{margin: DefaultMargin, multiplier: DefaultLineWidthMultiplier}
	for _, opt := range opts {
		opt(&o)
	}
	b, err := m.Bounds()
	if err != nil {
		return Scales{}, err
	}
	minX, minY := b.Min.X(), b.Min.Y()
	maxX, maxY := b.Max.X(), b.Max.Y()
	if minX == maxX && minY == maxY {
		return Scales{}, tubemap.ErrDegenerateScale
	}

	innerW := width - o.margin.Left - o.margin.Right
	innerH := height - o.margin.Top - o.margin.Bottom
	desired := (maxX - minX) / (maxY - minY)
	actual := innerW / innerH
	ratio := actual / desired

	var rangeX, rangeY float64
	if desired > actual {
		rangeX, rangeY = innerW, innerH*ratio
	} else {
		rangeX, rangeY = innerW/ratio, innerH
	}

	s := Scales{
		X:          tubemap.NewLinear(minX, maxX, o.margin.Left, o.margin.Left+rangeX),
		Y:          tubemap.NewLinear(minY, maxY, o.margin.Top+rangeY, o.margin.Top),
		Multiplier: o.multiplier,
	}
	unit, err := tubemap.UnitLength(s.SX(), s.SY())
	if err != nil {
		return Scales{}, err
	}
	s.LineWidth = o.multiplier * unit

	tubemap.Logger().Debug("network: scales fitted",
		"width", width,
		"height", height,
		"unit", unit,
		"lineWidth", s.LineWidth)
	return s, nil
}
