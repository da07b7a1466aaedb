package render

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/gogpu/tubemap"
	"github.com/gogpu/tubemap/network"
)

// Map styling, relative to the line width where it is a size.
const (
	riverWidth     = 1.8
	highlightWidth = 1.3
)

var (
	riverColor = color.RGBA{R: 0xc4, G: 0xe8, B: 0xf8, A: 0xff}
	fgColor    = color.RGBA{A: 0xff}
	bgColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Layout lays out m with the scales s.
//
// Paths of separate lines are built concurrently; the scene lists them in
// map order. A line, river or station that cannot be laid out is left out
// and logged, or with WithStrict makes Layout fail with every such error
// joined.
func Layout(m *network.Map, s network.Scales, opts ...Option) (*Scene, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := layout{
		sx: s.SX(),
		sy: s.SY(),
		lw: s.LineWidth,
		pathOpts: []tubemap.PathOption{
			tubemap.WithLineWidth(s.LineWidth),
			tubemap.WithTickRatio(o.tickRatio),
		},
		scene: NewScene(),
	}

	l.river(m.River)
	l.lines(m.Lines)
	l.interchanges(m.Interchanges())
	l.stations(m.NormalStations())

	if len(l.errs) > 0 && o.strict {
		return nil, errors.Join(l.errs...)
	}
	lo, hi, _ := l.scene.Bounds()
	tubemap.Logger().Debug("render: laid out",
		"commands", l.scene.Len(),
		"skipped", len(l.errs),
		"min", lo,
		"max", hi)
	return l.scene, nil
}

type layout struct {
	sx, sy   tubemap.ScaleFunc
	lw       float64
	pathOpts []tubemap.PathOption
	scene    *Scene
	errs     []error
}

func (l *layout) skip(what, name string, err error) {
	tubemap.Logger().Warn("render: "+what+" skipped",
		"name", name,
		"error", err)
	l.errs = append(l.errs, fmt.Errorf("render: %s %q: %w", what, name, err))
}

func (l *layout) river(r *network.River) {
	if r == nil {
		return
	}
	p, err := tubemap.LinePath(r.Geometry(), l.sx, l.sy, l.pathOpts...)
	if err != nil {
		l.skip("river", r.Name, err)
		return
	}
	l.scene.add(drawCommand{
		op:     opStroke,
		layer:  LayerRiver,
		id:     r.Name,
		path:   p,
		stroke: riverColor,
		width:  riverWidth * l.lw,
	})
}

func (l *layout) lines(lines []*network.Line) {
	paths := make([]*tubemap.Path, len(lines))
	errs := make([]error, len(lines))

	var wg sync.WaitGroup
	for i, line := range lines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			paths[i], errs[i] = tubemap.LinePath(line.Geometry(), l.sx, l.sy, l.pathOpts...)
		}()
	}
	wg.Wait()

	for i, line := range lines {
		if errs[i] != nil {
			l.skip("line", line.Name, errs[i])
			continue
		}
		c, ok := line.ParsedColor()
		if !ok {
			tubemap.Logger().Warn("render: line colour not recognised",
				"line", line.Name,
				"color", line.Color)
		}
		tubemap.Logger().Debug("render: line laid out",
			"line", line.Name,
			"length", paths[i].Length())
		w := l.lw
		class := "line"
		if line.Highlighted {
			w *= highlightWidth
			class = "line highlighted"
		}
		l.scene.add(drawCommand{
			op:     opStroke,
			layer:  LayerLines,
			id:     line.Name,
			class:  class,
			path:   paths[i],
			stroke: c,
			width:  w,
		})
	}
}

func (l *layout) interchanges(stations []*network.Station) {
	for _, st := range stations {
		g, err := tubemap.InterchangeGlyph(st.Coords, st.Markers[0].Shift,
			st.InterchangeMarkers(), l.sx, l.sy, l.lw)
		if err != nil {
			l.skip("interchange", st.Name, err)
			continue
		}
		fill, stroke := bgColor, fgColor
		if st.Visited {
			fill, stroke = fgColor, bgColor
		}
		l.scene.add(drawCommand{
			op:     opGlyph,
			layer:  LayerInterchanges,
			id:     st.Name,
			class:  "interchange",
			glyph:  g,
			stroke: stroke,
			fill:   fill,
			width:  g.StrokeWidth,
		})
	}
}

func (l *layout) stations(ticks []network.StationMarker) {
	for _, sm := range ticks {
		p, err := tubemap.StationTick(sm.Station.Coords, sm.Lane(), sm.Station.LabelPos,
			l.sx, l.sy, l.pathOpts...)
		if err != nil {
			l.skip("station", sm.Station.Name, err)
			continue
		}
		c, _ := network.ParseColor(sm.Color)
		c.A = 0xff
		l.scene.add(drawCommand{
			op:     opStroke,
			layer:  LayerStations,
			id:     sm.Station.Name,
			class:  "station " + sm.Line,
			path:   p,
			stroke: c,
			width:  tubemap.StationStrokeWidth(l.lw),
		})
	}
}
