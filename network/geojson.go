package network

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// FeatureCollection returns the map as GeoJSON features in grid
// coordinates: a LineString per line, one for the river, and a Point per
// station that any line calls at.
//
// Every feature has a "kind" property of "line", "river" or "station".
func (m *Map) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if m.River != nil {
		f := geojson.NewLineStringFeature(coordinates(m.River.Nodes))
		f.SetProperty("kind", "river")
		if m.River.Name != "" {
			f.SetProperty("name", m.River.Name)
		}
		fc.AddFeature(f)
	}
	for _, l := range m.Lines {
		f := geojson.NewLineStringFeature(coordinates(l.Nodes))
		f.SetProperty("kind", "line")
		f.SetProperty("name", l.Name)
		f.SetProperty("label", l.Label)
		f.SetProperty("color", l.Color)
		f.SetProperty("shiftNormal", l.ShiftNormal)
		f.SetProperty("highlighted", l.Highlighted)
		f.SetProperty("stations", l.Stations())
		fc.AddFeature(f)
	}
	for _, s := range m.sortedStations() {
		if len(s.Markers) == 0 {
			continue
		}
		lines := make([]string, len(s.Markers))
		for i, mk := range s.Markers {
			lines[i] = mk.Line
		}
		f := geojson.NewPointFeature([]float64{s.Coords.X, s.Coords.Y})
		f.SetProperty("kind", "station")
		f.SetProperty("name", s.Name)
		f.SetProperty("label", s.Label)
		f.SetProperty("interchange", s.IsInterchange())
		f.SetProperty("visited", s.Visited)
		f.SetProperty("lines", lines)
		if s.LabelPos.Valid() {
			f.SetProperty("labelPos", s.LabelPos.String())
		}
		fc.AddFeature(f)
	}
	return fc
}

// GeoJSON returns the encoded feature collection of m.
func GeoJSON(m *Map) ([]byte, error) {
	b, err := m.FeatureCollection().MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "network: encode geojson")
	}
	return b, nil
}

func coordinates(nodes []Node) [][]float64 {
	out := make([][]float64, len(nodes))
	for i, n := range nodes {
		out[i] = []float64{n.Coords.X, n.Coords.Y}
	}
	return out
}
