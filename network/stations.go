package network

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/gogpu/tubemap"
)

// Station is a named stop shared by one or more lines.
type Station struct {
	Name  string // key in the definition
	Label string
	// Coords is the grid position of the station, taken from the last node
	// that names it.
	Coords   tubemap.Vec2
	LabelPos tubemap.Bearing
	// LabelShift is the shift, in line widths, of the node the label was
	// taken from.
	LabelShift tubemap.Vec2
	Visited    bool
	Markers    []Marker
}

// Marker is one line's visit to a station.
type Marker struct {
	Line     string
	Color    string
	Kind     MarkerKind
	LabelPos tubemap.Bearing
	// Shift is the uniform shift of the line, or the node's override, in
	// line widths.
	Shift       tubemap.Vec2
	ShiftNormal float64
	// Bearing is the line's direction at the station. It is zero when the
	// line could not be annotated.
	Bearing tubemap.Bearing
}

// Lane returns the marker's offset from the station in line widths.
func (mk Marker) Lane() tubemap.Vec2 {
	if !mk.Bearing.Valid() {
		return mk.Shift
	}
	return tubemap.LaneOffset(mk.Bearing, mk.Shift, mk.ShiftNormal)
}

// IsInterchange reports whether the station is drawn as an interchange,
// which is decided by its first marker.
func (s *Station) IsInterchange() bool {
	return len(s.Markers) > 0 && s.Markers[0].Kind == InterchangeMarker
}

// InterchangeMarkers returns the markers as seen by the interchange
// calculator.
func (s *Station) InterchangeMarkers() []tubemap.Marker {
	out := make([]tubemap.Marker, len(s.Markers))
	for i, mk := range s.Markers {
		out[i] = tubemap.Marker{Bearing: mk.Bearing, ShiftNormal: mk.ShiftNormal}
	}
	return out
}

// ExtractStations resolves every named node to its station and rebuilds
// the stations' positions, labels and markers. Nodes marked hide add no
// marker. The label is taken from the first node naming the station with
// a label position, unless a later node is canonical.
func (m *Map) ExtractStations() error {
	for _, s := range m.Stations {
		s.LabelPos = 0
		s.LabelShift = tubemap.Vec2{}
		s.Markers = nil
	}
	for _, l := range m.Lines {
		bearings := lineBearings(l)
		for i, n := range l.Nodes {
			if n.Name == "" {
				continue
			}
			s, ok := m.Stations[n.Name]
			if !ok {
				return errors.Wrapf(ErrUnknownStation,
					"line %q node %d references %q", l.Name, i, n.Name)
			}
			shift := l.ShiftCoords
			if n.ShiftCoords != nil {
				shift = *n.ShiftCoords
			}
			s.Coords = n.Coords
			if !s.LabelPos.Valid() || n.Canonical {
				s.LabelPos = n.LabelPos
				s.LabelShift = shift
			}
			if n.Hide {
				continue
			}
			mk := Marker{
				Line:        l.Name,
				Color:       l.Color,
				Kind:        n.Marker,
				LabelPos:    n.LabelPos,
				Shift:       shift,
				ShiftNormal: l.ShiftNormal,
			}
			if bearings != nil {
				mk.Bearing = bearings[i]
			}
			s.Markers = append(s.Markers, mk)
		}
	}
	return nil
}

// lineBearings annotates l, returning nil when it cannot be annotated.
func lineBearings(l *Line) []tubemap.Bearing {
	a, err := l.Geometry().Annotate()
	if err != nil {
		tubemap.Logger().Debug("network: line not annotated",
			"line", l.Name,
			"error", err)
		return nil
	}
	return a.Bearings
}

// Interchanges returns the stations drawn as interchanges, ordered by key.
func (m *Map) Interchanges() []*Station {
	var out []*Station
	for _, s := range m.sortedStations() {
		if s.IsInterchange() {
			out = append(out, s)
		}
	}
	return out
}

// StationMarker is one tick of a plain station.
type StationMarker struct {
	Station *Station
	Marker
}

// NormalStations returns a tick for every marker of the stations that are
// not interchanges, ordered by station key and then by line order.
func (m *Map) NormalStations() []StationMarker {
	var out []StationMarker
	for _, s := range m.sortedStations() {
		if len(s.Markers) == 0 || s.IsInterchange() {
			continue
		}
		for _, mk := range s.Markers {
			out = append(out, StationMarker{Station: s, Marker: mk})
		}
	}
	return out
}

// Visit marks the station with the given key as visited.
func (m *Map) Visit(name string) error {
	return m.setVisited(name, true)
}

// Unvisit clears the visited mark of a station.
func (m *Map) Unvisit(name string) error {
	return m.setVisited(name, false)
}

// VisitStations marks exactly the named stations as visited.
func (m *Map) VisitStations(names ...string) error {
	for _, s := range m.Stations {
		s.Visited = false
	}
	for _, name := range names {
		if err := m.Visit(name); err != nil {
			return err
		}
	}
	return nil
}

// IsVisited reports whether the station with the given key is visited.
func (m *Map) IsVisited(name string) bool {
	s, ok := m.Stations[name]
	return ok && s.Visited
}

// Visited returns the visited stations, ordered by key.
func (m *Map) Visited() []*Station {
	var out []*Station
	for _, s := range m.sortedStations() {
		if s.Visited {
			out = append(out, s)
		}
	}
	return out
}

func (m *Map) setVisited(name string, v bool) error {
	s, ok := m.Stations[name]
	if !ok {
		return errors.Wrapf(ErrUnknownStation, "%q", name)
	}
	s.Visited = v
	return nil
}

func (m *Map) sortedStations() []*Station {
	out := make([]*Station, 0, len(m.Stations))
	for _, s := range m.Stations {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *Station) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
