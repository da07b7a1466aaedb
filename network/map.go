package network

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/gogpu/tubemap"
)

// MarkerKind selects how a station is drawn on a line.
type MarkerKind uint8

const (
	// TickMarker is a tick on the side of the line.
	TickMarker MarkerKind = iota
	// InterchangeMarker is a circular glyph shared by the lines calling at
	// the station.
	InterchangeMarker
)

func (k MarkerKind) String() string {
	if k == InterchangeMarker {
		return "interchange"
	}
	return "station"
}

// MarshalText implements encoding.TextMarshaler.
func (k MarkerKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *MarkerKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "station":
		*k = TickMarker
	case "interchange":
		*k = InterchangeMarker
	default:
		return errors.Wrapf(ErrInvalidMarker, "%q", text)
	}
	return nil
}

// Node is a point on a line or on the river.
type Node struct {
	Coords tubemap.Vec2
	// Name is the key of the station at this node, empty for plain
	// waypoints.
	Name     string
	LabelPos tubemap.Bearing
	// ShiftCoords overrides the line's uniform shift for this node's marker
	// and label. Nil means no override.
	ShiftCoords *tubemap.Vec2
	Hide        bool
	Canonical   bool
	Marker      MarkerKind
}

// Line is one route of the network.
type Line struct {
	Name        string
	Label       string
	Color       string
	ShiftCoords tubemap.Vec2
	ShiftNormal float64
	Nodes       []Node
	Highlighted bool
}

// Geometry returns the line in the form consumed by the path builder.
func (l *Line) Geometry() *tubemap.Line {
	return geometry(l.Name, l.Nodes, l.ShiftCoords, l.ShiftNormal)
}

// Stations returns the station keys along the line, in order.
func (l *Line) Stations() []string {
	var names []string
	for _, n := range l.Nodes {
		if n.Name != "" {
			names = append(names, n.Name)
		}
	}
	return names
}

// River is a decorative path drawn beneath the lines.
type River struct {
	Name        string
	ShiftCoords tubemap.Vec2
	Nodes       []Node
}

// Geometry returns the river in the form consumed by the path builder.
func (r *River) Geometry() *tubemap.Line {
	return geometry(r.Name, r.Nodes, r.ShiftCoords, 0)
}

func geometry(name string, nodes []Node, shift tubemap.Vec2, normal float64) *tubemap.Line {
	out := &tubemap.Line{
		Name:        name,
		Nodes:       make([]tubemap.Node, len(nodes)),
		ShiftCoords: shift,
		ShiftNormal: normal,
	}
	for i, n := range nodes {
		out.Nodes[i] = tubemap.Node{Coords: n.Coords, Name: n.Name}
	}
	return out
}

// Map is a decoded network definition.
type Map struct {
	Lines    []*Line
	Stations map[string]*Station
	River    *River
}

// Decode reads a JSON network definition and resolves its stations.
func Decode(r io.Reader) (*Map, error) {
	var w wireMap
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, errors.Wrap(err, "network: decode definition")
	}
	m := w.build()
	if err := m.ExtractStations(); err != nil {
		return nil, err
	}
	tubemap.Logger().Debug("network: decoded",
		"lines", len(m.Lines),
		"stations", len(m.Stations),
		"river", m.River != nil)
	return m, nil
}

// Line returns the line with the given name, or nil.
func (m *Map) Line(name string) *Line {
	for _, l := range m.Lines {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// HighlightLine marks every line with the given name as highlighted. It
// reports whether any line matched.
func (m *Map) HighlightLine(name string) bool {
	return m.setHighlight(name, true)
}

// UnhighlightLine clears the highlight of every line with the given name.
func (m *Map) UnhighlightLine(name string) bool {
	return m.setHighlight(name, false)
}

// UnhighlightAll clears every highlight.
func (m *Map) UnhighlightAll() {
	for _, l := range m.Lines {
		l.Highlighted = false
	}
}

func (m *Map) setHighlight(name string, on bool) bool {
	found := false
	for _, l := range m.Lines {
		if l.Name == name {
			l.Highlighted = on
			found = true
		}
	}
	return found
}

type wireMap struct {
	Stations map[string]wireStation `json:"stations"`
	Lines    []wireLine             `json:"lines"`
	River    *wireRiver             `json:"river"`
}

type wireStation struct {
	Label string `json:"label"`
	Title string `json:"title"`
}

type wireLine struct {
	Name        string     `json:"name"`
	Label       string     `json:"label"`
	Color       string     `json:"color"`
	ShiftCoords [2]float64 `json:"shiftCoords"`
	ShiftNormal float64    `json:"shiftNormal"`
	Nodes       []wireNode `json:"nodes"`
}

type wireRiver struct {
	Name        string     `json:"name"`
	ShiftCoords [2]float64 `json:"shiftCoords"`
	Nodes       []wireNode `json:"nodes"`
}

type wireNode struct {
	Coords      [2]float64      `json:"coords"`
	Name        string          `json:"name"`
	LabelPos    tubemap.Bearing `json:"labelPos"`
	ShiftCoords *[2]float64     `json:"shiftCoords"`
	Hide        bool            `json:"hide"`
	Canonical   bool            `json:"canonical"`
	Marker      MarkerKind      `json:"marker"`
}

func (w *wireMap) build() *Map {
	m := &Map{
		Lines:    make([]*Line, len(w.Lines)),
		Stations: make(map[string]*Station, len(w.Stations)),
	}
	for key, s := range w.Stations {
		label := s.Label
		if label == "" {
			label = s.Title
		}
		m.Stations[key] = &Station{Name: key, Label: label}
	}
	for i, wl := range w.Lines {
		m.Lines[i] = &Line{
			Name:        wl.Name,
			Label:       wl.Label,
			Color:       wl.Color,
			ShiftCoords: vec(wl.ShiftCoords),
			ShiftNormal: wl.ShiftNormal,
			Nodes:       buildNodes(wl.Nodes),
		}
	}
	if w.River != nil {
		m.River = &River{
			Name:        w.River.Name,
			ShiftCoords: vec(w.River.ShiftCoords),
			Nodes:       buildNodes(w.River.Nodes),
		}
	}
	return m
}

func buildNodes(in []wireNode) []Node {
	out := make([]Node, len(in))
	for i, n := range in {
		out[i] = Node{
			Coords:    vec(n.Coords),
			Name:      n.Name,
			LabelPos:  n.LabelPos,
			Hide:      n.Hide,
			Canonical: n.Canonical,
			Marker:    n.Marker,
		}
		if n.ShiftCoords != nil {
			s := vec(*n.ShiftCoords)
			out[i].ShiftCoords = &s
		}
	}
	return out
}

func vec(a [2]float64) tubemap.Vec2 {
	return tubemap.V2(a[0], a[1])
}
