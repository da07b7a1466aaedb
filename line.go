package tubemap

// Node is a point of a line in grid coordinates. Named nodes are stations.
type Node struct {
	Coords Vec2
	Name   string
}

// Line is an ordered sequence of nodes drawn as one stroke.
//
// ShiftCoords offsets the whole line, in line-width units. ShiftNormal
// offsets it perpendicular to its local direction, so that lines sharing a
// corridor stay parallel through corners.
type Line struct {
	Name        string
	Nodes       []Node
	ShiftCoords Vec2
	ShiftNormal float64
}

// AnnotatedLine is a line together with the bearing of each of its nodes.
// Bearings[i] belongs to Nodes[i].
type AnnotatedLine struct {
	Line
	Bearings []Bearing
}

// Annotate computes the bearing of every node of l. The receiver is not
// modified; the returned line holds its own copy of the nodes.
func (l *Line) Annotate() (*AnnotatedLine, error) {
	bearings, err := Annotate(l.Nodes)
	if err != nil {
		return nil, err
	}
	cp := *l
	cp.Nodes = append([]Node(nil), l.Nodes...)
	Logger().Debug("tubemap: line annotated",
		"line", l.Name,
		"nodes", len(l.Nodes),
		"corners", countCorners(bearings))
	return &AnnotatedLine{Line: cp, Bearings: bearings}, nil
}

// Corners returns the indices of the nodes where the bearing changes.
func (a *AnnotatedLine) Corners() []int {
	var idx []int
	for i := 1; i < len(a.Bearings); i++ {
		if a.Bearings[i] != a.Bearings[i-1] {
			idx = append(idx, i)
		}
	}
	return idx
}

func countCorners(bs []Bearing) int {
	n := 0
	for i := 1; i < len(bs); i++ {
		if bs[i] != bs[i-1] {
			n++
		}
	}
	return n
}
