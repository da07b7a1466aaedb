package tubemap

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bearing is one of the eight compass directions a line may travel in.
// The zero value is not a valid bearing.
type Bearing uint8

// Compass bearings, clockwise from north.
const (
	North Bearing = iota + 1
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// bearings lists the valid bearings in table order.
var bearings = [...]Bearing{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var bearingNames = [...]string{
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
}

// bearingVectors maps each bearing to its integer direction vector.
// N is +y: grid coordinates are y-up, the scales flip them for display.
var bearingVectors = [...]Vec2{
	North:     {0, 1},
	NorthEast: {1, 1},
	East:      {1, 0},
	SouthEast: {1, -1},
	South:     {0, -1},
	SouthWest: {-1, -1},
	West:      {-1, 0},
	NorthWest: {-1, 1},
}

// bySign is the reverse table, indexed by signIndex of a direction vector.
var bySign = func() [9]Bearing {
	var t [9]Bearing
	for _, b := range bearings {
		v := bearingVectors[b]
		t[signIndex(v)] = b
	}
	return t
}()

func signIndex(v Vec2) int {
	return (sign(v.X)+1)*3 + sign(v.Y) + 1
}

// Valid reports whether b is one of the eight compass bearings.
func (b Bearing) Valid() bool {
	return b >= North && b <= NorthWest
}

// String returns the upper-case symbol of the bearing, e.g. "NE".
func (b Bearing) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Bearing(%d)", uint8(b))
	}
	return bearingNames[b]
}

// Vector returns the integer direction vector of b, or the zero vector if b
// is not valid.
func (b Bearing) Vector() Vec2 {
	if !b.Valid() {
		return Vec2{}
	}
	return bearingVectors[b]
}

// Tangent returns the unit vector in the direction of b.
func (b Bearing) Tangent() Vec2 {
	return b.Vector().Normalize()
}

// Opposite returns the bearing pointing the other way.
func (b Bearing) Opposite() Bearing {
	if !b.Valid() {
		return b
	}
	return bearings[(int(b)-1+4)%len(bearings)]
}

// MarshalText implements encoding.TextMarshaler.
func (b Bearing) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, &BearingError{Input: b.String()}
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Symbols are matched
// case-insensitively.
func (b *Bearing) UnmarshalText(text []byte) error {
	parsed, err := ParseBearing(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBearing returns the bearing named by s, ignoring case.
func ParseBearing(s string) (Bearing, error) {
	// Casers are stateful, so each call gets its own.
	key := cases.Upper(language.Und).String(s)
	for _, b := range bearings {
		if bearingNames[b] == key {
			return b, nil
		}
	}
	return 0, &BearingError{Input: key}
}

// DirectionVector returns the direction vector of the named compass bearing.
func DirectionVector(bearing string) (Vec2, error) {
	b, err := ParseBearing(bearing)
	if err != nil {
		return Vec2{}, err
	}
	return b.Vector(), nil
}

// CompassBearing returns the bearing whose direction vector is parallel to v
// (same sense). Only multiples of 45 degrees have a bearing.
func CompassBearing(v Vec2) (Bearing, error) {
	if v.IsZero() {
		return 0, fmt.Errorf("%w: %v", ErrNoMatchingBearing, v)
	}
	a := v.Abs()
	if a.X != 0 && a.Y != 0 && a.X != a.Y {
		return 0, fmt.Errorf("%w: %v", ErrNoMatchingBearing, v)
	}
	return bySign[signIndex(v)], nil
}
