package network

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseColor parses a CSS colour: a hex triplet such as "#0098D4" or "#fc0",
// or an SVG colour keyword such as "darkgreen".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	if c, ok := colornames.Map[cases.Lower(language.Und).String(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
}

func parseHex(hex string) (color.RGBA, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q has %d digits", "#"+hex, len(hex))
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", "#"+hex)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ParsedColor returns the parsed colour of the line, or black with ok false if
// it cannot be parsed.
func (l *Line) ParsedColor() (c color.RGBA, ok bool) {
	c, err := ParseColor(l.Color)
	if err != nil {
		return color.RGBA{A: 0xff}, false
	}
	return c, true
}
