package network

import "github.com/pkg/errors"

var (
	// ErrUnknownStation is returned when a node names a station that the
	// definition does not list.
	ErrUnknownStation = errors.New("network: unknown station")

	// ErrEmptyMap is returned when a map has no nodes to fit.
	ErrEmptyMap = errors.New("network: map has no nodes")

	// ErrInvalidColor is returned for colours that are neither a known name
	// nor a hex triplet.
	ErrInvalidColor = errors.New("network: invalid colour")

	// ErrInvalidMarker is returned for marker kinds other than station and
	// interchange.
	ErrInvalidMarker = errors.New("network: invalid marker kind")
)
