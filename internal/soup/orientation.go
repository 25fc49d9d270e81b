package soup

import (
	"fmt"
	"strings"
)

// Orientation is the direction a word is written in.
// The zero value is not a valid orientation.
type Orientation int

const (
	// Horizontal writes left to right along a row.
	Horizontal Orientation = iota + 1
	// Vertical writes top to bottom along a column.
	Vertical
	// Diagonal writes top-left to bottom-right.
	Diagonal
)

// Orientations lists every valid orientation in sampling order.
var Orientations = []Orientation{Horizontal, Vertical, Diagonal}

var orientationNames = map[Orientation]string{
	Horizontal: "horizontal",
	Vertical:   "vertical",
	Diagonal:   "diagonal",
}

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Valid reports whether o is one of the defined orientations.
func (o Orientation) Valid() bool {
	_, ok := orientationNames[o]
	return ok
}

// Step returns the row and column delta between consecutive letters.
func (o Orientation) Step() (dRow, dCol int) {
	switch o {
	case Horizontal:
		return 0, 1
	case Vertical:
		return 1, 0
	case Diagonal:
		return 1, 1
	default:
		panic(fmt.Sprintf("soup: invalid orientation %d", int(o)))
	}
}

// ParseOrientation converts a name such as "vertical" into an Orientation.
// Matching is case-insensitive.
func ParseOrientation(s string) (Orientation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for o, n := range orientationNames {
		if n == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// MarshalText encodes the orientation by name.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes an orientation name.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
