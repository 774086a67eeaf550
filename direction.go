package rtltext

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned by ParseDirection for anything other than
// "ltr" or "rtl".
var ErrInvalidDirection = errors.New("invalid text direction")

// Direction represents the writing direction of a text field.
type Direction int

const (
	// LTR is left-to-right, the zero value.
	LTR Direction = iota
	// RTL is right-to-left (Hebrew, Arabic, ...).
	RTL
)

// String returns the HTML dir attribute value for the direction.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		return "unknown"
	}
}

// IsRTL reports whether d is RTL.
func (d Direction) IsRTL() bool {
	return d == RTL
}

// ParseDirection parses an HTML dir attribute value ("ltr" or "rtl", any case).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	default:
		return LTR, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// directionOf maps a classification result onto a Direction.
func directionOf(rtl bool) Direction {
	if rtl {
		return RTL
	}
	return LTR
}
