package hexcolor

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat indicates a string that is not a 3- or 6-digit hex
// color.
var ErrInvalidFormat = errors.New("invalid hex color")

// Normalize converts a 3- or 6-digit hex color string, with or without a
// leading "#", into the canonical lowercase "#rrggbb" form. The 3-digit
// shorthand expands each digit by duplication ("f0c" becomes "ff00cc").
func Normalize(s string) (string, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(s) {
	case 3:
		var sb strings.Builder

		for _, c := range s {
			sb.WriteRune(c)
			sb.WriteRune(c)
		}

		s = sb.String()

	case 6:
		// Already full form.

	default:
		return "", fmt.Errorf("%w: %q must be like \"#fff\" or \"#ffffff\"", ErrInvalidFormat, s)
	}

	s = "#" + strings.ToLower(s)

	// Reject non-hex digits.
	_, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return s, nil
}

// Parse normalizes s and returns it as an opaque color.
func Parse(s string) (color.NRGBA, error) {
	hex, err := Normalize(s)
	if err != nil {
		return color.NRGBA{}, err
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	r, g, b := c.RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
