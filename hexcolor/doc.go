// Package hexcolor normalizes and parses CSS-style hex color strings.
//
// Both the 3-digit shorthand ("#f0c") and the full 6-digit form
// ("#ff00cc") are accepted, with or without the leading "#". [Normalize]
// produces the canonical lowercase "#rrggbb" form, and [Parse] returns the
// color as an opaque [image/color.NRGBA].
package hexcolor
