package glyphgrid

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
)

// Sentinel errors returned by the conversion pipeline.
var (
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
	ErrInvalidScale  = errors.New("invalid scale percent")
	ErrInvalidAspect = errors.New("invalid aspect ratio")
	ErrInvalidGlyph  = errors.New("invalid glyph")
)

// DefaultGlyph is the full-block character used when no glyph is
// configured.
const DefaultGlyph = "█"

// MaxLabelChars is the character ceiling of a single rich-text display
// label. Output documents above this size should be chunked across
// multiple labels.
const MaxLabelChars = 32768

// Converter turns a raster image into a grid of colored text glyphs.
//
// Create instances with [NewConverter]. A Converter is immutable and can
// be reused across images.
type Converter struct {
	glyph        string
	scalePercent float64
	aspectRatio  float64
	background   color.NRGBA
	richText     bool
	keepAlpha    bool
}

// Option configures a Converter.
type Option func(*Converter)

// NewConverter creates a Converter with the given options, validating the
// resulting configuration.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		glyph:        DefaultGlyph,
		scalePercent: 25.0,
		aspectRatio:  0.5,
		background:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		richText:     true,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.scalePercent <= 0 {
		return nil, fmt.Errorf("%w: %v must be > 0", ErrInvalidScale, c.scalePercent)
	}

	// The renderer divides by the aspect ratio when mapping text rows back
	// to pixel rows, so zero and negative values are rejected up front.
	if c.aspectRatio <= 0 {
		return nil, fmt.Errorf("%w: %v must be > 0", ErrInvalidAspect, c.aspectRatio)
	}

	if c.glyph == "" {
		return nil, fmt.Errorf("%w: glyph must not be empty", ErrInvalidGlyph)
	}

	return c, nil
}

// WithScalePercent sets the sampling scale as a percentage of the source
// dimensions. The default is 25.
func WithScalePercent(percent float64) Option {
	return func(c *Converter) {
		c.scalePercent = percent
	}
}

// WithAspectRatio sets the row-count multiplier compensating for glyph
// cells being taller than wide. The default is 0.5.
func WithAspectRatio(ratio float64) Option {
	return func(c *Converter) {
		c.aspectRatio = ratio
	}
}

// WithGlyph sets the glyph emitted per sampled pixel. The default is
// [DefaultGlyph].
func WithGlyph(glyph string) Option {
	return func(c *Converter) {
		c.glyph = glyph
	}
}

// WithRichText toggles wrapping each glyph in a rich-text color tag.
// Enabled by default; when disabled, cells carry no color information.
func WithRichText(enabled bool) Option {
	return func(c *Converter) {
		c.richText = enabled
	}
}

// WithBackground sets the background color that transparent source pixels
// are flattened onto. The default is white.
func WithBackground(bg color.NRGBA) Option {
	return func(c *Converter) {
		c.background = bg
	}
}

// WithKeepAlpha skips background compositing. Transparency is discarded
// by the opaque conversion rather than blended, which is lossy.
func WithKeepAlpha() Option {
	return func(c *Converter) {
		c.keepAlpha = true
	}
}

// Convert runs the pipeline on img and returns the rendered grid.
//
// The flattened image is resized to scalePercent of its original
// dimensions (floored, at least 1x1) with Lanczos resampling, then
// renderedH = max(1, floor(newH*aspect)) text rows are rendered by
// mapping each row back to its nearest pixel row and sampling one color
// per column.
func (c *Converter) Convert(img image.Image) *Result {
	flat := c.flatten(img)

	bounds := flat.Bounds()
	scale := c.scalePercent / 100

	newW := max(1, int(float64(bounds.Dx())*scale))
	newH := max(1, int(float64(bounds.Dy())*scale))

	sampled := imaging.Resize(flat, newW, newH, imaging.Lanczos)

	renderedH := max(1, int(float64(newH)*c.aspectRatio))

	lines := make([]string, 0, renderedH)
	colors := make([][]color.NRGBA, 0, renderedH)

	var sb strings.Builder

	for y := range renderedH {
		// Map the text row back to the sampling image row, the inverse of
		// the aspect scaling, clamped into bounds.
		mappedY := int(math.Round(float64(y) / c.aspectRatio))
		mappedY = min(max(mappedY, 0), newH-1)

		sb.Reset()

		row := make([]color.NRGBA, newW)

		for x := range newW {
			px := sampled.NRGBAAt(x, mappedY)
			row[x] = px

			if c.richText {
				fmt.Fprintf(&sb, "<font color=\"#%02x%02x%02x\">%s</font>", px.R, px.G, px.B, c.glyph)
			} else {
				sb.WriteString(c.glyph)
			}
		}

		lines = append(lines, sb.String())
		colors = append(colors, row)
	}

	return &Result{
		lines:  lines,
		colors: colors,
		glyph:  c.glyph,
		width:  newW,
		height: renderedH,
	}
}
