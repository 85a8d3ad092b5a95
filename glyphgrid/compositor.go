package glyphgrid

import (
	"image"

	"github.com/disintegration/imaging"
)

// flatten produces an opaque NRGBA copy of img, sized identically.
//
// Images whose pixel format carries an alpha channel (or a palette with a
// non-opaque entry) are alpha-blended over a solid canvas of the
// background color, straight-alpha src-over per channel. Everything else
// converts directly.
//
// In keep-alpha mode the blend is skipped entirely and any transparency is
// discarded by the conversion. This is a caller-acknowledged lossy mode.
func (c *Converter) flatten(img image.Image) *image.NRGBA {
	if c.keepAlpha || !hasTransparency(img) {
		return imaging.Clone(img)
	}

	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), c.background)

	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// hasTransparency reports whether the image's pixel format can carry
// transparency, either directly through an alpha channel or through a
// palette with a non-opaque entry.
func hasTransparency(img image.Image) bool {
	switch src := img.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64, *image.Alpha, *image.Alpha16:
		return true

	case *image.Paletted:
		for _, entry := range src.Palette {
			_, _, _, a := entry.RGBA()
			if a < 0xffff {
				return true
			}
		}
	}

	return false
}
