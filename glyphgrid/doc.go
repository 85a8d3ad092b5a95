// Package glyphgrid converts raster images into grids of colored text
// glyphs for rich-text display.
//
// The conversion is a linear pipeline: load an image, flatten any
// transparency onto a solid background color, resize for color sampling,
// apply an aspect-ratio correction to the row count, then render one
// styled glyph per sampled pixel. In rich-text mode each cell is the glyph
// wrapped in a <font color="#rrggbb"> tag; in plain mode it is the bare
// glyph.
//
// Aspect correction compensates for monospace glyphs being taller than
// wide: with the default ratio of 0.5, every text row covers two pixel
// rows, preserving the image's visual proportions.
//
// Typical usage creates a [Converter], converts a loaded image, and
// writes the result:
//
//	conv, err := glyphgrid.NewConverter(
//		glyphgrid.WithScalePercent(25),
//		glyphgrid.WithBackground(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
//	)
//	if err != nil {
//		return err
//	}
//
//	img, err := glyphgrid.Load("input.png")
//	if err != nil {
//		return err
//	}
//
//	res := conv.Convert(img)
//
//	err = glyphgrid.WriteFile("output_all.txt", res)
//
// [Config] provides the same pipeline configured from CLI flags via
// [github.com/spf13/pflag], with shell completion support via
// [github.com/spf13/cobra] and optional YAML flag defaults.
package glyphgrid
