package glyphgrid

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder.
	_ "image/jpeg" // Register JPEG format decoder.
	_ "image/png"  // Register PNG format decoder.
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder.
	_ "golang.org/x/image/tiff" // Register TIFF format decoder.
	_ "golang.org/x/image/webp" // Register WebP format decoder.
)

// Load opens and decodes the image at path. Any format with a registered
// decoder is accepted: PNG, JPEG, GIF, BMP, TIFF, and WebP.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // Input path from CLI argument is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing %s: %v\n", path, closeErr)
		}
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrReadInput, path, err)
	}

	return img, nil
}
