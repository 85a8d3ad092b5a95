package glyphgrid

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes the result's output document as UTF-8 text to path,
// creating parent directories as needed and overwriting any existing
// content.
func WriteFile(path string, r *Result) error {
	dir := filepath.Dir(path)
	if dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}

	err := os.WriteFile(path, []byte(r.Text()), 0o644) //nolint:gosec // Output is a plain text document.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
