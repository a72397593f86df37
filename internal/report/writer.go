package report

import (
	"os"
	"path/filepath"

	"github.com/sysdash/sysdash/internal/errors"
)

// Write stores the assembled document at path as UTF-8 text, creating
// parent directories as needed and overwriting any existing file.
// Returns the absolute path of the written file.
func Write(path, doc string) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrWrite,
				"Failed to create output directory "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrWrite,
			"Failed to write "+path,
			"Check the output path is writable")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		// Still written; fall back to the relative path for display.
		return path, nil
	}
	return abs, nil
}
