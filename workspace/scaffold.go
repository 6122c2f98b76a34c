package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Scaffold creates an empty raw sample and template file pair for a
// vendor+command, creating the raw sample directory if needed. Files that
// already exist are left untouched. The template directory is assumed to
// exist; it is part of the repository layout.
func Scaffold(vendor, command string, index int) error {
	rawPath, templatePath := Files(vendor, command, index)

	err := os.MkdirAll(filepath.Dir(rawPath), 0o755)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScaffold, err)
	}

	for _, path := range []string{rawPath, templatePath} {
		_, err := os.Stat(path)
		if err == nil {
			continue
		}

		err = os.WriteFile(path, nil, 0o644)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScaffold, err)
		}
	}

	return nil
}
