package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveProjectRoot returns the absolute project root to scan under.
//
// An explicit root always wins. Otherwise the root is derived from the
// executable's own location, two directory levels up: the tool is expected
// to be deployed in a subdirectory of the project (e.g. scripts/licmedic/),
// so its grandparent directory is the project root.
func ResolveProjectRoot(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("invalid project root %q: %w", explicit, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("project root %q: %w", explicit, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project root %q is not a directory", explicit)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable to derive project root: %w", err)
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// DiscoverFiles recursively enumerates files under dir whose names end in
// one of the target extensions. filepath.WalkDir visits entries in lexical
// order, so the result is deterministic.
func DiscoverFiles(dir string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if hasTargetExtension(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func hasTargetExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// relSlashPath returns path relative to root with forward-slash separators,
// the canonical form used for exclusion matching and reporting.
func relSlashPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
