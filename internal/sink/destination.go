package sink

import (
	"os"
	"path/filepath"
)

// ResolveDestination turns the path of a selected asset into the directory
// new assets should go to: a selected directory is used as is, a selected
// file contributes its parent directory. Anything else yields "" so the
// sink falls back to DefaultDirectory. The result is relative to root.
func ResolveDestination(root, selected string) string {
	if selected == "" {
		return ""
	}

	path := selected
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, filepath.FromSlash(selected))
	}
	if !within(root, path) {
		return ""
	}

	if isDir(path) {
		return relSlash(root, path)
	}

	parent := filepath.Dir(path)
	if parent != path && isDir(parent) && within(root, parent) {
		return relSlash(root, parent)
	}
	return ""
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}
