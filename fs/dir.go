// Package fs provides the on-disk implementation of atbs.FileSystem.
package fs

import (
	"os"
	"path/filepath"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
)

// Ensure Dir implements atbs.FileSystem at compile time.
var _ atbs.FileSystem = (*Dir)(nil)

// Dir writes files below a root directory.
// Files are replaced whole: data goes to a temporary file in the target
// directory which is then renamed over the destination.
type Dir struct {
	root string
}

// NewDir creates a Dir rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// MkdirAll creates path and any missing parents below the root.
func (d *Dir) MkdirAll(path string) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(full, 0755)
}

// WriteFile replaces the file at path with data.
func (d *Dir) WriteFile(path string, data []byte) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(full)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), full)
}

// resolve maps a slash-separated bundle path to a path below the root.
func (d *Dir) resolve(path string) (string, error) {
	p := filepath.FromSlash(path)
	if p == "." || p == "" {
		return d.root, nil
	}
	if !filepath.IsLocal(p) {
		return "", atbs.Errorf(atbs.EINVALID, "path traversal: %q escapes %s", path, d.root)
	}
	return filepath.Join(d.root, p), nil
}
