package atbs

// FileSystem persists bundle files. Paths are slash-separated and relative
// to the root the implementation was created with.
type FileSystem interface {
	// MkdirAll creates the directory and any missing parents.
	MkdirAll(path string) error

	// WriteFile replaces the file at path with data, creating parent
	// directories as needed.
	WriteFile(path string, data []byte) error
}
