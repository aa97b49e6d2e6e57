package mock

import atbs "github.com/Fawaz-I/automate-the-boring-stuff"

var _ atbs.FileSystem = (*FileSystem)(nil)

// FileSystem is a mock implementation of atbs.FileSystem.
type FileSystem struct {
	MkdirAllFn  func(path string) error
	WriteFileFn func(path string, data []byte) error
}

func (fs *FileSystem) MkdirAll(path string) error {
	return fs.MkdirAllFn(path)
}

func (fs *FileSystem) WriteFile(path string, data []byte) error {
	return fs.WriteFileFn(path, data)
}
