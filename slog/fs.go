package slog

import (
	"log/slog"
	"time"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
)

// Ensure LoggingFileSystem implements atbs.FileSystem.
var _ atbs.FileSystem = (*LoggingFileSystem)(nil)

// LoggingFileSystem wraps a FileSystem with debug logging of writes.
type LoggingFileSystem struct {
	next   atbs.FileSystem
	logger *slog.Logger
}

// NewLoggingFileSystem creates a new LoggingFileSystem.
func NewLoggingFileSystem(next atbs.FileSystem, logger *slog.Logger) *LoggingFileSystem {
	return &LoggingFileSystem{next: next, logger: logger}
}

// MkdirAll delegates to the wrapped file system. Only failures are logged.
func (fs *LoggingFileSystem) MkdirAll(path string) error {
	err := fs.next.MkdirAll(path)
	if err != nil {
		fs.logger.Error("mkdir", "path", path, "err", err)
	}
	return err
}

// WriteFile delegates to the wrapped file system and logs the operation.
func (fs *LoggingFileSystem) WriteFile(path string, data []byte) (err error) {
	defer func(begin time.Time) {
		fs.logger.Info("write",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return fs.next.WriteFile(path, data)
}
