package filesystems

import (
	"io/fs"
	"time"
)

// FileSystem abstracts the file operations the generator needs, so runs can
// target the local disk or an in-memory tree in tests.
type FileSystem interface {
	// ReadFile reads the named file and returns its contents
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the named file with data. Implementations either
	// write everything or leave the previous file untouched.
	WriteFile(name string, data []byte) error

	// Stat returns file information for name
	Stat(name string) (FileInfo, error)
}

// FileInfo provides information about a file
type FileInfo interface {
	Name() string
	Size() int64
	Mode() fs.FileMode
	ModTime() time.Time
	IsDir() bool
}
