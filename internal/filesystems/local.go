package filesystems

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// LocalFS implements FileSystem for local filesystem access
type LocalFS struct{}

// NewLocalFS creates a new LocalFS instance
func NewLocalFS() *LocalFS {
	return &LocalFS{}
}

func (lfs *LocalFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes through a temporary file in the same directory and
// renames it over name, keeping the mode of an existing file.
func (lfs *LocalFS) WriteFile(name string, data []byte) error {
	return atomic.WriteFile(name, bytes.NewReader(data))
}

func (lfs *LocalFS) Stat(name string) (FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return info, nil
}
