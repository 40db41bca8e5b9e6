package filesystems

import (
	"io/fs"
	"path"
	"sync"
	"time"

	"github.com/environhelper/environhelper/internal/errors"
)

var errIsDir = errors.New("is a directory")

// MemoryFS implements FileSystem for in-memory filesystem operations
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFS creates a new MemoryFS instance
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile adds a file to the memory filesystem, creating parent directories
func (mfs *MemoryFS) AddFile(name string, content []byte) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	cleanName := path.Clean(name)
	mfs.files[cleanName] = content
	mfs.addParents(cleanName)
}

// AddDir adds a directory to the memory filesystem
func (mfs *MemoryFS) AddDir(name string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	cleanName := path.Clean(name)
	mfs.dirs[cleanName] = true
	mfs.addParents(cleanName)
}

func (mfs *MemoryFS) addParents(name string) {
	dir := path.Dir(name)
	for dir != "." && dir != "/" {
		mfs.dirs[dir] = true
		dir = path.Dir(dir)
	}
}

func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	cleanName := path.Clean(name)
	if mfs.dirs[cleanName] {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errIsDir}
	}
	content, exists := mfs.files[cleanName]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), content...), nil
}

// WriteFile requires the parent directory to exist, like os.WriteFile
func (mfs *MemoryFS) WriteFile(name string, data []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	cleanName := path.Clean(name)
	if mfs.dirs[cleanName] {
		return &fs.PathError{Op: "write", Path: name, Err: errIsDir}
	}
	if dir := path.Dir(cleanName); dir != "." && dir != "/" && !mfs.dirs[dir] {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	mfs.files[cleanName] = append([]byte(nil), data...)
	return nil
}

func (mfs *MemoryFS) Stat(name string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	cleanName := path.Clean(name)
	if mfs.dirs[cleanName] || cleanName == "." {
		return &memoryFileInfo{
			name:  path.Base(cleanName),
			mode:  fs.ModeDir | 0755,
			isDir: true,
		}, nil
	}

	content, exists := mfs.files[cleanName]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return &memoryFileInfo{
		name: path.Base(cleanName),
		size: int64(len(content)),
		mode: 0644,
	}, nil
}

// memoryFileInfo implements FileInfo for memory filesystem
type memoryFileInfo struct {
	name  string
	size  int64
	mode  fs.FileMode
	isDir bool
}

func (fi *memoryFileInfo) Name() string {
	return fi.name
}

func (fi *memoryFileInfo) Size() int64 {
	return fi.size
}

func (fi *memoryFileInfo) Mode() fs.FileMode {
	return fi.mode
}

func (fi *memoryFileInfo) ModTime() time.Time {
	return time.Time{}
}

func (fi *memoryFileInfo) IsDir() bool {
	return fi.isDir
}
