package filesystems_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/environhelper/environhelper/internal/errors"
	"github.com/environhelper/environhelper/internal/filesystems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS_WriteAndRead(t *testing.T) {
	lfs := filesystems.NewLocalFS()
	target := filepath.Join(t.TempDir(), ".env")

	require.NoError(t, lfs.WriteFile(target, []byte("DEBUG=True")))
	require.NoError(t, lfs.WriteFile(target, []byte("DEBUG=False")))

	content, err := lfs.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG=False", string(content))

	info, err := lfs.Stat(target)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestLocalFS_WriteFile_MissingParent(t *testing.T) {
	lfs := filesystems.NewLocalFS()
	target := filepath.Join(t.TempDir(), "missing", ".env")

	require.Error(t, lfs.WriteFile(target, []byte("DEBUG=True")))

	_, err := os.Stat(target)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLocalFS_Stat_NotFound(t *testing.T) {
	_, err := filesystems.NewLocalFS().Stat(filepath.Join(t.TempDir(), "settings.py"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
