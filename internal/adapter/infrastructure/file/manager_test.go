//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_WriteAndReadFile(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "last_ip.txt")
	testContent := []byte("192.168.50.10")

	t.Run("WriteFile", func(t *testing.T) {
		err := adapter.WriteFile(testFile, testContent, 0644)
		assert.NoError(t, err)

		info, err := os.Stat(testFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("ReadFile", func(t *testing.T) {
		content, err := adapter.ReadFile(testFile)
		assert.NoError(t, err)
		assert.Equal(t, testContent, content)
	})

	t.Run("OverwriteLeavesNoTempFiles", func(t *testing.T) {
		require.NoError(t, adapter.WriteFile(testFile, []byte("192.168.50.11"), 0644))

		content, err := adapter.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, "192.168.50.11", string(content))

		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("FileExists", func(t *testing.T) {
		assert.True(t, adapter.FileExists(testFile))
		assert.False(t, adapter.FileExists(filepath.Join(tempDir, "nonexistent.txt")))
	})
}

func TestManagerAdapter_MkdirAllAndRemove(t *testing.T) {
	adapter := NewManagerAdapter()
	dir := filepath.Join(t.TempDir(), "Library", "Application Support", "MacNetConfig")

	require.NoError(t, adapter.MkdirAll(dir, 0755))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	file := filepath.Join(dir, "state")
	require.NoError(t, adapter.WriteFile(file, []byte("x"), 0600))
	require.NoError(t, adapter.Remove(file))
	assert.False(t, adapter.FileExists(file))

	// Removing again is fine
	assert.NoError(t, adapter.Remove(file))
}

func TestManagerAdapter_ReadFile_NonExistent(t *testing.T) {
	adapter := NewManagerAdapter()

	_, err := adapter.ReadFile("/nonexistent/file.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestManagerAdapter_WriteFile_InvalidPath(t *testing.T) {
	adapter := NewManagerAdapter()

	err := adapter.WriteFile("/nonexistent/directory/file.txt", []byte("test"), 0644)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}
