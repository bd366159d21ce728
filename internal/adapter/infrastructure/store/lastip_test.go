//go:build unit

package store

import (
	"os"
	"path/filepath"
	"testing"

	"macnetconfig/internal/adapter/infrastructure/file"
	"macnetconfig/internal/mock"
	"macnetconfig/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDefaultPath(t *testing.T) {
	t.Run("UnderAppSupport", func(t *testing.T) {
		t.Setenv("HOME", "/Users/alex")

		path, err := DefaultPath("MacNetConfig")
		require.NoError(t, err)
		assert.Equal(t, "/Users/alex/Library/Application Support/MacNetConfig/last_ip.txt", path)
	})

	t.Run("MissingHome", func(t *testing.T) {
		t.Setenv("HOME", "")

		_, err := DefaultPath("MacNetConfig")
		assert.ErrorIs(t, err, config.ErrNoHome)
	})
}

func TestLastIPAdapter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Library", "Application Support", "MacNetConfig", FileName)
	s := NewLastIPAdapter(StaticPath(path), file.NewManagerAdapter())

	t.Run("MissingFile", func(t *testing.T) {
		ip, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, ip)
	})

	t.Run("SaveCreatesDirectories", func(t *testing.T) {
		require.NoError(t, s.Save("192.168.50.50"))

		ip, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, "192.168.50.50", ip)
	})

	t.Run("SaveTrims", func(t *testing.T) {
		require.NoError(t, s.Save("  192.168.50.51\n"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "192.168.50.51", string(data))

		ip, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, "192.168.50.51", ip)
	})

	t.Run("BlankFile", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(" \n\t"), 0644))

		ip, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, ip)
	})

	t.Run("HandEditedFile", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("192.168.50.77\n"), 0644))

		ip, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, "192.168.50.77", ip)
	})
}

func TestLastIPAdapter_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileMgr := mock.NewMockFileManager(ctrl)
	s := NewLastIPAdapter(StaticPath("/state/last_ip.txt"), fileMgr)

	t.Run("ReadFailure", func(t *testing.T) {
		fileMgr.EXPECT().FileExists("/state/last_ip.txt").Return(true)
		fileMgr.EXPECT().ReadFile("/state/last_ip.txt").Return(nil, assert.AnError)

		_, err := s.Load()
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "read last ip")
	})

	t.Run("MkdirFailureSkipsWrite", func(t *testing.T) {
		fileMgr.EXPECT().MkdirAll("/state", gomock.Any()).Return(assert.AnError)

		err := s.Save("192.168.50.10")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "create state dir")
	})

	t.Run("WriteFailure", func(t *testing.T) {
		fileMgr.EXPECT().MkdirAll("/state", gomock.Any()).Return(nil)
		fileMgr.EXPECT().WriteFile("/state/last_ip.txt", []byte("192.168.50.10"), gomock.Any()).Return(assert.AnError)

		err := s.Save("192.168.50.10")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "write last ip")
	})
}

func TestLastIPAdapter_MissingHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Setenv("HOME", "")

	// No file access happens without a path.
	fileMgr := mock.NewMockFileManager(ctrl)
	s := NewLastIPAdapter(AppSupportPath("MacNetConfig"), fileMgr)

	_, err := s.Load()
	assert.ErrorIs(t, err, config.ErrNoHome)

	err = s.Save("192.168.50.10")
	assert.ErrorIs(t, err, config.ErrNoHome)

	_, err = s.Path()
	assert.ErrorIs(t, err, config.ErrNoHome)
}

func TestLastIPAdapter_ResolvesHomeOnEachCall(t *testing.T) {
	s := NewLastIPAdapter(AppSupportPath("MacNetConfig"), file.NewManagerAdapter())

	t.Setenv("HOME", "")
	_, err := s.Load()
	require.ErrorIs(t, err, config.ErrNoHome)

	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, s.Save("192.168.50.60"))

	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "MacNetConfig", FileName), path)

	ip, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "192.168.50.60", ip)
}
