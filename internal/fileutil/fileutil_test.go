package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("export type A = 'a' | 'b';\n"), 0o644))
}

func TestFindFile(t *testing.T) {
	t.Run("direct child", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, TypesFileName))
		touch(t, filepath.Join(dir, "nested", TypesFileName))

		got, err := FindFile(dir, TypesFileName)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, TypesFileName), got)
	})

	t.Run("shallowest subdirectory wins", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "a", "deep", TypesFileName))
		touch(t, filepath.Join(dir, "z", TypesFileName))

		got, err := FindFile(dir, TypesFileName)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "z", TypesFileName), got)
	})

	t.Run("node_modules is skipped", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "node_modules", "pkg", TypesFileName))

		_, err := FindFile(dir, TypesFileName)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := FindFile(filepath.Join(t.TempDir(), "absent"), TypesFileName)
		assert.Error(t, err)
	})

	t.Run("not a directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.ts")
		touch(t, file)
		_, err := FindFile(file, TypesFileName)
		assert.Error(t, err)
	})
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "enums.gen.ts")
	require.NoError(t, WriteFile(path, []byte("content")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}
