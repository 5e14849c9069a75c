package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_File(t *testing.T) {
	tempDir := t.TempDir()
	srcFile := filepath.Join(tempDir, "source.txt")
	dstFile := filepath.Join(tempDir, "destination.txt")

	content := "Hello, World!"
	require.NoError(t, os.WriteFile(srcFile, []byte(content), 0o644))

	require.NoError(t, Move(srcFile, dstFile))

	moved, err := os.ReadFile(dstFile)
	require.NoError(t, err)
	assert.Equal(t, content, string(moved))

	_, err = os.Stat(srcFile)
	assert.True(t, os.IsNotExist(err))
}

func TestMove_Directory(t *testing.T) {
	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src")
	dstDir := filepath.Join(tempDir, "dst")

	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "nested", "b.txt"), []byte("b"), 0o644))

	require.NoError(t, Move(srcDir, dstDir))

	b, err := os.ReadFile(filepath.Join(dstDir, "nested", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(b))

	_, err = os.Stat(srcDir)
	assert.True(t, os.IsNotExist(err))
}

func TestMove_EmptyPaths(t *testing.T) {
	assert.Error(t, Move("", "/tmp/x"))
	assert.Error(t, Move("/tmp/x", ""))
}

func TestCopy_OverwritesExisting(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src.txt")
	dst := filepath.Join(tempDir, "dst.txt")

	require.NoError(t, os.WriteFile(src, []byte("new content"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	require.NoError(t, Copy(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(got))

	// Source stays in place.
	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestCopyDir(t *testing.T) {
	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src")
	dstDir := filepath.Join(tempDir, "dst")

	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "sub", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "top.txt"), []byte("top"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "sub", "deep", "leaf.txt"), []byte("leaf"), 0o644))

	require.NoError(t, CopyDir(context.Background(), srcDir, dstDir))

	top, err := os.ReadFile(filepath.Join(dstDir, "top.txt"))
	require.NoError(t, err)
	assert.Equal(t, "top", string(top))

	leaf, err := os.ReadFile(filepath.Join(dstDir, "sub", "deep", "leaf.txt"))
	require.NoError(t, err)
	assert.Equal(t, "leaf", string(leaf))
}

func TestCopyDir_Cancelled(t *testing.T) {
	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("a"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := CopyDir(ctx, srcDir, filepath.Join(tempDir, "dst"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCopyDir_SourceIsFile(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "file.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	err := CopyDir(context.Background(), src, filepath.Join(tempDir, "dst"))
	assert.Error(t, err)
}
