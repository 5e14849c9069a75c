// Package fsutil provides the file system primitives the install pipeline
// is built on: atomic-ish moves, copies, cancellation-aware directory
// copies and backup path generation.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
)

// Move moves a file or directory from src to dst. It first attempts
// os.Rename for an atomic move and falls back to copy + delete when the
// rename fails on a cross-filesystem boundary.
func Move(src, dst string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("source and destination paths cannot be empty")
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source %s: %w", src, err)
	}

	if !srcInfo.IsDir() {
		if err := os.MkdirAll(filepath.Dir(dst), DirModeDefault); err != nil {
			return fmt.Errorf("failed to create destination directory for %s: %w", dst, err)
		}
	}

	err = os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossFilesystemError(err) {
		return fmt.Errorf("failed to rename %s to %s: %w", src, dst, err)
	}

	if srcInfo.IsDir() {
		if err := CopyDir(context.Background(), src, dst); err != nil {
			return err
		}
		if err := os.RemoveAll(src); err != nil {
			return fmt.Errorf("failed to remove source directory %s after copy: %w", src, err)
		}
		return nil
	}
	return moveFile(src, dst)
}

// isCrossFilesystemError reports whether a rename failure indicates a
// cross-device boundary that requires the copy + delete fallback.
func isCrossFilesystemError(err error) bool {
	if err == nil {
		return false
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		if errno, ok := linkErr.Err.(syscall.Errno); ok {
			return errno == syscall.EXDEV
		}
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return isCrossFilesystemError(pathErr.Err)
	}

	// String matching fallback for platforms where EXDEV is not surfaced
	// as a syscall errno (notably Windows).
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "cross-device") || strings.Contains(msg, "cross device") {
		return true
	}
	if runtime.GOOS == "windows" {
		return strings.Contains(msg, "device")
	}
	return false
}

func moveFile(src, dst string) error {
	if err := Copy(src, dst); err != nil {
		return fmt.Errorf("failed to copy file %s to %s: %w", src, dst, err)
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		_ = os.Remove(src)
		return fmt.Errorf("failed to stat source file after copy: %w", err)
	}
	if err := os.Chmod(dst, srcInfo.Mode()); err != nil {
		_ = os.Remove(src)
		return fmt.Errorf("failed to set permissions on %s: %w", dst, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove source file %s after copy: %w", src, err)
	}
	return nil
}

// Copy copies the contents of srcFile to dstFile, overwriting dstFile if it
// already exists.
func Copy(srcFile, dstFile string) error {
	src, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}

// CopyDir recursively copies the contents of srcDir into dstDir, creating
// directories as needed and overwriting existing files. It walks the tree
// depth-first with an explicit stack rather than recursion and checks the
// context before each directory visit, so deep trees neither exhaust the
// call stack nor delay cancellation.
func CopyDir(ctx context.Context, srcDir, dstDir string) error {
	srcInfo, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("failed to stat source directory %s: %w", srcDir, err)
	}
	if !srcInfo.IsDir() {
		return fmt.Errorf("source %s is not a directory", srcDir)
	}

	type dirPair struct {
		src string
		dst string
	}
	stack := []dirPair{{src: srcDir, dst: dstDir}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := os.MkdirAll(cur.dst, DirModeDefault); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", cur.dst, err)
		}

		entries, err := os.ReadDir(cur.src)
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", cur.src, err)
		}
		for _, entry := range entries {
			srcPath := filepath.Join(cur.src, entry.Name())
			dstPath := filepath.Join(cur.dst, entry.Name())
			if entry.IsDir() {
				stack = append(stack, dirPair{src: srcPath, dst: dstPath})
				continue
			}
			if err := Copy(srcPath, dstPath); err != nil {
				return err
			}
			info, err := entry.Info()
			if err != nil {
				return fmt.Errorf("failed to get file info for %s: %w", srcPath, err)
			}
			if err := os.Chmod(dstPath, info.Mode().Perm()); err != nil {
				return fmt.Errorf("failed to set permissions on %s: %w", dstPath, err)
			}
		}
	}
	return nil
}

// CreateFilePerm creates a new file with the specified permissions,
// truncating it if it already exists.
func CreateFilePerm(name string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
}

// EnsureDir creates a directory and all necessary parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't exist.
func EnsureFileDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}
