// Package archive provides the zip primitives the install pipeline relies
// on: full extraction, entry lookup and creating archives from directories.
package archive

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/fsutil"
	"github.com/mholt/archives"
)

// Manager handles archive extraction, inspection and creation.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// ExtractAll extracts all files from an archive to the specified destination
// directory.
func (am *Manager) ExtractAll(ctx context.Context, archivePath, destDir string) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidArchive, "failed to open %s: %v", archivePath, err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	if err := os.MkdirAll(destDir, fsutil.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	return fs.WalkDir(fsys, ".", func(entryPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return am.extractEntry(fsys, entryPath, destDir, d)
	})
}

// FindEntry scans the archive for an entry whose base file name equals name
// case-insensitively, in any subdirectory. It returns the entry's path
// inside the archive. A file that cannot be opened as an archive yields an
// error wrapping ErrInvalidArchive.
func (am *Manager) FindEntry(ctx context.Context, archivePath, name string) (string, bool, error) {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return "", false, errors.Wrapf(errors.ErrInvalidArchive, "failed to open %s: %v", archivePath, err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	var found string
	err = fs.WalkDir(fsys, ".", func(entryPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(path.Base(entryPath), name) {
			found = entryPath
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", false, errors.Wrapf(errors.ErrInvalidArchive, "failed to enumerate %s: %v", archivePath, err)
	}
	return found, found != "", nil
}

// ReadEntry returns the contents of a single entry inside the archive.
func (am *Manager) ReadEntry(ctx context.Context, archivePath, entryPath string) ([]byte, error) {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidArchive, "failed to open %s: %v", archivePath, err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	f, err := fsys.Open(entryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open entry %s: %w", entryPath, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %s: %w", entryPath, err)
	}
	return data, nil
}

// Create creates a zip archive from the contents of the specified source
// directory. The directory itself does not become a top-level entry.
func (am *Manager) Create(ctx context.Context, sourceDir, archivePath string) error {
	absolutePath, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for source directory: %w", err)
	}

	archiveFiles, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absolutePath + string(os.PathSeparator): "",
	})
	if err != nil {
		return fmt.Errorf("failed to read files from disk: %w", err)
	}

	if err := fsutil.EnsureFileDir(archivePath); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	file, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", archivePath, err)
	}
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	format := archives.Zip{}
	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	return nil
}

// extractEntry processes a single archive entry and writes it to destDir.
func (am *Manager) extractEntry(fsys fs.FS, entryPath, destDir string, d fs.DirEntry) error {
	if entryPath == "." {
		return nil
	}

	targetPath := filepath.Join(destDir, entryPath)

	if d.IsDir() {
		return os.MkdirAll(targetPath, fsutil.DirModeDefault)
	}

	info, err := d.Info()
	if err != nil {
		return fmt.Errorf("failed to get file info for %s: %w", entryPath, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return am.writeSymlink(fsys, entryPath, targetPath)
	}
	return am.writeRegularFile(fsys, entryPath, targetPath, info)
}

// writeSymlink creates a symlink at targetPath with contents from the archive entry.
func (am *Manager) writeSymlink(fsys fs.FS, entryPath, targetPath string) error {
	linkTarget, err := fsys.Open(entryPath)
	if err != nil {
		return fmt.Errorf("failed to read symlink %s: %w", entryPath, err)
	}
	defer func() { _ = linkTarget.Close() }()

	targetBytes, err := io.ReadAll(linkTarget)
	if err != nil {
		return fmt.Errorf("failed to read symlink target %s: %w", entryPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), fsutil.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create parent directory for symlink %s: %w", entryPath, err)
	}

	_ = os.Remove(targetPath)

	return os.Symlink(string(targetBytes), targetPath)
}

// writeRegularFile writes a regular file from the archive entry to targetPath.
func (am *Manager) writeRegularFile(fsys fs.FS, entryPath, targetPath string, info fs.FileInfo) error {
	srcFile, err := fsys.Open(entryPath)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", entryPath, err)
	}
	defer func() { _ = srcFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(targetPath), fsutil.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", entryPath, err)
	}

	dstFile, err := fsutil.CreateFilePerm(targetPath, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", targetPath, err)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file %s: %w", entryPath, err)
	}

	if err := os.Chmod(targetPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions for %s: %w", targetPath, err)
	}
	return nil
}
