package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/fsutil"
)

// Clean removes all cached mod archives and scratch directories.
func (cm *DefaultManager) Clean() (*CleanResult, error) {
	result := &CleanResult{}

	size, err := cleanDirectory(filepath.Join(cm.directory, modsSubdir))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCacheClean, err.Error())
	}
	result.ModsFreed = size
	result.TotalFreed += size

	size, err = cleanDirectory(filepath.Join(cm.directory, "tmp"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCacheClean, err.Error())
	}
	result.ScratchFreed = size
	result.TotalFreed += size

	return result, nil
}

// GetInfo returns information about the cache.
func (cm *DefaultManager) GetInfo() (*Info, error) {
	info := &Info{
		Directory:   cm.directory,
		LastCleaned: time.Now(),
	}

	modsDir := filepath.Join(cm.directory, modsSubdir)
	size, files, err := getDirSizeAndFiles(modsDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCacheInfo, err.Error())
	}
	info.ModsSize = size
	info.ModsFiles = files
	info.TotalSize = size

	return info, nil
}

// cleanDirectory removes a directory and returns bytes freed. The empty
// directory is recreated afterwards.
func cleanDirectory(dir string) (int64, error) {
	var totalSize int64

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "error walking directory %s", dir)
	}

	if err := os.RemoveAll(dir); err != nil {
		return 0, errors.Wrapf(err, "failed to remove directory %s", dir)
	}
	if err := os.MkdirAll(dir, fsutil.DirModePrivate); err != nil {
		return totalSize, errors.Wrapf(err, "failed to recreate directory %s", dir)
	}

	return totalSize, nil
}

// getDirSizeAndFiles calculates directory size and file count.
func getDirSizeAndFiles(dir string) (size int64, count int, err error) {
	if _, err = os.Stat(dir); os.IsNotExist(err) {
		return 0, 0, nil
	}

	err = filepath.Walk(dir, func(_ string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() {
			size += info.Size()
			count++
		}
		return nil
	})
	if err != nil {
		err = errors.Wrapf(err, "error walking directory %s", dir)
	}
	return size, count, err
}
