package update

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/internal/logger"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/fsutil"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/model"
)

// installFile replaces a single target file with the downloaded artifact.
// The pre-existing file is renamed to a unique backup first; the backup is
// relocated into the version cache when possible, restored on failure, and
// deleted once the install succeeds.
func (s *Service) installFile(ctx context.Context, desc *model.UpdateDescriptor, dl *model.DownloadResult, hooks Hooks) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	existingPath := desc.EffectiveExistingPath()
	fresh := desc.InstalledVersion == "" || !fileExists(existingPath)
	if fresh {
		hooks.emit(model.StageReplacing, "Installing mod archive...")
	} else {
		hooks.emit(model.StageReplacing, "Replacing mod archive...")
	}

	if err := fsutil.EnsureFileDir(desc.TargetPath); err != nil {
		return err
	}

	var backupPath, cachedBackupPath string
	if fileExists(existingPath) {
		backupPath = fsutil.UniqueBackupPath(existingPath)
		if err := fsutil.Move(existingPath, backupPath); err != nil {
			return err
		}
		if desc.InstalledVersion != "" {
			cachedBackupPath = s.relocateBackupToCache(desc, backupPath)
		}
	}

	if err := s.replaceTargetFile(desc, dl, existingPath); err != nil {
		s.rollbackFile(desc, existingPath, backupPath, cachedBackupPath)
		return err
	}

	if cachedBackupPath == "" && backupPath != "" {
		if err := os.Remove(backupPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove backup file", logger.Fields{
				"path":  backupPath,
				"error": err.Error(),
			})
		}
	}

	if fresh {
		hooks.emit(model.StageCompleted, "Mod installed.")
	} else {
		hooks.emit(model.StageCompleted, "Update installed.")
	}
	return nil
}

// replaceTargetFile performs the destructive part of the file install:
// clearing the target, copying the new artifact in, and vacating a
// diverged existing path.
func (s *Service) replaceTargetFile(desc *model.UpdateDescriptor, dl *model.DownloadResult, existingPath string) error {
	if err := os.Remove(desc.TargetPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := fsutil.Copy(dl.Path, desc.TargetPath); err != nil {
		return err
	}
	// The rename already vacated the existing path; this clears leftover
	// files when the install location moved.
	if existingPath != desc.TargetPath {
		if err := os.Remove(existingPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// rollbackFile restores the pre-install state after a failed file install.
// Best-effort: a failing rollback is logged, never surfaced over the
// primary error.
func (s *Service) rollbackFile(desc *model.UpdateDescriptor, existingPath, backupPath, cachedBackupPath string) {
	if err := os.Remove(desc.TargetPath); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove partial install", logger.Fields{"path": desc.TargetPath, "error": err.Error()})
	}
	if existingPath != desc.TargetPath {
		if err := os.Remove(existingPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to clear existing path", logger.Fields{"path": existingPath, "error": err.Error()})
		}
	}

	if cachedBackupPath != "" {
		if err := fsutil.Copy(cachedBackupPath, existingPath); err != nil {
			// Copying back failed; move the cache entry instead, giving up
			// its cached status.
			if moveErr := fsutil.Move(cachedBackupPath, existingPath); moveErr != nil {
				logger.Error("Failed to restore backup from cache", logger.Fields{
					"cache": cachedBackupPath,
					"path":  existingPath,
					"error": moveErr.Error(),
				})
			}
		}
		return
	}
	if backupPath != "" && pathExists(backupPath) {
		if err := fsutil.Move(backupPath, existingPath); err != nil {
			logger.Error("Failed to restore backup", logger.Fields{
				"backup": backupPath,
				"path":   existingPath,
				"error":  err.Error(),
			})
		}
	}
}

// relocateBackupToCache moves the renamed backup into the version cache
// keyed by the previously installed version. Skipped whenever the cache
// slot for that version is already occupied, so a distinct cached version
// is never clobbered. Returns the cache path on success, empty otherwise.
func (s *Service) relocateBackupToCache(desc *model.UpdateDescriptor, backupPath string) string {
	fileName := filepath.Base(desc.EffectiveExistingPath())
	cachePath, err := s.cache.GetCachePath(desc.ModID, desc.InstalledVersion, fileName)
	if err != nil {
		logger.Debug("No cache slot for backup", logger.Fields{"mod": desc.ModID, "error": err.Error()})
		return ""
	}
	if _, ok := s.cache.TryLocateCachedFile(desc.ModID, desc.InstalledVersion, fileName); ok {
		return ""
	}
	if s.cache.HasEntryForVersion(desc.ModID, desc.InstalledVersion) {
		return ""
	}
	if err := fsutil.Move(backupPath, cachePath); err != nil {
		logger.Warn("Failed to move backup into cache", logger.Fields{
			"backup": backupPath,
			"cache":  cachePath,
			"error":  err.Error(),
		})
		return ""
	}
	logger.Debug("Cached previous mod version", logger.Fields{
		"mod":     desc.ModID,
		"version": desc.InstalledVersion,
		"path":    cachePath,
	})
	return cachePath
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
