package update

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/internal/logger"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/fsutil"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/hook"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/model"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/modinfo"
)

// installDirectory replaces an entire target directory tree. The existing
// tree is renamed aside as a backup, the archive is extracted into a
// scratch directory, and the payload is copied over. Any failure or
// cancellation restores the backup before the error leaves this function.
func (s *Service) installDirectory(ctx context.Context, desc *model.UpdateDescriptor, dl *model.DownloadResult, hooks Hooks) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	fresh := desc.InstalledVersion == "" || !dirExists(desc.TargetPath)
	if fresh {
		hooks.emit(model.StagePreparing, "Installing mod archive...")
	} else {
		hooks.emit(model.StagePreparing, "Replacing mod archive...")
	}

	scratchDir, err := s.newScratchDir("smm-extract-")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.RemoveAll(scratchDir); rmErr != nil {
			logger.Warn("Failed to remove extraction directory", logger.Fields{"path": scratchDir, "error": rmErr.Error()})
		}
	}()

	backupPath := fsutil.UniqueBackupPath(desc.TargetPath)
	backupTaken := false
	if dirExists(desc.TargetPath) {
		// A stale leftover at the backup path would corrupt the restore.
		if err := os.RemoveAll(backupPath); err != nil {
			return err
		}
		if err := fsutil.Move(desc.TargetPath, backupPath); err != nil {
			return err
		}
		backupTaken = true
		if desc.InstalledVersion != "" {
			s.cacheBackupDirectory(ctx, desc, backupPath)
		}
	}

	defer func() {
		if err == nil {
			return
		}
		s.rollbackDirectory(desc, backupPath, backupTaken)
	}()

	if err = s.archiver.ExtractAll(ctx, dl.Path, scratchDir); err != nil {
		return err
	}

	payloadRoot, err := detectPayloadRoot(scratchDir)
	if err != nil {
		return err
	}
	if info, infoErr := modinfo.FromDir(payloadRoot); infoErr == nil {
		logger.Debug("Installing mod payload", logger.Fields{
			"mod":     desc.ModID,
			"name":    info.Name,
			"version": info.Version,
		})
	}

	hookMgr := hook.NewManager()
	if err = hook.LoadFromPayloadDir(hookMgr, payloadRoot); err != nil {
		return err
	}
	hookCtx := hook.Context{
		ModID:       desc.ModID,
		ModVersion:  desc.ReleaseVersion,
		ModName:     desc.DisplayName,
		ArchivePath: dl.Path,
		InstallPath: desc.TargetPath,
	}
	if err = hookMgr.Execute(hook.PreInstall, hookCtx); err != nil {
		return err
	}

	if err = fsutil.CopyDir(ctx, payloadRoot, desc.TargetPath); err != nil {
		return err
	}

	if backupTaken {
		if rmErr := os.RemoveAll(backupPath); rmErr != nil {
			logger.Warn("Failed to remove backup directory", logger.Fields{"path": backupPath, "error": rmErr.Error()})
		}
	}

	// Post-install hooks run after the swap and cannot fail the update.
	if hookErr := hookMgr.Execute(hook.PostInstall, hookCtx); hookErr != nil {
		logger.Warn("Post-install hook failed", logger.Fields{"mod": desc.ModID, "error": hookErr.Error()})
	}

	if fresh {
		hooks.emit(model.StageCompleted, "Mod installed.")
	} else {
		hooks.emit(model.StageCompleted, "Update installed.")
	}
	return nil
}

// rollbackDirectory removes whatever was partially copied to the target
// and renames the backup back into place. Best-effort: rollback failures
// are logged and never replace the primary error.
func (s *Service) rollbackDirectory(desc *model.UpdateDescriptor, backupPath string, backupTaken bool) {
	if err := os.RemoveAll(desc.TargetPath); err != nil {
		logger.Warn("Failed to remove partial install", logger.Fields{"path": desc.TargetPath, "error": err.Error()})
	}
	if !backupTaken {
		return
	}
	if err := fsutil.Move(backupPath, desc.TargetPath); err != nil {
		logger.Error("Failed to restore backup directory", logger.Fields{
			"backup": backupPath,
			"path":   desc.TargetPath,
			"error":  err.Error(),
		})
	}
}

// cacheBackupDirectory zips the renamed backup tree into the version cache
// keyed by the previously installed version. Advisory: skipped when the
// cache slot is already occupied, and failures are logged only.
func (s *Service) cacheBackupDirectory(ctx context.Context, desc *model.UpdateDescriptor, backupPath string) {
	fileName := desc.ModID + ".zip"
	cachePath, err := s.cache.GetCachePath(desc.ModID, desc.InstalledVersion, fileName)
	if err != nil {
		logger.Debug("No cache slot for directory backup", logger.Fields{"mod": desc.ModID, "error": err.Error()})
		return
	}
	if _, ok := s.cache.TryLocateCachedFile(desc.ModID, desc.InstalledVersion, fileName); ok {
		return
	}
	if s.cache.HasEntryForVersion(desc.ModID, desc.InstalledVersion) {
		return
	}
	if err := s.archiver.Create(ctx, backupPath, cachePath); err != nil {
		logger.Warn("Failed to cache previous mod directory", logger.Fields{
			"mod":   desc.ModID,
			"path":  cachePath,
			"error": err.Error(),
		})
		return
	}
	logger.Debug("Cached previous mod version", logger.Fields{
		"mod":     desc.ModID,
		"version": desc.InstalledVersion,
		"path":    cachePath,
	})
}

// detectPayloadRoot returns the directory whose contents should land at
// the install target. Archives wrapped in a single enclosing folder (one
// top-level directory, no top-level files) unwrap by one level; everything
// else installs the extraction root as-is.
func detectPayloadRoot(scratchDir string) (string, error) {
	entries, err := os.ReadDir(scratchDir)
	if err != nil {
		return "", err
	}
	var dirs, files int
	var onlyDir string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs++
			onlyDir = entry.Name()
		} else {
			files++
		}
	}
	if dirs == 1 && files == 0 {
		return filepath.Join(scratchDir, onlyDir), nil
	}
	return scratchDir, nil
}
