package update

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/internal/logger"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/fsutil"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/model"
)

// Service drives the end-to-end update for one mod: download, validate,
// install, cleanup. Callers are responsible for serializing updates that
// touch the same target path; the service itself takes no locks because
// each call works in its own scratch directory.
type Service struct {
	fetcher  Fetcher
	gate     AccessGate
	cache    CacheLocator
	archiver Archiver
	// scratchRoot is where per-update scratch directories are created.
	// Empty means the system temp directory.
	scratchRoot string
}

// NewService wires an update service from its collaborators.
func NewService(fetcher Fetcher, gate AccessGate, cache CacheLocator, archiver Archiver, scratchRoot string) *Service {
	return &Service{
		fetcher:     fetcher,
		gate:        gate,
		cache:       cache,
		archiver:    archiver,
		scratchRoot: scratchRoot,
	}
}

// Update performs one mod update described by desc and produces exactly one
// result. Recognized failures (network, file I/O, permissions, corrupt or
// manifest-less archives, disabled internet access, failing pre-install
// hooks) come back as a failure result with a single human-readable
// message. Cancellation and unclassified errors are returned as real
// errors, never as a result value.
func (s *Service) Update(ctx context.Context, desc *model.UpdateDescriptor, opts Options) (*model.UpdateResult, error) {
	if desc == nil || desc.TargetPath == "" {
		return nil, fmt.Errorf("update descriptor must carry a target path")
	}

	opts.Hooks.emit(model.StageDownloading, "Downloading mod archive...")
	dl, err := s.resolveDownload(ctx, desc)
	if err != nil {
		return s.finish(desc, err)
	}
	defer s.cleanupDownload(dl)

	opts.Hooks.emit(model.StageValidating, "Validating mod archive...")
	if err := s.validateArchive(ctx, dl.Path); err != nil {
		return s.finish(desc, err)
	}

	if opts.CacheDownloads && !dl.IsCacheHit {
		s.populateCache(desc, dl)
	}

	if desc.TargetIsDirectory {
		err = s.installDirectory(ctx, desc, dl, opts.Hooks)
	} else {
		err = s.installFile(ctx, desc, dl, opts.Hooks)
	}
	return s.finish(desc, err)
}

// finish converts a pipeline error into the single terminal outcome:
// success, a failure result for recognized kinds, or a propagated error
// for cancellation and unclassified failures.
func (s *Service) finish(desc *model.UpdateDescriptor, err error) (*model.UpdateResult, error) {
	if err == nil {
		return model.Ok(), nil
	}
	kind := Classify(err)
	if !kind.Recoverable() {
		return nil, err
	}
	logger.Debug("Update failed", logger.Fields{
		"mod":   desc.ModID,
		"error": err.Error(),
	})
	return model.Failure(FailureMessage(err)), nil
}

// populateCache copies a freshly downloaded artifact into its canonical
// cache slot. Advisory: failures are logged and never surfaced, and an
// existing cache entry is never overwritten.
func (s *Service) populateCache(desc *model.UpdateDescriptor, dl *model.DownloadResult) {
	if dl.CachePath == "" {
		return
	}
	if _, err := os.Stat(dl.CachePath); err == nil {
		return
	}
	if err := fsutil.EnsureFileDir(dl.CachePath); err != nil {
		logger.Warn("Failed to create cache directory", logger.Fields{
			"mod":   desc.ModID,
			"path":  dl.CachePath,
			"error": err.Error(),
		})
		return
	}
	if err := fsutil.Copy(dl.Path, dl.CachePath); err != nil {
		logger.Warn("Failed to populate download cache", logger.Fields{
			"mod":   desc.ModID,
			"path":  dl.CachePath,
			"error": err.Error(),
		})
		return
	}
	logger.Debug("Cached downloaded artifact", logger.Fields{
		"mod":  desc.ModID,
		"path": dl.CachePath,
	})
}

// cleanupDownload removes the scratch directory holding a temporary
// artifact. Cache hits are left alone.
func (s *Service) cleanupDownload(dl *model.DownloadResult) {
	if dl == nil || !dl.IsTemporary {
		return
	}
	if err := os.RemoveAll(filepath.Dir(dl.Path)); err != nil {
		logger.Warn("Failed to remove download scratch directory", logger.Fields{
			"path":  dl.Path,
			"error": err.Error(),
		})
	}
}
