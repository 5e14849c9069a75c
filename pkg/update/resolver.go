package update

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/internal/logger"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/fsutil"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/model"
)

// resolveDownload decides whether a previously cached artifact can serve
// this update or a fresh copy must be fetched. Fresh copies land in a new
// scratch directory that the caller cleans up.
func (s *Service) resolveDownload(ctx context.Context, desc *model.UpdateDescriptor) (*model.DownloadResult, error) {
	fileName := desc.ArtifactFileName()

	var cachePath string
	if desc.ReleaseVersion != "" {
		cp, err := s.cache.GetCachePath(desc.ModID, desc.ReleaseVersion, fileName)
		if err != nil {
			logger.Debug("No cache slot for download", logger.Fields{
				"mod":   desc.ModID,
				"error": err.Error(),
			})
		} else {
			cachePath = cp
			s.cache.TryPromoteLegacyCacheFile(desc.ModID, desc.ReleaseVersion, fileName, cp)
		}

		if found, ok := s.cache.TryLocateCachedFile(desc.ModID, desc.ReleaseVersion, fileName); ok {
			logger.Debug("Serving mod archive from cache", logger.Fields{
				"mod":      desc.ModID,
				"version":  desc.ReleaseVersion,
				"path":     found,
				"cacheHit": true,
			})
			return &model.DownloadResult{
				Path:        found,
				IsTemporary: false,
				CachePath:   found,
				IsCacheHit:  true,
			}, nil
		}
	}

	scratchDir, err := s.newScratchDir("smm-download-")
	if err != nil {
		return nil, err
	}
	target := filepath.Join(scratchDir, fileName)

	if desc.IsLocalSource() {
		if err := fsutil.Copy(desc.LocalSourcePath(), target); err != nil {
			_ = os.RemoveAll(scratchDir)
			return nil, err
		}
	} else {
		if err := s.gate.Check(); err != nil {
			_ = os.RemoveAll(scratchDir)
			return nil, err
		}
		if desc.SourceURL == nil {
			_ = os.RemoveAll(scratchDir)
			return nil, errors.Wrapf(errors.ErrDownloadFailed, "mod %s has no download source", desc.ModID)
		}
		if err := s.fetcher.Fetch(ctx, desc.SourceURL, target); err != nil {
			_ = os.RemoveAll(scratchDir)
			return nil, err
		}
	}

	logger.Debug("Downloaded mod archive", logger.Fields{
		"mod":      desc.ModID,
		"path":     target,
		"cacheHit": false,
	})
	return &model.DownloadResult{
		Path:        target,
		IsTemporary: true,
		CachePath:   cachePath,
		IsCacheHit:  false,
	}, nil
}

// newScratchDir creates a fresh scratch directory under the configured
// scratch root (or the system temp directory).
func (s *Service) newScratchDir(prefix string) (string, error) {
	root := s.scratchRoot
	if root != "" {
		if err := os.MkdirAll(root, fsutil.DirModeSecure); err != nil {
			return "", err
		}
	}
	return os.MkdirTemp(root, prefix+"*")
}
