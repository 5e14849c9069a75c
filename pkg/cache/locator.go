// Package cache resolves and maintains the on-disk cache of mod archives.
// The canonical layout nests entries under mods/<mod-id>/<version>/, while
// the legacy layout of earlier releases used flat mods/<mod-id>_<version>_<name>
// files. Lookups understand both; writes only ever use the canonical layout.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/internal/logger"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/fsutil"
)

const modsSubdir = "mods"

// DefaultManager implements Locator and Manager over one cache root.
type DefaultManager struct {
	directory string
}

// NewManager creates a cache manager rooted at the given directory.
func NewManager(directory string) *DefaultManager {
	return &DefaultManager{directory: directory}
}

// NewDefaultManager creates a cache manager rooted at the platform cache
// directory, creating it if necessary.
func NewDefaultManager() (*DefaultManager, error) {
	cacheDir, err := fsutil.GetCacheDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user cache directory")
	}
	if err := os.MkdirAll(cacheDir, fsutil.DirModePrivate); err != nil {
		return nil, errors.Wrap(err, "failed to create cache directory")
	}
	return NewManager(cacheDir), nil
}

// GetCachePath returns the canonical cache path for (modID, version, fileName).
func (cm *DefaultManager) GetCachePath(modID, version, fileName string) (string, error) {
	if modID == "" || version == "" || fileName == "" {
		return "", errors.Wrapf(errors.ErrInvalidPath, "cache key requires mod id, version and file name (got %q, %q, %q)", modID, version, fileName)
	}
	return filepath.Join(cm.directory, modsSubdir, sanitize(modID), sanitize(version), sanitize(fileName)), nil
}

// TryLocateCachedFile looks for an existing cache entry, canonical layout first.
func (cm *DefaultManager) TryLocateCachedFile(modID, version, fileName string) (string, bool) {
	canonical, err := cm.GetCachePath(modID, version, fileName)
	if err != nil {
		return "", false
	}
	if fileExists(canonical) {
		return canonical, true
	}
	legacy := cm.legacyCachePath(modID, version, fileName)
	if fileExists(legacy) {
		return legacy, true
	}
	return "", false
}

// TryPromoteLegacyCacheFile moves a legacy cache file to canonicalPath.
func (cm *DefaultManager) TryPromoteLegacyCacheFile(modID, version, fileName, canonicalPath string) bool {
	if canonicalPath == "" || fileExists(canonicalPath) {
		return false
	}
	legacy := cm.legacyCachePath(modID, version, fileName)
	if !fileExists(legacy) {
		return false
	}
	if err := fsutil.Move(legacy, canonicalPath); err != nil {
		logger.Warn("Failed to promote legacy cache file", logger.Fields{
			"legacy": legacy,
			"target": canonicalPath,
			"error":  err.Error(),
		})
		return false
	}
	return true
}

// HasEntryForVersion reports whether the version directory for the mod
// exists and holds at least one file.
func (cm *DefaultManager) HasEntryForVersion(modID, version string) bool {
	if modID == "" || version == "" {
		return false
	}
	dir := filepath.Join(cm.directory, modsSubdir, sanitize(modID), sanitize(version))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			return true
		}
	}
	return false
}

// GetDirectory returns the cache root directory.
func (cm *DefaultManager) GetDirectory() string {
	return cm.directory
}

// legacyCachePath returns the flat-layout path used by earlier releases.
func (cm *DefaultManager) legacyCachePath(modID, version, fileName string) string {
	if modID == "" || version == "" || fileName == "" {
		return ""
	}
	name := fmt.Sprintf("%s_%s_%s", sanitize(modID), sanitize(version), sanitize(fileName))
	return filepath.Join(cm.directory, modsSubdir, name)
}

// sanitize strips path separators from a cache key component so a hostile
// mod id or version cannot escape the cache directory.
func sanitize(component string) string {
	component = strings.ReplaceAll(component, "/", "-")
	component = strings.ReplaceAll(component, "\\", "-")
	component = strings.ReplaceAll(component, "..", "-")
	return component
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
