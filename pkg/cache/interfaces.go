package cache

import "time"

// Locator resolves deterministic cache locations for mod archives keyed by
// (mod id, version, file name). It also understands the flat legacy cache
// layout of earlier releases and can promote legacy entries into the
// canonical layout.
type Locator interface {
	// GetCachePath returns the canonical cache path for the given key. It
	// does not touch the disk.
	GetCachePath(modID, version, fileName string) (string, error)

	// TryLocateCachedFile looks for an existing cache entry for the given
	// key, checking the canonical location first and the legacy layout
	// second. It returns the discovered path.
	TryLocateCachedFile(modID, version, fileName string) (string, bool)

	// TryPromoteLegacyCacheFile moves a legacy-layout cache file into the
	// given canonical path. It reports whether a file was promoted. An
	// already-populated canonical location is never overwritten.
	TryPromoteLegacyCacheFile(modID, version, fileName, canonicalPath string) bool

	// HasEntryForVersion reports whether any cache entry exists for the
	// given mod id and version, regardless of file name.
	HasEntryForVersion(modID, version string) bool
}

// Manager defines cache maintenance operations exposed by the CLI.
type Manager interface {
	Clean() (*CleanResult, error)
	GetInfo() (*Info, error)
	GetDirectory() string
}

// CleanResult contains information about what was cleaned.
type CleanResult struct {
	TotalFreed   int64
	ModsFreed    int64
	ScratchFreed int64
}

// Info represents cache information.
type Info struct {
	Directory   string
	TotalSize   int64
	ModsSize    int64
	ModsFiles   int
	LastCleaned time.Time
}
