// Package model provides data structures shared by the mod update pipeline:
// update descriptors, download results, progress notifications and the
// terminal update result.
package model

import (
	"net/url"
	"path"
	"path/filepath"
)

// UpdateDescriptor describes one mod update or install request. It is
// immutable for the duration of a single update call.
type UpdateDescriptor struct {
	// ModID is the stable identifier of the mod (used for cache keys).
	ModID string
	// DisplayName is the human-readable mod name used in messages.
	DisplayName string
	// SourceURL is the download source. It may be a file:// URI pointing at
	// a local archive or a regular network URI.
	SourceURL *url.URL
	// TargetPath is where the mod lives on disk once installed.
	TargetPath string
	// TargetIsDirectory selects the directory installer over the single-file
	// installer. It must match the on-disk shape of any existing install.
	TargetIsDirectory bool
	// ReleaseFileName is the preferred artifact file name, if known.
	ReleaseFileName string
	// ReleaseVersion is the version being installed, if known.
	ReleaseVersion string
	// InstalledVersion is the currently installed version, if any. An empty
	// value means a fresh install.
	InstalledVersion string
	// ExistingPath overrides TargetPath as the location of the current
	// install (used when the installed file was renamed by the user).
	ExistingPath string
}

// EffectiveExistingPath returns the location of the current install: the
// explicit override if set, otherwise the target path.
func (d *UpdateDescriptor) EffectiveExistingPath() string {
	if d.ExistingPath != "" {
		return d.ExistingPath
	}
	return d.TargetPath
}

// ArtifactFileName derives the file name for the downloaded artifact.
// Preference order: the release file name, then the mod id for directory
// targets, then the target path's base name, then the mod id again.
func (d *UpdateDescriptor) ArtifactFileName() string {
	if d.ReleaseFileName != "" {
		return d.ReleaseFileName
	}
	if d.TargetIsDirectory {
		return d.ModID + ".zip"
	}
	if name := filepath.Base(d.TargetPath); name != "" && name != "." && name != string(filepath.Separator) {
		return name
	}
	return d.ModID + ".zip"
}

// IsLocalSource reports whether the download source is a local file URI.
func (d *UpdateDescriptor) IsLocalSource() bool {
	return d.SourceURL != nil && d.SourceURL.Scheme == "file"
}

// LocalSourcePath converts a file:// source URL into a filesystem path.
func (d *UpdateDescriptor) LocalSourcePath() string {
	if d.SourceURL == nil {
		return ""
	}
	p := d.SourceURL.Path
	if d.SourceURL.Host != "" {
		p = path.Join(d.SourceURL.Host, p)
	}
	return filepath.FromSlash(p)
}

// DownloadResult describes a resolved artifact. It is created by the
// download resolver and consumed within the same update call.
type DownloadResult struct {
	// Path is the local path of the artifact.
	Path string
	// IsTemporary marks artifacts living in a scratch directory that must
	// be deleted when the update call finishes.
	IsTemporary bool
	// CachePath is the canonical cache location this download should
	// populate, or the location it was served from on a cache hit.
	CachePath string
	// IsCacheHit reports whether the artifact came from the version cache.
	IsCacheHit bool
}

// UpdateResult is the terminal outcome of one update call. Exactly one is
// produced per call; ErrorMessage is set only when Success is false.
type UpdateResult struct {
	Success      bool
	ErrorMessage string
}

// Ok returns a successful update result.
func Ok() *UpdateResult {
	return &UpdateResult{Success: true}
}

// Failure returns a failed update result carrying the given message.
func Failure(msg string) *UpdateResult {
	return &UpdateResult{Success: false, ErrorMessage: msg}
}
