//go:generate mockgen -destination=./mocks/update.go -package=mocks . Fetcher,AccessGate,CacheLocator,Archiver

// Package update implements the mod update pipeline: download, cache
// lookup, archive validation and atomic install with backup and rollback.
package update

import (
	"context"
	"net/url"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/model"
)

// Fetcher is the subset of the download manager used by the update service.
type Fetcher interface {
	Fetch(ctx context.Context, srcURL *url.URL, destPath string) error
}

// AccessGate guards network fetches. Check returns ErrInternetDisabled when
// downloads are administratively disabled.
type AccessGate interface {
	Check() error
}

// CacheLocator is the subset of the cache manager used by the update service.
type CacheLocator interface {
	GetCachePath(modID, version, fileName string) (string, error)
	TryLocateCachedFile(modID, version, fileName string) (string, bool)
	TryPromoteLegacyCacheFile(modID, version, fileName, canonicalPath string) bool
	HasEntryForVersion(modID, version string) bool
}

// Archiver is the subset of the archive manager used by the update service.
type Archiver interface {
	ExtractAll(ctx context.Context, archivePath, destDir string) error
	FindEntry(ctx context.Context, archivePath, name string) (string, bool, error)
	Create(ctx context.Context, sourceDir, archivePath string) error
}

// Hooks carries callbacks for progress notifications. A zero Hooks value is
// valid and silent.
type Hooks struct {
	OnProgress func(model.UpdateProgress)
}

func (h Hooks) emit(stage model.Stage, msg string) {
	if h.OnProgress != nil {
		h.OnProgress(model.UpdateProgress{Stage: stage, Message: msg})
	}
}

// Options control one update call.
type Options struct {
	// CacheDownloads copies freshly downloaded artifacts into the version
	// cache after validation. Cache writes are best-effort and never fail
	// the update.
	CacheDownloads bool
	// Hooks receives staged progress notifications.
	Hooks Hooks
}
