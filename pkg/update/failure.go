package update

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/url"
	"os"

	pkgerrors "github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
)

// Kind classifies an update failure. The set is closed: every error coming
// out of the pipeline maps to exactly one kind, and only recognized kinds
// are converted into a failure result. Cancelled and Unknown propagate to
// the caller as real errors.
type Kind int

const (
	// KindUnknown covers everything outside the recognized set. Unknown
	// failures are fatal and are never converted into a result value.
	KindUnknown Kind = iota
	// KindCancelled marks context cancellation. Always re-raised so callers
	// can tell "user cancelled" from "operation failed".
	KindCancelled
	// KindAccessDisabled marks a network fetch attempted while internet
	// access is administratively disabled.
	KindAccessDisabled
	// KindNetwork marks download and request failures.
	KindNetwork
	// KindCorruptArchive marks files that cannot be opened as archives.
	KindCorruptArchive
	// KindMissingManifest marks archives lacking the modinfo.json manifest.
	KindMissingManifest
	// KindFileIO marks file system failures.
	KindFileIO
	// KindPermission marks access-denied failures.
	KindPermission
	// KindHook marks a failing pre-install hook script.
	KindHook
	// KindUnsupported marks operations the platform cannot perform.
	KindUnsupported
)

// accessDisabledMessage is the fixed user-actionable text for fetches
// blocked by the internet-access switch.
const accessDisabledMessage = "Internet access is disabled. Enable it in the settings to download mods."

// missingManifestMessage is the fixed text for archives without a manifest.
const missingManifestMessage = "The downloaded file does not contain a modinfo.json manifest."

// Classify maps an error to its failure kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	case errors.Is(err, pkgerrors.ErrInternetDisabled):
		return KindAccessDisabled
	case errors.Is(err, pkgerrors.ErrMissingManifest):
		return KindMissingManifest
	case errors.Is(err, pkgerrors.ErrInvalidArchive):
		return KindCorruptArchive
	case errors.Is(err, pkgerrors.ErrDownloadFailed):
		return KindNetwork
	case errors.Is(err, pkgerrors.ErrHookScript) || errors.Is(err, pkgerrors.ErrHookExecution):
		return KindHook
	case errors.Is(err, pkgerrors.ErrUnsupported):
		return KindUnsupported
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrExist) || errors.Is(err, fs.ErrClosed):
		return KindFileIO
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return KindNetwork
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return KindFileIO
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return KindFileIO
	}
	var syscallErr *os.SyscallError
	if errors.As(err, &syscallErr) {
		return KindFileIO
	}

	return KindUnknown
}

// Recoverable reports whether a failure of this kind is converted into a
// failure result at the service boundary.
func (k Kind) Recoverable() bool {
	return k != KindUnknown && k != KindCancelled
}

// FailureMessage returns the single user-visible message for a recognized
// failure. Fixed texts for the access gate and the missing manifest, the
// underlying error text for everything else.
func FailureMessage(err error) string {
	switch Classify(err) {
	case KindAccessDisabled:
		return accessDisabledMessage
	case KindMissingManifest:
		return missingManifestMessage
	default:
		return err.Error()
	}
}
