package update

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindUnknown},
		{name: "cancelled", err: context.Canceled, want: KindCancelled},
		{name: "deadline", err: context.DeadlineExceeded, want: KindCancelled},
		{name: "wrapped cancelled", err: fmt.Errorf("download: %w", context.Canceled), want: KindCancelled},
		{name: "internet disabled", err: pkgerrors.ErrInternetDisabled, want: KindAccessDisabled},
		{name: "missing manifest", err: pkgerrors.Wrapf(pkgerrors.ErrMissingManifest, "archive %s", "a.zip"), want: KindMissingManifest},
		{name: "invalid archive", err: pkgerrors.Wrap(pkgerrors.ErrInvalidArchive, "open"), want: KindCorruptArchive},
		{name: "download failed", err: pkgerrors.Wrapf(pkgerrors.ErrDownloadFailed, "status 503"), want: KindNetwork},
		{name: "hook script", err: pkgerrors.Wrap(pkgerrors.ErrHookScript, "refused"), want: KindHook},
		{name: "hook execution", err: pkgerrors.Wrapf(pkgerrors.ErrHookExecution, "pre-install"), want: KindHook},
		{name: "unsupported", err: pkgerrors.ErrUnsupported, want: KindUnsupported},
		{name: "permission", err: fmt.Errorf("open: %w", fs.ErrPermission), want: KindPermission},
		{name: "not exist", err: fs.ErrNotExist, want: KindFileIO},
		{name: "path error", err: &fs.PathError{Op: "open", Path: "/x", Err: fmt.Errorf("boom")}, want: KindFileIO},
		{name: "link error", err: &os.LinkError{Op: "rename", Old: "a", New: "b", Err: fmt.Errorf("boom")}, want: KindFileIO},
		{name: "syscall error", err: os.NewSyscallError("write", fmt.Errorf("boom")), want: KindFileIO},
		{name: "net error", err: &net.OpError{Op: "dial", Err: fmt.Errorf("refused")}, want: KindNetwork},
		{name: "url error", err: &url.Error{Op: "Get", URL: "http://x", Err: fmt.Errorf("refused")}, want: KindNetwork},
		{name: "plain error", err: fmt.Errorf("something odd"), want: KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKindRecoverable(t *testing.T) {
	assert.False(t, KindUnknown.Recoverable())
	assert.False(t, KindCancelled.Recoverable())
	for _, k := range []Kind{
		KindAccessDisabled, KindNetwork, KindCorruptArchive,
		KindMissingManifest, KindFileIO, KindPermission, KindHook, KindUnsupported,
	} {
		assert.True(t, k.Recoverable())
	}
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t,
		"Internet access is disabled. Enable it in the settings to download mods.",
		FailureMessage(pkgerrors.ErrInternetDisabled))
	assert.Equal(t,
		"The downloaded file does not contain a modinfo.json manifest.",
		FailureMessage(pkgerrors.Wrapf(pkgerrors.ErrMissingManifest, "archive %s", "mod.zip")))

	err := pkgerrors.Wrapf(pkgerrors.ErrDownloadFailed, "status 503")
	assert.Equal(t, err.Error(), FailureMessage(err))
}
