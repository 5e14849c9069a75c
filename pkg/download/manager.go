package download

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"context"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/auth"
	pkgerrors "github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/fsutil"
)

// ManagerImpl is a simple HTTP-based fetcher. The HTTP client is injected
// by the composition root so tests can substitute transports and callers
// control connection pool lifetime.
type ManagerImpl struct {
	client    *http.Client
	userAgent string
	auth      auth.Authenticator
}

// NewManager creates a download manager around the given client. A nil
// client gets a default one with the given timeout.
func NewManager(client *http.Client, timeout time.Duration, userAgent string) *ManagerImpl {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	if userAgent == "" {
		userAgent = "smm/1.0"
	}
	return &ManagerImpl{
		client:    client,
		userAgent: userAgent,
	}
}

// NewManagerWithAuth creates a download manager that applies the given
// credentials to every request. Used for mods hosted behind private
// releases.
func NewManagerWithAuth(client *http.Client, timeout time.Duration, userAgent string, authenticator auth.Authenticator) *ManagerImpl {
	m := NewManager(client, timeout, userAgent)
	m.auth = authenticator
	return m
}

// Fetch downloads srcURL to destPath.
func (m *ManagerImpl) Fetch(ctx context.Context, srcURL *url.URL, destPath string) error {
	if srcURL == nil {
		return fmt.Errorf("nil URL: %w", pkgerrors.ErrDownloadFailed)
	}
	if destPath == "" || !filepath.IsAbs(destPath) {
		return fmt.Errorf("destination must be absolute: %s: %w", destPath, pkgerrors.ErrInvalidPath)
	}

	resp, err := m.doRequest(ctx, srcURL)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	tmpPath, err := writeBodyToTemp(resp, destPath)
	if err != nil {
		return err
	}
	return finalizeFile(tmpPath, destPath)
}

func (m *ManagerImpl) doRequest(ctx context.Context, srcURL *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL.String(), http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	if m.auth != nil {
		if err := m.auth.Apply(req); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to apply credentials")
		}
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrDownloadFailed, "request for %s failed: %v", srcURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, pkgerrors.ErrDownloadFailed)
	}
	return resp, nil
}

func writeBodyToTemp(resp *http.Response, destPath string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(destPath), fsutil.DirModeSecure); err != nil {
		return "", pkgerrors.Wrap(err, "could not create download dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(destPath), "dl-*.tmp")
	if err != nil {
		return "", pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		return "", pkgerrors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}

func finalizeFile(tmpPath, destPath string) error {
	if err := fsutil.Move(tmpPath, destPath); err != nil {
		return pkgerrors.Wrap(err, "could not finalize file")
	}
	if err := os.Chmod(destPath, fsutil.FileModeSecure); err != nil {
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	return nil
}
