//go:generate mockgen -destination=mocks/download.go -package=mocks . Fetcher,AccessGate

// Package download fetches mod archives over HTTP into local files. It is
// deliberately small: one streamed GET per call, cancellation through the
// request context, finalization via an atomic move.
package download

import (
	"context"
	"net/url"
)

// Fetcher downloads a single remote resource to a local file path.
type Fetcher interface {
	// Fetch downloads srcURL to destPath, creating parent directories as
	// needed. The write is staged through a temporary file so destPath is
	// never left half-written.
	Fetch(ctx context.Context, srcURL *url.URL, destPath string) error
}

// AccessGate guards network access. Check returns ErrInternetDisabled when
// downloads are administratively disabled; fetchers must consult the gate
// before touching the network.
type AccessGate interface {
	Check() error
}
