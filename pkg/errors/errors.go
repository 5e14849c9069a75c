// Package errors defines the sentinel errors shared by the mod update
// pipeline and small helpers for wrapping them with context.
package errors

import "fmt"

// Common error types.
var (
	// Download errors.
	ErrInternetDisabled = fmt.Errorf("internet access is disabled")
	ErrDownloadFailed   = fmt.Errorf("download failed")
	ErrInvalidPath      = fmt.Errorf("invalid path")

	// Archive errors.
	ErrInvalidArchive  = fmt.Errorf("not a valid mod archive")
	ErrMissingManifest = fmt.Errorf("missing modinfo.json manifest")

	// Cache errors.
	ErrCacheDirectory = fmt.Errorf("cache directory cannot be empty")
	ErrCacheClean     = fmt.Errorf("failed to clean cache")
	ErrCacheInfo      = fmt.Errorf("failed to get cache info")

	// Manifest errors.
	ErrInvalidManifest = fmt.Errorf("invalid modinfo.json manifest")

	// Hook errors.
	ErrHookTypeEmpty = fmt.Errorf("hook type cannot be empty")
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")

	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")

	// Unsupported operations (e.g. archive features the extractor cannot handle).
	ErrUnsupported = fmt.Errorf("unsupported operation")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
