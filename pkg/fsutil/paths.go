package fsutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "smm"
)

// GetCacheDir returns the platform-specific cache directory for the application.
// On Linux: ~/.cache/smm/
// On macOS: ~/Library/Caches/smm/
// On Windows: %LOCALAPPDATA%\smm\cache\
func GetCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}
