package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/internal/logger"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/archive"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/auth"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/cache"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/config"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/download"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/update"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
)

// loadConfig loads the configuration from the --config flag path or the
// platform default location, and initializes logging from it.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}
	if configPath == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		configPath = defaultPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Settings.LogLevel
	if Verbose != nil && *Verbose {
		level = "debug"
	}
	logger.InitLogger(level)

	return cfg, nil
}

// loadCacheManager creates the cache manager for the configured cache
// directory.
func loadCacheManager(cfg *config.Config) (*cache.DefaultManager, error) {
	cacheDir, err := cfg.CacheDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cache directory: %w", err)
	}
	return cache.NewManager(cacheDir), nil
}

// loadUpdateService wires the update service from the configuration.
func loadUpdateService(cfg *config.Config) (*update.Service, error) {
	cacheManager, err := loadCacheManager(cfg)
	if err != nil {
		return nil, err
	}
	// Scratch space lives under the cache root so `cache clean` sweeps it.
	scratchDir := filepath.Join(cacheManager.GetDirectory(), "tmp")

	fetcher := download.NewManager(nil, cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent)
	if cfg.Settings.AuthToken != "" {
		fetcher = download.NewManagerWithAuth(nil, cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent,
			auth.BearerAuth{Token: cfg.Settings.AuthToken})
	}
	gate := download.NewStaticGate(cfg.Settings.InternetDisabled)
	return update.NewService(fetcher, gate, cacheManager, archive.NewManager(), scratchDir), nil
}
