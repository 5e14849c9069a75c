package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/cache"
)

// NewCacheCmd creates the cache command with subcommands
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the mod archive cache",
		Long:  "Clean, show information about, and manage the mod archive cache",
	}

	cmd.AddCommand(
		newCacheCleanCmd(),
		newCacheInfoCmd(),
		newCacheDirCmd(),
	)

	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clean the mod archive cache",
		Long:  "Remove cached mod archives and scratch files to free up disk space",
		RunE:  runCacheClean,
	}
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		Long:  "Display information about the mod archive cache",
		RunE:  runCacheInfo,
	}
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show cache directory path",
		Long:  "Display the path to the cache directory",
		RunE:  runCacheDir,
	}
}

func runCacheClean(cmd *cobra.Command, _ []string) error {
	manager, err := loadCacheManagerFromConfig()
	if err != nil {
		return err
	}

	result, err := manager.Clean()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.ModsFreed > 0 {
		fmt.Fprintf(out, "Cleaned mod archives: %s\n", humanize.Bytes(uint64(result.ModsFreed)))
	}
	if result.ScratchFreed > 0 {
		fmt.Fprintf(out, "Cleaned scratch files: %s\n", humanize.Bytes(uint64(result.ScratchFreed)))
	}
	fmt.Fprintf(out, "Total freed: %s\n", humanize.Bytes(uint64(result.TotalFreed)))
	return nil
}

func runCacheInfo(cmd *cobra.Command, _ []string) error {
	manager, err := loadCacheManagerFromConfig()
	if err != nil {
		return err
	}

	info, err := manager.GetInfo()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Cache Directory: %s\n", info.Directory)
	fmt.Fprintf(out, "Total Size: %s\n", humanize.Bytes(uint64(info.TotalSize)))
	fmt.Fprintf(out, "Mod Archives: %s (%d files)\n", humanize.Bytes(uint64(info.ModsSize)), info.ModsFiles)
	return nil
}

func runCacheDir(cmd *cobra.Command, _ []string) error {
	manager, err := loadCacheManagerFromConfig()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), manager.GetDirectory())
	return nil
}

func loadCacheManagerFromConfig() (*cache.DefaultManager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return loadCacheManager(cfg)
}
