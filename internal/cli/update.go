package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/model"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/modinfo"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/update"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	var (
		sourceURL        string
		targetPath       string
		targetIsDir      bool
		displayName      string
		releaseVersion   string
		installedVersion string
		releaseFileName  string
		existingPath     string
		noCache          bool
		force            bool
	)

	cmd := &cobra.Command{
		Use:   "update MOD_ID",
		Short: "Download and install a mod",
		Long: `Download a mod archive, validate it and install it at the target path.

Installing over an existing mod keeps a backup until the swap succeeds, so a
failed update never leaves the previous install damaged. Previously downloaded
versions are served from the local cache without touching the network.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args[0], updateFlags{
				sourceURL:        sourceURL,
				targetPath:       targetPath,
				targetIsDir:      targetIsDir,
				displayName:      displayName,
				releaseVersion:   releaseVersion,
				installedVersion: installedVersion,
				releaseFileName:  releaseFileName,
				existingPath:     existingPath,
				noCache:          noCache,
				force:            force,
			})
		},
	}

	cmd.Flags().StringVar(&sourceURL, "url", "", "Download URL of the mod archive (http(s):// or file://)")
	cmd.Flags().StringVar(&targetPath, "target", "", "Install path of the mod")
	cmd.Flags().BoolVar(&targetIsDir, "dir", false, "Install the mod as a directory instead of a single archive file")
	cmd.Flags().StringVar(&displayName, "name", "", "Human-readable mod name for messages")
	cmd.Flags().StringVar(&releaseVersion, "version", "", "Version being installed (enables cache lookups)")
	cmd.Flags().StringVar(&installedVersion, "installed-version", "", "Currently installed version, if any")
	cmd.Flags().StringVar(&releaseFileName, "file-name", "", "Artifact file name (defaults to the target's base name)")
	cmd.Flags().StringVar(&existingPath, "existing-path", "", "Current location of the installed file if it was renamed")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip caching the downloaded archive")
	cmd.Flags().BoolVar(&force, "force", false, "Install even when the installed version is not older")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

type updateFlags struct {
	sourceURL        string
	targetPath       string
	targetIsDir      bool
	displayName      string
	releaseVersion   string
	installedVersion string
	releaseFileName  string
	existingPath     string
	noCache          bool
	force            bool
}

func runUpdate(cmd *cobra.Command, modID string, flags updateFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := loadUpdateService(cfg)
	if err != nil {
		return err
	}

	srcURL, err := url.Parse(flags.sourceURL)
	if err != nil {
		return fmt.Errorf("invalid source URL %q: %w", flags.sourceURL, err)
	}

	if !flags.force && flags.releaseVersion != "" && flags.installedVersion != "" &&
		!modinfo.IsNewer(flags.releaseVersion, flags.installedVersion) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is already up to date (installed %s, available %s).\n",
			modID, flags.installedVersion, flags.releaseVersion)
		return nil
	}

	desc := &model.UpdateDescriptor{
		ModID:             modID,
		DisplayName:       flags.displayName,
		SourceURL:         srcURL,
		TargetPath:        flags.targetPath,
		TargetIsDirectory: flags.targetIsDir,
		ReleaseFileName:   flags.releaseFileName,
		ReleaseVersion:    flags.releaseVersion,
		InstalledVersion:  flags.installedVersion,
		ExistingPath:      flags.existingPath,
	}

	opts := update.Options{
		CacheDownloads: cfg.Settings.CacheDownloads && !flags.noCache,
		Hooks: update.Hooks{OnProgress: func(p model.UpdateProgress) {
			fmt.Fprintln(cmd.OutOrStdout(), p.Message)
		}},
	}

	result, err := svc.Update(cmd.Context(), desc, opts)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%s", result.ErrorMessage)
	}
	return nil
}
