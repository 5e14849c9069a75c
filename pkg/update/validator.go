package update

import (
	"context"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/modinfo"
)

// validateArchive confirms the downloaded artifact is a well-formed zip
// containing a modinfo.json manifest somewhere inside. Only existence
// matters; the first match ends the scan.
func (s *Service) validateArchive(ctx context.Context, archivePath string) error {
	_, found, err := s.archiver.FindEntry(ctx, archivePath, modinfo.ManifestName)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(errors.ErrMissingManifest, "archive %s", archivePath)
	}
	return nil
}
