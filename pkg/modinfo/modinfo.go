// Package modinfo reads and compares the modinfo.json manifest that every
// valid mod archive carries.
package modinfo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/archive"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
	goversion "github.com/hashicorp/go-version"
)

// ManifestName is the file every mod archive must contain, at any depth.
const ManifestName = "modinfo.json"

// Info is the parsed modinfo.json manifest.
type Info struct {
	Type         string            `json:"type,omitempty"`
	Name         string            `json:"name"`
	ModID        string            `json:"modid,omitempty"`
	Version      string            `json:"version"`
	Description  string            `json:"description,omitempty"`
	Authors      []string          `json:"authors,omitempty"`
	Website      string            `json:"website,omitempty"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// FromArchive locates and parses the manifest inside a mod archive.
func FromArchive(ctx context.Context, archivePath string) (*Info, error) {
	am := archive.NewManager()
	entryPath, found, err := am.FindEntry(ctx, archivePath, ManifestName)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(errors.ErrMissingManifest, "no %s in %s", ManifestName, archivePath)
	}
	data, err := am.ReadEntry(ctx, archivePath, entryPath)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// FromDir parses the manifest at the top level of an installed mod directory.
func FromDir(dir string) (*Info, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrMissingManifest, "no %s in %s", ManifestName, dir)
		}
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Info, error) {
	info := &Info{}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidManifest, "%v", err)
	}
	if info.Name == "" && info.ModID == "" {
		return nil, errors.Wrap(errors.ErrInvalidManifest, "manifest has neither name nor modid")
	}
	return info, nil
}

// GetVersion parses the manifest version.
func (i *Info) GetVersion() (*goversion.Version, error) {
	v, err := goversion.NewVersion(i.Version)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidManifest, "bad version %q: %v", i.Version, err)
	}
	return v, nil
}

// IsNewer reports whether candidate is a strictly newer version than
// installed. An empty installed version always counts as older. Versions
// that do not parse are compared as raw strings, where any difference
// counts as newer.
func IsNewer(candidate, installed string) bool {
	if installed == "" {
		return true
	}
	cv, cerr := goversion.NewVersion(candidate)
	iv, ierr := goversion.NewVersion(installed)
	if cerr != nil || ierr != nil {
		return candidate != installed
	}
	return cv.GreaterThan(iv)
}
