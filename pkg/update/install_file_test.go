package update

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/archive"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/cache"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/download"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/model"
)

func newInstallService(t *testing.T) *Service {
	t.Helper()
	return NewService(nil, download.NewStaticGate(false), cache.NewManager(t.TempDir()), archive.NewManager(), t.TempDir())
}

func TestInstallFile_Fresh(t *testing.T) {
	svc := newInstallService(t)

	artifact := filepath.Join(t.TempDir(), "artifact.zip")
	require.NoError(t, os.WriteFile(artifact, []byte("new version"), 0o644))

	targetPath := filepath.Join(t.TempDir(), "mods", "example-mod.zip")
	desc := &model.UpdateDescriptor{ModID: "example-mod", TargetPath: targetPath}
	dl := &model.DownloadResult{Path: artifact, IsTemporary: true}

	require.NoError(t, svc.installFile(context.Background(), desc, dl, Hooks{}))
	data, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "new version", string(data))
}

func TestInstallFile_RenamedExistingFileIsReplaced(t *testing.T) {
	svc := newInstallService(t)

	modsDir := t.TempDir()
	existingPath := filepath.Join(modsDir, "example-mod (old).zip")
	require.NoError(t, os.WriteFile(existingPath, []byte("old version"), 0o644))

	artifact := filepath.Join(t.TempDir(), "artifact.zip")
	require.NoError(t, os.WriteFile(artifact, []byte("new version"), 0o644))

	targetPath := filepath.Join(modsDir, "example-mod.zip")
	desc := &model.UpdateDescriptor{
		ModID:            "example-mod",
		TargetPath:       targetPath,
		ExistingPath:     existingPath,
		InstalledVersion: "1.0.0",
		ReleaseVersion:   "2.0.0",
	}
	dl := &model.DownloadResult{Path: artifact, IsTemporary: true}

	require.NoError(t, svc.installFile(context.Background(), desc, dl, Hooks{}))

	// The new version lives at the canonical target and the renamed copy
	// is gone.
	data, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "new version", string(data))
	assert.NoFileExists(t, existingPath)
}

func TestInstallFile_RollbackRestoresExistingFile(t *testing.T) {
	svc := newInstallService(t)

	modsDir := t.TempDir()
	existingPath := filepath.Join(modsDir, "example-mod-v1.zip")
	require.NoError(t, os.WriteFile(existingPath, []byte("old version bytes"), 0o644))

	// A non-empty directory at the target path makes the swap fail after
	// the existing file was already moved aside.
	targetPath := filepath.Join(modsDir, "example-mod.zip")
	require.NoError(t, os.MkdirAll(targetPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(targetPath, "occupied"), []byte("x"), 0o644))

	artifact := filepath.Join(t.TempDir(), "artifact.zip")
	require.NoError(t, os.WriteFile(artifact, []byte("new version"), 0o644))

	desc := &model.UpdateDescriptor{
		ModID:        "example-mod",
		TargetPath:   targetPath,
		ExistingPath: existingPath,
	}
	dl := &model.DownloadResult{Path: artifact, IsTemporary: true}

	err := svc.installFile(context.Background(), desc, dl, Hooks{})
	require.Error(t, err)
	assert.True(t, Classify(err).Recoverable())

	// The pre-existing file is back, byte for byte, with no backup left.
	data, readErr := os.ReadFile(existingPath)
	require.NoError(t, readErr)
	assert.Equal(t, "old version bytes", string(data))
	assert.NoFileExists(t, existingPath+".immbackup")
}

func TestInstallFile_Cancelled(t *testing.T) {
	svc := newInstallService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	desc := &model.UpdateDescriptor{ModID: "example-mod", TargetPath: filepath.Join(t.TempDir(), "mod.zip")}
	err := svc.installFile(ctx, desc, &model.DownloadResult{Path: "unused"}, Hooks{})
	require.ErrorIs(t, err, context.Canceled)
}
