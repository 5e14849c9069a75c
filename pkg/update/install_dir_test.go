package update

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/cache"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/download"
	pkgerrors "github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/model"
	"github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/update/mocks"
)

func TestDetectPayloadRoot(t *testing.T) {
	t.Run("single enclosing folder unwraps", func(t *testing.T) {
		scratch := t.TempDir()
		inner := filepath.Join(scratch, "ExampleMod")
		require.NoError(t, os.MkdirAll(inner, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(inner, "modinfo.json"), []byte("{}"), 0o644))

		root, err := detectPayloadRoot(scratch)
		require.NoError(t, err)
		assert.Equal(t, inner, root)
	})

	t.Run("top-level file keeps the root", func(t *testing.T) {
		scratch := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(scratch, "assets"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(scratch, "modinfo.json"), []byte("{}"), 0o644))

		root, err := detectPayloadRoot(scratch)
		require.NoError(t, err)
		assert.Equal(t, scratch, root)
	})

	t.Run("two folders keep the root", func(t *testing.T) {
		scratch := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(scratch, "a"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(scratch, "b"), 0o755))

		root, err := detectPayloadRoot(scratch)
		require.NoError(t, err)
		assert.Equal(t, scratch, root)
	})
}

func TestInstallDirectory_RollbackRestoresExistingTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	archiver := mocks.NewMockArchiver(ctrl)
	archiver.EXPECT().
		ExtractAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pkgerrors.Wrap(pkgerrors.ErrInvalidArchive, "truncated"))

	svc := NewService(nil, download.NewStaticGate(false), cache.NewManager(t.TempDir()), archiver, t.TempDir())

	targetPath := filepath.Join(t.TempDir(), "ExampleMod")
	require.NoError(t, os.MkdirAll(filepath.Join(targetPath, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(targetPath, "modinfo.json"), []byte(`{"version":"1.0.0"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(targetPath, "assets", "data.js"), []byte("data"), 0o644))

	desc := &model.UpdateDescriptor{
		ModID:             "example-mod",
		TargetPath:        targetPath,
		TargetIsDirectory: true,
	}
	dl := &model.DownloadResult{Path: filepath.Join(t.TempDir(), "mod.zip"), IsTemporary: true}

	err := svc.installDirectory(context.Background(), desc, dl, Hooks{})
	require.ErrorIs(t, err, pkgerrors.ErrInvalidArchive)

	// The previous tree is back in place and the backup slot is vacated.
	data, readErr := os.ReadFile(filepath.Join(targetPath, "modinfo.json"))
	require.NoError(t, readErr)
	assert.Equal(t, `{"version":"1.0.0"}`, string(data))
	assert.FileExists(t, filepath.Join(targetPath, "assets", "data.js"))
	assert.NoDirExists(t, targetPath+".immbackup")
}

func TestInstallDirectory_CancelledDuringCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())

	archiver := mocks.NewMockArchiver(ctrl)
	archiver.EXPECT().
		ExtractAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, destDir string) error {
			// Cancel once extraction finished so the copy step sees it.
			cancel()
			return os.WriteFile(filepath.Join(destDir, "modinfo.json"), []byte("{}"), 0o644)
		})

	scratchRoot := t.TempDir()
	svc := NewService(nil, download.NewStaticGate(false), cache.NewManager(t.TempDir()), archiver, scratchRoot)

	targetPath := filepath.Join(t.TempDir(), "ExampleMod")
	require.NoError(t, os.MkdirAll(targetPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(targetPath, "keep.txt"), []byte("keep"), 0o644))

	desc := &model.UpdateDescriptor{
		ModID:             "example-mod",
		TargetPath:        targetPath,
		TargetIsDirectory: true,
	}
	dl := &model.DownloadResult{Path: filepath.Join(t.TempDir(), "mod.zip"), IsTemporary: true}

	err := svc.installDirectory(ctx, desc, dl, Hooks{})
	require.ErrorIs(t, err, context.Canceled)

	// Rollback restored the tree and the scratch directory is gone.
	assert.FileExists(t, filepath.Join(targetPath, "keep.txt"))
	entries, readErr := os.ReadDir(scratchRoot)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestInstallDirectory_PreInstallHookFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	archiver := mocks.NewMockArchiver(ctrl)
	archiver.EXPECT().
		ExtractAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, destDir string) error {
			hooksDir := filepath.Join(destDir, "hooks")
			if err := os.MkdirAll(hooksDir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(filepath.Join(hooksDir, "pre-install.tengo"), []byte(`err := "install refused"`), 0o644); err != nil {
				return err
			}
			return os.WriteFile(filepath.Join(destDir, "modinfo.json"), []byte("{}"), 0o644)
		})

	svc := NewService(nil, download.NewStaticGate(false), cache.NewManager(t.TempDir()), archiver, t.TempDir())

	targetPath := filepath.Join(t.TempDir(), "ExampleMod")
	require.NoError(t, os.MkdirAll(targetPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(targetPath, "keep.txt"), []byte("keep"), 0o644))

	desc := &model.UpdateDescriptor{
		ModID:             "example-mod",
		TargetPath:        targetPath,
		TargetIsDirectory: true,
	}
	dl := &model.DownloadResult{Path: filepath.Join(t.TempDir(), "mod.zip"), IsTemporary: true}

	err := svc.installDirectory(context.Background(), desc, dl, Hooks{})
	require.ErrorIs(t, err, pkgerrors.ErrHookScript)
	assert.Equal(t, KindHook, Classify(err))
	assert.FileExists(t, filepath.Join(targetPath, "keep.txt"))
}

func TestInstallDirectory_UpdateCachesPreviousTreeAsZip(t *testing.T) {
	ctrl := gomock.NewController(t)
	archiver := mocks.NewMockArchiver(ctrl)

	cacheDir := t.TempDir()
	cachedZip := filepath.Join(cacheDir, "mods", "example-mod", "1.0.0", "example-mod.zip")
	archiver.EXPECT().
		Create(gomock.Any(), gomock.Any(), cachedZip).
		DoAndReturn(func(_ context.Context, _, archivePath string) error {
			if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
				return err
			}
			return os.WriteFile(archivePath, []byte("zipped backup"), 0o644)
		})
	archiver.EXPECT().
		ExtractAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, destDir string) error {
			return os.WriteFile(filepath.Join(destDir, "modinfo.json"), []byte(`{"version":"2.0.0"}`), 0o644)
		})

	svc := NewService(nil, download.NewStaticGate(false), cache.NewManager(cacheDir), archiver, t.TempDir())

	targetPath := filepath.Join(t.TempDir(), "ExampleMod")
	require.NoError(t, os.MkdirAll(targetPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(targetPath, "modinfo.json"), []byte(`{"version":"1.0.0"}`), 0o644))

	desc := &model.UpdateDescriptor{
		ModID:             "example-mod",
		TargetPath:        targetPath,
		TargetIsDirectory: true,
		InstalledVersion:  "1.0.0",
		ReleaseVersion:    "2.0.0",
	}
	dl := &model.DownloadResult{Path: filepath.Join(t.TempDir(), "mod.zip"), IsTemporary: true}

	rec := &progressRecorder{}
	require.NoError(t, svc.installDirectory(context.Background(), desc, dl, rec.hooks()))

	data, err := os.ReadFile(filepath.Join(targetPath, "modinfo.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"version":"2.0.0"}`, string(data))
	assert.FileExists(t, cachedZip)
	assert.NoDirExists(t, targetPath+".immbackup")
	assert.Equal(t, []model.Stage{model.StagePreparing, model.StageCompleted}, rec.stages())
	assert.Equal(t, "Replacing mod archive...", rec.events[0].Message)
	assert.Equal(t, "Update installed.", rec.events[1].Message)
}
