package gamePath

import (
	"path/filepath"
	"testing"

	"github.com/beam-mm/beammm/domain/repository/config"
	"github.com/beam-mm/beammm/domain/repository/file"
	configRepo "github.com/beam-mm/beammm/infrastructure/repository/config"
	fileRepo "github.com/beam-mm/beammm/infrastructure/repository/file"
	"github.com/beam-mm/beammm/testUtil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGameDir(t *testing.T) {
	t.Run("カスタムディレクトリが存在する場合はそれが返ること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Exists("/custom/dir").Return(true)

		service := NewService(mockFileRepo, config.NewMockRepository(mockCtrl))

		dir, err := service.GameDir("/custom/dir")
		assert.NoError(t, err)
		assert.Equal(t, "/custom/dir", dir)
	})

	t.Run("カスタムディレクトリが存在しない場合はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Exists("/missing").Return(false)

		service := NewService(mockFileRepo, config.NewMockRepository(mockCtrl))

		_, err := service.GameDir("/missing")
		assert.ErrorIs(t, err, ErrDirNotFound)
	})

	t.Run("LOCALAPPDATA配下のBeamNG.driveが自動検出されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		gameDir := filepath.Join(space.Dir, "BeamNG.drive")
		space.WriteFile(filepath.Join(gameDir, "version.txt"), []byte("0.32.1.0"))

		service := NewService(fileRepo.NewFileRepository(), configRepo.NewConfigRepository())

		dir, err := service.GameDir("")
		assert.NoError(t, err)
		assert.Equal(t, gameDir, dir)
	})

	t.Run("beammm.ymlのgame-dirが使われること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		customDir := filepath.Join(space.Dir, "custom-game")
		space.WriteFile(filepath.Join(customDir, "version.txt"), []byte("0.32.1.0"))
		space.WriteFile(filepath.Join(space.Dir, "BeamMM", "beammm.yml"), []byte("game-dir: "+customDir+"\n"))

		service := NewService(fileRepo.NewFileRepository(), configRepo.NewConfigRepository())

		dir, err := service.GameDir("")
		assert.NoError(t, err)
		assert.Equal(t, customDir, dir)
	})

	t.Run("環境変数BEAMMM_GAME_DIRが優先されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		envDir := filepath.Join(space.Dir, "env-game")
		space.WriteFile(filepath.Join(envDir, "version.txt"), []byte("0.32.1.0"))
		t.Setenv("BEAMMM_GAME_DIR", envDir)

		service := NewService(fileRepo.NewFileRepository(), configRepo.NewConfigRepository())

		dir, err := service.GameDir("")
		assert.NoError(t, err)
		assert.Equal(t, envDir, dir)
	})
}

func TestGameVersion(t *testing.T) {
	t.Run("version.txtからmajor.minorが取得できること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Exists("/game").Return(true)
		mockFileRepo.EXPECT().Exists(filepath.Join("/game", "version.txt")).Return(true)
		mockFileRepo.EXPECT().Read(filepath.Join("/game", "version.txt")).Return([]byte("0.32.4.0\n"), nil)

		service := NewService(mockFileRepo, config.NewMockRepository(mockCtrl))

		version, err := service.GameVersion("/game")
		assert.NoError(t, err)
		assert.Equal(t, "0.32", version)
	})

	t.Run("version.txtがない場合は最大のバージョンディレクトリが使われること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Exists("/game").Return(true)
		mockFileRepo.EXPECT().Exists(filepath.Join("/game", "version.txt")).Return(false)
		mockFileRepo.EXPECT().ListDirs("/game").Return([]string{"0.31", "0.32", "mods-cache", "0.4"}, nil)

		service := NewService(mockFileRepo, config.NewMockRepository(mockCtrl))

		version, err := service.GameVersion("/game")
		assert.NoError(t, err)
		assert.Equal(t, "0.4", version)
	})

	t.Run("バージョンが特定できない場合はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Exists("/game").Return(true)
		mockFileRepo.EXPECT().Exists(filepath.Join("/game", "version.txt")).Return(false)
		mockFileRepo.EXPECT().ListDirs("/game").Return([]string{"settings", "cache"}, nil)

		service := NewService(mockFileRepo, config.NewMockRepository(mockCtrl))

		_, err := service.GameVersion("/game")
		assert.ErrorIs(t, err, ErrVersion)
	})

	t.Run("version.txtの形式が不正な場合はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Exists("/game").Return(true)
		mockFileRepo.EXPECT().Exists(filepath.Join("/game", "version.txt")).Return(true)
		mockFileRepo.EXPECT().Read(filepath.Join("/game", "version.txt")).Return([]byte("badversion"), nil)

		service := NewService(mockFileRepo, config.NewMockRepository(mockCtrl))

		_, err := service.GameVersion("/game")
		assert.ErrorIs(t, err, ErrVersion)
	})
}

func TestModsDir(t *testing.T) {
	t.Run("バージョン配下のmodsディレクトリが返ること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		modsDir := filepath.Join("/game", "0.32", "mods")

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Exists("/game").Return(true)
		mockFileRepo.EXPECT().Exists(modsDir).Return(true)

		service := NewService(mockFileRepo, config.NewMockRepository(mockCtrl))

		dir, err := service.ModsDir("/game", "0.32")
		assert.NoError(t, err)
		assert.Equal(t, modsDir, dir)
	})

	t.Run("modsディレクトリが存在しない場合はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Exists("/game").Return(true)
		mockFileRepo.EXPECT().Exists(filepath.Join("/game", "0.32", "mods")).Return(false)

		service := NewService(mockFileRepo, config.NewMockRepository(mockCtrl))

		_, err := service.ModsDir("/game", "0.32")
		assert.ErrorIs(t, err, ErrDirNotFound)
	})
}

func TestBeamMMDir(t *testing.T) {
	t.Run("BeamMMディレクトリが作成されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		service := NewService(fileRepo.NewFileRepository(), configRepo.NewConfigRepository())

		dir, err := service.BeamMMDir()
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(space.Dir, "BeamMM"), dir)
		space.AssertExistPath(dir)
	})
}
