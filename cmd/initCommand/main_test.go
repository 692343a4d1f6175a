package initCommand

import (
	"path/filepath"
	"testing"

	"github.com/beam-mm/beammm/domain/service/gamePath"
	configRepo "github.com/beam-mm/beammm/infrastructure/repository/config"
	fileRepo "github.com/beam-mm/beammm/infrastructure/repository/file"
	"github.com/beam-mm/beammm/testUtil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func newInitCommand() *InitCommand {
	repo := configRepo.NewConfigRepository()
	gamePathService := gamePath.NewService(fileRepo.NewFileRepository(), repo)
	return NewInitCommand(repo, gamePathService)
}

func TestInitCommand(t *testing.T) {
	t.Run("initでbeammm.ymlが作成されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		initCmd := newInitCommand()

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(initCmd.CobraCommand)
		rootCmd.SetArgs([]string{"init", "-y"})

		err := rootCmd.Execute()
		assert.NoError(t, err)

		configPath := filepath.Join(space.Dir, "BeamMM", "beammm.yml")
		space.AssertFile(configPath, func(actual []byte) {
			assert.Contains(t, string(actual), "confirm-all: true")
		})
	})

	t.Run("game-dirに存在するディレクトリを指定すると記録されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteGameDir("0.32", []byte(`{"mods": {}}`))
		gameDir := filepath.Join(space.Dir, "BeamNG.drive")

		initCmd := newInitCommand()

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(initCmd.CobraCommand)
		rootCmd.SetArgs([]string{"init", "--game-dir", gameDir})

		err := rootCmd.Execute()
		assert.NoError(t, err)

		configPath := filepath.Join(space.Dir, "BeamMM", "beammm.yml")
		space.AssertFile(configPath, func(actual []byte) {
			assert.Contains(t, string(actual), gameDir)
		})
	})

	t.Run("game-dirに存在しないディレクトリを指定するとエラーになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		initCmd := newInitCommand()

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(initCmd.CobraCommand)
		rootCmd.SetArgs([]string{"init", "--game-dir", filepath.Join(space.Dir, "nope")})

		err := rootCmd.Execute()
		assert.Error(t, err)

		space.AssertNotExistPath(filepath.Join(space.Dir, "BeamMM", "beammm.yml"))
	})
}
