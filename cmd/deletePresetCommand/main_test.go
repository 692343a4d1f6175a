package deletePresetCommand

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/beam-mm/beammm/domain/service/confirm"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/presetStore"
	"github.com/beam-mm/beammm/domain/service/reconcile"
	"github.com/beam-mm/beammm/domain/system/ksuid"
	"github.com/beam-mm/beammm/domain/system/timer"
	configRepo "github.com/beam-mm/beammm/infrastructure/repository/config"
	fileRepo "github.com/beam-mm/beammm/infrastructure/repository/file"
	moddbRepo "github.com/beam-mm/beammm/infrastructure/repository/moddb"
	presetRepo "github.com/beam-mm/beammm/infrastructure/repository/preset"
	"github.com/beam-mm/beammm/testUtil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const dbJSON = `{"mods": {"modA": {"active": true}}}`

func newDeletePresetCommand(t *testing.T, mockCtrl *gomock.Controller, input string) *DeletePresetCommand {
	t.Helper()

	ksuidGen := ksuid.NewMockIKsuid(mockCtrl)
	mockTimer := timer.NewMockITimer(mockCtrl)
	mockTimer.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

	gamePathService := gamePath.NewService(fileRepo.NewFileRepository(), configRepo.NewConfigRepository())
	presetStoreService := presetStore.NewService(presetRepo.NewRepository(), ksuidGen, mockTimer)
	confirmService := confirm.NewService(strings.NewReader(input), &strings.Builder{})
	applySrv := applyService.NewApplyService(moddbRepo.NewRepository(), presetRepo.NewRepository(), gamePathService, reconcile.NewService())

	return NewDeletePresetCommand(presetStoreService, gamePathService, confirmService, applySrv)
}

func TestDeletePresetCommand(t *testing.T) {
	t.Run("確認に承認するとプリセットが削除されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteGameDir("0.32", []byte(dbJSON))
		presetsPath := filepath.Join(space.Dir, "BeamMM", "presets.json")
		space.WriteFile(presetsPath, []byte(`{
			"presets": {"Racing": {"id": "x", "mods": [], "enabled": false}}
		}`))

		deleteCmd := newDeletePresetCommand(t, mockCtrl, "y\n")

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(deleteCmd.CobraCommand)
		rootCmd.SetArgs([]string{"delete-preset", "Racing"})

		err := rootCmd.Execute()
		assert.NoError(t, err)

		space.AssertFile(presetsPath, func(actual []byte) {
			assert.NotContains(t, string(actual), `"Racing"`)
		})
	})

	t.Run("確認で拒否するとプリセットが残ること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteGameDir("0.32", []byte(dbJSON))
		presetsPath := filepath.Join(space.Dir, "BeamMM", "presets.json")
		space.WriteFile(presetsPath, []byte(`{
			"presets": {"Racing": {"id": "x", "mods": [], "enabled": false}}
		}`))

		deleteCmd := newDeletePresetCommand(t, mockCtrl, "n\n")

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(deleteCmd.CobraCommand)
		rootCmd.SetArgs([]string{"delete-preset", "Racing"})

		err := rootCmd.Execute()
		assert.NoError(t, err)

		space.AssertFile(presetsPath, func(actual []byte) {
			assert.Contains(t, string(actual), `"Racing"`)
		})
	})

	t.Run("存在しないプリセットの削除はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteGameDir("0.32", []byte(dbJSON))

		deleteCmd := newDeletePresetCommand(t, mockCtrl, "")

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(deleteCmd.CobraCommand)
		rootCmd.SetArgs([]string{"delete-preset", "nonexistent", "-y"})

		err := rootCmd.Execute()
		assert.Error(t, err)
	})
}
