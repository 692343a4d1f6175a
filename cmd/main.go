package cmd

import (
	"os"

	"github.com/beam-mm/beammm/cmd/applyCommand"
	"github.com/beam-mm/beammm/cmd/createPresetCommand"
	"github.com/beam-mm/beammm/cmd/deletePresetCommand"
	"github.com/beam-mm/beammm/cmd/disableCommand"
	"github.com/beam-mm/beammm/cmd/disablePresetCommand"
	"github.com/beam-mm/beammm/cmd/enableCommand"
	"github.com/beam-mm/beammm/cmd/enablePresetCommand"
	"github.com/beam-mm/beammm/cmd/initCommand"
	"github.com/beam-mm/beammm/cmd/listModsCommand"
	"github.com/beam-mm/beammm/cmd/listPresetsCommand"
	"github.com/beam-mm/beammm/cmd/presetAddCommand"
	"github.com/beam-mm/beammm/cmd/presetRemoveCommand"
	"github.com/beam-mm/beammm/cmd/versionCommand"
	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/beam-mm/beammm/domain/service/confirm"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/presetStore"
	"github.com/beam-mm/beammm/domain/service/reconcile"
	configRepo "github.com/beam-mm/beammm/infrastructure/repository/config"
	fileRepo "github.com/beam-mm/beammm/infrastructure/repository/file"
	moddbRepo "github.com/beam-mm/beammm/infrastructure/repository/moddb"
	presetRepo "github.com/beam-mm/beammm/infrastructure/repository/preset"
	ksuidImpl "github.com/beam-mm/beammm/infrastructure/system/ksuid"
	timerImpl "github.com/beam-mm/beammm/infrastructure/system/timer"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	cmd := &cobra.Command{
		Use:           "beammm",
		Short:         "A mod manager for BeamNG.drive",
		Long:          `BeamMM manages the enabled state of installed BeamNG.drive mods and groups them into independently toggleable presets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	moddbRepository := moddbRepo.NewRepository()
	presetRepository := presetRepo.NewRepository()
	timer := timerImpl.NewTimer()
	ksuidGenerator := ksuidImpl.NewKsuidGenerator()

	gamePathService := gamePath.NewService(fileRepository, configRepository)
	confirmService := confirm.NewService(os.Stdin, os.Stdout)
	reconcileService := reconcile.NewService()
	presetStoreService := presetStore.NewService(presetRepository, ksuidGenerator, timer)
	applySrv := applyService.NewApplyService(moddbRepository, presetRepository, gamePathService, reconcileService)

	cmd.AddCommand(initCommand.NewInitCommand(configRepository, gamePathService).CobraCommand)
	cmd.AddCommand(applyCommand.NewApplyCommand(applySrv).CobraCommand)
	cmd.AddCommand(createPresetCommand.NewCreatePresetCommand(presetStoreService, gamePathService, applySrv).CobraCommand)
	cmd.AddCommand(deletePresetCommand.NewDeletePresetCommand(presetStoreService, gamePathService, confirmService, applySrv).CobraCommand)
	cmd.AddCommand(listPresetsCommand.NewListPresetsCommand(presetStoreService, gamePathService).CobraCommand)
	cmd.AddCommand(presetAddCommand.NewPresetAddCommand(presetStoreService, gamePathService, applySrv).CobraCommand)
	cmd.AddCommand(presetRemoveCommand.NewPresetRemoveCommand(presetStoreService, gamePathService, applySrv).CobraCommand)
	cmd.AddCommand(enablePresetCommand.NewEnablePresetCommand(presetStoreService, gamePathService, applySrv).CobraCommand)
	cmd.AddCommand(disablePresetCommand.NewDisablePresetCommand(presetStoreService, gamePathService, applySrv).CobraCommand)
	cmd.AddCommand(enableCommand.NewEnableCommand(gamePathService, confirmService, applySrv).CobraCommand)
	cmd.AddCommand(disableCommand.NewDisableCommand(gamePathService, confirmService, applySrv).CobraCommand)
	cmd.AddCommand(listModsCommand.NewListModsCommand(moddbRepository, applySrv).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}
