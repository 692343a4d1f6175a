package disablePresetCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/presetStore"
	"github.com/spf13/cobra"
)

type DisablePresetCommand struct {
	CobraCommand *cobra.Command
}

func NewDisablePresetCommand(
	presetStoreService *presetStore.Service,
	gamePathService *gamePath.Service,
	applySrv *applyService.ApplyService,
) *DisablePresetCommand {
	var gameDirFlag string

	cmd := &cobra.Command{
		Use:   "disable-preset NAME",
		Short: "Disable a preset",
		Long:  `Disable a preset. Its mods are deactivated on the next reconciliation pass unless another enabled preset still references them.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			beammmDir, err := gamePathService.BeamMMDir()
			if err != nil {
				return err
			}

			if _, err := presetStoreService.SetEnabled(gamePathService.PresetsPath(beammmDir), name, false); err != nil {
				return err
			}

			fmt.Printf("Preset '%s' disabled.\n", name)

			_, err = applySrv.Apply(cmd.OutOrStdout(), cmd.ErrOrStderr(), applyService.Options{GameDir: gameDirFlag})
			return err
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory")

	return &DisablePresetCommand{
		CobraCommand: cmd,
	}
}
