package enablePresetCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/presetStore"
	"github.com/spf13/cobra"
)

type EnablePresetCommand struct {
	CobraCommand *cobra.Command
}

func NewEnablePresetCommand(
	presetStoreService *presetStore.Service,
	gamePathService *gamePath.Service,
	applySrv *applyService.ApplyService,
) *EnablePresetCommand {
	var gameDirFlag string

	cmd := &cobra.Command{
		Use:   "enable-preset NAME",
		Short: "Enable a preset",
		Long:  `Enable a preset. Its mods are activated on the reconciliation pass that follows.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			beammmDir, err := gamePathService.BeamMMDir()
			if err != nil {
				return err
			}

			if _, err := presetStoreService.SetEnabled(gamePathService.PresetsPath(beammmDir), name, true); err != nil {
				return err
			}

			fmt.Printf("Preset '%s' enabled.\n", name)

			_, err = applySrv.Apply(cmd.OutOrStdout(), cmd.ErrOrStderr(), applyService.Options{GameDir: gameDirFlag})
			return err
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory")

	return &EnablePresetCommand{
		CobraCommand: cmd,
	}
}
