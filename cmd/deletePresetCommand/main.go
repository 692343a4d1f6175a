package deletePresetCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/beam-mm/beammm/domain/service/confirm"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/presetStore"
	"github.com/spf13/cobra"
)

type DeletePresetCommand struct {
	CobraCommand *cobra.Command
}

func NewDeletePresetCommand(
	presetStoreService *presetStore.Service,
	gamePathService *gamePath.Service,
	confirmService *confirm.Service,
	applySrv *applyService.ApplyService,
) *DeletePresetCommand {
	var gameDirFlag string
	var confirmAllFlag bool

	cmd := &cobra.Command{
		Use:   "delete-preset NAME",
		Short: "Permanently delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			cfg, err := gamePathService.AppConfig()
			if err != nil {
				return err
			}

			ok, err := confirmService.Confirm(
				fmt.Sprintf("Are you sure you want to delete preset '%s'?", name),
				false,
				confirmAllFlag || cfg.ConfirmAll,
			)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			beammmDir, err := gamePathService.BeamMMDir()
			if err != nil {
				return err
			}

			if err := presetStoreService.Delete(gamePathService.PresetsPath(beammmDir), name); err != nil {
				return err
			}

			fmt.Printf("Preset '%s' deleted.\n", name)

			_, err = applySrv.Apply(cmd.OutOrStdout(), cmd.ErrOrStderr(), applyService.Options{GameDir: gameDirFlag})
			return err
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory")
	cmd.Flags().BoolVarP(&confirmAllFlag, "confirm-all", "y", false, "Answer yes to all confirmation prompts")

	return &DeletePresetCommand{
		CobraCommand: cmd,
	}
}
