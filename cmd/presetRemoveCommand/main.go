package presetRemoveCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/presetStore"
	"github.com/spf13/cobra"
)

type PresetRemoveCommand struct {
	CobraCommand *cobra.Command
}

func NewPresetRemoveCommand(
	presetStoreService *presetStore.Service,
	gamePathService *gamePath.Service,
	applySrv *applyService.ApplyService,
) *PresetRemoveCommand {
	var gameDirFlag string

	cmd := &cobra.Command{
		Use:   "preset-remove PRESET MODS...",
		Short: "Remove mods from a preset",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			mods := args[1:]

			beammmDir, err := gamePathService.BeamMMDir()
			if err != nil {
				return err
			}

			if err := presetStoreService.RemoveMods(gamePathService.PresetsPath(beammmDir), name, mods); err != nil {
				return err
			}

			fmt.Printf("Removed mods from preset '%s'.\n", name)

			_, err = applySrv.Apply(cmd.OutOrStdout(), cmd.ErrOrStderr(), applyService.Options{GameDir: gameDirFlag})
			return err
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory")

	return &PresetRemoveCommand{
		CobraCommand: cmd,
	}
}
