package presetAddCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/presetStore"
	"github.com/spf13/cobra"
)

type PresetAddCommand struct {
	CobraCommand *cobra.Command
}

func NewPresetAddCommand(
	presetStoreService *presetStore.Service,
	gamePathService *gamePath.Service,
	applySrv *applyService.ApplyService,
) *PresetAddCommand {
	var gameDirFlag string

	cmd := &cobra.Command{
		Use:   "preset-add PRESET MODS...",
		Short: "Add mods to a preset",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			mods := args[1:]

			beammmDir, err := gamePathService.BeamMMDir()
			if err != nil {
				return err
			}

			if err := presetStoreService.AddMods(gamePathService.PresetsPath(beammmDir), name, mods); err != nil {
				return err
			}

			fmt.Printf("Added %d mods to preset '%s'.\n", len(mods), name)

			_, err = applySrv.Apply(cmd.OutOrStdout(), cmd.ErrOrStderr(), applyService.Options{GameDir: gameDirFlag})
			return err
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory")

	return &PresetAddCommand{
		CobraCommand: cmd,
	}
}
