package createPresetCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/presetStore"
	"github.com/spf13/cobra"
)

type CreatePresetCommand struct {
	CobraCommand *cobra.Command
}

func NewCreatePresetCommand(
	presetStoreService *presetStore.Service,
	gamePathService *gamePath.Service,
	applySrv *applyService.ApplyService,
) *CreatePresetCommand {
	var gameDirFlag string

	cmd := &cobra.Command{
		Use:   "create-preset NAME [MODS...]",
		Short: "Create a mod preset",
		Long:  `Create a named preset, optionally seeded with mods. New presets start disabled.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			mods := args[1:]

			beammmDir, err := gamePathService.BeamMMDir()
			if err != nil {
				return err
			}

			p, err := presetStoreService.Create(gamePathService.PresetsPath(beammmDir), name, mods)
			if err != nil {
				return err
			}

			fmt.Printf("Preset '%s' created.\n", name)
			if len(p.Mods) > 0 {
				fmt.Println("With mods:")
				for _, modName := range p.Mods {
					fmt.Printf("  - %s\n", modName)
				}
			} else {
				fmt.Println("No mods added to the preset.")
			}
			fmt.Println("Use enable-preset and disable-preset to toggle it, preset-add and preset-remove to edit it.")

			_, err = applySrv.Apply(cmd.OutOrStdout(), cmd.ErrOrStderr(), applyService.Options{GameDir: gameDirFlag})
			return err
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory")

	return &CreatePresetCommand{
		CobraCommand: cmd,
	}
}
