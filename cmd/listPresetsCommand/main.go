package listPresetsCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/presetStore"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type ListPresetsCommand struct {
	CobraCommand *cobra.Command
}

func NewListPresetsCommand(
	presetStoreService *presetStore.Service,
	gamePathService *gamePath.Service,
) *ListPresetsCommand {
	cmd := &cobra.Command{
		Use:   "list-presets",
		Short: "List presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			beammmDir, err := gamePathService.BeamMMDir()
			if err != nil {
				return err
			}

			summaries, err := presetStoreService.List(gamePathService.PresetsPath(beammmDir))
			if err != nil {
				return err
			}

			for _, summary := range summaries {
				status := color.RedString("disabled")
				if summary.Enabled {
					status = color.GreenString("enabled ")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d mods)\n", status, summary.Name, summary.ModCount)
			}

			return nil
		},
	}

	return &ListPresetsCommand{
		CobraCommand: cmd,
	}
}
