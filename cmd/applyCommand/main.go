package applyCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/spf13/cobra"
)

type ApplyCommand struct {
	CobraCommand *cobra.Command
}

func NewApplyCommand(applySrv *applyService.ApplyService) *ApplyCommand {
	var gameDirFlag string
	var dryRunFlag bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile preset state into the game's db.json",
		Long:  `Compute the final enabled state of every mod from the current presets and write it to the game's db.json. Nothing is written when no mod changes.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := applySrv.Apply(cmd.OutOrStdout(), cmd.ErrOrStderr(), applyService.Options{
				GameDir: gameDirFlag,
				DryRun:  dryRunFlag,
			})
			if err != nil {
				return err
			}

			if dryRunFlag {
				fmt.Fprintf(cmd.OutOrStdout(), "%d mods would change.\n", len(result.Changes))
				return nil
			}

			if result.Changed() {
				for _, change := range result.Changes {
					state := "disabled"
					if change.To {
						state = "enabled"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", change.ModName, state)
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to do.")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Show the db.json changes without writing them")

	return &ApplyCommand{
		CobraCommand: cmd,
	}
}
