package listModsCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/repository/moddb"
	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type ListModsCommand struct {
	CobraCommand *cobra.Command
}

func NewListModsCommand(
	moddbRepo moddb.Repository,
	applySrv *applyService.ApplyService,
) *ListModsCommand {
	var gameDirFlag string

	cmd := &cobra.Command{
		Use:   "list-mods",
		Short: "List installed mods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modsDir, err := applySrv.ResolveModsDir(gameDirFlag)
			if err != nil {
				return err
			}

			db, err := moddbRepo.Load(modsDir)
			if err != nil {
				return err
			}

			for _, modName := range db.ModNames() {
				active, err := db.IsActive(modName)
				if err != nil {
					return err
				}

				status := color.RedString("disabled")
				if active {
					status = color.GreenString("enabled ")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", status, modName)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory")

	return &ListModsCommand{
		CobraCommand: cmd,
	}
}
