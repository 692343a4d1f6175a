package initCommand

import (
	"fmt"

	"github.com/beam-mm/beammm/domain/repository/config"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/spf13/cobra"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(
	configRepository config.Repository,
	gamePathService *gamePath.Service,
) *InitCommand {
	var gameDirFlag string
	var confirmAllFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a beammm.yml config file",
		Long:  `Create beammm.yml in the BeamMM data directory, recording a custom game directory and prompt defaults.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameDirFlag != "" {
				// Fail early on a bad directory instead of at first use.
				if _, err := gamePathService.GameDir(gameDirFlag); err != nil {
					return err
				}
			}

			beammmDir, err := gamePathService.BeamMMDir()
			if err != nil {
				return err
			}

			configPath := gamePathService.ConfigPath(beammmDir)
			cfg := &config.Config{
				GameDir:    gameDirFlag,
				ConfirmAll: confirmAllFlag,
			}

			if err := configRepository.Write(configPath, cfg); err != nil {
				return err
			}

			fmt.Printf("Wrote %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory to record")
	cmd.Flags().BoolVarP(&confirmAllFlag, "confirm-all", "y", false, "Answer yes to all confirmation prompts by default")

	return &InitCommand{
		CobraCommand: cmd,
	}
}
