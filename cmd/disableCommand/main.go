package disableCommand

import (
	"fmt"
	"strings"

	"github.com/beam-mm/beammm/domain/service/applyService"
	"github.com/beam-mm/beammm/domain/service/confirm"
	"github.com/beam-mm/beammm/domain/service/gamePath"
	"github.com/beam-mm/beammm/domain/service/reconcile"
	"github.com/spf13/cobra"
)

type DisableCommand struct {
	CobraCommand *cobra.Command
}

func NewDisableCommand(
	gamePathService *gamePath.Service,
	confirmService *confirm.Service,
	applySrv *applyService.ApplyService,
) *DisableCommand {
	var gameDirFlag string
	var confirmAllFlag bool

	cmd := &cobra.Command{
		Use:   "disable MODS...|all",
		Short: "Disable mods",
		Long:  `Disable the named mods, or every installed mod when given "all". This is a one-shot toggle applied on top of preset state.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := applyService.Options{GameDir: gameDirFlag}

			if len(args) == 1 && strings.EqualFold(args[0], "all") {
				cfg, err := gamePathService.AppConfig()
				if err != nil {
					return err
				}

				ok, err := confirmService.Confirm(
					"Are you sure you would like to disable all mods?",
					false,
					confirmAllFlag || cfg.ConfirmAll,
				)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}

				all := false
				opts.All = &all
			} else {
				for _, modName := range args {
					opts.Overrides = append(opts.Overrides, reconcile.Override{ModName: modName, Enabled: false})
				}
			}

			result, err := applySrv.Apply(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
			if err != nil {
				return err
			}

			fmt.Printf("%d mods changed.\n", len(result.Changes))
			return nil
		},
	}

	cmd.Flags().StringVar(&gameDirFlag, "game-dir", "", "Custom BeamNG.drive data directory")
	cmd.Flags().BoolVarP(&confirmAllFlag, "confirm-all", "y", false, "Answer yes to all confirmation prompts")

	return &DisableCommand{
		CobraCommand: cmd,
	}
}
