package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ProtoSG/momentum-front/internal/model"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a mission (awards points and XP to your pet)",
		Args:  taskIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUser(ctx, svc); err != nil {
				return err
			}

			if err := svc.ReloadTasks(ctx); err != nil {
				return err
			}

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.ChangeStatus(ctx, id, model.TaskStatusDone)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Changed {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Mission #%d is already done.", id)))
				return nil
			}

			fmt.Fprintf(out, "%s #%d %s\n",
				ui.Good.Render(ui.IconDone+" Completed"), id,
				ui.Gold.Render(fmt.Sprintf(ui.IconTrophy+" +%d pts, +%d XP", res.PointsAwarded, res.ExperienceAwarded)))
			if res.PointsErr != nil {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Points were not awarded: "+res.PointsErr.Error()))
			}
			if res.ExperienceErr != nil {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" XP was not awarded: "+res.ExperienceErr.Error()))
			}

			// Show the pet's fresh balance so the reward is visible.
			if err := svc.RefreshPet(ctx); err == nil {
				if pet, ok := svc.Pet(); ok {
					fmt.Fprintln(out, ui.LabelValue("Pet points", pet.PointsTotal))
				}
			}
			return nil
		},
	}

	return cmd
}

func taskIDArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return errors.New("id must be an integer")
	}
	return nil
}
