package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ProtoSG/momentum-front/internal/game"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show mission tallies and the pet's state",
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

			user, _, err := svc.CurrentUser(ctx)
			if err != nil {
				return err
			}
			if err := svc.ReloadTasks(ctx); err != nil {
				return err
			}
			if err := svc.RefreshPet(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tally := svc.Tally()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Momentum — "+user.Name))
			fmt.Fprintln(out, ui.LabelValue("Pending", tally.Pending))
			fmt.Fprintln(out, ui.LabelValue("Completed", tally.Completed))
			fmt.Fprintln(out, ui.LabelValue("Archived", tally.Archived))
			fmt.Fprintln(out, ui.LabelValue("Points (estimate)", tally.EstimatedPoints))
			fmt.Fprintln(out)

			pet, ok := svc.Pet()
			if !ok {
				fmt.Fprintln(out, ui.Warn.Render("No pet yet — create one with: mm pet create <name>"))
				return nil
			}

			levels := svc.Levels()
			next := "MAX"
			if req, found := game.NextLevelRequirement(levels, pet.Level); found {
				next = fmt.Sprintf("%d", req)
			}

			fmt.Fprintln(out, ui.H2.Render(ui.IconDragon+" "+pet.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d — %s", pet.Level, game.LevelName(levels, pet.Level))))
			fmt.Fprintln(out, ui.LabelValue("Points", pet.PointsTotal))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d/%s", pet.Experience, next)))
			fmt.Fprintln(out, ui.LabelValue("Mood", ui.MoodText(game.MoodFor(pet))))
			fmt.Fprintln(out, ui.StatBar(ui.IconHeart, "Health", pet.Health, game.StatMax, 10))
			fmt.Fprintln(out, ui.StatBar(ui.IconBolt, "Energy", pet.Energy, game.StatMax, 10))
			fmt.Fprintln(out, ui.StatBar(ui.IconFood, "Hunger", pet.Hunger, game.StatMax, 10))
			return nil
		},
	}

	return cmd
}
