package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ProtoSG/momentum-front/internal/app"
	"github.com/ProtoSG/momentum-front/internal/game"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

func newPetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Care for your virtual pet",
	}

	cmd.AddCommand(
		newPetCreateCmd(),
		newPetShowCmd(),
		newPetCareCmd("feed", "Feed your pet (10 points, lowers hunger)", (*app.Service).FeedPet),
		newPetCareCmd("heal", "Heal your pet (20 points, restores health)", (*app.Service).HealPet),
		newPetCareCmd("boost", "Boost your pet's energy (15 points)", (*app.Service).BoostEnergy),
	)

	return cmd
}

func newPetCreateCmd() *cobra.Command {
	var spriteURL string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create your dragon",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
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

			if err := svc.CreatePet(ctx, args[0], spriteURL); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDragon+" "+args[0]+" hatched! Complete missions to earn points."))
			return nil
		},
	}

	cmd.Flags().StringVar(&spriteURL, "url", "", "Sprite image URL")

	return cmd
}

func newPetShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the pet's current state",
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

			if err := svc.RefreshPet(ctx); err != nil {
				return err
			}
			printPet(cmd, svc)
			return nil
		},
	}

	return cmd
}

func newPetCareCmd(name, short string, action func(*app.Service, context.Context) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
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

			// Gates are checked against a fresh snapshot.
			if err := svc.RefreshPet(ctx); err != nil {
				return err
			}
			if err := action(svc, ctx); err != nil {
				return err
			}
			printPet(cmd, svc)
			return nil
		},
	}

	return cmd
}

func printPet(cmd *cobra.Command, svc *app.Service) {
	out := cmd.OutOrStdout()
	pet, ok := svc.Pet()
	if !ok {
		fmt.Fprintln(out, ui.Warn.Render("No pet yet — create one with: mm pet create <name>"))
		return
	}
	fmt.Fprintf(out, "%s %s %s\n",
		ui.H2.Render(ui.IconDragon+" "+pet.Name),
		ui.Purple.Render(game.LevelName(svc.Levels(), pet.Level)),
		ui.Muted.Render(fmt.Sprintf("(mood: %s)", game.MoodFor(pet))))
	fmt.Fprintln(out, ui.LabelValue("Points", pet.PointsTotal))
	fmt.Fprintln(out, ui.StatBar(ui.IconHeart, "Health", pet.Health, game.StatMax, 10))
	fmt.Fprintln(out, ui.StatBar(ui.IconBolt, "Energy", pet.Energy, game.StatMax, 10))
	fmt.Fprintln(out, ui.StatBar(ui.IconFood, "Hunger", pet.Hunger, game.StatMax, 10))
}
