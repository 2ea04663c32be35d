package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ProtoSG/momentum-front/internal/app"
	"github.com/ProtoSG/momentum-front/internal/model"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

func newAddCmd() *cobra.Command {
	var priority string
	var due string

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Create a mission",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("description is required")
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

			p, err := model.ParsePriority(priority)
			if err != nil {
				return err
			}

			in := app.CreateTaskInput{Description: args[0], Priority: p}
			if due != "" {
				if _, err := time.Parse("2006-01-02", due); err != nil {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", due)
				}
				in.DueDate = &due
			}

			if err := svc.CreateTask(ctx, in); err != nil {
				return err
			}

			tally := svc.Tally()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconRocket+" New mission"),
				args[0],
				ui.Muted.Render(fmt.Sprintf("(%s, %d pending)", p, tally.Pending)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}
