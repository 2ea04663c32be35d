package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ProtoSG/momentum-front/internal/model"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

func newEditCmd() *cobra.Command {
	var desc string
	var due string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a mission's description or due date",
		Args:  taskIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("desc") && !cmd.Flags().Changed("due") {
				return errors.New("nothing to change: pass --desc and/or --due")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUser(ctx, svc); err != nil {
				return err
			}

			var req model.UpdateTaskRequest
			if cmd.Flags().Changed("desc") {
				req.Description = &desc
			}
			if cmd.Flags().Changed("due") {
				if due != "" {
					if _, err := time.Parse("2006-01-02", due); err != nil {
						return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", due)
					}
				}
				req.DueDate = &due
			}

			id, _ := strconv.ParseInt(args[0], 10, 64)
			if err := svc.UpdateTask(ctx, id, req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Good.Render(ui.IconSparkle+" Updated"), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD, empty clears it)")

	return cmd
}
