package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ProtoSG/momentum-front/internal/model"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions grouped by status",
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

			out := cmd.OutOrStdout()
			tasks := svc.Tasks()
			tally := svc.Tally()

			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No missions yet. Start your adventure with: mm add \"…\""))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n\n",
				ui.LabelValue("Points", tally.EstimatedPoints),
				ui.Muted.Render("(local estimate — the pet's balance is authoritative)"))

			printSection(out, ui.IconBolt+" Active", model.TaskStatusTodo, tasks, tally.Pending)
			printSection(out, ui.IconDone+" Completed", model.TaskStatusDone, tasks, tally.Completed)
			printSection(out, ui.IconArchive+" Archive", model.TaskStatusArchived, tasks, tally.Archived)
			return nil
		},
	}

	return cmd
}

func printSection(out io.Writer, heading string, status model.TaskStatus, tasks []model.Task, count int) {
	if count == 0 {
		return
	}
	fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s (%d)", heading, count)))
	for _, t := range tasks {
		if t.Status != status {
			continue
		}
		line := fmt.Sprintf("- #%d %s %s", t.TaskID, ui.PriorityText(t.Priority), t.Description)
		if t.DueDate != nil && *t.DueDate != "" {
			line += " " + ui.Muted.Render("(due "+*t.DueDate+")")
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)
}
