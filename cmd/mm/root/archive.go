package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ProtoSG/momentum-front/internal/model"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <id>",
		Short: "Move a mission to the archive",
		Args:  taskIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeStatus(cmd, args[0], model.TaskStatusArchived,
				ui.Warn.Render(ui.IconArchive+" Archived"))
		},
	}

	return cmd
}

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a mission to pending",
		Long: `Restore a mission to TODO status.

Restoring a completed mission does not take back points or XP already
granted; the server keeps whatever was awarded.`,
		Args: taskIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeStatus(cmd, args[0], model.TaskStatusTodo,
				ui.Warn.Render(ui.IconBolt+" Restored"))
		},
	}

	return cmd
}

func changeStatus(cmd *cobra.Command, rawID string, status model.TaskStatus, verb string) error {
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

	id, _ := strconv.ParseInt(rawID, 10, 64)
	res, err := svc.ChangeStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !res.Changed {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Mission #%d already has that status.", id)))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", verb, id)
	return nil
}
