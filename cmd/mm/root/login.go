package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ProtoSG/momentum-front/internal/app"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

func newLoginCmd() *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			next, err := svc.Login(ctx, email, password)
			if err != nil {
				return err
			}

			user, _, err := svc.CurrentUser(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Welcome back, "+user.Name+"!"))
			if next == app.ViewCreatePet {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("No pet yet — create your dragon with: mm pet create <name>"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Open the dashboard with: mm board"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
