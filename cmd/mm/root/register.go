package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ProtoSG/momentum-front/internal/app"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

func newRegisterCmd() *cobra.Command {
	var in app.RegisterInput
	var dayStartHour int

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Flags().Changed("day-start-hour") {
				in.DayStartHour = &dayStartHour
			}

			next, err := svc.Register(ctx, in)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Account created, welcome "+in.Name+"!"))
			if next == app.ViewCreatePet {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Now create your dragon with: mm pet create <name>"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "Account password (min 6 characters)")
	cmd.Flags().StringVar(&in.Timezone, "timezone", "", "IANA timezone, e.g. Europe/Madrid")
	cmd.Flags().StringVar(&in.Locale, "locale", "", "Locale, e.g. es-ES")
	cmd.Flags().IntVar(&dayStartHour, "day-start-hour", 0, "Hour the day starts at (0-23)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
