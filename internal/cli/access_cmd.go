package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccessCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "access",
		Short: "Check whether the order sheet is editable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Board.HasEditAccess(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "edit access: granted")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "edit access: denied")
			}
			return nil
		},
	}
}
