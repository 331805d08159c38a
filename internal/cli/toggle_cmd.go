package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkozlov/orderboard/internal/domain"
)

func newToggleCmd(app *App) *cobra.Command {
	var unchecked bool

	cmd := &cobra.Command{
		Use:   "toggle <order-number>",
		Short: "Flip an order's completion box",
		Long: `Flip an order's completion box.

Checking marks the order delivered on its scheduled day. Unchecking (with
--unchecked) reverts it to ready and clears the delivery date.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			orderNumber := args[0]

			if !app.Board.HasEditAccess(ctx) {
				return fmt.Errorf("toggling %s: edit access denied", orderNumber)
			}
			if _, err := app.Board.Reload(ctx); err != nil {
				return err
			}

			if err := app.Board.Toggle(ctx, orderNumber, !unchecked); err != nil {
				return err
			}

			o, _ := findSnapshotOrder(app, orderNumber)
			if o.Status == domain.StatusDelivered {
				fmt.Fprintf(cmd.OutOrStdout(), "%s delivered on %s\n", orderNumber, o.DeliveryDate)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s marked %s\n", orderNumber, o.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "Uncheck instead of check")

	return cmd
}

// findSnapshotOrder looks an order up in the board's current snapshot.
func findSnapshotOrder(app *App, orderNumber string) (domain.Order, bool) {
	return domain.FindByNumber(app.Board.Snapshot(), orderNumber)
}
