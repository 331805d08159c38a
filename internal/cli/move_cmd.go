package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dkozlov/orderboard/internal/dates"
)

func newMoveCmd(app *App) *cobra.Command {
	var updateDelivery bool

	cmd := &cobra.Command{
		Use:   "move <order-number> <target-date>",
		Short: "Reschedule an order to another day",
		Long: `Reschedule an order to another day.

Moving an order that is ready or delivered asks whether the delivery date
should follow the move. Declining still moves the order; only the delivery
date stays put. Pass --update-delivery to answer without the prompt.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			orderNumber := args[0]
			targetDate := dates.Canonicalize(args[1])

			if !app.Board.HasEditAccess(ctx) {
				return fmt.Errorf("moving %s: edit access denied", orderNumber)
			}
			if _, err := app.Board.Reload(ctx); err != nil {
				return err
			}

			source := ""
			if o, ok := findSnapshotOrder(app, orderNumber); ok {
				source = o.PlannedDate
			}

			needsConfirm, err := app.Board.RequestMove(ctx, orderNumber, source, targetDate)
			if err != nil {
				return err
			}
			if !needsConfirm {
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", orderNumber, targetDate)
				return nil
			}

			propagate := updateDelivery
			if !cmd.Flags().Changed("update-delivery") && app.interactive() {
				confirm := huh.NewConfirm().
					Title("Обновить дату выдачи заказа?").
					Affirmative("Да").
					Negative("Нет").
					Value(&propagate)
				if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
					return fmt.Errorf("reading confirmation: %w", err)
				}
			}

			if propagate {
				err = app.Board.ConfirmMove(ctx)
			} else {
				err = app.Board.DeclineMove(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", orderNumber, targetDate)
			return nil
		},
	}

	cmd.Flags().BoolVar(&updateDelivery, "update-delivery", false,
		"Propagate the delivery date of a delivered order to the target day")

	return cmd
}
