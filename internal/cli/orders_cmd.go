package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkozlov/orderboard/internal/cli/formatter"
	"github.com/dkozlov/orderboard/internal/domain"
)

func newOrdersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and seed the order sheet",
	}

	cmd.AddCommand(
		newOrdersListCmd(app),
		newOrdersSeedCmd(app),
	)

	return cmd
}

func newOrdersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all orders in sheet order",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := app.Board.Reload(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOrderTable(orders))
			return nil
		},
	}
}

func newOrdersSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the sheet contents with sample orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.Seeder.SeedOrders(ctx, sampleOrders()); err != nil {
				return err
			}
			orders, err := app.Board.Reload(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d orders\n", len(orders))
			return nil
		},
	}
}

// sampleOrders builds a small demo order set spread over the coming days.
func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			OrderDate: "20.08.2026", OrderNumber: "N-101", Client: "Иванов",
			Area: "2,5", MillingType: "modern", PlannedDate: "31.08.2026",
			Status: domain.StatusReady, Payment: "paid", Material: "МДФ",
			Phone: "+7 900 111-22-33",
		},
		{
			OrderDate: "21.08.2026", OrderNumber: "N-102", PrisadkaNumber: "1",
			Client: "Петров", Area: "3.25", MillingType: "milling",
			PlannedDate: "01.09.2026", Status: domain.StatusCut, Payment: "partial",
			Material: "ЛДСП",
		},
		{
			OrderDate: "22.08.2026", OrderNumber: "N-103", Client: "Сидоров",
			Area: "1,75", MillingType: "rough", PlannedDate: "01.09.2026",
			Status: domain.StatusDelivered, DeliveryDate: "01.09.2026",
			Payment: "debt", Material: "МДФ",
		},
		{
			OrderDate: "25.08.2026", OrderNumber: "N-104", Client: "Кузнецов",
			Area: "4", MillingType: "modern", PlannedDate: "02.09.2026",
			Payment: "unpaid", Material: "МДФ", CadFiles: "есть",
		},
	}
}
