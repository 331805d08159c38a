package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dkozlov/orderboard/internal/domain"
	"github.com/dkozlov/orderboard/internal/service"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive scheduling board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("the board requires an interactive terminal")
			}

			p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())

			// The synchronizer owns the periodic refresh; each successful
			// snapshot is pushed into the running program.
			syncer := service.StartSynchronizer(app.Board, app.PollInterval,
				func(orders []domain.Order) {
					p.Send(ordersRefreshedMsg{orders: orders})
				})
			defer syncer.Stop()

			_, err := p.Run()
			return err
		},
	}
}
