package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkozlov/orderboard/internal/domain"
	"github.com/dkozlov/orderboard/internal/service"
)

// OrderSeeder loads a full order set into the backing store, used by the
// seed command and demos.
type OrderSeeder interface {
	SeedOrders(ctx context.Context, orders []domain.Order) error
}

// App holds references to the services used by CLI commands.
type App struct {
	Board  service.BoardService
	Seeder OrderSeeder

	// PollInterval drives the board view's background refresh.
	PollInterval time.Duration

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "orderboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "orderboard",
		Short: "Production order scheduling board",
	}

	root.AddCommand(
		newBoardCmd(app),
		newOrdersCmd(app),
		newMoveCmd(app),
		newToggleCmd(app),
		newAccessCmd(app),
	)

	return root
}
