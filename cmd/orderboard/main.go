package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dkozlov/orderboard/internal/cli"
	"github.com/dkozlov/orderboard/internal/config"
	"github.com/dkozlov/orderboard/internal/db"
	"github.com/dkozlov/orderboard/internal/repository"
	"github.com/dkozlov/orderboard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	orderRepo := repository.NewSheetOrderRepo(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Board:        service.NewBoardService(orderRepo, observers...),
		Seeder:       orderRepo,
		PollInterval: cfg.PollInterval,
	}

	// Detect interactive terminal for the board view and confirm prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
