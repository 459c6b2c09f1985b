package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/pawplan/internal/cli"
	"github.com/alexanderramin/pawplan/internal/config"
	"github.com/alexanderramin/pawplan/internal/db"
	"github.com/alexanderramin/pawplan/internal/repository"
	"github.com/alexanderramin/pawplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: reading .env: %v\n", err)
	}
	cfg := config.Load()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer database.Close()

	dogRepo := repository.NewSQLiteDogRepo(database)
	tasteRepo := repository.NewSQLiteTasteRepo(database)
	stateRepo := repository.NewSQLiteSessionStateRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	dogs := service.NewDogService(dogRepo, stateRepo, uow, observers...)
	tastes := service.NewTasteService(tasteRepo, dogRepo, observers...)

	app := &cli.App{
		Dogs:   dogs,
		Tastes: tastes,
		Plans:  service.NewPlanService(dogs, tastes, stateRepo, observers...),
		Config: cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Every session starts with at least one profile.
	if _, err := dogs.EnsureDefault(context.Background()); err != nil {
		return fmt.Errorf("seeding default dog: %w", err)
	}

	return cli.NewRootCmd(app).Execute()
}
