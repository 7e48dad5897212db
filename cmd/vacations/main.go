package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/simp-lee/vacations/internal/app"
	"github.com/simp-lee/vacations/internal/config"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	envFile := flag.String("env", config.DefaultEnvFile, "path to .env file")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal("failed to create app: ", err)
	}

	code := 0
	if err := report(ctx, a); err != nil {
		a.Logger().Error("datastore check failed", slog.Any("error", err))
		code = 1
	}
	if err := a.Close(); err != nil {
		log.Print("shutdown error: ", err)
		code = 1
	}
	os.Exit(code)
}

// report logs what the datastore currently holds.
func report(ctx context.Context, a *app.App) error {
	countries, err := a.Countries.List(ctx)
	if err != nil {
		return err
	}
	roles, err := a.Roles.List(ctx)
	if err != nil {
		return err
	}
	vacations, err := a.Vacations.ListOrderedByStartDate(ctx)
	if err != nil {
		return err
	}

	a.Logger().Info("datastore ready",
		slog.Int("countries", len(countries)),
		slog.Int("roles", len(roles)),
		slog.Int("vacations", len(vacations)),
	)
	for _, v := range vacations {
		a.Logger().Debug("vacation",
			slog.String("vacation_id", v.VacationID),
			slog.String("beginning_date", v.BeginningDate),
			slog.Int("price", v.Price),
		)
	}
	return nil
}
