package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/wareline/supplydesk-api/internal/infrastructure/postgres"
	"github.com/wareline/supplydesk-api/pkg/config"
	"github.com/wareline/supplydesk-api/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	switch *cmd {
	case "up":
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("goose up")
		}
		log.Info().Msg("migrations applied")

	case "status":
		if err := postgres.MigrateStatus(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("goose status")
		}

	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
}
