// Command export-inventory writes the current inventory view to an xlsx file.
//
//	export-inventory [output.xlsx]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-inventario/internal/config"
	"go-inventario/internal/export"
	"go-inventario/internal/repository"
	"go-inventario/internal/service"
	"go-inventario/pkg/database"
	"go-inventario/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Env)

	out := export.FileName(time.Now())
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	if err := run(cfg, out); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
	log.Info().Str("file", out).Msg("inventory exported")
}

func run(cfg *config.Config, out string) error {
	db, err := database.Open(cfg.Database())
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	inventory := service.NewInventoryService(repository.NewInventoryRepo(db), cfg.LowStockThreshold)
	rows, err := inventory.GetInventory(context.Background())
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := export.WriteInventory(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
