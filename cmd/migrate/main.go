package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"warehouse-dashboard/config"
	"warehouse-dashboard/internal/store"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|redo|reset|list")
	flag.Parse()

	if *cmd == "list" {
		names, err := store.MigrationFiles()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to list migrations: %v\n", err)
			os.Exit(1)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()
	logger := util.Component("migrate").With(zap.String("cmd", *cmd))

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Running migrations")
	if err := store.Migrate(context.Background(), db.GetDB().DB, *cmd, flag.Args()...); err != nil {
		logger.Error("Migration failed", zap.Error(err))
		db.Close()
		os.Exit(1)
	}
	logger.Info("Migrations done")
}
