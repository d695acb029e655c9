// Command migrate runs goose migration commands against the configured
// database, e.g.:
//
//	migrate up
//	migrate down
//	migrate status
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/1Cealus/InvestmentTracker/internal/config"
	"github.com/1Cealus/InvestmentTracker/internal/database"
)

func main() {
	if len(os.Args) < 2 {
		logrus.Fatal("usage: migrate <command> [args], e.g. migrate up")
	}
	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logrus.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.MigrateCommand(context.Background(), db, command, os.Args[2:]...); err != nil {
		logrus.Fatalf("Migration command %q failed: %v", command, err)
	}
}
