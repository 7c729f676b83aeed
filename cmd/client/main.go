package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fortranov/neoastrology/internal/client/api"
	"github.com/fortranov/neoastrology/internal/client/cli"
	"github.com/fortranov/neoastrology/internal/client/config"
	"github.com/fortranov/neoastrology/internal/client/iocli"
	"github.com/fortranov/neoastrology/internal/client/session"
	"github.com/fortranov/neoastrology/internal/client/storage/boltdb"

	// Подхватываем .env из рабочей директории
	_ "github.com/joho/godotenv/autoload"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.Load()

	// Глобальные флаги, окружение задает значения по умолчанию
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")

	flag.Parse()

	io := iocli.NewStdio()

	// Show version and exit if requested
	if *showVersion {
		printVersion(io)
		os.Exit(0)
	}

	ctx := context.Background()

	// Открываем локальное хранилище токена
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	sessionManager := session.NewManager(apiClient, boltStorage)

	app := cli.New(io, sessionManager, apiClient)

	args := flag.Args()
	if len(args) == 0 {
		app.PrintUsage()
		os.Exit(1)
	}

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion(io iocli.IO) {
	io.Printf("NeoAstrology Client\n")
	io.Printf("Version:    %s\n", Version)
	io.Printf("Build Date: %s\n", BuildDate)
	io.Printf("Git Commit: %s\n", GitCommit)
}
