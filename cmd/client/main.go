package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Catalogue/internal/cli/bootstrap"
	"Catalogue/internal/cli/commands"
	"Catalogue/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// env + .env + флаги
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion(cfg)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(exitCode)
}

func printVersion(cfg *config.Config) {
	fmt.Printf("Catalogue CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
	fmt.Printf("Server: %s\n", cfg.ServerURL)
	if path, err := bootstrap.ClientDBPath(cfg); err == nil {
		fmt.Printf("State DB: %s\n", path)
	}
	if cfg.LocalFavorites {
		fmt.Println("Favorites: local")
	}
}
