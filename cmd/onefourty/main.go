// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command onefourty is the composition root for the OneFourty site core.
// It wires configuration, storage, the state store and demo seeding, and
// offers a small status/reset interface for operators. The web
// presentation layer consumes the same store as a library.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/onefourty/site-go/internal/config"
	"github.com/onefourty/site-go/internal/model"
	"github.com/onefourty/site-go/internal/seed"
	"github.com/onefourty/site-go/internal/storage"
	"github.com/onefourty/site-go/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	showStatus := flag.Bool("status", false, "Print a site status report and exit")
	doReset := flag.Bool("reset", false, "Delete the persisted state record and exit")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: onefourty [flags]\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ONEFOURTY_DATA_DIR         State record directory (default: ./data)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ONEFOURTY_STORAGE_BACKEND  Storage backend: file|memory (default: file)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ONEFOURTY_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ONEFOURTY_LOG_LEVEL        Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ONEFOURTY_DO_SEED          Load demo fixtures on startup (default: true)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ONEFOURTY_SEED_ONCE        Seed only empty collections (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("onefourty %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(*showStatus, *doReset); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(showStatus, doReset bool) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	backend, err := storage.New(storage.Config{
		Type:    cfg.StorageBackend,
		DataDir: cfg.DataDir,
	})
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			slog.Error("closing storage backend", "error", err)
		}
	}()

	st := store.New(backend)

	if doReset {
		if err := st.Reset(); err != nil {
			return fmt.Errorf("resetting state: %w", err)
		}
		slog.Info("persisted state deleted", "record", store.RecordName)
		return nil
	}

	if cfg.DoSeed {
		if cfg.SeedOnce {
			seed.ApplyIfEmpty(st)
		} else {
			seed.Apply(st)
		}
	}

	if showStatus {
		printStatus(st)
		return nil
	}

	slog.Info("state ready",
		"site", st.SiteConfig().Name,
		"products", len(st.Products()),
		"blogs", len(st.Blogs()),
		"services", len(st.Services()),
		"contacts", len(st.Contacts()),
		"open", st.IsBusinessOpen(),
	)
	return nil
}

// printStatus writes a human-readable site report to stdout.
func printStatus(st *store.Store) {
	cfg := st.SiteConfig()
	now := time.Now()

	fmt.Printf("%s — %s\n", cfg.Name, cfg.Description)
	fmt.Printf("  %s | %s | %s\n\n", cfg.Contact.Email, cfg.Contact.Phone, cfg.Contact.Address)

	status := "CLOSED"
	if st.IsBusinessOpen() {
		status = "OPEN"
	}
	fmt.Printf("Status: %s (%s %s", status, now.Weekday(), now.Format("15:04"))
	if override := st.ForceBusinessStatus(); override != model.ForceDefault {
		fmt.Printf(", admin override: %s", override)
	}
	fmt.Println(")")

	for _, h := range st.BusinessHours() {
		if h.Day != now.Weekday().String() {
			continue
		}
		if h.IsOpen {
			fmt.Printf("Today's hours: %s - %s\n", h.OpenTime, h.CloseTime)
		} else {
			fmt.Println("Today's hours: closed")
		}
	}

	if c, ok := st.ActiveEmergencyContact(); ok {
		fmt.Printf("Emergency contact: %s %s (%s)\n", c.Name, c.Phone, c.Hours)
	} else {
		fmt.Println("Emergency contact: none available")
	}

	stats := st.Stats()
	fmt.Printf("\nContent: %d products, %d blog posts, %d services, %d inquiries\n",
		len(st.Products()), len(st.Blogs()), len(st.Services()), len(st.Contacts()))
	fmt.Printf("Stats: revenue %.0f (prev %.0f), service requests %.0f (prev %.0f)\n",
		stats.Revenue.Current, stats.Revenue.Previous,
		stats.ServiceRequests.Current, stats.ServiceRequests.Previous)
}
