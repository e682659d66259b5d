// Motionlab TUI — the interactive lyric video editing studio.
//
// Usage:
//
//	motionlab-tui [flags]
//
// Flags:
//
//	--db      Path to SQLite database file (default: ~/.motionlab/motionlab.db)
//	--config  Path to a TOML config file (optional)
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kavehm/motionlab/internal/config"
	"github.com/kavehm/motionlab/internal/editor"
	"github.com/kavehm/motionlab/internal/store"
	"github.com/kavehm/motionlab/internal/studio"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".motionlab", "motionlab.db")

	dbPath := flag.String("db", defaultDB, "Path to SQLite database file")
	configPath := flag.String("config", "", "Path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", *configPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	db, err := store.NewDBService(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database at %s: %v", *dbPath, err)
	}
	defer db.Close()

	session, err := editor.NewSession(cfg, db)
	if err != nil {
		log.Fatalf("Failed to initialize session: %v", err)
	}

	model := studio.NewModel(cfg, session)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running studio: %v\n", err)
		os.Exit(1)
	}
}
