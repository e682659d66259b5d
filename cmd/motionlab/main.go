// Motionlab CLI — storyboard generation and library inspection.
//
// Usage:
//
//	motionlab <command> [flags]
//
// Commands:
//
//	storyboard   Generate a storyboard JSON from a lyrics file
//	templates    List or delete saved caption templates
//	projects     List or inspect saved projects
//	simulate     Run the batch/cloud render simulation in the terminal
//	version      Print version information
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kavehm/motionlab/internal/sim"
	"github.com/kavehm/motionlab/internal/storyboard"
	"github.com/kavehm/motionlab/internal/store"
	"github.com/kavehm/motionlab/pkg/jsonutil"
	"github.com/kavehm/motionlab/pkg/timeutil"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".motionlab", "motionlab.db")

	switch os.Args[1] {
	case "storyboard":
		cmdStoryboard()
	case "templates":
		cmdTemplates(defaultDB)
	case "projects":
		cmdProjects(defaultDB)
	case "simulate":
		cmdSimulate()
	case "version":
		fmt.Printf("Motionlab v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Motionlab — lyric video studio

Usage:
  motionlab <command> [flags]

Commands:
  storyboard   Generate a storyboard JSON from a lyrics file
  templates    List or delete saved caption templates
  projects     List or inspect saved projects
  simulate     Run the batch/cloud render simulation in the terminal
  version      Print version information

Run 'motionlab <command> --help' for details on each command.`)
}

// cmdStoryboard reads a lyrics file and writes the storyboard document.
func cmdStoryboard() {
	fs := flag.NewFlagSet("storyboard", flag.ExitOnError)
	lyricsPath := fs.String("lyrics", "", "Path to lyrics text file (required)")
	duration := fs.Float64("duration", 0, "Track duration in seconds (0 = unknown)")
	out := fs.String("out", "", "Output file (default: stdout)")
	fs.Parse(os.Args[2:])

	if *lyricsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --lyrics is required")
		fs.Usage()
		os.Exit(1)
	}

	raw, err := os.ReadFile(*lyricsPath)
	if err != nil {
		log.Fatalf("Failed to read lyrics: %v", err)
	}

	lines := storyboard.FormatLyrics(string(raw))
	if len(lines) == 0 {
		log.Fatal("Lyrics file contains no usable lines")
	}

	analysis := storyboard.Estimate(*duration)
	doc := storyboard.Document{
		Analysis: analysis,
		Timeline: storyboard.Generate(lines, analysis, storyboard.DefaultPalette()),
	}

	b, err := doc.Encode()
	if err != nil {
		log.Fatalf("Failed to encode storyboard: %v", err)
	}

	if *out == "" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(*out, b, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	fmt.Printf("Wrote %d directives to %s\n", len(doc.Timeline), *out)
}

// cmdTemplates lists the saved templates, or deletes one by id.
func cmdTemplates(defaultDB string) {
	fs := flag.NewFlagSet("templates", flag.ExitOnError)
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	deleteID := fs.String("delete", "", "Delete the template with this id")
	fs.Parse(os.Args[2:])

	db, err := store.NewDBService(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if *deleteID != "" {
		if err := db.DeleteTemplate(*deleteID); err != nil {
			log.Fatalf("Failed to delete template: %v", err)
		}
		fmt.Printf("Deleted template %s\n", *deleteID)
		return
	}

	templates, err := db.ListTemplates()
	if err != nil {
		log.Fatalf("Failed to list templates: %v", err)
	}
	if len(templates) == 0 {
		fmt.Println("No saved templates.")
		return
	}

	for _, t := range templates {
		fmt.Printf("%-36s  %-20s  %-8s  rotate %.1f  %s\n",
			t.TemplateID, jsonutil.TruncateString(t.Name, 20), t.Color, t.Rotate,
			timeutil.RelativeTime(t.CreatedAt))
	}
}

// cmdProjects lists saved projects, or prints one snapshot by id.
func cmdProjects(defaultDB string) {
	fs := flag.NewFlagSet("projects", flag.ExitOnError)
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	showID := fs.String("show", "", "Print the snapshot of the project with this id")
	fs.Parse(os.Args[2:])

	db, err := store.NewDBService(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if *showID != "" {
		p, err := db.GetProject(*showID)
		if err != nil {
			log.Fatalf("Failed to load project: %v", err)
		}
		fmt.Println(jsonutil.PrettyJSON(p.Data))
		return
	}

	projects, err := db.ListProjects()
	if err != nil {
		log.Fatalf("Failed to list projects: %v", err)
	}
	if len(projects) == 0 {
		fmt.Println("No saved projects.")
		return
	}

	for _, p := range projects {
		fmt.Printf("%-36s  %-20s  updated %s\n",
			p.ProjectID, p.Name, timeutil.RelativeTime(p.UpdatedAt))
	}
}

// cmdSimulate runs the render simulation with real timers and prints
// each transition as it happens.
func cmdSimulate() {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	items := fs.Int("items", 3, "Number of batch clips")
	cloud := fs.Bool("cloud", true, "Also simulate a cloud render")
	fs.Parse(os.Args[2:])

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runner sim.Runner
	defer runner.Stop()

	start := time.Now()
	elapsed := func() string {
		return timeutil.FormatDuration(time.Since(start).Milliseconds())
	}

	batch := sim.NewBatch(*items)
	for _, item := range batch {
		fmt.Printf("%-8s  %s\n", item.Label, item.Status)
	}

	var wg sync.WaitGroup
	wg.Add(*items)
	runner.StartBatch(ctx, *items, func(i int) {
		fmt.Printf("%-8s  %s  after %s\n", batch[i].Label, sim.StatusReady, elapsed())
		wg.Done()
	})

	if *cloud {
		wg.Add(1)
		runner.SendToCloud(ctx, func(status sim.Status) {
			fmt.Printf("%-8s  %s  after %s\n", "Cloud", status, elapsed())
			if status == sim.StatusReady {
				wg.Done()
			}
		})
	}

	wg.Wait()
	fmt.Println("Done.")
}
