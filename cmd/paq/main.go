package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paqtool/paq/internal/config"
	"github.com/paqtool/paq/internal/picker"
	"github.com/paqtool/paq/internal/pkg"
	"github.com/paqtool/paq/internal/search"
	"github.com/paqtool/paq/internal/storage"
	"github.com/paqtool/paq/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: paq import <file.json>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `paq - terminal package browser

Usage:
  paq                   Open interactive browser
  paq <query>           Quick search package names
  paq import <file>     Import packages from a JSON dump
  paq help              Show this help

Browser keybindings:
  Navigation:
    j/k, arrows   Move down/up
    g/G           Jump to top/bottom
    pgup/pgdn     Page
    tab           Switch between list and queue
    right         Add focused package to queue
    left          Remove from queue
    C             Clear queue

  Commands:
    /             Filter       (e.g. /n:gtk, /nd!:perl)
    n, d          Filter by name / description
    c             Clear filter
    .             Sort         (e.g. .d)
    ?             Search       (e.g. ?n:vim)
    ;             Colorcode    (e.g. ;r)
    !             Run shell command (%p = queued names)
    @             Run macro by name
    0-9           Run numbered macro

  Other:
    y             Yank package name to clipboard
    r             Reload from database
    h             Help overlay
    q             Quit

Configuration:
  ~/.config/paq/config.toml (override with PAQ_CONFIG)
`
	fmt.Print(help)
}

func loadAll() (config.Config, *storage.DB, []*pkg.Record) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}

	records, err := db.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading packages: %v\n", err)
		os.Exit(1)
	}

	return cfg, db, records
}

// runTUI runs the full interactive browser.
func runTUI() {
	cfg, db, records := loadAll()
	defer db.Close()

	app := tui.NewApp(tui.AppParams{
		Records: records,
		Loader:  db,
		Macros:  cfg.MacroTable(),
		MacroSource: func() map[string]string {
			// Re-read the config file; a broken edit keeps the last good table.
			if fresh, err := config.Load(); err == nil {
				cfg = fresh
			}
			return cfg.MacroTable()
		},
		Shell:       cfg.Exec.Shell,
		Placeholder: cfg.Exec.Placeholder,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch fuzzy-matches package names and prints the selection.
func runQuickSearch(query string) {
	_, db, records := loadAll()
	defer db.Close()

	results := search.Records(records, query)

	if len(results) == 0 {
		fmt.Printf("No packages found for '%s'\n", query)
		return
	}

	var selected *pkg.Record

	if len(results) == 1 {
		selected = results[0].Record
	} else {
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return
		}
		selected = finalPicker.SelectedRecord()
	}

	if selected == nil {
		return
	}

	printRecord(selected)
}

// printRecord writes all non-empty attributes of a record to stdout.
func printRecord(rec *pkg.Record) {
	for _, attr := range pkg.Attributes() {
		val := rec.GetAttr(attr)
		if val == "" {
			continue
		}
		fmt.Printf("%-14s %s\n", attr.String()+":", val)
	}
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	_, db, _ := loadAll()
	defer db.Close()

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	records, err := storage.ReadJSON(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	if err := db.Upsert(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing packages: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d packages into %s\n", len(records), db.Path())
}
