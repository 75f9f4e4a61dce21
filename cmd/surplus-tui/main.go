package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/biblemarriages/surplus/internal/tui"
)

func main() {
	census := flag.String("census", "", "Census marital-status table (.json or .yaml); embedded default when empty")
	religious := flag.String("religious", "", "Religious demographics table (.json or .yaml); embedded default when empty")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: surplus-tui [--census file] [--religious file]")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Check reference files exist before taking over the screen
	for _, path := range []string{*census, *religious} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("Error: reference file not found: %s\n", path)
			os.Exit(1)
		}
	}

	model := tui.NewModel(domain.ReferenceDataPaths{
		Census:    *census,
		Religious: *religious,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
