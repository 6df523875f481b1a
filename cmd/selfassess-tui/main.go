package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/tui"
)

func main() {
	registry := rates.NewRegistry()

	// Optional rate table overlay passed as the first argument.
	if len(os.Args) > 1 {
		if err := registry.LoadFile(os.Args[1]); err != nil {
			fmt.Printf("Error loading rates file: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(tui.NewModel(registry), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
