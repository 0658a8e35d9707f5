package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/choices/internal/config"
	"github.com/jask/choices/internal/demo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(demo.New(cfg), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
