package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paperfeed/paperlens/internal/config"
	"github.com/paperfeed/paperlens/internal/ui"
)

func main() {
	initConfig := flag.Bool("init-config", false, "write an example config file and exit")
	flag.Parse()

	if *initConfig {
		if err := config.SaveExampleConfig(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		dir, _ := config.GetConfigDir()
		fmt.Printf("Example config written under %s\n", dir)
		return
	}

	m := ui.NewModel()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
