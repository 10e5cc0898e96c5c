package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/opdeck/opdeck/src"
	"github.com/opdeck/opdeck/src/logging"
)

func main() {
	cfg, err := src.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "opdeck:", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})

	zone.NewGlobal()

	var p *tea.Program

	win := src.NewTermWindow(os.Stdout, func() {
		if p != nil {
			p.Send(tea.Quit())
		}
	})
	chrome := src.NewChrome(win, log)

	platform := src.HostPlatform()
	if cfg.Platform != "" {
		platform = src.DetectPlatform(cfg.Platform, nil)
	}

	m := src.NewModel(cfg, log, platform, chrome, demoCallbacks(cfg, log))
	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	cancel := chrome.OnResized(func() {
		p.Send(src.ExternalResize())
	})
	defer cancel()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "opdeck:", err)
		os.Exit(1)
	}
}

// demoCallbacks wires the dropdown entries a real host would supply. Without
// demo mode only the About entry is present.
func demoCallbacks(cfg src.Config, log *logging.Logger) src.HostCallbacks {
	cb := src.HostCallbacks{
		OnInfo: func() tea.Cmd {
			log.Info("menu", "item", "info")
			return nil
		},
	}
	if !cfg.Demo {
		return cb
	}
	cb.OnSettings = func() tea.Cmd {
		log.Info("menu", "item", "settings")
		return nil
	}
	cb.OnAgents = func() tea.Cmd {
		log.Info("menu", "item", "agents")
		return nil
	}
	cb.OnUsage = func() tea.Cmd {
		log.Info("menu", "item", "usage")
		return nil
	}
	cb.OnClaude = func() tea.Cmd {
		log.Info("menu", "item", "claude")
		return nil
	}
	cb.OnMCP = func() tea.Cmd {
		log.Info("menu", "item", "mcp")
		return nil
	}
	return cb
}
