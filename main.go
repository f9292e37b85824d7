package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go-arp/arp"
	"go-arp/config"
	"go-arp/debug"
	"go-arp/mirror"
	"go-arp/platform"
	"go-arp/theme"
	"go-arp/tui"
)

func main() {
	if os.Getenv("GOARP_DEBUG") != "" {
		debug.Enable()
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Load theme, falling back to the built-in palette
	palette, err := theme.LoadGPL("palettes/plasma.gpl")
	if err != nil {
		palette = theme.Default()
	}
	th := theme.New(palette)

	// Simulated module front panel, restored from saved preferences
	sim := platform.NewSim()
	sim.SetInternalClock(cfg.UI.InternalClock)
	sim.SetTempoCV(cfg.UI.LastTempoCV)
	sim.SetRootCV(cfg.UI.LastRootCV)

	// Optional MIDI mirror of the CV/gate outputs
	if cfg.Mirror.Enabled {
		m, err := mirror.Open(cfg.Mirror.PortName, cfg.Mirror.Channel)
		if err != nil {
			fmt.Printf("MIDI mirror unavailable: %v\n", err)
		} else {
			sim.SetObserver(m)
			defer m.Close()
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctrl := arp.NewController(sim, seed)

	// Control loop runs at ~1kHz for the lifetime of the program
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx)

	m := tui.NewModel(ctrl, sim, th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Persist front panel state for next launch
	root, tempo, _, internal := sim.Inputs()
	cfg.UI = config.UIConfig{
		InternalClock: internal,
		LastTempoCV:   tempo,
		LastRootCV:    root,
	}
	if err := cfg.Save(); err != nil {
		fmt.Printf("Error saving config: %v\n", err)
	}
}
