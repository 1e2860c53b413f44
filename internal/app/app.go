package app

import (
	"fmt"
	"os"

	"github.com/unitdash/unitdash/internal/bus"
	"github.com/unitdash/unitdash/internal/input"
	"github.com/unitdash/unitdash/internal/systemd"
	"github.com/unitdash/unitdash/internal/term"
	"github.com/unitdash/unitdash/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Scope         string
	Width         int
	Height        int
	ShowFooter    bool
	InitialFilter string
	LogLines      int
	Verbose       bool
}

// Run wires the repository, the screen, the input listener, and the journal
// ticker to one event bus and hands the loop to the controller. Producers
// are stopped before the screen is restored so no goroutine writes to a
// cooked terminal.
func Run(cfg Config) error {
	scope := systemd.ScopeSystem
	if cfg.Scope == "user" {
		scope = systemd.ScopeUser
	}
	repo := systemd.NewSystemctl(scope, cfg.LogLines)

	screen, err := term.NewScreen(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}

	in, err := term.NewInput(os.Stdin)
	if err != nil {
		screen.Close()
		return fmt.Errorf("open input: %w", err)
	}

	b := bus.New(64)
	listener := input.NewListener(b, in, input.DefaultPollInterval)
	listener.Start()
	ticker := input.NewJournalTicker(b, input.DefaultJournalInterval)
	ticker.Start()

	ctrl := ui.NewController(repo, b, screen, ui.Options{
		ScopeLabel:    cfg.Scope,
		InitialFilter: cfg.InitialFilter,
		ShowFooter:    cfg.ShowFooter,
		Verbose:       cfg.Verbose,
	})
	runErr := ctrl.Run()

	ticker.Stop()
	in.Close()
	listener.Stop()
	b.Close()
	screen.Close()
	return runErr
}
