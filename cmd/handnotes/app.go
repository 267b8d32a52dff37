package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/handnotes/internal/config"
	"github.com/lox/handnotes/internal/editor"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/player"
	"github.com/lox/handnotes/internal/store"
	"github.com/lox/handnotes/internal/tui"
)

// app holds the shared dependencies every command runs against.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	store  *store.Store
}

func openApp(configPath string, debug bool) (*app, error) {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	st, err := store.Open(cfg.DatabasePath(), logger)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, store: st}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error("closing store", "error", err)
	}
}

// settings returns the stored defaults, falling back to the config file.
func (a *app) settings() store.Settings {
	s, err := a.store.LoadSettings()
	if err != nil {
		a.logger.Warn("loading settings", "error", err)
	}
	if s.DefaultTableSize == 0 {
		s.DefaultTableSize = a.cfg.DefaultTableSize
	}
	if s.DefaultBlind == "" {
		s.DefaultBlind = a.cfg.DefaultBlind
	}
	return s
}

func (a *app) playerDirectory() (*player.Directory, error) {
	players, err := a.store.ListPlayers()
	if err != nil {
		return nil, err
	}
	return player.NewDirectory(players), nil
}

// runEditor opens the interactive editor over h and blocks until the
// user quits. Every edit is persisted as it happens; a final save runs
// on exit in case the last async write lost a race with shutdown.
func (a *app) runEditor(h *hand.Hand) error {
	players, err := a.playerDirectory()
	if err != nil {
		return err
	}

	advances := make(chan hand.Street, 1)
	session := editor.NewSession(h, a.logger,
		editor.WithAdvanceDelay(time.Duration(a.cfg.AutoAdvanceMs)*time.Millisecond),
		editor.WithSaveFunc(func(h *hand.Hand) {
			if err := a.store.SaveHand(h); err != nil {
				a.logger.Error("saving hand", "hand", h.ID, "error", err)
			}
		}),
		editor.WithOnAdvance(func(street hand.Street) {
			select {
			case advances <- street:
			default:
			}
		}),
	)
	defer session.Close()

	model := tui.NewEditor(session, players, a.logger, advances)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	return a.store.SaveHand(session.Hand())
}

func (a *app) loadHand(id string) (*hand.Hand, error) {
	h, err := a.store.LoadHand(id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("hand %s not found", id)
	}
	return h, nil
}
