package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/player"
)

// Document is the bulk interchange format: the three collections plus
// an export timestamp. A partial document carries only some of them.
type Document struct {
	Players    []player.Player `json:"players,omitempty"`
	Hands      []*hand.Hand    `json:"hands,omitempty"`
	Settings   *Settings       `json:"settings,omitempty"`
	ExportedAt time.Time       `json:"exportedAt"`
}

// Export snapshots every collection into an interchange document
func (s *Store) Export() (*Document, error) {
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	hands, err := s.ListHands()
	if err != nil {
		return nil, err
	}
	settings, err := s.LoadSettings()
	if err != nil {
		return nil, err
	}

	return &Document{
		Players:    players,
		Hands:      hands,
		Settings:   &settings,
		ExportedAt: s.now(),
	}, nil
}

// importDocument distinguishes absent collections from empty ones, so a
// partial document only replaces what it actually contains
type importDocument struct {
	Players  json.RawMessage `json:"players"`
	Hands    json.RawMessage `json:"hands"`
	Settings json.RawMessage `json:"settings"`
}

// Import applies an interchange document: each collection present in it
// replaces the stored collection wholesale. Malformed input is rejected
// before anything is written, leaving stored data untouched.
func (s *Store) Import(data []byte) error {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("store: invalid import document: %w", err)
	}

	var (
		players  []player.Player
		hands    []*hand.Hand
		settings Settings
	)
	if doc.Players != nil {
		if err := json.Unmarshal(doc.Players, &players); err != nil {
			return fmt.Errorf("store: invalid players collection: %w", err)
		}
	}
	if doc.Hands != nil {
		if err := json.Unmarshal(doc.Hands, &hands); err != nil {
			return fmt.Errorf("store: invalid hands collection: %w", err)
		}
	}
	if doc.Settings != nil {
		if err := json.Unmarshal(doc.Settings, &settings); err != nil {
			return fmt.Errorf("store: invalid settings collection: %w", err)
		}
	}

	if doc.Players != nil {
		if err := s.SaveAllPlayers(players); err != nil {
			return err
		}
	}
	if doc.Hands != nil {
		if err := s.SaveAllHands(hands); err != nil {
			return err
		}
	}
	if doc.Settings != nil {
		if err := s.SaveSettings(settings); err != nil {
			return err
		}
	}

	s.logger.Info("imported data",
		"players", doc.Players != nil,
		"hands", doc.Hands != nil,
		"settings", doc.Settings != nil)
	return nil
}
