// Package store persists players, hands and settings in a local SQLite
// database. Each collection is a key-value table holding one JSON blob
// per record; the core never queries beyond by-id and list-all.
// Malformed rows are treated as absent rather than fatal.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/player"
)

const schema = `
CREATE TABLE IF NOT EXISTS hands (
    id   TEXT PRIMARY KEY,
    data TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS players (
    id   TEXT PRIMARY KEY,
    data TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key  TEXT PRIMARY KEY,
    data TEXT NOT NULL
);
`

const settingsKey = "settings"

// Settings are the persisted user defaults
type Settings struct {
	DefaultTableSize int    `json:"defaultTableSize,omitempty"`
	DefaultBlind     string `json:"defaultBlind,omitempty"`
}

// Store wraps the SQLite database
type Store struct {
	db     *sql.DB
	logger *log.Logger
	now    func() time.Time
}

// Open opens (creating if needed) the database at path. Use ":memory:"
// for an ephemeral store in tests.
func Open(path string, logger *log.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.WithPrefix("store"),
		now:    time.Now,
	}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadHand returns the hand with the given id, or nil when it does not
// exist or its stored form cannot be parsed
func (s *Store) LoadHand(id string) (*hand.Hand, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM hands WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load hand %s: %w", id, err)
	}

	var h hand.Hand
	if err := json.Unmarshal(data, &h); err != nil {
		s.logger.Warn("discarding malformed hand record", "id", id, "err", err)
		return nil, nil
	}
	return &h, nil
}

// SaveHand upserts a hand, refreshing its updatedAt timestamp
func (s *Store) SaveHand(h *hand.Hand) error {
	h.UpdatedAt = s.now()
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("store: marshal hand %s: %w", h.ID, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO hands (id, data) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		h.ID, data,
	)
	if err != nil {
		return fmt.Errorf("store: save hand %s: %w", h.ID, err)
	}
	return nil
}

// SaveAllHands replaces the whole hands collection
func (s *Store) SaveAllHands(hands []*hand.Hand) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM hands`); err != nil {
		return fmt.Errorf("store: clear hands: %w", err)
	}
	for _, h := range hands {
		data, err := json.Marshal(h)
		if err != nil {
			return fmt.Errorf("store: marshal hand %s: %w", h.ID, err)
		}
		if _, err := tx.Exec(`INSERT INTO hands (id, data) VALUES (?, ?)`, h.ID, data); err != nil {
			return fmt.Errorf("store: insert hand %s: %w", h.ID, err)
		}
	}
	return tx.Commit()
}

// DeleteHand removes a hand; deleting a missing id is not an error
func (s *Store) DeleteHand(id string) error {
	if _, err := s.db.Exec(`DELETE FROM hands WHERE id = ?`, id); err != nil {
		return fmt.Errorf("store: delete hand %s: %w", id, err)
	}
	return nil
}

// ListHands returns every parseable hand, newest first. Ids are
// time-sortable, so the key order is creation order.
func (s *Store) ListHands() ([]*hand.Hand, error) {
	rows, err := s.db.Query(`SELECT id, data FROM hands ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list hands: %w", err)
	}
	defer rows.Close()

	var hands []*hand.Hand
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("store: scan hand: %w", err)
		}
		var h hand.Hand
		if err := json.Unmarshal(data, &h); err != nil {
			s.logger.Warn("skipping malformed hand record", "id", id, "err", err)
			continue
		}
		hands = append(hands, &h)
	}
	return hands, rows.Err()
}

// SavePlayer upserts a player record
func (s *Store) SavePlayer(p player.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("store: marshal player %s: %w", p.ID, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO players (id, data) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		p.ID, data,
	)
	if err != nil {
		return fmt.Errorf("store: save player %s: %w", p.ID, err)
	}
	return nil
}

// SaveAllPlayers replaces the whole players collection
func (s *Store) SaveAllPlayers(players []player.Player) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM players`); err != nil {
		return fmt.Errorf("store: clear players: %w", err)
	}
	for _, p := range players {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("store: marshal player %s: %w", p.ID, err)
		}
		if _, err := tx.Exec(`INSERT INTO players (id, data) VALUES (?, ?)`, p.ID, data); err != nil {
			return fmt.Errorf("store: insert player %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// DeletePlayer removes a player record
func (s *Store) DeletePlayer(id string) error {
	if _, err := s.db.Exec(`DELETE FROM players WHERE id = ?`, id); err != nil {
		return fmt.Errorf("store: delete player %s: %w", id, err)
	}
	return nil
}

// ListPlayers returns every parseable player record
func (s *Store) ListPlayers() ([]player.Player, error) {
	rows, err := s.db.Query(`SELECT id, data FROM players`)
	if err != nil {
		return nil, fmt.Errorf("store: list players: %w", err)
	}
	defer rows.Close()

	var players []player.Player
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("store: scan player: %w", err)
		}
		var p player.Player
		if err := json.Unmarshal(data, &p); err != nil {
			s.logger.Warn("skipping malformed player record", "id", id, "err", err)
			continue
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// LoadSettings returns the persisted settings, or defaults when none
// are stored or the stored form is malformed
func (s *Store) LoadSettings() (Settings, error) {
	defaults := Settings{
		DefaultTableSize: hand.DefaultTableSize,
		DefaultBlind:     hand.DefaultBlind.Name,
	}

	var data []byte
	err := s.db.QueryRow(`SELECT data FROM settings WHERE key = ?`, settingsKey).Scan(&data)
	if err == sql.ErrNoRows {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("store: load settings: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warn("resetting malformed settings", "err", err)
		return defaults, nil
	}
	if settings.DefaultTableSize == 0 {
		settings.DefaultTableSize = defaults.DefaultTableSize
	}
	if settings.DefaultBlind == "" {
		settings.DefaultBlind = defaults.DefaultBlind
	}
	return settings, nil
}

// SaveSettings persists the settings record
func (s *Store) SaveSettings(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("store: marshal settings: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO settings (key, data) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
		settingsKey, data,
	)
	if err != nil {
		return fmt.Errorf("store: save settings: %w", err)
	}
	return nil
}
