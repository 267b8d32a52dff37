// Package player holds the player directory: name, freeform tags, a
// permanent note and a last-seen timestamp used for recency ranking.
// Hands reference players by id only.
package player

import (
	"sort"
	"strings"
	"time"
)

// Player is one directory record
type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Tags     []string  `json:"tags,omitempty"`
	Note     string    `json:"note,omitempty"`
	LastSeen time.Time `json:"lastSeen"`
}

// Directory is an in-memory view over the stored player records
type Directory struct {
	players map[string]Player
}

// NewDirectory builds a directory from stored records
func NewDirectory(players []Player) *Directory {
	d := &Directory{players: make(map[string]Player, len(players))}
	for _, p := range players {
		d.players[p.ID] = p
	}
	return d
}

// Get returns the player with the given id
func (d *Directory) Get(id string) (Player, bool) {
	p, ok := d.players[id]
	return p, ok
}

// Upsert adds or replaces a record
func (d *Directory) Upsert(p Player) {
	d.players[p.ID] = p
}

// Remove deletes a record
func (d *Directory) Remove(id string) {
	delete(d.players, id)
}

// Touch refreshes a player's last-seen timestamp, used when the player
// is assigned to a seat
func (d *Directory) Touch(id string, now time.Time) {
	if p, ok := d.players[id]; ok {
		p.LastSeen = now
		d.players[id] = p
	}
}

// Recent returns up to n players ranked by last-seen, newest first.
// Ties break on name so the ordering is stable.
func (d *Directory) Recent(n int) []Player {
	all := d.All()
	sort.Slice(all, func(i, j int) bool {
		if !all[i].LastSeen.Equal(all[j].LastSeen) {
			return all[i].LastSeen.After(all[j].LastSeen)
		}
		return all[i].Name < all[j].Name
	})
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all
}

// Search returns players whose name contains the query,
// case-insensitively, in recency order
func (d *Directory) Search(query string) []Player {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Player
	for _, p := range d.Recent(-1) {
		if query == "" || strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

// All returns every record in unspecified order
func (d *Directory) All() []Player {
	out := make([]Player, 0, len(d.players))
	for _, p := range d.players {
		out = append(out, p)
	}
	return out
}
