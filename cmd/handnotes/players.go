package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lox/handnotes/internal/handid"
	"github.com/lox/handnotes/internal/player"
)

// PlayerCmd groups player directory operations
type PlayerCmd struct {
	List   PlayerListCmd   `cmd:"" help:"List known players, most recently seen first"`
	Add    PlayerAddCmd    `cmd:"" help:"Add a player to the directory"`
	Note   PlayerNoteCmd   `cmd:"" help:"Set the free-form note on a player"`
	Remove PlayerRemoveCmd `cmd:"" help:"Remove a player from the directory"`
}

type PlayerListCmd struct {
	Search string `kong:"help='Filter by name substring'"`
}

func (c *PlayerListCmd) Run(a *app) error {
	dir, err := a.playerDirectory()
	if err != nil {
		return err
	}

	players := dir.Recent(-1)
	if c.Search != "" {
		players = dir.Search(c.Search)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTAGS\tLAST SEEN\tNOTE")
	for _, p := range players {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, strings.Join(p.Tags, ","),
			p.LastSeen.Format("2006-01-02"), memoSnippet(p.Note))
	}
	return w.Flush()
}

type PlayerAddCmd struct {
	Name string   `kong:"arg,help='Player name'"`
	Tags []string `kong:"help='Tags, e.g. reg,nit'"`
	Note string   `kong:"help='Free-form note'"`
}

func (c *PlayerAddCmd) Run(a *app) error {
	p := player.Player{
		ID:       handid.New(),
		Name:     c.Name,
		Tags:     c.Tags,
		Note:     c.Note,
		LastSeen: time.Now(),
	}
	if err := a.store.SavePlayer(p); err != nil {
		return err
	}
	fmt.Println(p.ID)
	return nil
}

type PlayerNoteCmd struct {
	ID   string `kong:"arg,help='Player ID'"`
	Note string `kong:"arg,help='Note text'"`
}

func (c *PlayerNoteCmd) Run(a *app) error {
	dir, err := a.playerDirectory()
	if err != nil {
		return err
	}
	p, ok := dir.Get(c.ID)
	if !ok {
		return fmt.Errorf("player %s not found", c.ID)
	}
	p.Note = c.Note
	return a.store.SavePlayer(p)
}

type PlayerRemoveCmd struct {
	ID string `kong:"arg,help='Player ID'"`
}

func (c *PlayerRemoveCmd) Run(a *app) error {
	return a.store.DeletePlayer(c.ID)
}
