package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/atotto/clipboard"

	"github.com/lox/handnotes/internal/export"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/handid"
)

// NewCmd records a new hand and opens the editor on it
type NewCmd struct {
	Size   int    `kong:"help='Table size, 2 to 9 (default from settings)'"`
	Blind  string `kong:"help='Blind structure, e.g. 1/2 (default from settings)'"`
	Hero   string `kong:"default='BTN',help='Hero position'"`
	NoEdit bool   `kong:"help='Create the hand without opening the editor'"`
}

func (c *NewCmd) Run(a *app) error {
	settings := a.settings()

	size := c.Size
	if size == 0 {
		size = settings.DefaultTableSize
	}
	blindName := c.Blind
	if blindName == "" {
		blindName = settings.DefaultBlind
	}
	blind, ok := hand.BlindByName(blindName)
	if !ok {
		return fmt.Errorf("unknown blind structure %q", blindName)
	}

	h, err := hand.New(handid.New(), size, blind, hand.Position(strings.ToUpper(c.Hero)), time.Now())
	if err != nil {
		return err
	}
	if err := a.store.SaveHand(h); err != nil {
		return err
	}
	a.logger.Info("created hand", "id", h.ID, "blind", blind.Name, "size", size)

	if c.NoEdit {
		fmt.Println(h.ID)
		return nil
	}
	return a.runEditor(h)
}

// EditCmd reopens a recorded hand in the editor
type EditCmd struct {
	ID string `kong:"arg,help='Hand ID'"`
}

func (c *EditCmd) Run(a *app) error {
	h, err := a.loadHand(c.ID)
	if err != nil {
		return err
	}
	return a.runEditor(h)
}

// ListCmd prints recorded hands, newest first
type ListCmd struct {
	Status string `kong:"help='Filter by status (draft or done)'"`
}

func (c *ListCmd) Run(a *app) error {
	hands, err := a.store.ListHands()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSTAKES\tHERO\tSTATUS\tMEMO")
	for _, h := range hands {
		if c.Status != "" && string(h.Status) != c.Status {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s %d-max\t%s\t%s\t%s\n",
			h.ID,
			h.CreatedAt.Format("2006-01-02 15:04"),
			h.Blind, h.TableSize,
			h.HeroPosition,
			h.Status,
			memoSnippet(h.SpotMemo),
		)
	}
	return w.Flush()
}

func memoSnippet(memo string) string {
	memo = strings.ReplaceAll(memo, "\n", " ")
	if len(memo) > 40 {
		return memo[:37] + "..."
	}
	return memo
}

// ShowCmd prints a hand's share text to stdout
type ShowCmd struct {
	ID string `kong:"arg,help='Hand ID'"`
}

func (c *ShowCmd) Run(a *app) error {
	text, err := shareText(a, c.ID)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

// ExportCmd copies a hand's share text to the system clipboard
type ExportCmd struct {
	ID     string `kong:"arg,help='Hand ID'"`
	Stdout bool   `kong:"help='Print to stdout instead of the clipboard'"`
}

func (c *ExportCmd) Run(a *app) error {
	text, err := shareText(a, c.ID)
	if err != nil {
		return err
	}
	if c.Stdout {
		fmt.Print(text)
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	a.logger.Info("copied share text", "hand", c.ID)
	return nil
}

func shareText(a *app, id string) (string, error) {
	h, err := a.loadHand(id)
	if err != nil {
		return "", err
	}
	players, err := a.playerDirectory()
	if err != nil {
		return "", err
	}
	return export.Text(h, players), nil
}

// DoneCmd marks a hand reviewed (or back to draft)
type DoneCmd struct {
	ID    string `kong:"arg,help='Hand ID'"`
	Draft bool   `kong:"help='Revert to draft instead'"`
}

func (c *DoneCmd) Run(a *app) error {
	h, err := a.loadHand(c.ID)
	if err != nil {
		return err
	}
	h.Status = hand.StatusDone
	if c.Draft {
		h.Status = hand.StatusDraft
	}
	return a.store.SaveHand(h)
}

// DeleteCmd removes a hand permanently
type DeleteCmd struct {
	ID string `kong:"arg,help='Hand ID'"`
}

func (c *DeleteCmd) Run(a *app) error {
	if _, err := a.loadHand(c.ID); err != nil {
		return err
	}
	if err := a.store.DeleteHand(c.ID); err != nil {
		return err
	}
	a.logger.Info("deleted hand", "id", c.ID)
	return nil
}
