// Package export renders a recorded hand as shareable plain text. The
// format is one-way: the tool never parses it back.
package export

import (
	"fmt"
	"strings"

	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/player"
)

// Text renders the fixed multi-line share layout: header, hero line,
// players block, board, per-street action lines, result and memo.
// Action labels and sizes are derived on the way out, never read from
// storage.
func Text(h *hand.Hand, players *player.Directory) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d-max\n", h.Blind.Name, h.TableSize)
	fmt.Fprintf(&b, "Hero: %s %s\n", h.HeroPosition, holeCards(h.HeroCards))

	b.WriteString("Players:\n")
	for _, pos := range hand.PreflopOrder(h.TableSize) {
		fmt.Fprintf(&b, "  %s: %s\n", pos, seatLine(h, pos, players))
	}

	if line := boardLine(h.Board); line != "" {
		fmt.Fprintf(&b, "Board: %s\n", line)
	}

	if len(h.Actions) > 0 {
		b.WriteString("Actions:\n")
		for st := hand.Preflop; st <= hand.River; st++ {
			if line := streetLine(h, st); line != "" {
				fmt.Fprintf(&b, "  %s: %s\n", st.Code(), line)
			}
		}
	}

	fmt.Fprintf(&b, "Result: %s\n", resultLine(h.Result))

	for _, pos := range hand.PreflopOrder(h.TableSize) {
		if cards, ok := h.Opponents[pos]; ok {
			fmt.Fprintf(&b, "Shown: %s %s\n", pos, holeCards(cards))
		}
	}

	if h.SpotMemo != "" {
		fmt.Fprintf(&b, "Memo: %s\n", h.SpotMemo)
	}

	return b.String()
}

func seatLine(h *hand.Hand, pos hand.Position, players *player.Directory) string {
	seat, ok := h.Seats[pos]
	if !ok {
		return "-"
	}
	if seat.Hero {
		return "Hero"
	}
	if seat.PlayerID == "" {
		return "-"
	}

	p, ok := players.Get(seat.PlayerID)
	if !ok {
		return "-"
	}

	line := p.Name
	if len(p.Tags) > 0 {
		line += " [" + strings.Join(p.Tags, ",") + "]"
	}
	if p.Note != "" {
		line += " " + p.Note
	}
	return line
}

func holeCards(cards hand.HoleCards) string {
	out := ""
	for _, c := range cards {
		if c == nil {
			out += "??"
		} else {
			out += c.String()
		}
	}
	return out
}

func boardLine(board hand.Board) string {
	var flop []string
	for _, c := range board.Flop {
		if c != nil {
			flop = append(flop, c.String())
		}
	}
	if len(flop) == 0 && board.Turn == nil && board.River == nil {
		return ""
	}

	parts := []string{strings.Join(flop, " ")}
	if board.Turn != nil {
		parts = append(parts, board.Turn.String())
	}
	if board.River != nil {
		parts = append(parts, board.River.String())
	}
	return strings.Join(parts, " | ")
}

func streetLine(h *hand.Hand, street hand.Street) string {
	actions := h.StreetActions(street)
	if len(actions) == 0 {
		return ""
	}

	tokens := make([]string, 0, len(actions))
	for _, a := range actions {
		token := fmt.Sprintf("%s %s", a.Position, hand.Label(a, h.Actions))
		if a.IsRaise() {
			token += " " + a.Amount.String()
		}
		tokens = append(tokens, token)
	}
	return strings.Join(tokens, " / ")
}

func resultLine(r hand.Result) string {
	seats := "-"
	if len(r.Winners) > 0 {
		names := make([]string, len(r.Winners))
		for i, w := range r.Winners {
			names[i] = string(w)
		}
		seats = strings.Join(names, ", ")
	}

	showdown := "no"
	if r.Showdown {
		showdown = "yes"
	}
	return fmt.Sprintf("%s win (showdown: %s)", seats, showdown)
}
