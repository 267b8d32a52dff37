package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/handnotes/internal/editor"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/player"
)

// mode selects which input the editor is currently collecting.
type mode int

const (
	modeAction mode = iota
	modeSize
	modeCards
	modeMemo
	modeOpponent
	modePlayer
)

// AdvanceMsg is delivered when the session auto-advances to a new street.
type AdvanceMsg hand.Street

// EditorModel is the Bubble Tea model for the hand editor. All hand
// mutations go through the editor session; the model only renders the
// session's current snapshot and translates keys into edits.
type EditorModel struct {
	session  *editor.Session
	players  *player.Directory
	logger   *log.Logger
	advances chan hand.Street

	input    textinput.Model
	mode     mode
	freeform bool // size mode: typing a custom amount instead of picking a preset
	seatIdx  int
	status   string
	errMsg   string

	width    int
	height   int
	quitting bool
}

// NewEditor creates an editor model over an open session. The advances
// channel must be the one the session's OnAdvance callback feeds.
func NewEditor(session *editor.Session, players *player.Directory, logger *log.Logger, advances chan hand.Street) *EditorModel {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 40
	ti.PromptStyle = PromptStyle
	ti.Prompt = "> "

	return &EditorModel{
		session:  session,
		players:  players,
		logger:   logger.WithPrefix("tui"),
		advances: advances,
		input:    ti,
	}
}

// Init initializes the editor model
func (m *EditorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitAdvance())
}

// waitAdvance returns a command that blocks on the next auto-advance.
func (m *EditorModel) waitAdvance() tea.Cmd {
	return func() tea.Msg {
		street, ok := <-m.advances
		if !ok {
			return nil
		}
		return AdvanceMsg(street)
	}
}

// Update handles incoming messages
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case AdvanceMsg:
		m.seatIdx = 0
		m.status = fmt.Sprintf("dealt %s", hand.Street(msg))
		return m, m.waitAdvance()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.mode {
	case modeSize:
		return m.handleSizeKey(msg)
	case modeCards, modeMemo, modeOpponent, modePlayer:
		return m.handleTextKey(msg)
	}
	return m.handleActionKey(msg)
}

func (m *EditorModel) handleActionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch msg.String() {
	case "q", "esc":
		return m.quit()

	case "left", "h":
		m.moveSeat(-1)
	case "right", "l", "tab":
		m.moveSeat(1)

	case "f":
		m.appendAction(hand.Fold, hand.RaiseAmount{})
	case "k":
		m.appendAction(hand.Check, hand.RaiseAmount{})
	case "c":
		m.appendAction(hand.Call, hand.RaiseAmount{})
	case "b", "r":
		m.mode = modeSize
		m.freeform = false
		m.input.SetValue("")
		m.input.Placeholder = "amount in bb"

	case "d":
		m.deleteLast()
	case "u":
		if m.session.Undo() {
			m.seatIdx = 0
			m.status = "undo"
		}
	case "ctrl+r":
		if m.session.Redo() {
			m.seatIdx = 0
			m.status = "redo"
		}

	case "g":
		m.mode = modeCards
		m.input.SetValue("")
		m.input.Placeholder = "cards, e.g. Ah Kd"
		m.input.Focus()
		return m, textinput.Blink
	case "m":
		m.mode = modeMemo
		m.input.SetValue(m.session.Hand().SpotMemo)
		m.input.Placeholder = "spot memo"
		m.input.Focus()
		return m, textinput.Blink
	case "o":
		m.mode = modeOpponent
		m.input.SetValue("")
		m.input.Placeholder = "shown cards, e.g. Qc Qd"
		m.input.Focus()
		return m, textinput.Blink
	case "p":
		m.mode = modePlayer
		m.input.SetValue("")
		m.input.Placeholder = "player name (empty clears seat)"
		m.input.Focus()
		return m, textinput.Blink

	case "w":
		m.toggleWinner()
	case "s":
		m.toggleShowdown()
	case "D":
		m.toggleDone()
	}
	return m, nil
}

// handleSizeKey collects a raise size. Digits pick a preset until the
// user switches to freeform entry with "/".
func (m *EditorModel) handleSizeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = modeAction
		m.input.Blur()
		return m, nil
	}

	if m.freeform {
		if msg.Type == tea.KeyEnter {
			amount, err := hand.ParseAmount(m.input.Value())
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.commitRaise(hand.FixedAmount(amount))
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	opts := m.sizingOptions()
	switch key := msg.String(); key {
	case "a":
		m.commitRaise(hand.AllInUnknown())
	case "/":
		m.freeform = true
		m.input.Focus()
		return m, textinput.Blink
	default:
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 {
			return m, nil
		}
		if len(opts.Presets) > 0 && n <= len(opts.Presets) {
			m.commitRaise(hand.FixedAmount(opts.Presets[n-1]))
		} else if n <= len(opts.Fractions) {
			pot := m.session.Hand().PotAt(m.session.Street())
			m.commitRaise(hand.FixedAmount(hand.ResolveFraction(pot, opts.Fractions[n-1])))
		}
	}
	return m, nil
}

func (m *EditorModel) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = modeAction
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		var err error
		switch m.mode {
		case modeMemo:
			m.session.SetMemo(value)
			m.status = "memo saved"
		case modeCards:
			err = m.assignCards(value)
		case modeOpponent:
			err = m.assignOpponentCards(value)
		case modePlayer:
			err = m.assignPlayer(value)
		}
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.mode = modeAction
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *EditorModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.session.Close()
	return m, tea.Quit
}

// seats lists the positions that can still act on the current street.
func (m *EditorModel) seats() []hand.Position {
	h := m.session.Hand()
	street := m.session.Street()
	folded := hand.ExplicitFolds(h.StreetActions(street))

	var out []hand.Position
	for _, pos := range h.SeatsInStreet(street) {
		if !folded[pos] {
			out = append(out, pos)
		}
	}
	return out
}

func (m *EditorModel) moveSeat(delta int) {
	seats := m.seats()
	if len(seats) == 0 {
		return
	}
	m.seatIdx = ((m.seatIdx+delta)%len(seats) + len(seats)) % len(seats)
}

func (m *EditorModel) selectedSeat() (hand.Position, bool) {
	seats := m.seats()
	if len(seats) == 0 {
		return "", false
	}
	if m.seatIdx >= len(seats) {
		m.seatIdx = 0
	}
	return seats[m.seatIdx], true
}

func (m *EditorModel) appendAction(typ hand.ActionType, amount hand.RaiseAmount) {
	pos, ok := m.selectedSeat()
	if !ok {
		m.errMsg = "no seat can act"
		return
	}
	a, err := m.session.Append(pos, typ, amount)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.status = fmt.Sprintf("%s %s", pos, hand.Label(a, m.session.Hand().Actions))
}

func (m *EditorModel) commitRaise(amount hand.RaiseAmount) {
	m.mode = modeAction
	m.freeform = false
	m.input.Blur()
	m.appendAction(hand.Raise, amount)
}

func (m *EditorModel) sizingOptions() hand.SizingOptions {
	street := m.session.Street()
	raises := 0
	for _, a := range m.session.Hand().StreetActions(street) {
		if a.IsRaise() {
			raises++
		}
	}
	return hand.OptionsFor(street, raises)
}

func (m *EditorModel) deleteLast() {
	actions := m.session.Hand().StreetActions(m.session.Street())
	if len(actions) == 0 {
		m.errMsg = "nothing to delete"
		return
	}
	last := actions[len(actions)-1]
	if err := m.session.RemoveAction(last.ID); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.seatIdx = 0
	m.status = "deleted last action"
}

// assignCards parses space-separated cards and fills the next empty
// slots in deal order: hero hole cards, then flop, turn, river.
func (m *EditorModel) assignCards(value string) error {
	if value == "" {
		return nil
	}
	for _, token := range strings.Fields(value) {
		c, err := hand.ParseCard(token)
		if err != nil {
			return err
		}
		if err := m.placeCard(c); err != nil {
			return err
		}
	}
	m.status = "cards set"
	return nil
}

func (m *EditorModel) placeCard(c hand.Card) error {
	h := m.session.Hand()
	switch {
	case h.HeroCards[0] == nil:
		m.session.SetHeroCards(hand.HoleCards{&c, h.HeroCards[1]})
	case h.HeroCards[1] == nil:
		m.session.SetHeroCards(hand.HoleCards{h.HeroCards[0], &c})
	case h.Board.Flop[0] == nil:
		return m.session.SetFlopCard(0, &c)
	case h.Board.Flop[1] == nil:
		return m.session.SetFlopCard(1, &c)
	case h.Board.Flop[2] == nil:
		return m.session.SetFlopCard(2, &c)
	case h.Board.Turn == nil:
		m.session.SetTurn(&c)
	case h.Board.River == nil:
		m.session.SetRiver(&c)
	default:
		return fmt.Errorf("all cards already set")
	}
	return nil
}

// assignOpponentCards records the hand the cursor seat showed down.
func (m *EditorModel) assignOpponentCards(value string) error {
	pos, ok := m.selectedSeat()
	if !ok {
		return fmt.Errorf("no seat selected")
	}
	tokens := strings.Fields(value)
	if len(tokens) != 2 {
		return fmt.Errorf("expected two cards")
	}
	first, err := hand.ParseCard(tokens[0])
	if err != nil {
		return err
	}
	second, err := hand.ParseCard(tokens[1])
	if err != nil {
		return err
	}
	m.session.SetOpponentCards(pos, hand.HoleCards{&first, &second})
	m.status = fmt.Sprintf("%s shows %s %s", pos, first, second)
	return nil
}

// assignPlayer links the cursor seat to a directory player by name.
// Players are added to the directory from the CLI.
func (m *EditorModel) assignPlayer(value string) error {
	pos, ok := m.selectedSeat()
	if !ok {
		return fmt.Errorf("no seat selected")
	}
	if value == "" {
		return m.session.AssignSeat(pos, "")
	}
	matches := m.players.Search(value)
	if len(matches) == 0 {
		return fmt.Errorf("no player matches %q", value)
	}
	if err := m.session.AssignSeat(pos, matches[0].ID); err != nil {
		return err
	}
	m.status = fmt.Sprintf("%s is %s", pos, matches[0].Name)
	return nil
}

func (m *EditorModel) toggleWinner() {
	pos, ok := m.selectedSeat()
	if !ok {
		return
	}
	h := m.session.Hand()
	winners := make([]hand.Position, 0, len(h.Result.Winners)+1)
	found := false
	for _, w := range h.Result.Winners {
		if w == pos {
			found = true
			continue
		}
		winners = append(winners, w)
	}
	if !found {
		winners = append(winners, pos)
	}
	m.session.SetResult(winners, h.Result.Showdown)
	m.status = fmt.Sprintf("winners: %s", joinPositions(winners))
}

func (m *EditorModel) toggleShowdown() {
	h := m.session.Hand()
	m.session.SetResult(h.Result.Winners, !h.Result.Showdown)
}

func (m *EditorModel) toggleDone() {
	h := m.session.Hand()
	next := hand.StatusDone
	if h.Status == hand.StatusDone {
		next = hand.StatusDraft
	}
	m.session.SetStatus(next)
	m.status = fmt.Sprintf("status: %s", next)
}

// View renders the editor
func (m *EditorModel) View() string {
	if m.quitting {
		return ""
	}

	h := m.session.Hand()
	street := m.session.Street()

	var b strings.Builder
	header := fmt.Sprintf(" %s %d-max | Hero: %s | %s ", h.Blind, h.TableSize, h.HeroPosition, h.Status)
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString("Hero: " + renderHoleCards(h.HeroCards) + "\n")
	b.WriteString("Board: " + renderBoard(h.Board) + "\n")
	b.WriteString(PotStyle.Render(fmt.Sprintf("Pot: %gbb", h.PotAt(street))))
	b.WriteString("\n\n")

	for st := hand.Preflop; ; {
		line := StreetStyle.Render(st.Code()+":") + " " + renderStreetActions(h.StreetActions(st), h.Actions)
		b.WriteString(ActionLineStyle.Render(line) + "\n")
		if st == street {
			break
		}
		next, ok := st.Next()
		if !ok {
			break
		}
		st = next
	}
	b.WriteString("\n")

	b.WriteString(m.renderSeats())
	b.WriteString("\n\n")

	switch m.mode {
	case modeSize:
		b.WriteString(m.renderSizePrompt())
	case modeCards, modeMemo, modeOpponent, modePlayer:
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString(HelpStyle.Render(m.status) + "\n")
	}

	b.WriteString(HelpStyle.Render("←/→ seat | f fold  k check  c call  b bet/raise | d delete  u undo | g cards  o shown  p player  m memo  w winner  s showdown  D done | q quit"))
	return b.String()
}

func (m *EditorModel) renderSeats() string {
	h := m.session.Hand()
	street := m.session.Street()
	selected, _ := m.selectedSeat()
	active := make(map[hand.Position]bool)
	for _, pos := range m.seats() {
		active[pos] = true
	}

	order := hand.PreflopOrder(h.TableSize)
	if street != hand.Preflop {
		order = hand.PostflopOrder(h.TableSize)
	}

	parts := make([]string, 0, len(order))
	for _, pos := range order {
		label := string(pos)
		if seat, ok := h.Seats[pos]; ok && seat.PlayerID != "" {
			if p, ok := m.players.Get(seat.PlayerID); ok {
				label = fmt.Sprintf("%s(%s)", pos, p.Name)
			}
		}
		switch {
		case pos == selected:
			parts = append(parts, SelectedSeatStyle.Render("["+label+"]"))
		case active[pos]:
			parts = append(parts, SeatStyle.Render(" "+label+" "))
		default:
			parts = append(parts, FoldedSeatStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *EditorModel) renderSizePrompt() string {
	opts := m.sizingOptions()
	var parts []string
	for i, p := range opts.Presets {
		parts = append(parts, fmt.Sprintf("%d:%gbb", i+1, p))
	}
	for i, f := range opts.Fractions {
		parts = append(parts, fmt.Sprintf("%d:%s", i+1, f))
	}
	parts = append(parts, "a:all-in", "/:custom")

	prompt := PromptStyle.Render("size ") + strings.Join(parts, "  ")
	if m.freeform {
		prompt += "\n" + m.input.View()
	}
	return prompt
}

func renderStreetActions(actions []hand.Action, all []hand.Action) string {
	if len(actions) == 0 {
		return HelpStyle.Render("-")
	}
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		token := fmt.Sprintf("%s %s", a.Position, hand.Label(a, all))
		if a.IsRaise() {
			token += " " + a.Amount.String()
		}
		parts = append(parts, token)
	}
	return strings.Join(parts, " / ")
}

func renderHoleCards(cards hand.HoleCards) string {
	parts := make([]string, 0, 2)
	for _, c := range cards {
		parts = append(parts, renderCard(c))
	}
	return strings.Join(parts, " ")
}

func renderBoard(b hand.Board) string {
	parts := make([]string, 0, 5)
	for _, c := range b.Flop {
		parts = append(parts, renderCard(c))
	}
	parts = append(parts, renderCard(b.Turn), renderCard(b.River))
	return strings.Join(parts, " ")
}

func renderCard(c *hand.Card) string {
	if c == nil {
		return HelpStyle.Render("??")
	}
	return cardStyle(c.Suit.IsRed()).Render(c.Display())
}

func joinPositions(positions []hand.Position) string {
	if len(positions) == 0 {
		return "-"
	}
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
