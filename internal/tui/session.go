package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trknhr/phraseguess/internal/game"
	"github.com/trknhr/phraseguess/internal/logger"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type tuiModel struct {
	input  textinput.Model
	list   list.Model
	game   *game.Game
	round  *game.Round
	reveal int
	status string
	width  int
	height int
}

// compactDelegate renders items in a single-line compact form.
type compactDelegate struct{}

func (d compactDelegate) Height() int                               { return 1 }
func (d compactDelegate) Spacing() int                              { return 0 }
func (d compactDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d compactDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(resultItem)
	if !ok {
		return
	}
	str := "  " + i.text
	switch {
	case i.hit:
		str = hitStyle.Render(str)
	case i.answer:
		str = missStyle.Render(str)
	}
	fmt.Fprint(w, str)
}

type resultItem struct {
	text   string
	hit    bool
	answer bool
}

func (i resultItem) Title() string       { return i.text }
func (i resultItem) Description() string { return "" }
func (i resultItem) FilterValue() string { return i.text }

// NewTuiModel starts the first round of g. reveal is how many answers are
// shown when a round ends.
func NewTuiModel(g *game.Game, reveal int) (*tuiModel, error) {
	input := textinput.New()
	input.Placeholder = "Type your guess..."
	input.CharLimit = 64
	input.Focus()

	l := list.New([]list.Item{}, &compactDelegate{}, 40, 10)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	m := &tuiModel{
		input:  input,
		list:   l,
		game:   g,
		reveal: reveal,
	}
	if err := m.startRound(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	return m, nil
}

func (m *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *tuiModel) startRound() error {
	r, err := m.game.NewRound()
	if err != nil {
		return err
	}
	logger.Debug("round %d: %q", m.game.Rounds(), r.Prompt())
	m.round = r
	m.status = fmt.Sprintf("%d guesses left", r.GuessesLeft())
	m.list.SetItems([]list.Item{})
	m.input.Reset()
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-9, 3))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.round.Over() {
				if err := m.startRound(); err != nil {
					m.status = errStyle.Render(err.Error())
				}
				return m, nil
			}
			m.submit(strings.TrimSpace(m.input.Value()))
			return m, nil

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *tuiModel) submit(word string) {
	m.input.Reset()
	if word == "" {
		return
	}

	g, err := m.round.Guess(word)
	if err != nil {
		if !errors.Is(err, game.ErrAlreadyGuessed) && !errors.Is(err, game.ErrNotAWord) {
			logger.Error("guess %q failed: %v", word, err)
		}
		m.status = errStyle.Render(err.Error())
		return
	}

	m.list.InsertItem(len(m.list.Items()), resultItem{
		text: formatGuess(g),
		hit:  g.Rank > 0,
	})

	if !m.round.Over() {
		m.status = fmt.Sprintf("%d guesses left", m.round.GuessesLeft())
		return
	}

	m.status = fmt.Sprintf("Round over! +%d points. Press Enter for the next round.", m.round.Points())
	for i, a := range m.round.Answers(m.reveal) {
		m.list.InsertItem(len(m.list.Items()), resultItem{
			text:   fmt.Sprintf("#%d %s %.2f%%", i+1, a.Text, a.Score),
			answer: true,
		})
	}
}

func formatGuess(g game.Guess) string {
	if g.Rank == 0 {
		return fmt.Sprintf("%s 0.00%% (not seen here)", g.Word)
	}
	return fmt.Sprintf("%s %.2f%% (#%d, +%d)", g.Word, g.Score, g.Rank, g.Points)
}

func (m *tuiModel) View() string {
	s := "phraseguess\n\n"
	s += promptStyle.Render(m.round.Prompt()) + "\n\n"
	s += m.input.View() + "\n\n"
	s += m.status + "\n"
	s += m.list.View() + "\n"
	s += fmt.Sprintf("round %d · %d points · (quit = Ctrl+C)", m.game.Rounds(), m.game.Points())
	return s
}

func (m *tuiModel) Points() int {
	return m.game.Points()
}
