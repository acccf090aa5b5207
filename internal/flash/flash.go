// Package flash is the terminal flashcard drill.
package flash

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edostudy/internal/content"
	"github.com/abhisek/edostudy/internal/ui/components"
	"github.com/abhisek/edostudy/internal/ui/layout"
	"github.com/abhisek/edostudy/internal/ui/theme"
)

type keyMap struct {
	Flip  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Known key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Flip:  key.NewBinding(key.WithKeys("space", " ", "enter"), key.WithHelp("Space", "Flip")),
	Next:  key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "Next")),
	Prev:  key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "Prev")),
	Known: key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "Known")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
}

func keyHints() []layout.KeyHint {
	bindings := []key.Binding{keys.Flip, keys.Prev, keys.Next, keys.Known, keys.Quit}
	hints := make([]layout.KeyHint, len(bindings))
	for i, b := range bindings {
		hints[i] = layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc}
	}
	return hints
}

// Model is the Bubble Tea model for one pass through a deck.
type Model struct {
	cards   []content.Flashcard
	index   int
	flipped bool
	known   map[string]bool
	width   int
	height  int
}

// New creates a drill over cards in the given order.
func New(cards []content.Flashcard) Model {
	return Model{cards: cards, known: map[string]bool{}}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Flip):
			m.flipped = !m.flipped
		case key.Matches(msg, keys.Next):
			m.move(1)
		case key.Matches(msg, keys.Prev):
			m.move(-1)
		case key.Matches(msg, keys.Known):
			if c, ok := m.Current(); ok {
				m.known = cloneKnown(m.known)
				m.known[c.ID] = !m.known[c.ID]
				if m.known[c.ID] {
					m.move(1)
				}
			}
		}
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.index = (m.index + delta + len(m.cards)) % len(m.cards)
	m.flipped = false
}

// Current returns the card on screen.
func (m Model) Current() (content.Flashcard, bool) {
	if len(m.cards) == 0 {
		return content.Flashcard{}, false
	}
	return m.cards[m.index], true
}

// Flipped reports whether the back of the card is showing.
func (m Model) Flipped() bool { return m.flipped }

// KnownCount is the number of cards marked known.
func (m Model) KnownCount() int {
	n := 0
	for _, k := range m.known {
		if k {
			n++
		}
	}
	return n
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = 80, 24
	}

	status := fmt.Sprintf("%d/%d  known %d", min(m.index+1, len(m.cards)), len(m.cards), m.KnownCount())
	header := layout.RenderHeader("Flashcards", status, width)
	footer := layout.RenderFooter(keyHints(), width)

	return layout.RenderFrame(header, m.body(width), footer, width, height)
}

func (m Model) body(width int) string {
	card, ok := m.Current()
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No flashcards match. Try a different category."))
	}

	cardWidth := min(max(width-8, 20), 72)
	style, side, text := theme.Card, "QUESTION", card.Front
	if m.flipped {
		style, side, text = theme.CardFlipped, "ANSWER", card.Back
	}

	var b strings.Builder
	b.WriteString(theme.Label.Render(side))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(card.Category + " · " + card.Difficulty))
	if m.known[card.ID] {
		b.WriteString("  ")
		b.WriteString(theme.Known.Render("✓ known"))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(text))

	rendered := style.Width(cardWidth).Render(b.String())
	progress := components.NewProgressBar("Known", float64(m.KnownCount())/float64(len(m.cards)), true, cardWidth).View()

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered) +
		"\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, progress)
}

func cloneKnown(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Run starts the drill and blocks until the user quits.
func Run(cards []content.Flashcard) (Model, error) {
	final, err := tea.NewProgram(New(cards)).Run()
	if err != nil {
		return Model{}, err
	}
	return final.(Model), nil
}
