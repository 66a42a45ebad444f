package info

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/router"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screen"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/layout"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/theme"
)

// InfoScreen is a static text page: explanation, options, credits.
type InfoScreen struct {
	title string
	body  string
}

var _ screen.Screen = (*InfoScreen)(nil)
var _ screen.KeyHintProvider = (*InfoScreen)(nil)

// New creates an InfoScreen with the given title and body text.
func New(title, body string) *InfoScreen {
	return &InfoScreen{title: title, body: body}
}

func (s *InfoScreen) Init() tea.Cmd {
	return nil
}

func (s *InfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *InfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InfoScreen) View(width, height int) string {
	body := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *InfoScreen) Title() string {
	return s.title
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
