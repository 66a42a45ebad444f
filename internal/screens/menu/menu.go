package menu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/router"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screen"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screens/info"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screens/studentselect"
	"github.com/8bitgaijin/Learniverse-sub001/internal/session"
	"github.com/8bitgaijin/Learniverse-sub001/internal/store"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/components"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/theme"
)

// Config carries everything the menu tree needs to build its
// sub-screens.
type Config struct {
	Store           store.ProgressStore
	NewOrchestrator func() *session.Orchestrator
	DBPath          string
	ContentDir      string
	Version         string
}

// MenuScreen is the main menu of the application.
type MenuScreen struct {
	cfg    Config
	labels []string
	menu   components.Menu
}

var _ screen.Screen = (*MenuScreen)(nil)

// New creates the main menu.
func New(cfg Config) *MenuScreen {
	labels := []string{"START LESSON", "HOW IT WORKS", "OPTIONS", "CREDITS", "QUIT"}

	items := []components.MenuItem{
		{Label: labels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: studentselect.New(cfg.Store, cfg.NewOrchestrator),
				}
			}
		}},
		{Label: labels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: info.New("How It Works", explanationBody)}
			}
		}},
		{Label: labels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: info.New("Options", optionsBody(cfg))}
			}
		}},
		{Label: labels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: info.New("Credits", creditsBody)}
			}
		}},
		{Label: labels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &MenuScreen{
		cfg:    cfg,
		labels: labels,
		menu:   components.NewMenu(items),
	}
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MenuScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascot(cw))
	}
	sections = append(sections, renderButtons(m.labels, m.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (m *MenuScreen) Title() string {
	return "Main Menu"
}

const explanationBody = `Every lesson day walks through the same set of activities, in order:

  1. A greeting, your practice streak, and today's day of the week
  2. Math drills: addition, subtraction, multiplication,
     fractions, and skip counting
  3. Japanese: hiragana study and quiz, katakana quiz,
     and a vocabulary quiz
  4. A reading passage to finish

Each quiz is scored. Answer every question in a quiz correctly and you move up a level — higher levels unlock more characters and harder decks. Levels never go down, so there is no penalty for a rough day.

Press Esc during a lesson if you need to stop early. Everything you finished still counts.`

const creditsBody = `Learniverse

Built for kids learning at home.

Letter and vocabulary content draws on standard hiragana and katakana tables. Reading passages are from the King James Bible (public domain).

Thanks to the Charm ecosystem (Bubble Tea, Bubbles, Lip Gloss) for the terminal UI toolkit.`

func optionsBody(cfg Config) string {
	contentDir := cfg.ContentDir
	if contentDir == "" {
		contentDir = "(built-in content only)"
	}
	return fmt.Sprintf(`Progress database:
  %s

Lesson content packs:
  %s

Extra lesson packs are YAML files dropped into the content directory (set with --content or the LEARNIVERSE_CONTENT environment variable). Packs override built-in lessons with the same title.

Version: %s`, cfg.DBPath, contentDir, cfg.Version)
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Sun).
		Bold(true)

	title := titleArt
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

func renderMascot(cw int) string {
	mascot := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(mascotArt)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(mascot)
}

func renderButtons(labels []string, selected int, cw int) string {
	var buttons []string
	for i, label := range labels {
		buttons = append(buttons, components.MenuButton(label, i == selected))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

const titleArt = ` ╦  ╔═╗╔═╗╦═╗╔╗╔╦╦  ╦╔═╗╦═╗╔═╗╔═╗
 ║  ║╣ ╠═╣╠╦╝║║║║╚╗╔╝║╣ ╠╦╝╚═╗║╣
 ╩═╝╚═╝╩ ╩╩╚═╝╚╝╩ ╚╝ ╚═╝╩╚═╚═╝╚═╝`

const titleCompact = "L · E · A · R · N · I · V · E · R · S · E"

const mascotArt = `╭─────────╮
│  ◉   ◉  │
│    ▽    │
│  あ 1 A │
╰─────────╯`
