package intro

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/router"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screen"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4 * time.Second
)

const mascotArt = `   .   ✦   .
  ╭─────────╮
  │  ◉   ◉  │
  │    ▽    │
  │  あ 1 A │
  ╰─────────╯
   .   ✦   .`

// twinkle frames cycle around the mascot
var twinkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// IntroScreen shows a splash animation, then hands off to the menu. It
// is the only screen with a timed transition: after the animation
// finishes it advances on its own, or earlier on any key press.
type IntroScreen struct {
	menuFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*IntroScreen)(nil)

// New creates an IntroScreen that will transition to the screen
// produced by menuFactory.
func New(menuFactory func() screen.Screen) *IntroScreen {
	return &IntroScreen{
		menuFactory: menuFactory,
	}
}

func (s *IntroScreen) Title() string {
	return ""
}

func (s *IntroScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		s.elapsed += tickInterval
		s.tickCount++
		if s.elapsed >= totalDur {
			return s, s.transition()
		}
		return s, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return s, s.transition()
	}

	return s, nil
}

func (s *IntroScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	menuScreen := s.menuFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: menuScreen}
	}
}

func (s *IntroScreen) View(width, height int) string {
	var sections []string

	mascotStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	// Phase 1+: mascot
	rendered := mascotStyle.Render(mascotArt)

	// Phase 2+: twinkles on the mascot sides
	if s.elapsed >= phase1End {
		frame := s.tickCount % len(twinkleFrames)
		twinkle := twinkleFrames[frame]

		accentStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		skyStyle := lipgloss.NewStyle().Foreground(theme.Sky)

		t1 := accentStyle.Render(twinkle)
		t2 := skyStyle.Render(twinkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = t1 + "  " + lines[1] + "  " + t2
		}
		if len(lines) > 4 {
			lines[4] = t2 + "  " + lines[4] + "  " + t1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline + hint
	if s.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("A little learning every day!")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
