package intro

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/router"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "menu" }
func (s *stubScreen) Title() string                           { return "Menu" }

func newTestIntro() (*IntroScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(s *IntroScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = s.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhaseTransitions(t *testing.T) {
	s, _ := newTestIntro()

	if strings.Contains(s.View(80, 24), "learning every day") {
		t.Error("tagline should not be visible at start")
	}

	// 15 ticks (1500ms) reaches the banner phase.
	sendTicks(s, 15)
	if s.elapsed != 1500*time.Millisecond {
		t.Errorf("expected elapsed 1500ms, got %v", s.elapsed)
	}
	if !strings.Contains(s.View(80, 24), "learning every day") {
		t.Error("tagline should be visible once the banner phase starts")
	}
}

func TestAutoTransitionAfterAnimation(t *testing.T) {
	s, callCount := newTestIntro()

	// One tick short of the full animation: no transition yet.
	sendTicks(s, 39)
	if *callCount != 0 {
		t.Fatalf("factory called %d times before animation finished", *callCount)
	}

	cmd := sendTicks(s, 1)
	if cmd == nil {
		t.Fatal("expected a transition command at the end of the animation")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *callCount != 1 {
		t.Errorf("factory called %d times, want 1", *callCount)
	}
}

func TestKeypressSkipsAnimation(t *testing.T) {
	s, callCount := newTestIntro()

	// Even mid-animation, the first key press moves on immediately.
	sendTicks(s, 5)
	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during the animation should transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if *callCount != 1 {
		t.Errorf("factory called %d times, want 1", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	s, callCount := newTestIntro()

	sendTicks(s, 15)
	s.Update(tea.KeyPressMsg{Code: 'a'})

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory called %d times, want exactly 1", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	s, _ := newTestIntro()
	if s.Title() != "" {
		t.Errorf("expected empty title, got %q", s.Title())
	}
}
