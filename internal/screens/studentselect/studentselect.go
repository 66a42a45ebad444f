package studentselect

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/router"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screen"
	sessionscreen "github.com/8bitgaijin/Learniverse-sub001/internal/screens/session"
	sess "github.com/8bitgaijin/Learniverse-sub001/internal/session"
	"github.com/8bitgaijin/Learniverse-sub001/internal/store"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/components"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/layout"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/theme"
)

const maxNameLen = 24

type studentsLoadedMsg struct {
	students []store.Student
	err      error
}

type studentAddedMsg struct {
	name string
	err  error
}

// SelectScreen lets the learner pick who is practicing today, or add a
// new student inline.
type SelectScreen struct {
	store   store.ProgressStore
	newOrch func() *sess.Orchestrator

	students []store.Student
	menu     components.Menu
	loaded   bool
	adding   bool
	input    components.TextInput
	errMsg   string
}

var _ screen.Screen = (*SelectScreen)(nil)
var _ screen.KeyHintProvider = (*SelectScreen)(nil)

// New creates a student select screen.
func New(st store.ProgressStore, newOrch func() *sess.Orchestrator) *SelectScreen {
	return &SelectScreen{
		store:   st,
		newOrch: newOrch,
		input:   components.NewTextInput("Name...", false, maxNameLen),
	}
}

func (s *SelectScreen) Init() tea.Cmd {
	return s.loadStudents()
}

func (s *SelectScreen) Title() string {
	return "Who Is Learning?"
}

func (s *SelectScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SelectScreen) loadStudents() tea.Cmd {
	return func() tea.Msg {
		students, err := s.store.ListStudents(context.Background())
		return studentsLoadedMsg{students: students, err: err}
	}
}

func (s *SelectScreen) addStudent(name string) tea.Cmd {
	return func() tea.Msg {
		_, err := s.store.AddStudent(context.Background(), store.Student{Name: name})
		return studentAddedMsg{name: name, err: err}
	}
}

// startSession pushes a session screen for the given student.
func (s *SelectScreen) startSession(name string) tea.Cmd {
	orch := s.newOrch()
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.New(orch, name),
		}
	}
}

func (s *SelectScreen) buildMenu() {
	items := make([]components.MenuItem, 0, len(s.students)+1)
	for _, st := range s.students {
		name := st.Name
		items = append(items, components.MenuItem{
			Label: name,
			Action: func() tea.Cmd {
				return s.startSession(name)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "+ New student",
		Action: func() tea.Cmd {
			s.adding = true
			s.input.Reset()
			return s.input.Init()
		},
	})
	s.menu = components.NewMenu(items)
}

func (s *SelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case studentsLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.students = msg.students
		s.loaded = true
		s.buildMenu()
		return s, nil

	case studentAddedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			s.adding = false
			return s, nil
		}
		s.adding = false
		return s, s.startSession(msg.name)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.adding {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SelectScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.adding {
		switch key {
		case "esc":
			s.adding = false
			return s, nil
		case "enter":
			name := strings.TrimSpace(s.input.Value())
			if name == "" {
				return s, nil
			}
			return s, s.addStudent(name)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if !s.loaded {
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SelectScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading students..."))
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Pick your name to start"))
	b.WriteString("\n\n")

	if s.adding {
		b.WriteString(theme.Body.Render("What is your name?"))
		b.WriteString("\n\n")
		b.WriteString(s.input.View())
	} else {
		if len(s.students) == 0 {
			b.WriteString(theme.Hint.Render("No students yet — add one below!"))
			b.WriteString("\n\n")
		}
		b.WriteString(s.menu.View())
	}

	card := components.Card(b.String(), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
