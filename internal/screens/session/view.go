package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/activity"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch s.phase {
	case phaseError:
		return renderError(width, s.errMsg)
	case phaseBeginning:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Getting your lesson ready...")
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	case phaseNote:
		return s.renderNote(width, height)
	case phaseFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width, height)
	}
}

// renderNote shows an informational entry: greeting, streak, weekday.
func (s *SessionScreen) renderNote(width, height int) string {
	note := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(s.plan.Note)

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press any key to continue")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		note+"\n\n"+hint)
}

func (s *SessionScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	// Activity info line.
	asked := len(s.attempts)
	correct := 0
	for _, a := range s.attempts {
		if a.Correct {
			correct++
		}
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s  (level %d)", s.plan.LessonTitle, s.plan.Level))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("activity %d/%d   %s %d/%d",
			s.idx+1, s.orch.Len(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			correct, asked,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.plan.Exhausted {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("You have finished every deck in this lesson — this round is extra practice!"))
		b.WriteString("\n\n")
	}

	// Prompt.
	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(s.drill.Prompt()))
	b.WriteString("\n\n")

	// Answer area.
	switch {
	case s.reading:
		rd := s.drill.(activity.ReadingDrill)
		passage := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(rd.Passage())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, passage))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Read it out loud, then press Enter"))

	case s.mcActive:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\nSelect (1-4) or use arrows + Enter"))

	default:
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	if s.rejected {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Hmm, that doesn't look like an answer — try again"))
	}

	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("The answer was: %s", s.lastExpected)))
	}

	if s.mcActive {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Stop the lesson early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Everything you finished still counts."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, stop here"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
