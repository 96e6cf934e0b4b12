package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptpilot/prompt-pilot-service/types"
)

// ClarifyModel presents the generated clarifying questions with one answer
// field per question. Every question is optional: unanswered ones are
// submitted with an empty answer, and ctrl+k skips the whole step.
type ClarifyModel struct {
	questions []string
	answers   []textinput.Model
	focus     int
	width     int
}

func NewClarifyModel(questions []string) ClarifyModel {
	answers := make([]textinput.Model, len(questions))
	for i := range questions {
		ti := textinput.New()
		ti.Placeholder = "(optional)"
		ti.Width = 60
		ti.CharLimit = 500
		answers[i] = ti
	}
	return ClarifyModel{questions: questions, answers: answers}
}

func (m ClarifyModel) Focus() tea.Cmd {
	if len(m.answers) == 0 {
		return nil
	}
	return m.answers[0].Focus()
}

func (m *ClarifyModel) SetSize(width, height int) {
	m.width = width
	w := width - 6
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	for i := range m.answers {
		m.answers[i].Width = w
	}
}

// collect pairs each question with its answer in display order.
func (m ClarifyModel) collect() []types.ClarificationAnswer {
	answers := make([]types.ClarificationAnswer, len(m.questions))
	for i, q := range m.questions {
		answers[i] = types.ClarificationAnswer{
			Question: q,
			Answer:   strings.TrimSpace(m.answers[i].Value()),
		}
	}
	return answers
}

func (m ClarifyModel) Update(msg tea.Msg, pending bool) (ClarifyModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+g", "enter":
			if pending {
				return m, nil
			}
			answers := m.collect()
			return m, func() tea.Msg { return answersSubmitMsg{answers: answers} }

		case "ctrl+k":
			if pending {
				return m, nil
			}
			return m, func() tea.Msg { return answersSubmitMsg{answers: []types.ClarificationAnswer{}} }

		case "esc":
			if pending {
				return m, nil
			}
			return m, func() tea.Msg { return backMsg{} }

		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		}
	}

	if len(m.answers) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.answers[m.focus], cmd = m.answers[m.focus].Update(msg)
	return m, cmd
}

func (m ClarifyModel) moveFocus(delta int) (ClarifyModel, tea.Cmd) {
	if len(m.answers) == 0 {
		return m, nil
	}
	m.answers[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.answers)) % len(m.answers)
	return m, m.answers[m.focus].Focus()
}

func (m ClarifyModel) View(pending bool) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(labelStyle.Render(" A few questions to sharpen your roadmap"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("All questions are optional."))
	b.WriteString("\n\n")

	for i, q := range m.questions {
		b.WriteString(labelStyle.Render(fmt.Sprintf(" %d. %s", i+1, q)))
		b.WriteString("\n    ")
		b.WriteString(m.answers[i].View())
		b.WriteString("\n\n")
	}

	if pending {
		b.WriteString(statusStyle.Render("Generating your roadmap, this can take a little while..."))
		b.WriteString("\n")
	}

	return b.String()
}
