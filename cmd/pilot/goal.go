package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptpilot/prompt-pilot-service/types"
)

// selector is a left/right toggled enum field on the goal form.
type selector struct {
	label   string
	options []string
	values  []string
	index   int
}

func (s *selector) current() string { return s.values[s.index] }

func (s *selector) next() {
	s.index = (s.index + 1) % len(s.options)
}

func (s *selector) prev() {
	s.index--
	if s.index < 0 {
		s.index = len(s.options) - 1
	}
}

func (s *selector) selectValue(v string) {
	for i, val := range s.values {
		if val == v {
			s.index = i
			return
		}
	}
}

const (
	fieldGoal = iota
	fieldUseCase
	fieldSkill
	fieldHorizon
	fieldTools
	fieldCount
)

// GoalModel is the goal entry form: a free-text goal description, three
// optional enum selectors and an optional preferred-tools field.
type GoalModel struct {
	goal    textarea.Model
	useCase selector
	skill   selector
	horizon selector
	tools   textinput.Model
	focus   int
	notice  string
	width   int
}

func NewGoalModel(input *types.GoalInput) GoalModel {
	ta := textarea.New()
	ta.Placeholder = "What do you want to accomplish?"
	ta.SetWidth(70)
	ta.SetHeight(5)
	ta.CharLimit = 2000

	ti := textinput.New()
	ti.Placeholder = "e.g. ChatGPT, Claude, Cursor (optional)"
	ti.Width = 60
	ti.CharLimit = 200

	m := GoalModel{
		goal: ta,
		useCase: selector{
			label:   "Use case",
			options: []string{"not specified", "learn a topic", "build a product", "solve a problem", "other"},
			values:  []string{"", string(types.UseCaseLearnTopic), string(types.UseCaseBuildProduct), string(types.UseCaseSolveProblem), string(types.UseCaseOther)},
		},
		skill: selector{
			label:   "AI skill level",
			options: []string{"not specified", "beginner", "intermediate", "advanced"},
			values:  []string{"", string(types.SkillBeginner), string(types.SkillIntermediate), string(types.SkillAdvanced)},
		},
		horizon: selector{
			label:   "Time horizon",
			options: []string{"not specified", "today", "this week", "longer"},
			values:  []string{"", string(types.HorizonToday), string(types.HorizonThisWeek), string(types.HorizonLonger)},
		},
		tools: ti,
	}

	if input != nil {
		m.goal.SetValue(input.GoalDescription)
		m.useCase.selectValue(string(input.UseCaseType))
		m.skill.selectValue(string(input.AISkillLevel))
		m.horizon.selectValue(string(input.TimeHorizon))
		m.tools.SetValue(input.PreferredTools)
	}

	return m
}

func (m GoalModel) Focus() tea.Cmd {
	return m.goal.Focus()
}

func (m *GoalModel) SetSize(width, height int) {
	m.width = width
	w := width - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	m.goal.SetWidth(w)
	m.tools.Width = w
}

func (m GoalModel) input() types.GoalInput {
	return types.GoalInput{
		GoalDescription: m.goal.Value(),
		UseCaseType:     types.UseCaseType(m.useCase.current()),
		AISkillLevel:    types.AISkillLevel(m.skill.current()),
		TimeHorizon:     types.TimeHorizon(m.horizon.current()),
		PreferredTools:  strings.TrimSpace(m.tools.Value()),
	}
}

func (m GoalModel) Update(msg tea.Msg, pending bool) (GoalModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+g":
			if pending {
				return m, nil
			}
			input := m.input()
			if !input.Valid() {
				m.notice = "Describe your goal before generating questions"
				return m, nil
			}
			m.notice = ""
			return m, func() tea.Msg { return goalSubmitMsg{input: input} }

		case "tab":
			return m.moveFocus(1)
		case "shift+tab":
			return m.moveFocus(-1)

		case "left", "right":
			s := m.focusedSelector()
			if s != nil {
				if key.String() == "left" {
					s.prev()
				} else {
					s.next()
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldGoal:
		m.goal, cmd = m.goal.Update(msg)
	case fieldTools:
		m.tools, cmd = m.tools.Update(msg)
	}
	return m, cmd
}

func (m GoalModel) moveFocus(delta int) (GoalModel, tea.Cmd) {
	m.goal.Blur()
	m.tools.Blur()

	m.focus = (m.focus + delta + fieldCount) % fieldCount

	switch m.focus {
	case fieldGoal:
		return m, m.goal.Focus()
	case fieldTools:
		return m, m.tools.Focus()
	}
	return m, nil
}

func (m *GoalModel) focusedSelector() *selector {
	switch m.focus {
	case fieldUseCase:
		return &m.useCase
	case fieldSkill:
		return &m.skill
	case fieldHorizon:
		return &m.horizon
	}
	return nil
}

func (m GoalModel) View(pending bool) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(labelStyle.Render(" Your goal"))
	b.WriteString("\n")
	b.WriteString(m.goal.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderSelector(m.useCase, m.focus == fieldUseCase))
	b.WriteString("\n")
	b.WriteString(m.renderSelector(m.skill, m.focus == fieldSkill))
	b.WriteString("\n")
	b.WriteString(m.renderSelector(m.horizon, m.focus == fieldHorizon))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(" Preferred tools"))
	b.WriteString("\n ")
	b.WriteString(m.tools.View())
	b.WriteString("\n")

	if pending {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("Generating clarifying questions..."))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func (m GoalModel) renderSelector(s selector, focused bool) string {
	value := s.options[s.index]
	if focused {
		value = selectorStyle.Render("◀ " + value + " ▶")
	} else {
		value = lipgloss.NewStyle().Foreground(muted).Render(value)
	}
	label := labelStyle.Render(" " + s.label + ":")
	return label + " " + value
}
