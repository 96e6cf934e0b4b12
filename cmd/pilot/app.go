package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptpilot/prompt-pilot-service/flow"
	"github.com/promptpilot/prompt-pilot-service/session"
	"github.com/promptpilot/prompt-pilot-service/types"
)

// Intent messages emitted by the step models.
type (
	goalSubmitMsg    struct{ input types.GoalInput }
	answersSubmitMsg struct {
		answers []types.ClarificationAnswer
	}
	backMsg  struct{}
	resetMsg struct{}
	shareMsg struct{}
)

// Network result messages.
type questionsMsg struct {
	id        int
	questions []string
	err       error
}

type roadmapMsg struct {
	id      int
	roadmap *types.PromptRoadmapResponse
	err     error
}

type sharedMsg struct {
	id  string
	err error
}

// AppModel is the root bubbletea model. The flow controller owns all state
// transitions; this model translates key events and network results into
// controller calls and renders the active step.
type AppModel struct {
	ctrl     *flow.Controller
	client   *flow.Client
	store    session.Store
	goal     GoalModel
	clarify  ClarifyModel
	roadmap  RoadmapModel
	width    int
	height   int
	quitting bool
}

func NewAppModel(ctrl *flow.Controller, client *flow.Client, store session.Store) AppModel {
	m := AppModel{
		ctrl:   ctrl,
		client: client,
		store:  store,
		goal:   NewGoalModel(ctrl.Input()),
	}
	if ctrl.Step() == flow.StepRoadmap {
		m.roadmap = NewRoadmapModel(ctrl.Roadmap())
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.ctrl.Step() == flow.StepGoal {
		return m.goal.Focus()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4
		if contentHeight < 0 {
			contentHeight = 0
		}
		m.goal.SetSize(m.width, contentHeight)
		m.clarify.SetSize(m.width, contentHeight)
		m.roadmap.SetSize(m.width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case goalSubmitMsg:
		id, err := m.ctrl.BeginClarify(msg.input)
		if err != nil {
			return m, nil
		}
		client := m.client
		input := msg.input
		return m, func() tea.Msg {
			questions, err := client.Clarify(context.Background(), input)
			return questionsMsg{id: id, questions: questions, err: err}
		}

	case answersSubmitMsg:
		id, err := m.ctrl.BeginRoadmap(msg.answers)
		if err != nil {
			return m, nil
		}
		client := m.client
		input := *m.ctrl.Input()
		answers := msg.answers
		return m, func() tea.Msg {
			roadmap, err := client.Roadmap(context.Background(), input, answers)
			return roadmapMsg{id: id, roadmap: roadmap, err: err}
		}

	case questionsMsg:
		if m.ctrl.ApplyQuestions(msg.id, msg.questions, msg.err) && m.ctrl.Step() == flow.StepClarify {
			m.clarify = NewClarifyModel(m.ctrl.Questions())
			m.clarify.SetSize(m.width, m.height-4)
			return m, m.clarify.Focus()
		}
		return m, nil

	case roadmapMsg:
		sess, applied := m.ctrl.ApplyRoadmap(msg.id, msg.roadmap, msg.err)
		if applied && sess != nil {
			// Best-effort local persistence; failures never block the flow.
			if err := m.store.Save(context.Background(), "", sess); err != nil {
				log.Printf("Failed to save session: %v", err)
			}
			m.roadmap = NewRoadmapModel(m.ctrl.Roadmap())
			m.roadmap.SetSize(m.width, m.height-4)
		}
		return m, nil

	case backMsg:
		m.ctrl.Back()
		m.goal = NewGoalModel(m.ctrl.Input())
		m.goal.SetSize(m.width, m.height-4)
		return m, m.goal.Focus()

	case resetMsg:
		if err := m.store.Delete(context.Background(), ""); err != nil {
			log.Printf("Failed to clear session: %v", err)
		}
		m.ctrl.Reset()
		m.goal = NewGoalModel(nil)
		m.goal.SetSize(m.width, m.height-4)
		return m, m.goal.Focus()

	case shareMsg:
		input := m.ctrl.Input()
		roadmap := m.ctrl.Roadmap()
		if input == nil || roadmap == nil {
			return m, nil
		}
		sess := &types.Session{
			Input:                  *input,
			ClarificationQuestions: m.ctrl.Questions(),
			ClarificationAnswers:   m.ctrl.Answers(),
			Roadmap:                roadmap,
		}
		client := m.client
		return m, func() tea.Msg {
			id, err := client.ShareSession(context.Background(), sess)
			return sharedMsg{id: id, err: err}
		}

	case sharedMsg:
		if msg.err != nil {
			m.roadmap.status = "Share failed: " + msg.err.Error()
		} else {
			m.roadmap.status = "Shared as session " + msg.id
		}
		return m, nil
	}

	// Delegate everything else to the active step.
	var cmd tea.Cmd
	switch m.ctrl.Step() {
	case flow.StepGoal:
		m.goal, cmd = m.goal.Update(msg, m.ctrl.Pending())
	case flow.StepClarify:
		m.clarify, cmd = m.clarify.Update(msg, m.ctrl.Pending())
	case flow.StepRoadmap:
		m.roadmap, cmd = m.roadmap.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	header := m.renderHeader()

	var content string
	switch m.ctrl.Step() {
	case flow.StepGoal:
		content = m.goal.View(m.ctrl.Pending())
	case flow.StepClarify:
		content = m.clarify.View(m.ctrl.Pending())
	case flow.StepRoadmap:
		content = m.roadmap.View(m.ctrl.Restored())
	}

	if errMsg := m.ctrl.Err(); errMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content,
			errorStyle.Render("Error: "+errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, m.renderStatusBar())
}

func (m AppModel) renderHeader() string {
	title := titleStyle.Render("⌖ prompt pilot")

	steps := []struct {
		name string
		step flow.Step
	}{
		{"Goal", flow.StepGoal},
		{"Clarify", flow.StepClarify},
		{"Roadmap", flow.StepRoadmap},
	}

	var indicators string
	for i, s := range steps {
		style := stepLabelStyle
		if s.step == m.ctrl.Step() {
			style = stepActiveStyle
		}
		if i > 0 {
			indicators += stepLabelStyle.Render(" → ")
		}
		indicators += style.Render(s.name)
	}

	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", indicators)

	return lipgloss.NewStyle().
		Width(m.width).
		Background(lipgloss.Color("#1F2937")).
		PaddingLeft(1).
		Render(headerContent)
}

func (m AppModel) renderStatusBar() string {
	var help string
	switch m.ctrl.Step() {
	case flow.StepGoal:
		help = "tab: next field  |  ctrl+g: generate questions  |  ctrl+c: quit"
	case flow.StepClarify:
		help = "tab: next question  |  ctrl+g: generate roadmap  |  ctrl+k: skip  |  esc: back  |  ctrl+c: quit"
	case flow.StepRoadmap:
		help = "m: copy markdown  |  p: copy prompts  |  u: share  |  n: start over  |  ctrl+c: quit"
	}
	if m.ctrl.Pending() {
		help = "working..."
	}
	return statusBarStyle.Width(m.width).Render(help)
}
