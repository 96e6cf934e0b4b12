package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/promptpilot/prompt-pilot-service/export"
	"github.com/promptpilot/prompt-pilot-service/types"
)

// RoadmapModel renders the generated roadmap in a scrollable viewport and
// offers copy, share and start-over actions.
type RoadmapModel struct {
	roadmap  *types.PromptRoadmapResponse
	markdown string
	view     viewport.Model
	renderer *glamour.TermRenderer
	status   string
	width    int
}

func NewRoadmapModel(roadmap *types.PromptRoadmapResponse) RoadmapModel {
	m := RoadmapModel{
		roadmap:  roadmap,
		markdown: export.AsMarkdown(roadmap),
		view:     viewport.New(80, 24),
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(78),
	)
	if err == nil {
		m.renderer = renderer
	}

	m.view.SetContent(m.render())
	return m
}

func (m *RoadmapModel) SetSize(width, height int) {
	m.width = width
	m.view.Width = width
	if height < 1 {
		height = 1
	}
	m.view.Height = height

	wrap := width - 2
	if wrap > 100 {
		wrap = 100
	}
	if wrap < 20 {
		wrap = 20
	}
	if renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	); err == nil {
		m.renderer = renderer
	}
	m.view.SetContent(m.render())
}

// render converts the roadmap markdown for the terminal. Glamour can panic on
// pathological input, so any failure falls back to the raw markdown.
func (m RoadmapModel) render() (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = m.markdown
		}
	}()

	if m.renderer == nil {
		return m.markdown
	}
	rendered, err := m.renderer.Render(m.markdown)
	if err != nil {
		return m.markdown
	}
	return rendered
}

func (m RoadmapModel) Update(msg tea.Msg) (RoadmapModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "m":
			if err := clipboard.WriteAll(m.markdown); err != nil {
				m.status = "Copy failed: " + err.Error()
			} else {
				m.status = "Markdown copied to clipboard"
			}
			return m, nil

		case "p":
			if err := clipboard.WriteAll(export.PromptsOnly(m.roadmap)); err != nil {
				m.status = "Copy failed: " + err.Error()
			} else {
				m.status = "Prompts copied to clipboard"
			}
			return m, nil

		case "u":
			m.status = "Sharing session..."
			return m, func() tea.Msg { return shareMsg{} }

		case "n":
			return m, func() tea.Msg { return resetMsg{} }
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m RoadmapModel) View(restored bool) string {
	var b strings.Builder

	if restored {
		b.WriteString(noticeStyle.Render("Restored your last session. Press n to start over."))
		b.WriteString("\n")
	}

	b.WriteString(m.view.View())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return b.String()
}
