package calendar

import (
	"errors"
	"io"

	"github.com/bnema/scdc-smart-cli/internal/application"
	"github.com/bnema/scdc-smart-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func() string
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render()
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the calendar view: marked days, an optional month grid and the legend.
func Render(view application.CalendarView, opts RenderOptions) (string, error) {
	s := newStyles(opts.Plain)
	return run(model{render: func() string { return renderCalendar(view, s) }})
}

// RenderLegend draws only the legend.
func RenderLegend(entries []domain.SessionTypeInfo, opts RenderOptions) (string, error) {
	s := newStyles(opts.Plain)
	return run(model{render: func() string { return renderLegend(entries, s) }})
}

func run(m model) (string, error) {
	p := tea.NewProgram(
		m,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
