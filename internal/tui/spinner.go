package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Task is a long-running operation whose progress a spinner covers.
type Task func(ctx context.Context) (string, error)

type taskDoneMsg struct {
	out string
	err error
}

type spinModel struct {
	spin   spinner.Model
	label  string
	cancel context.CancelFunc
	done   *taskDoneMsg
}

func newSpinModel(label string, theme Theme, cancel context.CancelFunc) spinModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return spinModel{spin: s, label: label, cancel: cancel}
}

func (m spinModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = &msg
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			// Cancel the task; its error arrives as taskDoneMsg.
			m.cancel()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m spinModel) View() string {
	if m.done != nil {
		return ""
	}
	return m.spin.View() + " " + m.label
}

// Spin runs task while animating a spinner on stderr. When stderr is
// not a terminal the spinner is skipped and task runs directly, so
// piped and scripted invocations stay clean.
func Spin(ctx context.Context, label string, theme Theme, task Task) (string, error) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return task(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSpinModel(label, theme, cancel), tea.WithOutput(os.Stderr))
	go func() {
		out, err := task(ctx)
		p.Send(taskDoneMsg{out: out, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(spinModel)
	if !ok || m.done == nil {
		return "", ctx.Err()
	}
	return m.done.out, m.done.err
}
