package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/wallet-accounts-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type switchDoneMsg struct {
	err error
}

type switchStateMsg struct {
	state application.State
	ok    bool
}

type switchSpinnerModel struct {
	spinner   spinner.Model
	target    string
	switching bool
	states    <-chan application.State
	run       tea.Cmd
	err       error
	done      bool
}

func newSwitchSpinnerModel(target string, states <-chan application.State, run tea.Cmd) switchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return switchSpinnerModel{
		spinner: s,
		target:  target,
		states:  states,
		run:     run,
	}
}

func (m switchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run, waitForState(m.states))
}

func (m switchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case switchStateMsg:
		if !msg.ok || m.done {
			return m, nil
		}
		m.switching = msg.state.IsSwitching
		return m, waitForState(m.states)
	case switchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m switchSpinnerModel) View() string {
	if m.done {
		return ""
	}
	if m.switching {
		return fmt.Sprintf("%s Handing wallet session to %s...", m.spinner.View(), m.target)
	}

	return fmt.Sprintf("%s Switching to %s...", m.spinner.View(), m.target)
}

func waitForState(states <-chan application.State) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		return switchStateMsg{state: state, ok: ok}
	}
}

type stateSubscriber interface {
	Subscribe() (<-chan application.State, func())
}

func runSwitchSpinner(ctx context.Context, output io.Writer, engine stateSubscriber, target string, run func(context.Context) error) error {
	states, cancel := engine.Subscribe()
	defer cancel()

	runCmd := func() tea.Msg {
		err := run(ctx)
		cancel()
		return switchDoneMsg{err: err}
	}

	p := tea.NewProgram(
		newSwitchSpinnerModel(target, states, runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(switchSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
