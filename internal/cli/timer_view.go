package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/routinerunner/internal/cli/formatter"
	resttimer "github.com/alexanderramin/routinerunner/internal/timer"
)

const timerTickInterval = time.Second

// timerModel is the full-screen rest countdown. The remaining time is
// re-anchored to the wall clock on every tick so a suspended terminal does
// not stretch the rest period.
type timerModel struct {
	app       *App
	state     resttimer.State
	countdown btimer.Model
	bar       progress.Model

	finished bool
	skipped  bool
}

func newTimerModel(app *App, state resttimer.State) timerModel {
	remaining := state.Remaining(app.Clock.Now())

	bar := progress.New(progress.WithGradient("#fabd2f", "#8ec07c"))
	bar.Width = 40

	return timerModel{
		app:       app,
		state:     state,
		countdown: btimer.NewWithInterval(remaining, timerTickInterval),
		bar:       bar,
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.countdown.Init()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			// The state file stays: the countdown resumes on next launch.
			return m, tea.Quit
		case "s":
			m.skipped = true
			return m, tea.Quit
		}

	case btimer.TickMsg:
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		m.countdown.Timeout = m.state.Remaining(m.app.Clock.Now())
		return m, cmd

	case btimer.TimeoutMsg:
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

func (m timerModel) View() string {
	total := time.Duration(m.state.DurationSec) * time.Second
	remaining := m.countdown.Timeout
	if remaining < 0 {
		remaining = 0
	}

	pct := 1.0
	if total > 0 {
		pct = 1 - remaining.Seconds()/total.Seconds()
	}

	return fmt.Sprintf("\n  %s\n\n  %s  %s\n\n  %s\n",
		formatter.Header(fmt.Sprintf("Rest after set %d", m.state.SetIndex)),
		m.bar.ViewAs(pct),
		formatter.Bold(remaining.Round(timerTickInterval).String()),
		formatter.Dim("s skip · q close (timer keeps running)"))
}

// runTimerView runs the countdown screen and clears the persisted state when
// the timer expires or the user skips it.
func runTimerView(app *App, state resttimer.State) error {
	final, err := tea.NewProgram(newTimerModel(app, state)).Run()
	if err != nil {
		return fmt.Errorf("running rest timer: %w", err)
	}

	m, ok := final.(timerModel)
	if !ok {
		return nil
	}
	if m.finished || m.skipped || state.Expired(app.Clock.Now()) {
		if err := app.Timers.Clear(); err != nil {
			return err
		}
		if m.finished {
			fmt.Println(formatter.StyleGreen.Render("Rest over, next set!"))
		}
	}
	return nil
}
