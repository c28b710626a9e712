// Package tui implements the interactive terminal interface: the
// onboarding form, the busy state while the estimation request is
// outstanding, and the dashboard + grid view. Split across files:
//   - model.go: types, Init, Update loop (this file)
//   - form.go:  input parsing and the estimation command
//   - view.go:  rendering
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lifeweeks/cmd/lifeweeks/ui"
	"lifeweeks/internal/estimator"
	"lifeweeks/internal/grid"
	"lifeweeks/internal/life"
	"lifeweeks/internal/logging"
)

// phase is the view-state machine: onboarding form, request outstanding,
// dashboard.
type phase int

const (
	phaseForm phase = iota
	phaseBusy
	phaseResult
)

// Form field indexes.
const (
	fieldBirthDate = iota
	fieldEthnicity
	fieldGender
	fieldHeight
	fieldWeight
	fieldBPSys
	fieldBPDia
	fieldBloodSugar
	fieldActivity
	fieldGoalTitle
	fieldGoalAge
	fieldGoalGlyph
	fieldCount
)

// estimateDoneMsg carries the finished estimate back into the update loop.
type estimateDoneMsg struct {
	result *life.Result
}

// inputErrMsg reports an unrecoverable input error (the only error class
// that reaches the user; provider failures resolve into a fallback result
// before this layer sees them).
type inputErrMsg struct {
	err error
}

// Model is the Bubble Tea model for the interactive session.
type Model struct {
	styles   ui.Styles
	gridView *ui.GridView
	est      *estimator.Estimator

	inputs []textinput.Model
	focus  int
	goals  []life.CustomMilestone

	spinner  spinner.Model
	viewport viewport.Model

	phase phase
	// busy blocks re-submission while a request is outstanding. Exactly one
	// estimation call is in flight at a time; there is no cancellation, the
	// call always resolves into a result before the form re-enables.
	busy bool

	inputErr error
	result   *life.Result
	grid     *grid.Grid

	width  int
	height int
	ready  bool
}

// New creates the interactive model around an injected estimator.
func New(est *estimator.Estimator, styles ui.Styles) Model {
	inputs := make([]textinput.Model, fieldCount)

	mk := func(placeholder string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 64
		in.Width = width
		return in
	}

	inputs[fieldBirthDate] = mk("YYYY-MM-DD (required)", 24)
	inputs[fieldEthnicity] = mk("ethnicity (optional)", 24)
	inputs[fieldGender] = mk("male / female / other", 24)
	inputs[fieldHeight] = mk("height cm", 24)
	inputs[fieldWeight] = mk("weight kg", 24)
	inputs[fieldBPSys] = mk("blood pressure systolic", 24)
	inputs[fieldBPDia] = mk("blood pressure diastolic", 24)
	inputs[fieldBloodSugar] = mk("blood sugar mg/dL", 24)
	inputs[fieldActivity] = mk("sedentary / moderate / active / athlete", 40)
	inputs[fieldGoalTitle] = mk("goal title", 24)
	inputs[fieldGoalAge] = mk("goal age", 10)
	inputs[fieldGoalGlyph] = mk("glyph", 6)

	inputs[fieldBirthDate].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		styles:   styles,
		gridView: ui.NewGridView(styles),
		est:      est,
		inputs:   inputs,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		if m.phase == phaseResult {
			m.viewport.SetContent(m.resultContent())
		}
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case estimateDoneMsg:
		m.busy = false
		m.phase = phaseResult
		m.result = msg.result
		m.grid = grid.Layout(msg.result)
		if m.ready {
			m.viewport.SetContent(m.resultContent())
			m.viewport.GotoTop()
		}
		logging.UI("estimate complete: estimated=%d weeks_lived=%d", msg.result.EstimatedAgeYears, msg.result.WeeksLived)
		return m, nil

	case inputErrMsg:
		m.busy = false
		m.phase = phaseForm
		m.inputErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.phase {
	case phaseForm:
		return m.handleFormKey(msg)
	case phaseResult:
		return m.handleResultKey(msg)
	default:
		// Busy: input is disabled until the outstanding request resolves.
		return m, nil
	}
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		return m.applyFocus()
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m.applyFocus()
	case "ctrl+a":
		m = m.addGoal()
		return m, nil
	case "enter":
		if m.focus < fieldGoalTitle {
			m.focus++
			return m.applyFocus()
		}
		return m.submit()
	case "ctrl+s":
		return m.submit()
	}
	return m.updateInputs(msg)
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		// Recalculate: back to onboarding with the form as entered.
		m.phase = phaseForm
		m.result = nil
		m.grid = nil
		m.inputErr = nil
		return m.applyFocus()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) applyFocus() (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.inputs))
	for i := range m.inputs {
		if i == m.focus {
			cmds = append(cmds, m.inputs[i].Focus())
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

// submit validates the form and dispatches the single estimation request.
// No-op while a request is already outstanding.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	input, err := m.parseInput()
	if err != nil {
		m.inputErr = err
		return m, nil
	}

	m.inputErr = nil
	m.busy = true
	m.phase = phaseBusy
	logging.UI("submitting estimation request")
	return m, tea.Batch(m.spinner.Tick, m.estimateCmd(input))
}
