package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/heron"
	"github.com/joshyorko/heron/session"
	"github.com/joshyorko/heron/wizard"
)

// App is the bubbletea model of the calculator
type App struct {
	machine  *session.Machine
	input    textinput.Model
	styles   *Styles
	options  session.Options
	accepted []string
	outcome  *session.Outcome
	history  []session.Outcome
	width    int
	quitting bool
}

// NewApp creates a calculator waiting for side a
func NewApp(options session.Options) *App {
	input := textinput.New()
	input.Placeholder = "length"
	input.CharLimit = 32
	input.Width = 20
	input.Prompt = "> "
	input.Focus()

	return &App{
		machine: session.NewMachine(),
		input:   input,
		styles:  NewStyles(),
		options: options,
		width:   80,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			a.quitting = true
			return a, tea.Quit

		case key.Matches(msg, keys.Submit):
			a.submit()
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
	}

	if !a.machine.State().Collecting() {
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) submit() {
	state := a.machine.State()
	if !state.Collecting() {
		a.restart()
		return
	}
	label := a.machine.Label()
	value, err := wizard.ParseSide(a.input.Value())
	a.input.Reset()
	if err != nil {
		common.Debug("Side %s rejected: %v", label, err)
		a.machine.Abandon()
		a.conclude(session.Outcome{Kind: session.OutcomeInvalid, Side: label})
		return
	}
	if err := a.machine.Record(value); err != nil {
		common.Error("record side", err)
		return
	}
	a.accepted = append(a.accepted, fmt.Sprintf("Side %s = %s%s", label, wizard.FormatNumber(value, a.options.Precision), a.options.Unit))
	if a.machine.State() != session.Computing {
		return
	}
	area, err := a.machine.Compute()
	if err != nil {
		common.Error("compute area", err)
		return
	}
	outcome := session.Outcome{Kind: session.OutcomeComputed, Sides: a.machine.Sides(), Area: area}
	if heron.IsImpossible(area) {
		outcome.Kind = session.OutcomeImpossible
	}
	a.conclude(outcome)
}

func (a *App) conclude(outcome session.Outcome) {
	a.outcome = &outcome
	a.history = append(a.history, outcome)
	common.Debug("Triangle %d ended as %s.", len(a.history), outcome.Kind)
}

func (a *App) restart() {
	if a.machine.State() == session.Displaying {
		a.machine.Finish()
	}
	a.machine.Reset()
	a.accepted = nil
	a.outcome = nil
	a.input.Reset()
}

// State exposes the machine state, mostly for tests
func (a *App) State() session.State {
	return a.machine.State()
}

// History lists outcomes of finished triangles
func (a *App) History() []session.Outcome {
	return a.history
}

// View implements tea.Model
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	description := "This program uses Heron's formula to calculate the area of a triangle given the length of all 3 sides"
	divider := a.styles.Divider.Render(strings.Repeat("─", max(a.width-2, 10)))

	sections := []string{
		a.styles.Title.Render("Triangle Calculator"),
		a.styles.Subtitle.Render(description),
		divider,
	}
	for _, line := range a.accepted {
		sections = append(sections, a.styles.Accepted.Render(line))
	}
	if a.machine.State().Collecting() {
		sections = append(sections,
			a.styles.Prompt.Render(session.Instruction(a.machine.State(), a.options.UnitName)),
			a.input.View())
	}
	if a.outcome != nil {
		sections = append(sections, a.renderOutcome())
	}
	sections = append(sections, divider, a.renderHints())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderOutcome() string {
	switch a.outcome.Kind {
	case session.OutcomeInvalid:
		return a.styles.Error.Render(wizard.RetryMessage)
	case session.OutcomeImpossible:
		return a.styles.Panel.Render(a.styles.Error.Render("This is an impossible triangle, check your measurements and try again by pressing Enter."))
	default:
		unit := a.options.Unit
		formula := a.styles.Formula.Render(fmt.Sprintf("S = (a+b+c) / 2 = %s%s\nA = Sqrt( S(S-a)(S-b)(S-c) )",
			wizard.FormatNumber(a.outcome.Sides.Semiperimeter(), a.options.Precision), unit))
		result := a.styles.Success.Render(fmt.Sprintf("The area of your triangle is %s%s^2",
			wizard.FormatNumber(a.outcome.Area, a.options.Precision), unit))
		hint := a.styles.Subtle.Render("To calculate the area of another triangle, press Enter")
		return lipgloss.JoinVertical(lipgloss.Left, formula, a.styles.Panel.Render(result), hint)
	}
}

func (a *App) renderHints() string {
	parts := []string{}
	for _, binding := range []key.Binding{keys.Submit, keys.Quit} {
		help := binding.Help()
		parts = append(parts, a.styles.HelpKey.Render("<"+help.Key+">")+" "+a.styles.HelpDesc.Render(help.Desc))
	}
	if count := len(a.history); count > 0 {
		parts = append(parts, a.styles.HelpDesc.Render(fmt.Sprintf("%d triangle(s) so far", count)))
	}
	return strings.Join(parts, "  ")
}

// Run starts the calculator and returns outcomes of all finished triangles
func Run(options session.Options) ([]session.Outcome, error) {
	held := holdLogs()
	defer held.release()

	app := NewApp(options)
	p := tea.NewProgram(app, tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return nil, err
	}
	if finalApp, ok := model.(*App); ok {
		return finalApp.History(), nil
	}
	return nil, nil
}
