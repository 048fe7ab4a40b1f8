// ============================================================================
// hyperf-saas-helper - Precision Calculator
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive calculator
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
	"github.com/faed235/hyperf-saas-helper/internal/chain"
	"github.com/faed235/hyperf-saas-helper/pkg/calc"
)

// maxHistory bounds the number of remembered entries.
const maxHistory = 200

// Entry is one evaluated input line
type Entry struct {
	Input  string
	Output string
	Failed bool
}

// Config holds REPL configuration
type Config struct {
	Calculator *calc.Calculator
	Initial    string
	Precision  int
	RoundUp    bool
}

// DefaultConfig starts at zero on the default calculator
func DefaultConfig() Config {
	return Config{
		Calculator: calc.Default(),
		Initial:    "0",
		Precision:  calc.DefaultPrecision,
	}
}

// Model is the Bubbletea model of the REPL
type Model struct {
	width    int
	height   int
	quitting bool

	input   textinput.Model
	history []Entry

	calculator *calc.Calculator
	acc        *calc.Accumulator
	precision  int
	roundUp    bool
	lastErr    error
}

// New creates a REPL model. An invalid initial value starts at zero.
func New(cfg Config) Model {
	if cfg.Calculator == nil {
		cfg.Calculator = calc.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "add 5, * 2, sqrt, result 4, help"
	ti.Prompt = IconPrompt
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		input:      ti,
		calculator: cfg.Calculator,
		precision:  cfg.Precision,
		roundUp:    cfg.RoundUp,
	}
	acc, err := cfg.Calculator.Init(cfg.Initial)
	if err != nil {
		m.lastErr = err
		acc = cfg.Calculator.MustInit(0)
	}
	m.acc = acc
	return m
}

// Run starts the REPL on the terminal
func Run(cfg Config) error {
	_, err := tea.NewProgram(New(cfg)).Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			return m.execute(line)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one input line
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		m.quitting = true
		return m, tea.Quit

	case "help", "?":
		m.record(line, "steps: "+joinOps()+" | reset <v> | clone | result [p] [up] | currency [code] | quit", nil)

	case "reset":
		value := "0"
		if len(fields) > 1 {
			value = fields[1]
		}
		acc, err := m.calculator.Init(value)
		if err == nil {
			m.acc = acc
		}
		m.record(line, m.acc.RawValue(), err)

	case "clone":
		m.acc = m.acc.Clone()
		m.record(line, m.acc.RawValue(), nil)

	case "result":
		precision, roundUp, err := m.resultArgs(fields[1:])
		if err != nil {
			m.record(line, "", err)
			break
		}
		r, err := m.acc.Result(precision, roundUp)
		m.record(line, r, err)

	case "currency":
		var (
			r   string
			err error
		)
		if len(fields) > 1 {
			r, err = m.acc.ToMoney(fields[1])
		} else {
			r, err = m.acc.Formatted()
		}
		m.record(line, r, err)

	default:
		step, err := chain.ParseStep(line)
		if err != nil {
			m.record(line, "", err)
			break
		}
		step.Apply(m.acc)
		err = m.acc.ResetErr()
		m.record(line, m.acc.RawValue(), err)
	}
	return m, nil
}

// resultArgs parses "[precision] [up]"
func (m Model) resultArgs(args []string) (int, bool, error) {
	precision, roundUp := m.precision, m.roundUp
	for _, arg := range args {
		if strings.EqualFold(arg, "up") {
			roundUp = true
			continue
		}
		p, err := strconv.Atoi(arg)
		if err != nil {
			return 0, false, errors.InvalidInput(errors.ModuleChain, "result", arg, "precision or \"up\"")
		}
		precision = p
	}
	return precision, roundUp, nil
}

func (m *Model) record(input, output string, err error) {
	entry := Entry{Input: input, Output: output}
	if err != nil {
		entry.Output = err.Error()
		entry.Failed = true
	}
	m.lastErr = err
	m.history = append(m.history, entry)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// History returns the evaluated entries, oldest first
func (m Model) History() []Entry {
	return m.history
}

// Accumulator returns the current accumulator
func (m Model) Accumulator() *calc.Accumulator {
	return m.acc
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(LogoStyle.Render(Logo))
	b.WriteString("\n\n")
	b.WriteString(m.renderHistory())
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter: evaluate • help: commands • esc: quit"))
	return b.String()
}

func (m Model) renderHistory() string {
	entries := m.history
	if limit := m.height - 8; limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(InputEchoStyle.Render(IconPrompt + e.Input))
		b.WriteString("  ")
		if e.Failed {
			b.WriteString(ErrorStyle.Render(IconError + e.Output))
		} else {
			b.WriteString(OutputStyle.Render(IconResult + e.Output))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	rounded, err := m.acc.Result(m.precision, m.roundUp)
	if err != nil {
		rounded = "-"
	}

	parts := []string{
		LabelStyle.Render("value ") + ValueStyle.Render(m.acc.RawValue()),
		LabelStyle.Render("rounded ") + ValueStyle.Render(rounded),
	}
	if m.acc.IsFrozen() {
		parts = append(parts, FrozenStyle.Render(IconFrozen+"frozen"))
	}
	if m.lastErr != nil {
		parts = append(parts, ErrorStyle.Render(IconError+m.lastErr.Error()))
	}

	style := PanelStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "   ")))
}

func joinOps() string {
	names := make([]string, 0, len(chain.Ops()))
	for _, op := range chain.Ops() {
		names = append(names, string(op))
	}
	return strings.Join(names, " ")
}
