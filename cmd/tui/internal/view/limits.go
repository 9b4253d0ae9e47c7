package view

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"pennywise/internal/limit"
	"pennywise/internal/money"
)

type limitsState int

const (
	limitsStateBrowse limitsState = iota
	limitsStateEdit
)

type LimitsModel struct {
	CommonModel
	limitService *limit.Service

	state  limitsState
	limits []limit.Limit
	cursor int
	form   *huh.Form

	loading bool
	err     error
	status  string

	formAmount string
}

func NewLimitsModel(limitSvc *limit.Service) LimitsModel {
	return LimitsModel{limitService: limitSvc, loading: true}
}

func (m LimitsModel) Title() string { return "Spending Limits" }

func (m LimitsModel) ShortHelp() string {
	if m.state == limitsStateEdit {
		return "Enter: save | Esc: cancel"
	}

	return "Esc: back | Up/Down: select | Enter: edit | r: refresh"
}

func (m LimitsModel) Init() tea.Cmd {
	return m.loadLimitsCmd()
}

func (m LimitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLimitsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.limits = msg.limits
		if m.cursor >= len(m.limits) {
			m.cursor = 0
		}

		return m, nil

	case limitSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Limit updated"
		}

		m.state = limitsStateBrowse
		m.form = nil

		return m, m.loadLimitsCmd()
	}

	switch m.state {
	case limitsStateBrowse:
		return m.updateBrowse(msg)
	case limitsStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m LimitsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "r":
		m.loading = true
		return m, m.loadLimitsCmd()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.limits)-1 {
			m.cursor++
		}
	case "enter":
		return m.enterEditMode()
	}

	return m, nil
}

func (m LimitsModel) enterEditMode() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.limits) {
		return m, nil
	}

	m.formAmount = money.FormatCents(m.limits[m.cursor].Limit)
	m.status = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("limit").
				Title(fmt.Sprintf("Monthly limit for %s", m.limits[m.cursor].Category)).
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					cents, err := money.ParseCents(s)
					if err != nil {
						return fmt.Errorf("enter a number like 400.00")
					}
					if cents < 0 {
						return fmt.Errorf("limit cannot be negative")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = limitsStateEdit

	return m, m.form.Init()
}

func (m LimitsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = limitsStateBrowse
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m LimitsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading limits...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := "Monthly spending limits:\n\n"

	for i, l := range m.limits {
		cursor := " "
		if m.cursor == i && m.state == limitsStateBrowse {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %-20s %s\n", cursor, l.Category, FormatAmount(l.Limit))
	}

	if m.state == limitsStateEdit && m.form != nil {
		s += "\n" + lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())
	}

	if m.status != "" {
		s += "\n" + faintStyle.Render(m.status)
	}

	s += "\n\n" + faintStyle.Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1, 2).Render(s)
}

type loadLimitsMsg struct {
	limits []limit.Limit
	err    error
}

func (m LimitsModel) loadLimitsCmd() tea.Cmd {
	return func() tea.Msg {
		limits, err := m.limitService.List(context.Background())
		return loadLimitsMsg{limits: limits, err: err}
	}
}

type limitSavedMsg struct {
	err error
}

func (m LimitsModel) saveCmd() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.limits) {
		return nil
	}

	cat := m.limits[m.cursor].Category

	cents, err := money.ParseCents(m.formAmount)
	if err != nil {
		return func() tea.Msg { return limitSavedMsg{err: err} }
	}

	return func() tea.Msg {
		err := m.limitService.Update(context.Background(), cat, cents)
		return limitSavedMsg{err: err}
	}
}
