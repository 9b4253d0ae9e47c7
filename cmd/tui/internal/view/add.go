package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"pennywise/internal/category"
	"pennywise/internal/dashboard"
	"pennywise/internal/money"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

type addState int

const (
	addStateSelectType addState = iota
	addStateForm
)

type AddModel struct {
	CommonModel
	txService   *transaction.Service
	dashService *dashboard.Service

	state        addState
	selectedType transaction.Type
	typeCursor   int
	form         *huh.Form

	status string

	// Form bindings
	formAmount      string
	formCategory    string
	formDescription string
	formDate        string
	formPayment     string
	formRecurring   bool
	formInterval    string
}

func NewAddModel(txSvc *transaction.Service, dashSvc *dashboard.Service) AddModel {
	return AddModel{
		txService:   txSvc,
		dashService: dashSvc,
		state:       addStateSelectType,
	}
}

func (m AddModel) Title() string { return "Add Transaction" }

func (m AddModel) ShortHelp() string {
	if m.state == addStateForm {
		return "Navigate form | Esc: cancel"
	}

	return "Up/Down: select | Enter: confirm | Esc: back"
}

func (m AddModel) Init() tea.Cmd {
	return nil
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case addSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Recorded %s for %s", FormatAmount(msg.amount), msg.category)
			if msg.warning != "" {
				m.status += "\n" + warnStyle.Render(msg.warning)
			}
		}

		m.state = addStateSelectType
		m.form = nil

		return m, nil

	case tea.KeyMsg:
		if m.state == addStateSelectType {
			switch msg.String() {
			case "esc":
				return m, Back
			case "up", "k":
				if m.typeCursor > 0 {
					m.typeCursor--
				}
			case "down", "j":
				if m.typeCursor < 1 {
					m.typeCursor++
				}
			case "enter":
				if m.typeCursor == 0 {
					m.selectedType = transaction.TypeIncome
				} else {
					m.selectedType = transaction.TypeExpense
				}

				return m.enterForm()
			}

			return m, nil
		}

		if msg.Type == tea.KeyEsc {
			m.state = addStateSelectType
			m.form = nil

			return m, nil
		}
	}

	if m.state != addStateForm || m.form == nil {
		return m, nil
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

func (m AddModel) enterForm() (tea.Model, tea.Cmd) {
	categories := category.Expense
	if m.selectedType == transaction.TypeIncome {
		categories = category.Income
	}

	m.formAmount = ""
	m.formCategory = categories[0]
	m.formDescription = ""
	m.formDate = time.Now().Format("2006-01-02")
	m.formPayment = ""
	m.formRecurring = false
	m.formInterval = string(category.IntervalMonthly)
	m.status = ""

	paymentOptions := []huh.Option[string]{huh.NewOption("None", "")}
	for _, p := range category.PaymentMethods {
		paymentOptions = append(paymentOptions, huh.NewOption(string(p), string(p)))
	}

	intervalOptions := make([]huh.Option[string], 0, len(category.Intervals))
	for _, i := range category.Intervals {
		intervalOptions = append(intervalOptions, huh.NewOption(string(i), string(i)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					cents, err := money.ParseCents(s)
					if err != nil {
						return fmt.Errorf("enter a number like 42.50")
					}
					if cents < 0 {
						return fmt.Errorf("amount cannot be negative")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(huh.NewOptions(categories...)...).
				Value(&m.formCategory),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDescription).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				CharLimit(10).
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("payment_method").
				Title("Payment Method").
				Options(paymentOptions...).
				Value(&m.formPayment),

			huh.NewConfirm().
				Key("recurring").
				Title("Recurring?").
				Value(&m.formRecurring),

			huh.NewSelect[string]().
				Key("recurring_interval").
				Title("Recurring Interval").
				Options(intervalOptions...).
				Value(&m.formInterval),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = addStateForm

	return m, m.form.Init()
}

func (m AddModel) View() string {
	if m.state == addStateSelectType {
		s := "What kind of transaction?\n\n"

		for i, label := range []string{"Income", "Expense"} {
			cursor := " "
			if m.typeCursor == i {
				cursor = ">"
			}

			s += fmt.Sprintf("%s %s\n", cursor, label)
		}

		if m.status != "" {
			s += "\n" + m.status + "\n"
		}

		s += "\n" + faintStyle.Render(m.ShortHelp())

		return lipgloss.NewStyle().Padding(2).Render(s)
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(48).
		Render(fmt.Sprintf("New %s\n\n%s", m.selectedType, m.form.View()))

	return lipgloss.NewStyle().Padding(1).Render(panel)
}

type addSavedMsg struct {
	amount   int64
	category string
	warning  string
	err      error
}

func (m AddModel) saveCmd() tea.Cmd {
	cents, err := money.ParseCents(m.formAmount)
	if err != nil {
		return func() tea.Msg { return addSavedMsg{err: err} }
	}

	date, err := time.Parse("2006-01-02", m.formDate)
	if err != nil {
		return func() tea.Msg { return addSavedMsg{err: err} }
	}

	params := transaction.CreateParams{
		Amount:        cents,
		Type:          m.selectedType,
		Category:      m.formCategory,
		Description:   m.formDescription,
		Date:          date,
		Recurring:     m.formRecurring,
		PaymentMethod: category.PaymentMethod(m.formPayment),
	}
	if m.formRecurring {
		params.RecurringInterval = category.Interval(m.formInterval)
	}

	return func() tea.Msg {
		ctx := context.Background()

		tx, err := m.txService.Create(ctx, params)
		if err != nil {
			return addSavedMsg{err: err}
		}

		msg := addSavedMsg{amount: tx.Amount, category: tx.Category}

		if tx.Type == transaction.TypeExpense {
			overview, err := m.dashService.Overview(ctx, report.FilterSpec{}, 0)
			if err == nil {
				for _, e := range overview.Exceeded {
					if e.Category == tx.Category {
						msg.warning = fmt.Sprintf(
							"Limit exceeded for %s: spent %s of %s",
							e.Category, FormatAmount(e.Spent), FormatAmount(e.Limit),
						)
					}
				}
			}
		}

		return msg
	}
}
