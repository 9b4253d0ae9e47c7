package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pennywise/internal/dashboard"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

// Filter cycles for the browse view. Index 0 always means "no constraint".
var (
	browseTypes = []struct {
		label string
		typ   transaction.Type
	}{
		{label: "All"},
		{label: "Income", typ: transaction.TypeIncome},
		{label: "Expenses", typ: transaction.TypeExpense},
	}

	browseRanges = []struct {
		label string
		rng   report.DateRange
	}{
		{label: "All Time"},
		{label: "Today", rng: report.DateRangeToday},
		{label: "This Week", rng: report.DateRangeWeek},
		{label: "This Month", rng: report.DateRangeMonth},
		{label: "This Year", rng: report.DateRangeYear},
	}
)

type BrowseModel struct {
	CommonModel
	dashService *dashboard.Service

	table table.Model
	txs   []*transaction.Transaction

	typeFilterIdx int
	dateFilterIdx int

	loading bool
	err     error
}

func NewBrowseModel(dashSvc *dashboard.Service) BrowseModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Amount", Width: 12},
		{Title: "Category", Width: 20},
		{Title: "Payment", Width: 15},
		{Title: "Description", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return BrowseModel{
		dashService: dashSvc,
		table:       t,
		loading:     true,
	}
}

func (m BrowseModel) Title() string { return "Transactions" }
func (m BrowseModel) ShortHelp() string {
	return "Esc: back | t: type filter | d: date filter | r: refresh"
}

func (m BrowseModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBrowseMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % len(browseTypes)
			m.loading = true

			return m, m.loadTxsCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % len(browseRanges)
			m.loading = true

			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BrowseModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf(
		"Filter: [t] Type: %s | [d] Date: %s | %d transactions",
		activeStyle(browseTypes[m.typeFilterIdx].label),
		activeStyle(browseRanges[m.dateFilterIdx].label),
		len(m.txs),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		faintStyle.Render(m.ShortHelp()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *BrowseModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		amount := FormatAmount(tx.Amount)
		if tx.Type == transaction.TypeExpense {
			amount = "-" + amount
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			amount,
			tx.Category,
			string(tx.PaymentMethod),
			tx.Description,
		})
	}
	m.table.SetRows(rows)
}

type loadBrowseMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m BrowseModel) loadTxsCmd() tea.Cmd {
	filter := report.FilterSpec{
		Type:      browseTypes[m.typeFilterIdx].typ,
		DateRange: browseRanges[m.dateFilterIdx].rng,
	}

	return func() tea.Msg {
		txs, err := m.dashService.Filtered(context.Background(), filter)
		return loadBrowseMsg{txs: txs, err: err}
	}
}
