package view

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pennywise/internal/category"
	"pennywise/internal/dashboard"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

var (
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	balanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// Date-range filters the dashboard cycles through with "f".
var dashboardRanges = []struct {
	label string
	rng   report.DateRange
}{
	{label: "All Time"},
	{label: "Today", rng: report.DateRangeToday},
	{label: "This Week", rng: report.DateRangeWeek},
	{label: "This Month", rng: report.DateRangeMonth},
	{label: "This Year", rng: report.DateRangeYear},
}

type overviewMsg struct {
	overview *dashboard.Overview
	err      error
}

type DashboardModel struct {
	CommonModel
	svc         *dashboard.Service
	recentLimit int

	overview *dashboard.Overview
	rangeIdx int
	loading  bool
	err      error
}

func NewDashboardModel(svc *dashboard.Service, recentLimit int) DashboardModel {
	return DashboardModel{svc: svc, recentLimit: recentLimit, loading: true}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "Esc: back | f: time filter | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) loadCmd() tea.Cmd {
	filter := report.FilterSpec{DateRange: dashboardRanges[m.rangeIdx].rng}

	return func() tea.Msg {
		overview, err := m.svc.Overview(context.Background(), filter, m.recentLimit)
		return overviewMsg{overview: overview, err: err}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		m.loading = false
		m.err = msg.err
		m.overview = msg.overview

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "f":
			m.rangeIdx = (m.rangeIdx + 1) % len(dashboardRanges)
			m.loading = true

			return m, m.loadCmd()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Timeframe: %s\n\n", dashboardRanges[m.rangeIdx].label))

	s := m.overview.Summary
	sb.WriteString(fmt.Sprintf("Income:   %s\n", incomeStyle.Render(FormatAmount(s.TotalIncome))))
	sb.WriteString(fmt.Sprintf("Expenses: %s\n", expenseStyle.Render(FormatAmount(s.TotalExpenses))))
	sb.WriteString(fmt.Sprintf("Balance:  %s\n", balanceStyle.Render(FormatAmount(s.Balance))))

	if len(m.overview.Exceeded) > 0 {
		sb.WriteString("\n" + warnStyle.Render("Spending limits exceeded:") + "\n")

		for _, e := range m.overview.Exceeded {
			sb.WriteString(warnStyle.Render(fmt.Sprintf(
				"  %s: spent %s of %s limit", e.Category, FormatAmount(e.Spent), FormatAmount(e.Limit),
			)) + "\n")
		}
	}

	if len(s.CategoryTotals) > 0 {
		sb.WriteString("\nExpense categories:\n")

		for _, cat := range category.Expense {
			if total, ok := s.CategoryTotals[cat]; ok {
				sb.WriteString(fmt.Sprintf("  %-20s %s\n", cat, FormatAmount(total)))
			}
		}
	}

	if len(m.overview.Trend) > 0 {
		sb.WriteString("\nDaily spending:\n")

		for _, p := range m.overview.Trend {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", p.Label, FormatAmount(p.Amount)))
		}
	}

	if len(m.overview.Recent) > 0 {
		sb.WriteString("\nRecent transactions:\n")

		for _, tx := range m.overview.Recent {
			sign := "-"
			if tx.Type == transaction.TypeIncome {
				sign = "+"
			}

			sb.WriteString(fmt.Sprintf("  %s  %s%s  %s  %s\n",
				FormatDate(tx.Date), sign, FormatAmount(tx.Amount), tx.Category,
				faintStyle.Render(tx.Description),
			))
		}
	}

	sb.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
