package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"pennywise/cmd/tui/internal/view"
	"pennywise/internal/config"
	"pennywise/internal/dashboard"
	"pennywise/internal/limit"
	limitStore "pennywise/internal/limit/store"
	"pennywise/internal/transaction"
	txStore "pennywise/internal/transaction/store"
)

type model struct {
	txService        *transaction.Service
	limitService     *limit.Service
	dashboardService *dashboard.Service
	recentLimit      int

	currentView View

	dashboardView view.DashboardModel
	addView       view.AddModel
	browseView    view.BrowseModel
	limitsView    view.LimitsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewAdd       View = 2
	ViewBrowse    View = 3
	ViewLimits    View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(), nil)
	limitSvc := limit.NewService(limitStore.New())
	dashSvc := dashboard.NewService(txSvc, limitSvc, nil)

	return model{
		txService:        txSvc,
		limitService:     limitSvc,
		dashboardService: dashSvc,
		recentLimit:      cfg.Dashboard.RecentLimit,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(dashSvc, cfg.Dashboard.RecentLimit),
		addView:          view.NewAddModel(txSvc, dashSvc),
		browseView:       view.NewBrowseModel(dashSvc),
		limitsView:       view.NewLimitsModel(limitSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.dashboardService, m.recentLimit)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.txService, m.dashboardService)

				return m, m.addView.Init()
			case "3":
				m.currentView = ViewBrowse
				m.browseView = view.NewBrowseModel(m.dashboardService)

				return m, m.browseView.Init()
			case "4":
				m.currentView = ViewLimits
				m.limitsView = view.NewLimitsModel(m.limitService)

				return m, m.limitsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewBrowse:
		var newModel tea.Model
		newModel, cmd = m.browseView.Update(msg)
		m.browseView = newModel.(view.BrowseModel)
	case ViewLimits:
		var newModel tea.Model
		newModel, cmd = m.limitsView.Update(msg)
		m.limitsView = newModel.(view.LimitsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Pennywise TUI\n\n" +
				"1. Dashboard\n" +
				"2. Add Transaction\n" +
				"3. Browse Transactions\n" +
				"4. Edit Spending Limits\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewAdd:
		return m.addView.View()
	case ViewBrowse:
		return m.browseView.View()
	case ViewLimits:
		return m.limitsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
