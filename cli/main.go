package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	mainMenu      list.Model
	ingredientTbl table.Model
	shoppingList  list.Model
	alertList     list.Model
	stats         *Stats
	spinner       spinner.Model
	client        *ApiClient
	currentView   string
	status        string
	error         string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Initialize the model
func initialModel() Model {
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Initialize main menu items
	items := []list.Item{
		item{title: "Dashboard", desc: "Aggregate kitchen stats"},
		item{title: "Ingredients", desc: "Raw ingredient stock levels"},
		item{title: "Shopping List", desc: "What needs restocking"},
		item{title: "Alerts", desc: "Active alerts and warnings"},
		item{title: "Exit", desc: "Exit the application"},
	}

	// Initialize main menu
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "Brigade CLI"

	// Initialize ingredient table
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Stock", Width: 12},
		{Title: "Min", Width: 8},
		{Title: "Status", Width: 10},
		{Title: "Supplier", Width: 16},
	}
	ingredientTbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	// Initialize shopping and alert lists
	shoppingList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	shoppingList.Title = "Shopping List"
	alertList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	alertList.Title = "Alerts"

	// Initialize API client
	client := NewApiClient()

	return Model{
		mainMenu:      mainMenu,
		ingredientTbl: ingredientTbl,
		shoppingList:  shoppingList,
		alertList:     alertList,
		spinner:       s,
		client:        client,
		currentView:   "main",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.mainMenu.SetSize(msg.Width-h, msg.Height-v)
		m.shoppingList.SetSize(msg.Width-h, msg.Height-v-4)
		m.alertList.SetSize(msg.Width-h, msg.Height-v-4)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if m.currentView == "main" {
				selected, ok := m.mainMenu.SelectedItem().(item)
				if ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Dashboard":
						m.currentView = "dashboard"
						return m, fetchStats(m.client)
					case "Ingredients":
						m.currentView = "ingredients"
						return m, fetchIngredients(m.client)
					case "Shopping List":
						m.currentView = "shopping"
						return m, fetchShoppingList(m.client)
					case "Alerts":
						m.currentView = "alerts"
						return m, fetchAlerts(m.client)
					}
				}
			}
		case "esc":
			if m.currentView != "main" {
				m.currentView = "main"
				m.status = ""
				m.error = ""
			}
		case " ":
			if m.currentView == "shopping" {
				if selected, ok := m.shoppingList.SelectedItem().(shoppingListItem); ok {
					return m, toggleShoppingItem(m.client, selected.ingredientID)
				}
			}
		case "d":
			if m.currentView == "alerts" {
				if selected, ok := m.alertList.SelectedItem().(alertListItem); ok {
					return m, dismissAlert(m.client, selected.id)
				}
			}
		case "r":
			switch m.currentView {
			case "dashboard":
				return m, fetchStats(m.client)
			case "ingredients":
				return m, fetchIngredients(m.client)
			case "shopping":
				return m, fetchShoppingList(m.client)
			case "alerts":
				return m, fetchAlerts(m.client)
			}
		}
	case statsMsg:
		m.stats = msg.stats
		return m, nil
	case ingredientsMsg:
		m.ingredientTbl.SetRows(convertIngredientsToRows(msg.ingredients))
		return m, nil
	case shoppingMsg:
		m.shoppingList.SetItems(convertShoppingToItems(msg.items))
		return m, nil
	case alertsMsg:
		m.alertList.SetItems(convertAlertsToItems(msg.alerts))
		return m, nil
	case errorMsg:
		m.error = msg.err
		return m, nil
	case confirmMsg:
		m.error = ""
		m.status = msg.message
		switch m.currentView {
		case "shopping":
			return m, fetchShoppingList(m.client)
		case "alerts":
			return m, fetchAlerts(m.client)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "ingredients":
		m.ingredientTbl, cmd = m.ingredientTbl.Update(msg)
	case "shopping":
		m.shoppingList, cmd = m.shoppingList.Update(msg)
	case "alerts":
		m.alertList, cmd = m.alertList.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "dashboard":
		return docStyle.Render(dashboardView(m.stats))
	case "ingredients":
		help := "\nPress 'r' to refresh, 'esc' to go back\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(titleStyle.Render("Ingredients") + "\n\n" + m.ingredientTbl.View() + help)
	case "shopping":
		help := "\nPress 'space' to toggle an item, 'r' to refresh, 'esc' to go back\n"
		if m.status != "" {
			help += successStyle.Render(m.status) + "\n"
		}
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(titleStyle.Render("Shopping List") + "\n\n" + m.shoppingList.View() + help)
	case "alerts":
		help := "\nPress 'd' to dismiss an alert, 'r' to refresh, 'esc' to go back\n"
		if m.status != "" {
			help += successStyle.Render(m.status) + "\n"
		}
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(titleStyle.Render("Alerts") + "\n\n" + m.alertList.View() + help)
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type statsMsg struct {
	stats *Stats
}

type ingredientsMsg struct {
	ingredients []Ingredient
}

type shoppingMsg struct {
	items []ShoppingItem
}

type alertsMsg struct {
	alerts []Alert
}

type errorMsg struct {
	err string
}

type confirmMsg struct {
	message string
}

// shoppingListItem represents a shopping item in the list
type shoppingListItem struct {
	ingredientID string
	title        string
	desc         string
}

func (i shoppingListItem) Title() string       { return i.title }
func (i shoppingListItem) Description() string { return i.desc }
func (i shoppingListItem) FilterValue() string { return i.title }

// alertListItem represents an alert in the list
type alertListItem struct {
	id    string
	title string
	desc  string
}

func (i alertListItem) Title() string       { return i.title }
func (i alertListItem) Description() string { return i.desc }
func (i alertListItem) FilterValue() string { return i.title }

// fetchStats retrieves the aggregate stats from the API
func fetchStats(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.GetStats()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching stats: %v", err)}
		}
		return statsMsg{stats: stats}
	}
}

// fetchIngredients retrieves all ingredients from the API
func fetchIngredients(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		ingredients, err := client.GetIngredients()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching ingredients: %v", err)}
		}
		return ingredientsMsg{ingredients: ingredients}
	}
}

// fetchShoppingList retrieves the shopping list from the API
func fetchShoppingList(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		items, err := client.GetShoppingList()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching shopping list: %v", err)}
		}
		return shoppingMsg{items: items}
	}
}

// fetchAlerts retrieves active alerts from the API
func fetchAlerts(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		alerts, err := client.GetAlerts()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching alerts: %v", err)}
		}
		return alertsMsg{alerts: alerts}
	}
}

// toggleShoppingItem flips the completed flag of a shopping item
func toggleShoppingItem(client *ApiClient, ingredientID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.ToggleShoppingItem(ingredientID); err != nil {
			return errorMsg{err: fmt.Sprintf("Error toggling item: %v", err)}
		}
		return confirmMsg{message: "Shopping item toggled"}
	}
}

// dismissAlert dismisses an alert
func dismissAlert(client *ApiClient, id string) tea.Cmd {
	return func() tea.Msg {
		if err := client.DismissAlert(id); err != nil {
			return errorMsg{err: fmt.Sprintf("Error dismissing alert: %v", err)}
		}
		return confirmMsg{message: "Alert dismissed"}
	}
}

// convertIngredientsToRows converts API ingredients to table rows
func convertIngredientsToRows(ingredients []Ingredient) []table.Row {
	rows := make([]table.Row, len(ingredients))
	for i, ing := range ingredients {
		status := "ok"
		if ing.CurrentStock == 0 {
			status = "critical"
		} else if ing.CurrentStock < ing.MinStock {
			status = "low"
		}
		rows[i] = table.Row{
			ing.Name,
			fmt.Sprintf("%.4g %s", ing.CurrentStock, ing.Unit),
			fmt.Sprintf("%.4g", ing.MinStock),
			status,
			ing.Supplier,
		}
	}
	return rows
}

// convertShoppingToItems converts API shopping items to list items
func convertShoppingToItems(items []ShoppingItem) []list.Item {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		check := "[ ]"
		if it.Completed {
			check = "[x]"
		}
		listItems[i] = shoppingListItem{
			ingredientID: it.IngredientID,
			title:        fmt.Sprintf("%s %s (%.4g %s)", check, it.Name, it.Quantity, it.Unit),
			desc:         fmt.Sprintf("%s - est. %.2f EUR", it.Priority, it.EstimatedCost),
		}
	}
	return listItems
}

// convertAlertsToItems converts API alerts to list items
func convertAlertsToItems(alerts []Alert) []list.Item {
	items := make([]list.Item, len(alerts))
	for i, alert := range alerts {
		items[i] = alertListItem{
			id:    alert.ID,
			title: fmt.Sprintf("[%s] %s", alert.Severity, alert.Message),
			desc:  fmt.Sprintf("%s - %s", alert.Type, alert.Action),
		}
	}
	return items
}

// dashboardView renders the aggregate stats
func dashboardView(stats *Stats) string {
	view := titleStyle.Render("Kitchen Dashboard") + "\n\n"
	if stats == nil {
		return view + "Loading stats..."
	}

	view += infoStyle.Render("Inventory") + "\n"
	view += fmt.Sprintf("Critical items:    %d\n", stats.CriticalItems)
	view += fmt.Sprintf("Low stock items:   %d\n", stats.LowStockItems)
	view += fmt.Sprintf("Expiring items:    %d\n", stats.ExpiringItems)
	view += fmt.Sprintf("Inventory value:   %.2f EUR\n\n", stats.TotalInventoryValue)

	view += infoStyle.Render("Shopping") + "\n"
	view += fmt.Sprintf("Open items:        %d\n", stats.ShoppingItems)
	view += fmt.Sprintf("Weekly budget:     %.2f EUR\n", stats.WeeklyBudget)
	view += fmt.Sprintf("Weekly spent:      %.2f EUR\n\n", stats.WeeklySpent)

	view += infoStyle.Render("Operations") + "\n"
	view += fmt.Sprintf("Active chefs:      %d\n", stats.ActiveChefs)
	view += fmt.Sprintf("Storage used:      %.1f%%\n", stats.StorageUtilization)
	view += fmt.Sprintf("Avg efficiency:    %.1f%%\n\n", stats.AverageEfficiency)

	view += "Press 'r' to refresh, 'esc' to return to the main menu"
	return view
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
