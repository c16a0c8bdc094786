// Package ui is the terminal presentation surface. It renders workflow
// state and log analytics, and translates key presses into the user
// intents the core accepts.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/raine/portionvision/internal/camera"
	"github.com/raine/portionvision/internal/capture"
	"github.com/raine/portionvision/internal/catalog"
	"github.com/raine/portionvision/internal/logbook"
	"github.com/raine/portionvision/internal/workflow"
)

// Tab identifies the main navigation tabs.
type Tab int

const (
	TabBrowse Tab = iota
	TabLog
	TabAbout
)

const (
	toastDuration = 3 * time.Second
	liveTick      = 500 * time.Millisecond
	scaleStep     = 0.05
)

// CaptureAckDelay is how long the "Captured!" acknowledgment stays on
// screen before the confirm prompt opens.
const CaptureAckDelay = 1500 * time.Millisecond

type (
	toastMsg        struct{ message string }
	toastExpiredMsg struct{}
	cameraOpenedMsg struct{ err error }
	liveTickMsg     struct{}
)

// Model is the bubbletea model for the whole application.
type Model struct {
	catalog *catalog.Catalog
	store   *logbook.Store
	flow    *workflow.Workflow

	tab           Tab
	search        textinput.Model
	searching     bool
	category      catalog.Category // empty = all
	favoritesOnly bool
	cursor        int

	confirmClear bool
	toast        string
	toastError   bool
	notifyCh     chan string
	width        int
	height       int
}

// NewModel wires the presentation to the catalog, the log store and a
// camera device, owning the workflow it drives.
func NewModel(cat *catalog.Catalog, store *logbook.Store, device camera.Device, flowOpts ...workflow.Option) Model {
	notifyCh := make(chan string, 4)
	opts := append([]workflow.Option{
		workflow.WithNotify(func(message string) {
			select {
			case notifyCh <- message:
			default:
			}
		}),
	}, flowOpts...)
	flow := workflow.New(device, store, opts...)

	search := textinput.New()
	search.Placeholder = "Search foods (e.g., biryani, samosa, roti)..."
	search.CharLimit = 64

	return Model{
		catalog:  cat,
		store:    store,
		flow:     flow,
		search:   search,
		notifyCh: notifyCh,
	}
}

// Flow exposes the workflow for teardown by the caller.
func (m Model) Flow() *workflow.Workflow {
	return m.flow
}

func (m Model) Init() tea.Cmd {
	return listenToasts(m.notifyCh)
}

func listenToasts(ch chan string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{message: <-ch}
	}
}

func expireToast() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{} })
}

func tickLive() tea.Cmd {
	return tea.Tick(liveTick, func(time.Time) tea.Msg { return liveTickMsg{} })
}

// errorToast surfaces a failed mutation to the user. The stores log the
// underlying error themselves.
func (m Model) errorToast(message string) (tea.Model, tea.Cmd) {
	m.toast = message
	m.toastError = true
	return m, expireToast()
}

func (m Model) openCamera() tea.Cmd {
	return func() tea.Msg {
		return cameraOpenedMsg{err: m.flow.OpenCapture(context.Background())}
	}
}

func (m Model) visibleFoods() []catalog.FoodItem {
	return m.catalog.Find(catalog.Filter{
		Query:         m.search.Value(),
		Category:      m.category,
		FavoritesOnly: m.favoritesOnly,
		IsFavorite:    m.store.IsFavorite,
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case toastMsg:
		m.toast = msg.message
		m.toastError = false
		return m, tea.Batch(listenToasts(m.notifyCh), expireToast())

	case toastExpiredMsg:
		m.toast = ""
		return m, nil

	case cameraOpenedMsg:
		// On failure the session stays around in its Failed state and the
		// capturing view shows the reason; nothing more to do here.
		if msg.err == nil {
			return m, tickLive()
		}
		return m, nil

	case liveTickMsg:
		if s := m.flow.Session(); s != nil && s.State() == capture.StateLive {
			return m, tickLive()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.flow.Close()
		return m, tea.Quit
	}

	switch m.flow.State() {
	case workflow.StateDetail:
		return m.handleDetailKey(msg)
	case workflow.StateCapturing:
		return m.handleCapturingKey(msg)
	case workflow.StateConfirmPending:
		return m.handleConfirmKey(msg)
	}
	return m.handleBrowsingKey(msg)
}

func (m Model) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.searching = false
			m.search.Blur()
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.cursor = 0
			return m, cmd
		}
		return m, nil
	}

	if m.confirmClear {
		m.confirmClear = false
		if msg.String() == "y" {
			if err := m.store.Clear(); err != nil {
				return m.errorToast("Failed to clear portion history")
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.flow.Close()
		return m, tea.Quit
	case "1":
		m.tab = TabBrowse
	case "2":
		m.tab = TabLog
	case "3":
		m.tab = TabAbout
	case "tab":
		m.tab = (m.tab + 1) % 3
	case "/":
		if m.tab == TabBrowse {
			m.searching = true
			return m, m.search.Focus()
		}
	case "c":
		if m.tab == TabBrowse {
			m.category = nextCategory(m.category)
			m.cursor = 0
		}
	case "f":
		if m.tab == TabBrowse {
			m.favoritesOnly = !m.favoritesOnly
			m.cursor = 0
		}
	case "x":
		if m.tab == TabLog && len(m.store.Entries()) > 0 {
			m.confirmClear = true
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if foods := m.visibleFoods(); m.cursor < len(foods)-1 {
			m.cursor++
		}
	case "enter":
		if m.tab == TabBrowse {
			if foods := m.visibleFoods(); m.cursor < len(foods) {
				m.flow.SelectFood(foods[m.cursor])
			}
		}
	}
	return m, nil
}

func nextCategory(current catalog.Category) catalog.Category {
	if current == "" {
		return catalog.Categories[0]
	}
	for i, c := range catalog.Categories {
		if c == current {
			if i == len(catalog.Categories)-1 {
				return ""
			}
			return catalog.Categories[i+1]
		}
	}
	return ""
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.flow.DismissDetail()
	case "f":
		if food, ok := m.flow.SelectedFood(); ok {
			if _, err := m.store.ToggleFavorite(food.ID); err != nil {
				return m.errorToast("Failed to save favorite")
			}
		}
	case "c", "enter":
		return m, m.openCamera()
	}
	return m, nil
}

func (m Model) handleCapturingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.flow.Session()
	switch msg.String() {
	case "esc", "q":
		m.flow.CloseCamera()
	case "+", "=", "right":
		if session != nil {
			m.flow.AdjustScale(session.Scale() + scaleStep)
		}
	case "-", "left":
		if session != nil {
			m.flow.AdjustScale(session.Scale() - scaleStep)
		}
	case " ", "enter":
		if session != nil && session.State() == capture.StateLive {
			if err := m.flow.CaptureFrame(); err == nil {
				// Re-render once the acknowledgment delay has elapsed and
				// the workflow has moved on to the confirm prompt.
				return m, tea.Tick(CaptureAckDelay+50*time.Millisecond,
					func(time.Time) tea.Msg { return liveTickMsg{} })
			}
		}
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if err := m.flow.ConfirmLog(); err != nil {
			return m.errorToast("Failed to save portion log")
		}
	case "n", "esc", "q":
		m.flow.CancelLog()
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.flow.State() {
	case workflow.StateDetail:
		body = m.viewDetail()
	case workflow.StateCapturing:
		body = m.viewCapturing()
	case workflow.StateConfirmPending:
		body = m.viewConfirm()
	default:
		body = m.viewTabs()
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("PortionVision"),
		subtitleStyle.Render("  visual portion sizes"),
	)

	sections := []string{header, body}
	if m.toast != "" {
		style := toastStyle
		if m.toastError {
			style = errorToastStyle
		}
		sections = append(sections, style.Render(m.toast))
	}
	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out + "\n"
}

func (m Model) viewTabs() string {
	names := []string{"Browse", "Log", "About"}
	var tabs []string
	for i, name := range names {
		style := tabStyle
		if Tab(i) == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var content string
	switch m.tab {
	case TabLog:
		content = m.viewLog()
	case TabAbout:
		content = aboutText
	default:
		content = m.viewBrowse()
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", content)
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	filter := "category: all"
	if m.category != "" {
		filter = "category: " + string(m.category)
	}
	if m.favoritesOnly {
		filter += fmt.Sprintf(" · favorites only (%d)", m.store.FavoriteCount())
	}
	b.WriteString(m.search.View() + "\n")
	b.WriteString(dimStyle.Render(filter) + "\n\n")

	foods := m.visibleFoods()
	total := len(foods)
	if len(foods) == 0 {
		b.WriteString(dimStyle.Render("No foods found. Try a different search or category.") + "\n")
	}

	// Window the list around the cursor when the terminal is too short
	// for the whole catalog
	offset := 0
	if rows := m.listHeight(); rows > 0 && len(foods) > rows {
		offset = m.cursor - rows/2
		if offset > len(foods)-rows {
			offset = len(foods) - rows
		}
		if offset < 0 {
			offset = 0
		}
		foods = foods[offset : offset+rows]
	}

	for i, food := range foods {
		star := "  "
		if m.store.IsFavorite(food.ID) {
			star = favoriteStyle.Render("★ ")
		}
		line := fmt.Sprintf("%s%-22s %s %s",
			star, food.Name, badge(food.Category),
			calorieStyle.Render(fmt.Sprintf("%d cal", food.Calories)))
		if i+offset == m.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf(
		"Showing %d foods · ↑/↓ move · enter details · / search · c category · f favorites · q quit",
		total)))
	return b.String()
}

// listHeight is how many catalog rows fit between the filter line and the
// key help footer. Zero means the terminal size is not known yet and the
// whole list is rendered.
func (m Model) listHeight() int {
	if m.height == 0 {
		return 0
	}
	rows := m.height - 10
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m Model) viewDetail() string {
	food, ok := m.flow.SelectedFood()
	if !ok {
		return ""
	}
	obj := catalog.VisualObjectFor(food)

	star := "☆"
	if m.store.IsFavorite(food.ID) {
		star = favoriteStyle.Render("★")
	}

	lines := []string{
		fmt.Sprintf("%s %s", titleStyle.Render(food.Name), star),
		fmt.Sprintf("%s · %s · %s", badge(food.Category), food.PortionSize,
			calorieStyle.Render(fmt.Sprintf("%d cal", food.Calories))),
		"",
		fmt.Sprintf("%s  %s (%s)", obj.Emoji, obj.Name, obj.Dimensions),
		dimStyle.Render(food.Description),
		"",
		dimStyle.Render("c open camera · f toggle favorite · esc close"),
	}
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewCapturing() string {
	session := m.flow.Session()
	if session == nil {
		return ""
	}

	switch session.State() {
	case capture.StateAcquiring, capture.StateIdle:
		return modalStyle.Render("Initializing camera...\n\n" + dimStyle.Render("esc cancel"))
	case capture.StateFailed:
		return modalStyle.Render(
			errorStyle.Render("Camera Unavailable") + "\n\n" +
				session.FailReason() + "\n\n" +
				dimStyle.Render("esc close camera"))
	}

	guide := session.Guide()
	obj := session.Object()

	var status string
	if frame := session.FrozenFrame(); frame != nil {
		status = toastStyle.Render("Captured!")
	} else {
		status = dimStyle.Render(fmt.Sprintf("live · %s · %s", obj.Name, obj.Dimensions))
	}

	help := dimStyle.Render("+/- scale · space capture · esc cancel")
	return lipgloss.JoinVertical(lipgloss.Center, status, renderGuide(guide), help)
}

func (m Model) viewConfirm() string {
	pending, ok := m.flow.Pending()
	if !ok {
		return ""
	}
	return modalStyle.Render(fmt.Sprintf(
		"Log this portion?\n\nDid you eat %s using %s as a guide?\n\n%s",
		titleStyle.Render(pending.Food.Name),
		pending.Object.Name,
		dimStyle.Render("y log it · n discard")))
}

func (m Model) viewLog() string {
	entries := m.store.Entries()
	if len(entries) == 0 {
		return dimStyle.Render("No portions logged yet today.\nUse the camera or browse foods to add one!")
	}

	a := m.store.Analytics()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Today's Summary") + "\n")
	b.WriteString(fmt.Sprintf("Total: %s · %d items\n",
		calorieStyle.Render(fmt.Sprintf("%d cal", a.TotalCalories)), a.EntryCount))
	for _, cat := range catalog.Categories {
		if calories, ok := a.PerCategory[cat]; ok {
			b.WriteString(fmt.Sprintf("  %s %d cal\n", badge(cat), calories))
		}
	}

	b.WriteString("\n" + subtitleStyle.Render("Recent Items") + "\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s %-20s %s %s %s\n",
			e.Emoji, e.FoodName, dimStyle.Render(e.ObjectName),
			calorieStyle.Render(fmt.Sprintf("%d cal", e.Calories)),
			dimStyle.Render(e.Timestamp.Format("15:04"))))
	}

	if m.confirmClear {
		b.WriteString("\n" + errorStyle.Render("Clear all history? This cannot be undone. (y/n)"))
	} else {
		b.WriteString("\n" + dimStyle.Render("x clear all"))
	}
	return b.String()
}
