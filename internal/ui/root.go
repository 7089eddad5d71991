package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/wisht/internal/category"
	"github.com/dori/wisht/internal/client"
	"github.com/dori/wisht/internal/report"
	"github.com/dori/wisht/internal/store"
	"github.com/dori/wisht/internal/ui/theme"
	"github.com/dori/wisht/internal/ui/views"
)

// RootModel composes the tab state with the pending and done views
type RootModel struct {
	api      *client.Client
	store    *store.Store
	registry *category.Registry
	reporter *report.Reporter
	keys     KeyMap
	help     help.Model
	width    int
	height   int

	currentTab  Tab
	pendingView views.PendingView
	doneView    views.DoneView
	helpVisible bool

	statusMsg string
	errorMsg  string
}

// NewRootModel creates the root model for one list scope
func NewRootModel(api *client.Client, st *store.Store, reg *category.Registry, reporter *report.Reporter) RootModel {
	h := help.New()
	h.ShowAll = false

	return RootModel{
		api:         api,
		store:       st,
		registry:    reg,
		reporter:    reporter,
		keys:        DefaultKeyMap(),
		help:        h,
		currentTab:  TabPending,
		pendingView: views.NewPendingView(st, reg),
		doneView:    views.NewDoneView(st),
	}
}

// Init fetches the category set and the pending collection
func (m RootModel) Init() tea.Cmd {
	return tea.Batch(m.loadCategories, m.pendingView.Init())
}

// loadCategories fetches the server's label set; on failure the local
// defaults stay in place and the picker keeps working
func (m RootModel) loadCategories() tea.Msg {
	labels, err := m.api.Categories(context.Background())
	return CategoriesLoadedMsg{Labels: labels, Err: err}
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header (2 lines) and footer (2 lines)
		contentHeight := m.height - 4
		m.pendingView = m.pendingView.SetSize(m.width, contentHeight)
		m.doneView = m.doneView.SetSize(m.width, contentHeight)

	case CategoriesLoadedMsg:
		if msg.Err != nil {
			m.reporter.Failure("load categories", msg.Err)
			return m, nil
		}
		m.registry.Replace(msg.Labels)
		return m, nil

	case views.ItemCompletedMsg:
		// The pending view drops the item locally; the done collection is
		// refetched so completed_at is the server's, never a local guess
		newPending, cmd := m.pendingView.Update(msg)
		m.pendingView = newPending
		cmds = append(cmds, cmd)
		if msg.Err == nil {
			cmds = append(cmds, m.doneView.Init())
		}
		return m, tea.Batch(cmds...)

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := false
		switch m.currentTab {
		case TabPending:
			isInputMode = m.pendingView.IsInputMode()
		case TabDone:
			isInputMode = m.doneView.IsInputMode()
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not typing
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}
		}

		if isInputMode {
			break // Let the view handle everything else
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = m.helpVisible
			return m, nil

		case key.Matches(msg, m.keys.PendingTab):
			return m.switchTab(TabPending)
		case key.Matches(msg, m.keys.DoneTab):
			return m.switchTab(TabDone)
		case key.Matches(msg, m.keys.NextTab):
			if m.currentTab == TabPending {
				return m.switchTab(TabDone)
			}
			return m.switchTab(TabPending)
		}
	}

	// Delegate to the current view
	switch m.currentTab {
	case TabPending:
		newPending, cmd := m.pendingView.Update(msg)
		m.pendingView = newPending
		cmds = append(cmds, cmd)
	case TabDone:
		newDone, cmd := m.doneView.Update(msg)
		m.doneView = newDone
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// switchTab changes the active tab. Any in-progress edit or comment
// buffer is discarded and the incoming tab refetches its collection.
func (m RootModel) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.pendingView = m.pendingView.Reset()
	m.doneView = m.doneView.Reset()
	m.currentTab = tab

	switch tab {
	case TabPending:
		return m, m.pendingView.Init()
	case TabDone:
		return m, m.doneView.Init()
	}
	return m, nil
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}

	var content string
	if m.helpVisible {
		content = m.help.View(m.keys)
	} else {
		switch m.currentTab {
		case TabPending:
			content = m.pendingView.View()
		case TabDone:
			content = m.doneView.View()
		}
	}

	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the title and tab bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles

	title := styles.Header.Render("wisht")

	share := m.store.Scope().ShareID
	var shareLabel string
	if share != "" {
		shareLabel = styles.Footer.Render(fmt.Sprintf("list %s", shortShare(share)))
	} else {
		shareLabel = styles.Footer.Render("local list")
	}

	var tabs []string
	for _, tab := range []Tab{TabPending, TabDone} {
		if tab == m.currentTab {
			tabs = append(tabs, styles.TabActive.Render(tab.String()))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(tab.String()))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, shareLabel)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(tabBar)
	if gap < 0 {
		gap = 0
	}

	return left + strings.Repeat(" ", gap) + tabBar
}

// shortShare trims a share identifier for the header
func shortShare(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[:8] + "…"
}

// renderFooter renders the status line and key hints
func (m RootModel) renderFooter() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	hint := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	var line string
	switch m.currentTab {
	case TabPending:
		if m.pendingView.IsInputMode() {
			line = hint("enter", "confirm") + sep + hint("tab", "category") + sep + hint("esc", "cancel")
		} else {
			line = hint("a", "add") + sep +
				hint("enter", "edit") + sep +
				hint("c", "complete") + sep +
				hint("o", "sort") + sep +
				hint("1/2", "tabs") + sep +
				hint("?", "help")
		}
	case TabDone:
		if m.doneView.IsInputMode() {
			line = hint("enter", "save") + sep + hint("esc", "cancel")
		} else {
			line = hint("enter", "edit comment") + sep +
				hint("r", "reload") + sep +
				hint("1/2", "tabs") + sep +
				hint("?", "help")
		}
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
