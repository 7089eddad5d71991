package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/wisht/internal/category"
	"github.com/dori/wisht/internal/group"
	"github.com/dori/wisht/internal/model"
	"github.com/dori/wisht/internal/store"
	"github.com/dori/wisht/internal/ui/theme"
)

// Messages owned by the pending view

type pendingLoadedMsg struct {
	err error
}

type itemCreatedMsg struct {
	item *model.Item
	err  error
}

type itemUpdatedMsg struct {
	item *model.Item
	err  error
}

// ItemCompletedMsg is exported so the root model can mark the done tab
// stale and refetch it instead of trusting a locally built record
type ItemCompletedMsg struct {
	ID  string
	Err error
}

// PendingView displays the date-grouped pending items of one list
type PendingView struct {
	store    *store.Store
	registry *category.Registry
	width    int
	height   int

	dir     group.Direction
	buckets []group.Bucket
	flat    []model.Item // cursor order, inherited from the buckets
	cursor  int

	adding    bool
	life      Lifecycle
	input     textinput.Model
	comment   textinput.Model
	catChoice string

	statusMsg string
}

// NewPendingView creates the pending tab's view
func NewPendingView(st *store.Store, reg *category.Registry) PendingView {
	ti := textinput.New()
	ti.Placeholder = "What do you want to do?"
	ti.CharLimit = 256

	ci := textinput.New()
	ci.Placeholder = "Completion comment (optional)"
	ci.CharLimit = 512

	return PendingView{
		store:    st,
		registry: reg,
		dir:      group.NewestFirst,
		input:    ti,
		comment:  ci,
	}
}

// Init loads the pending collection
func (v PendingView) Init() tea.Cmd {
	return v.loadPending
}

// IsInputMode returns true when the view is capturing text input
func (v PendingView) IsInputMode() bool {
	return v.adding || v.life.Active()
}

// SetSize updates the view dimensions
func (v PendingView) SetSize(width, height int) PendingView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	v.comment.Width = width - 4
	return v
}

// Reset drops any in-progress interaction, for tab and scope switches
func (v PendingView) Reset() PendingView {
	v.adding = false
	v.life = v.life.Finish()
	v.input.Reset()
	v.input.Blur()
	v.comment.Reset()
	v.comment.Blur()
	return v
}

func (v *PendingView) rebuild() {
	v.buckets = group.ByDate(v.store.Pending(), v.dir)
	v.flat = v.flat[:0]
	for _, b := range v.buckets {
		v.flat = append(v.flat, b.Items...)
	}
	if v.cursor >= len(v.flat) {
		v.cursor = max(0, len(v.flat)-1)
	}
}

func (v PendingView) cursored() *model.Item {
	if v.cursor < 0 || v.cursor >= len(v.flat) {
		return nil
	}
	return &v.flat[v.cursor]
}

// Commands

func (v PendingView) loadPending() tea.Msg {
	return pendingLoadedMsg{err: v.store.LoadPending(context.Background())}
}

func (v PendingView) createItem(title, cat string) tea.Cmd {
	return func() tea.Msg {
		item, err := v.store.Create(context.Background(), title, cat)
		return itemCreatedMsg{item: item, err: err}
	}
}

func (v PendingView) updateItem(id, title, cat string) tea.Cmd {
	return func() tea.Msg {
		item, err := v.store.Update(context.Background(), id, title, cat)
		return itemUpdatedMsg{item: item, err: err}
	}
}

func (v PendingView) completeItem(id, comment string) tea.Cmd {
	return func() tea.Msg {
		err := v.store.Complete(context.Background(), id, comment)
		return ItemCompletedMsg{ID: id, Err: err}
	}
}

// Update handles messages for the pending view
func (v PendingView) Update(msg tea.Msg) (PendingView, tea.Cmd) {
	switch msg := msg.(type) {
	case pendingLoadedMsg:
		if msg.err != nil {
			// Prior state stays on screen; the store already reported
			v.statusMsg = "Couldn't refresh the list"
			return v, nil
		}
		v.rebuild()
		v.statusMsg = ""
		return v, nil

	case itemCreatedMsg:
		if msg.err != nil {
			v.statusMsg = "Couldn't add the item"
			return v, nil
		}
		v.rebuild()
		v.statusMsg = fmt.Sprintf("Added %q", msg.item.Title)
		return v, nil

	case itemUpdatedMsg:
		if msg.err != nil {
			v.statusMsg = "Couldn't save the edit"
			return v, nil
		}
		v.rebuild()
		v.statusMsg = fmt.Sprintf("Saved %q", msg.item.Title)
		return v, nil

	case ItemCompletedMsg:
		if msg.Err != nil {
			v.statusMsg = "Couldn't complete the item"
			return v, nil
		}
		v.rebuild()
		v.statusMsg = "Done! 🎉"
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v PendingView) handleKey(msg tea.KeyMsg) (PendingView, tea.Cmd) {
	if v.adding {
		return v.handleAddKey(msg)
	}

	switch v.life.State() {
	case StateEditing:
		return v.handleEditKey(msg)
	case StateAwaitingComment:
		return v.handleCommentKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.flat)-1 {
			v.cursor++
		}
	case "g":
		v.cursor = 0
	case "G":
		v.cursor = max(0, len(v.flat)-1)

	case "a":
		v.adding = true
		v.catChoice = v.registry.Default()
		v.input.Reset()
		v.input.Focus()
		return v, textinput.Blink

	case "enter":
		if item := v.cursored(); item != nil {
			// Starting an edit displaces any other active buffer
			v.life = v.life.StartEdit(item.ID)
			v.input.Reset()
			v.input.SetValue(item.Title)
			v.input.CursorEnd()
			v.input.Focus()
			v.catChoice = item.Category
			return v, textinput.Blink
		}

	case "c":
		if item := v.cursored(); item != nil {
			v.life = v.life.StartComplete(item.ID)
			v.comment.Reset()
			v.comment.Focus()
			return v, textinput.Blink
		}

	case "o":
		v.dir = v.dir.Toggle()
		v.rebuild()
		v.statusMsg = fmt.Sprintf("Sorted %s", v.dir)

	case "r":
		return v, v.loadPending
	}

	return v, nil
}

func (v PendingView) handleAddKey(msg tea.KeyMsg) (PendingView, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.adding = false
		v.input.Blur()
		return v, nil
	case "tab":
		v.catChoice = v.registry.Next(v.catChoice)
		return v, nil
	case "enter":
		title := v.input.Value()
		if strings.TrimSpace(title) == "" {
			// Empty titles never leave the client; stay in add mode
			return v, nil
		}
		v.adding = false
		v.input.Blur()
		return v, v.createItem(title, v.catChoice)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v PendingView) handleEditKey(msg tea.KeyMsg) (PendingView, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel discards the edit buffer, nothing is persisted
		v.life = v.life.Finish()
		v.input.Blur()
		return v, nil
	case "tab":
		v.catChoice = v.registry.Next(v.catChoice)
		return v, nil
	case "enter":
		title := v.input.Value()
		if strings.TrimSpace(title) == "" {
			return v, nil
		}
		id := v.life.ItemID()
		v.life = v.life.Finish()
		v.input.Blur()
		return v, v.updateItem(id, title, v.catChoice)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v PendingView) handleCommentKey(msg tea.KeyMsg) (PendingView, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Item stays pending
		v.life = v.life.Finish()
		v.comment.Blur()
		return v, nil
	case "enter":
		id := v.life.ItemID()
		comment := v.comment.Value() // may be empty
		v.life = v.life.Finish()
		v.comment.Blur()
		return v, v.completeItem(id, comment)
	}

	var cmd tea.Cmd
	v.comment, cmd = v.comment.Update(msg)
	return v, cmd
}

// View renders the pending tab
func (v PendingView) View() string {
	styles := theme.Current.Styles
	var b strings.Builder

	b.WriteString(styles.DateHeader.Render(fmt.Sprintf("Wish list (%d)", len(v.flat))))
	b.WriteString(styles.Count.Render(fmt.Sprintf("  · %s", v.dir)))
	b.WriteString("\n\n")

	if v.adding {
		b.WriteString(styles.InputLabel.Render("New wish"))
		b.WriteString("\n")
		b.WriteString(v.input.View())
		b.WriteString("\n")
		b.WriteString(styles.Count.Render(fmt.Sprintf("%s %s  (tab to change)", category.Icon(v.catChoice), v.catChoice)))
		b.WriteString("\n\n")
	}

	if len(v.flat) == 0 && !v.adding {
		b.WriteString(styles.ItemNormal.Render("Nothing here yet. Press a to add a wish."))
		b.WriteString("\n")
		if v.statusMsg != "" {
			b.WriteString("\n")
			b.WriteString(styles.Count.Render(v.statusMsg))
		}
		return b.String()
	}

	idx := 0
	for _, bucket := range v.buckets {
		b.WriteString(styles.DateHeader.Render(bucket.Date))
		b.WriteString(styles.Count.Render(fmt.Sprintf(" (%d)", len(bucket.Items))))
		b.WriteString("\n")

		for _, item := range bucket.Items {
			switch {
			case v.life.Targets(StateEditing, item.ID):
				b.WriteString(styles.InputLabel.Render("  edit: "))
				b.WriteString(v.input.View())
				b.WriteString("\n")
				b.WriteString(styles.Count.Render(fmt.Sprintf("        %s %s  (tab to change)", category.Icon(v.catChoice), v.catChoice)))
				b.WriteString("\n")

			case v.life.Targets(StateAwaitingComment, item.ID):
				b.WriteString(v.renderItemLine(item, idx))
				b.WriteString("\n")
				b.WriteString(styles.InputLabel.Render("  done? "))
				b.WriteString(v.comment.View())
				b.WriteString("\n")

			default:
				b.WriteString(v.renderItemLine(item, idx))
				b.WriteString("\n")
			}
			idx++
		}
		b.WriteString("\n")
	}

	if v.statusMsg != "" {
		b.WriteString(styles.Count.Render(v.statusMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (v PendingView) renderItemLine(item model.Item, idx int) string {
	styles := theme.Current.Styles

	line := fmt.Sprintf("%s %s  %s",
		category.Icon(item.Category),
		item.Title,
		styles.ItemTime.Render(item.CreatedAt.Format("15:04")))

	if idx == v.cursor && !v.IsInputMode() {
		return styles.ItemSelected.Render(line)
	}
	return styles.ItemNormal.Render(line)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
