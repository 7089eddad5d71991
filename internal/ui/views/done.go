package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/wisht/internal/category"
	"github.com/dori/wisht/internal/model"
	"github.com/dori/wisht/internal/store"
	"github.com/dori/wisht/internal/ui/theme"
)

type doneLoadedMsg struct {
	err error
}

type commentUpdatedMsg struct {
	item *model.Item
	err  error
}

// DoneView displays the completed items of one list and lets their
// completion comments be edited
type DoneView struct {
	store  *store.Store
	width  int
	height int

	items  []model.Item
	cursor int

	life    Lifecycle
	comment textinput.Model

	statusMsg string
}

// NewDoneView creates the done tab's view
func NewDoneView(st *store.Store) DoneView {
	ci := textinput.New()
	ci.Placeholder = "Comment"
	ci.CharLimit = 512

	return DoneView{
		store:   st,
		comment: ci,
	}
}

// Init loads the done collection. Called on every switch to this tab so
// the view always reflects server-assigned completion timestamps.
func (v DoneView) Init() tea.Cmd {
	return v.loadDone
}

// IsInputMode returns true when the view is capturing text input
func (v DoneView) IsInputMode() bool {
	return v.life.Active()
}

// SetSize updates the view dimensions
func (v DoneView) SetSize(width, height int) DoneView {
	v.width = width
	v.height = height
	v.comment.Width = width - 4
	return v
}

// Reset drops any in-progress interaction, for tab and scope switches
func (v DoneView) Reset() DoneView {
	v.life = v.life.Finish()
	v.comment.Reset()
	v.comment.Blur()
	return v
}

func (v *DoneView) rebuild() {
	v.items = v.store.Done()
	if v.cursor >= len(v.items) {
		v.cursor = max(0, len(v.items)-1)
	}
}

func (v DoneView) cursored() *model.Item {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return nil
	}
	return &v.items[v.cursor]
}

func (v DoneView) loadDone() tea.Msg {
	return doneLoadedMsg{err: v.store.LoadDone(context.Background())}
}

func (v DoneView) updateComment(id, comment string) tea.Cmd {
	return func() tea.Msg {
		item, err := v.store.UpdateComment(context.Background(), id, comment)
		return commentUpdatedMsg{item: item, err: err}
	}
}

// Update handles messages for the done view
func (v DoneView) Update(msg tea.Msg) (DoneView, tea.Cmd) {
	switch msg := msg.(type) {
	case doneLoadedMsg:
		if msg.err != nil {
			v.statusMsg = "Couldn't refresh the list"
			return v, nil
		}
		v.rebuild()
		v.statusMsg = ""
		return v, nil

	case commentUpdatedMsg:
		if msg.err != nil {
			v.statusMsg = "Couldn't save the comment"
			return v, nil
		}
		v.rebuild()
		v.statusMsg = "Comment saved"
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v DoneView) handleKey(msg tea.KeyMsg) (DoneView, tea.Cmd) {
	if v.life.State() == StateEditingDoneComment {
		switch msg.String() {
		case "esc":
			v.life = v.life.Finish()
			v.comment.Blur()
			return v, nil
		case "enter":
			id := v.life.ItemID()
			comment := v.comment.Value()
			v.life = v.life.Finish()
			v.comment.Blur()
			return v, v.updateComment(id, comment)
		}

		var cmd tea.Cmd
		v.comment, cmd = v.comment.Update(msg)
		return v, cmd
	}

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case "g":
		v.cursor = 0
	case "G":
		v.cursor = max(0, len(v.items)-1)

	case "enter":
		if item := v.cursored(); item != nil {
			v.life = v.life.StartCommentEdit(item.ID)
			v.comment.Reset()
			v.comment.SetValue(item.Comment)
			v.comment.CursorEnd()
			v.comment.Focus()
			return v, textinput.Blink
		}

	case "r":
		return v, v.loadDone
	}

	return v, nil
}

// View renders the done tab
func (v DoneView) View() string {
	styles := theme.Current.Styles
	var b strings.Builder

	b.WriteString(styles.DateHeader.Render(fmt.Sprintf("Done (%d)", len(v.items))))
	b.WriteString("\n\n")

	if len(v.items) == 0 {
		b.WriteString(styles.ItemNormal.Render("Nothing done yet. Complete a wish on the Wishes tab."))
		b.WriteString("\n")
		if v.statusMsg != "" {
			b.WriteString("\n")
			b.WriteString(styles.Count.Render(v.statusMsg))
		}
		return b.String()
	}

	for i, item := range v.items {
		line := fmt.Sprintf("%s %s", category.Icon(item.Category), item.Title)
		if item.CompletedAt != nil {
			line += "  " + styles.ItemTime.Render(item.CompletedAt.Format("2006/01/02 15:04"))
		}

		if i == v.cursor && !v.IsInputMode() {
			b.WriteString(styles.ItemSelected.Render(line))
		} else {
			b.WriteString(styles.ItemDone.Render(line))
		}
		b.WriteString("\n")

		if v.life.Targets(StateEditingDoneComment, item.ID) {
			b.WriteString(styles.InputLabel.Render("    comment: "))
			b.WriteString(v.comment.View())
		} else if item.Comment != "" {
			b.WriteString(styles.Comment.Render(item.Comment))
		} else {
			b.WriteString(styles.NoComment.Render("no comment"))
		}
		b.WriteString("\n")
	}

	if v.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.Count.Render(v.statusMsg))
	}

	return b.String()
}
