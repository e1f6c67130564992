package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verse-mate/versemate-tui/internal/api"
	"github.com/verse-mate/versemate-tui/internal/bible"
	"github.com/verse-mate/versemate-tui/internal/nav"
	"github.com/verse-mate/versemate-tui/internal/ui/styles"
	"github.com/verse-mate/versemate-tui/pkg/models"
)

type pickerTab int

const (
	tabBooks pickerTab = iota
	tabTopics
)

type pickerMode int

const (
	modeBooks pickerMode = iota
	modeChapters
)

// PickerView lets the user jump to any chapter or topic. Selecting an
// entry emits an open message that the app routes to the matching
// reader.
type PickerView struct {
	client *api.Client

	tab    pickerTab
	mode   pickerMode
	cursor int

	// Chapter selection within a book
	book *models.BookMetadata

	// Topic index, fetched on first use
	topics     []models.TopicListItem
	topicsErr  error
	topicsBusy bool

	// Filter
	filterMode  bool
	filterInput textinput.Model

	width  int
	height int
}

func NewPickerView(client *api.Client) *PickerView {
	filterInput := textinput.New()
	filterInput.Placeholder = "Filter..."
	filterInput.CharLimit = 50
	filterInput.Width = 30

	return &PickerView{
		client:      client,
		filterInput: filterInput,
		width:       80,
		height:      24,
	}
}

// CapturingInput reports whether the filter prompt is consuming raw
// keys.
func (v *PickerView) CapturingInput() bool {
	return v.filterMode
}

type pickerTopicsMsg struct {
	topics []models.TopicListItem
	err    error
}

// Init implements View
func (v *PickerView) Init() tea.Cmd {
	v.mode = modeBooks
	v.cursor = 0
	v.filterMode = false
	v.filterInput.SetValue("")
	v.filterInput.Blur()
	if v.tab == tabTopics && v.topics == nil {
		return v.fetchTopics()
	}
	return nil
}

func (v *PickerView) fetchTopics() tea.Cmd {
	if v.topicsBusy {
		return nil
	}
	v.topicsBusy = true
	return func() tea.Msg {
		topics, err := v.client.GetTopics()
		return pickerTopicsMsg{topics: topics, err: err}
	}
}

// Update implements View
func (v *PickerView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.filterMode {
			return v.updateFilterInput(msg)
		}
		return v.handleKey(msg)
	case pickerTopicsMsg:
		v.topicsBusy = false
		if msg.err != nil {
			v.topicsErr = msg.err
			return v, nil
		}
		v.topics = nav.FlattenTopics(msg.topics)
		v.topicsErr = nil
		return v, nil
	}
	return v, nil
}

func (v *PickerView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "tab":
		v.tab = (v.tab + 1) % 2
		v.mode = modeBooks
		v.cursor = 0
		v.filterInput.SetValue("")
		if v.tab == tabTopics && v.topics == nil {
			return v, v.fetchTopics()
		}
	case "j", "down":
		if v.cursor < v.itemCount()-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g", "home":
		v.cursor = 0
	case "G", "end":
		v.cursor = max(0, v.itemCount()-1)
	case "/":
		v.filterMode = true
		v.filterInput.Focus()
		v.cursor = 0
		return v, textinput.Blink
	case "esc":
		if v.mode == modeChapters {
			v.mode = modeBooks
			v.cursor = 0
			return v, nil
		}
		if v.filterInput.Value() != "" {
			v.filterInput.SetValue("")
			v.cursor = 0
			return v, nil
		}
	case "enter":
		return v.selectCurrent()
	}
	return v, nil
}

func (v *PickerView) updateFilterInput(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.filterMode = false
		v.filterInput.Blur()
		v.filterInput.SetValue("")
	case "enter":
		v.filterMode = false
		v.filterInput.Blur()
	default:
		var cmd tea.Cmd
		v.filterInput, cmd = v.filterInput.Update(msg)
		v.cursor = 0
		return v, cmd
	}
	return v, nil
}

func (v *PickerView) selectCurrent() (View, tea.Cmd) {
	switch {
	case v.tab == tabBooks && v.mode == modeBooks:
		books := v.filteredBooks()
		if v.cursor >= len(books) {
			return v, nil
		}
		b := books[v.cursor]
		v.book = &b
		v.mode = modeChapters
		v.cursor = 0
		v.filterInput.SetValue("")
	case v.tab == tabBooks && v.mode == modeChapters:
		if v.book == nil || v.cursor >= v.book.ChapterCount {
			return v, nil
		}
		pos := models.ChapterPosition{BookID: v.book.ID, ChapterNumber: v.cursor + 1}
		return v, func() tea.Msg { return OpenChapterMsg{Position: pos} }
	case v.tab == tabTopics:
		topics := v.filteredTopics()
		if v.cursor >= len(topics) {
			return v, nil
		}
		t := topics[v.cursor]
		return v, func() tea.Msg { return OpenTopicMsg{Topic: t} }
	}
	return v, nil
}

func (v *PickerView) itemCount() int {
	switch {
	case v.tab == tabBooks && v.mode == modeBooks:
		return len(v.filteredBooks())
	case v.tab == tabBooks && v.mode == modeChapters:
		if v.book == nil {
			return 0
		}
		return v.book.ChapterCount
	default:
		return len(v.filteredTopics())
	}
}

func (v *PickerView) filteredBooks() []models.BookMetadata {
	if v.filterInput.Value() == "" {
		return bible.Books
	}
	q := strings.ToLower(v.filterInput.Value())
	var out []models.BookMetadata
	for _, b := range bible.Books {
		if strings.Contains(strings.ToLower(b.Name), q) {
			out = append(out, b)
		}
	}
	return out
}

func (v *PickerView) filteredTopics() []models.TopicListItem {
	if v.filterInput.Value() == "" {
		return v.topics
	}
	q := strings.ToLower(v.filterInput.Value())
	var out []models.TopicListItem
	for _, t := range v.topics {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

// View implements View
func (v *PickerView) View() string {
	var b strings.Builder

	booksTab := " Books "
	topicsTab := " Topics "
	if v.tab == tabBooks {
		booksTab = styles.ListItemSelected.Render(booksTab)
		topicsTab = styles.MutedText.Render(topicsTab)
	} else {
		booksTab = styles.MutedText.Render(booksTab)
		topicsTab = styles.ListItemSelected.Render(topicsTab)
	}
	b.WriteString(styles.DialogTitle.Render("Go To") + "  " + booksTab + topicsTab + "\n\n")

	switch {
	case v.tab == tabBooks && v.mode == modeBooks:
		v.renderBookList(&b)
	case v.tab == tabBooks && v.mode == modeChapters:
		v.renderChapterList(&b)
	default:
		v.renderTopicList(&b)
	}

	b.WriteString("\n")
	if v.filterMode {
		b.WriteString(styles.HelpKey.Render("/") + v.filterInput.View())
	} else {
		b.WriteString(styles.Help.Render("j/k move • enter select • tab switch • / filter • esc back"))
	}

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
		styles.Dialog.Width(min(64, v.width-4)).Render(b.String()))
}

func (v *PickerView) renderBookList(b *strings.Builder) {
	books := v.filteredBooks()
	offset, limit := v.listWindow(len(books))
	for i := offset; i < limit; i++ {
		bk := books[i]
		line := fmt.Sprintf("%-20s %s · %d ch", bk.Name, bk.Testament, bk.ChapterCount)
		if i == v.cursor {
			b.WriteString(styles.ListItemSelected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(styles.ListItem.Render("  "+line) + "\n")
		}
	}
	if len(books) == 0 {
		b.WriteString(styles.MutedText.Render("  no matches") + "\n")
	}
}

func (v *PickerView) renderChapterList(b *strings.Builder) {
	if v.book == nil {
		return
	}
	b.WriteString(styles.SecondaryText.Render(v.book.Name) + "\n")
	offset, limit := v.listWindow(v.book.ChapterCount)
	for i := offset; i < limit; i++ {
		line := fmt.Sprintf("Chapter %d", i+1)
		if i == v.cursor {
			b.WriteString(styles.ListItemSelected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(styles.ListItem.Render("  "+line) + "\n")
		}
	}
}

func (v *PickerView) renderTopicList(b *strings.Builder) {
	if v.topicsBusy {
		b.WriteString(styles.MutedText.Render("  Loading topics...") + "\n")
		return
	}
	if v.topicsErr != nil {
		b.WriteString(styles.ErrorStyle.Render("Error: "+v.topicsErr.Error()) + "\n")
		return
	}
	topics := v.filteredTopics()
	if len(topics) == 0 {
		b.WriteString(styles.MutedText.Render("  no topics") + "\n")
		return
	}
	offset, limit := v.listWindow(len(topics))
	lastCategory := ""
	if offset > 0 {
		lastCategory = topics[offset-1].Category
	}
	for i := offset; i < limit; i++ {
		t := topics[i]
		if t.Category != lastCategory {
			b.WriteString(styles.CategoryLabel.Render(t.Category) + "\n")
			lastCategory = t.Category
		}
		if i == v.cursor {
			b.WriteString(styles.ListItemSelected.Render("▸ "+t.Name) + "\n")
		} else {
			b.WriteString(styles.ListItem.Render("  "+t.Name) + "\n")
		}
	}
}

// listWindow returns the visible slice bounds keeping the cursor in
// view.
func (v *PickerView) listWindow(total int) (offset, limit int) {
	maxVisible := max(3, v.height-10)
	offset = 0
	if v.cursor >= maxVisible {
		offset = v.cursor - maxVisible + 1
	}
	limit = min(offset+maxVisible, total)
	return offset, limit
}

// SetSize implements View
func (v *PickerView) SetSize(width, height int) {
	v.width = width
	v.height = height
}
