package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verse-mate/versemate-tui/internal/api"
	"github.com/verse-mate/versemate-tui/internal/bible"
	"github.com/verse-mate/versemate-tui/internal/logging"
	"github.com/verse-mate/versemate-tui/internal/nav"
	"github.com/verse-mate/versemate-tui/internal/storage"
	"github.com/verse-mate/versemate-tui/internal/ui/styles"
	"github.com/verse-mate/versemate-tui/pkg/models"
)

// ReaderView displays Bible chapters in a sliding window pager. The
// window holds the current chapter and its neighbors so paging in
// either direction is instant; crossing a book boundary is no
// different from turning a page within one.
type ReaderView struct {
	client *api.Client
	local  *storage.Store
	logger logging.Logger
	books  []models.BookMetadata

	navStore   *nav.Store[models.ChapterPosition]
	controller *nav.Controller[models.ChapterPosition]

	// Content
	cache    map[models.ChapterPosition]*models.ChapterContent
	inflight map[models.ChapterPosition]bool
	lines    []string
	verseAt  []int
	offset   int

	// Annotations for the current chapter
	highlights []models.Highlight

	// Bookmark list overlay
	showMarks  bool
	marks      []models.Bookmark
	markCursor int

	// State
	loading    bool
	err        error
	pulsed     bool
	statusMsg  string
	selectMode bool
	cursor     int

	// Note input
	noteMode  bool
	noteInput string

	// Explanation panel
	showExplain  bool
	explainCache map[models.ChapterPosition]*models.Explanation
	explainBusy  bool

	width  int
	height int
}

type funcHaptics struct{ fn func() }

func (h funcHaptics) Pulse() { h.fn() }

// NewReaderView creates the Bible reader anchored at start.
func NewReaderView(client *api.Client, local *storage.Store, logger logging.Logger, router nav.Router, windowSize int, start models.ChapterPosition) *ReaderView {
	v := &ReaderView{
		client:       client,
		local:        local,
		logger:       logger,
		books:        bible.Books,
		cache:        make(map[models.ChapterPosition]*models.ChapterContent),
		inflight:     make(map[models.ChapterPosition]bool),
		explainCache: make(map[models.ChapterPosition]*models.Explanation),
		cursor:       1,
		width:        80,
		height:       24,
	}

	next, prev := nav.ChapterSteppers(v.books)
	v.navStore = nav.NewStore(start, chapterDisplayName(start))
	v.controller = nav.NewController(nav.ControllerConfig[models.ChapterPosition]{
		Store:       v.navStore,
		WindowSize:  windowSize,
		BuildWindow: nav.ChapterWindowBuilder(v.books),
		Next:        next,
		Prev:        prev,
		RoutePath:   nav.ChapterRoutePath,
		DisplayName: chapterDisplayName,
		Router:      router,
		Haptics:     funcHaptics{fn: func() { v.pulsed = true }},
		Logger:      logger,
	})
	v.controller.AttachPager(v)
	return v
}

func chapterDisplayName(p models.ChapterPosition) string {
	return fmt.Sprintf("%s %d", bible.Name(p.BookID), p.ChapterNumber)
}

// SetPage implements nav.PagerHandle. The view reads the window from
// the controller every frame, so there is no pager state to move.
func (v *ReaderView) SetPage(int) {}

// SetPageWithoutAnimation implements nav.PagerHandle.
func (v *ReaderView) SetPageWithoutAnimation(int) {}

// Jump moves the reader to an externally chosen chapter, e.g. from
// the picker or a restored route.
func (v *ReaderView) Jump(pos models.ChapterPosition) tea.Cmd {
	v.navStore.Jump(pos, chapterDisplayName(pos))
	v.resetScroll()
	return v.loadVisible()
}

// Close releases the pager's pending route sync.
func (v *ReaderView) Close() {
	v.controller.Close()
}

// CapturingInput reports whether a text prompt is consuming raw keys.
func (v *ReaderView) CapturingInput() bool {
	return v.noteMode
}

// Message types
type chapterLoadedMsg struct {
	pos     models.ChapterPosition
	content *models.ChapterContent
	err     error
}

type explanationLoadedMsg struct {
	pos         models.ChapterPosition
	explanation *models.Explanation
	err         error
}

// Init implements View
func (v *ReaderView) Init() tea.Cmd {
	// Responses that arrived while another view was active were
	// dropped, so refetch anything still marked in flight.
	clear(v.inflight)
	return v.loadVisible()
}

// loadVisible fetches every uncached chapter in the pager window, the
// center first so it renders before its neighbors arrive.
func (v *ReaderView) loadVisible() tea.Cmd {
	window, ci := v.controller.Window()
	var cmds []tea.Cmd
	order := make([]models.ChapterPosition, 0, len(window))
	if ci >= 0 && ci < len(window) {
		order = append(order, window[ci])
	}
	for i, pos := range window {
		if i != ci {
			order = append(order, pos)
		}
	}
	for _, pos := range order {
		if v.cache[pos] != nil || v.inflight[pos] {
			continue
		}
		v.inflight[pos] = true
		cmds = append(cmds, v.loadChapter(pos))
	}
	if cur, ok := v.controller.Current(); ok {
		if v.cache[cur] == nil {
			v.loading = true
		} else {
			v.loading = false
			v.wrapContent()
			v.reloadAnnotations()
		}
	}
	return tea.Batch(cmds...)
}

func (v *ReaderView) loadChapter(pos models.ChapterPosition) tea.Cmd {
	return func() tea.Msg {
		content, err := v.client.GetChapter(pos.BookID, pos.ChapterNumber)
		return chapterLoadedMsg{pos: pos, content: content, err: err}
	}
}

func (v *ReaderView) loadExplanation(pos models.ChapterPosition) tea.Cmd {
	return func() tea.Msg {
		ex, err := v.client.GetChapterExplanation(pos.BookID, pos.ChapterNumber)
		return explanationLoadedMsg{pos: pos, explanation: ex, err: err}
	}
}

// Update implements View
func (v *ReaderView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		v.statusMsg = ""
		if v.noteMode {
			return v.updateNoteInput(msg)
		}
		if v.showMarks {
			return v.updateMarks(msg)
		}
		return v.handleKey(msg)
	case chapterLoadedMsg:
		return v.handleChapterLoaded(msg)
	case explanationLoadedMsg:
		v.explainBusy = false
		if msg.err != nil {
			v.statusMsg = "Explanation unavailable: " + msg.err.Error()
			return v, nil
		}
		v.explainCache[msg.pos] = msg.explanation
		return v, nil
	}
	return v, nil
}

func (v *ReaderView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.selectMode {
			v.moveCursor(1)
		} else {
			v.scroll(1)
		}
	case "k", "up":
		if v.selectMode {
			v.moveCursor(-1)
		} else {
			v.scroll(-1)
		}
	case "ctrl+d", "pgdown":
		v.scroll(v.visibleLines() / 2)
	case "ctrl+u", "pgup":
		v.scroll(-v.visibleLines() / 2)
	case " ":
		v.scroll(v.visibleLines() - 2)
	case "g", "home":
		v.offset = 0
	case "G", "end":
		v.offset = max(0, len(v.lines)-v.visibleLines())
	case "l", "right":
		return v, v.swipe(1)
	case "h", "left":
		return v, v.swipe(-1)
	case "n":
		return v, v.floatingStep(true)
	case "p":
		return v, v.floatingStep(false)
	case "v":
		v.selectMode = !v.selectMode
		if v.selectMode {
			v.cursor = v.firstVisibleVerse()
		}
	case "esc":
		if v.showExplain {
			v.showExplain = false
		} else {
			v.selectMode = false
		}
	case "B":
		return v, v.addBookmark()
	case "b":
		v.openMarks()
	case "H":
		return v, v.addHighlight()
	case "N":
		v.noteMode = true
		v.noteInput = ""
	case "e":
		return v, v.toggleExplanation()
	case "t":
		return v, SwitchTo(ViewPicker)
	}
	return v, nil
}

// swipe simulates one page drag: delta is +1 toward the next chapter,
// -1 toward the previous one.
func (v *ReaderView) swipe(delta int) tea.Cmd {
	if delta > 0 && !v.controller.CanGoNext() {
		v.statusMsg = "End of the Bible"
		return nil
	}
	if delta < 0 && !v.controller.CanGoPrevious() {
		v.statusMsg = "Beginning of the Bible"
		return nil
	}
	_, ci := v.controller.Window()
	v.controller.BeginSwipe()
	v.controller.PageSettled(ci + delta)
	v.resetScroll()
	return v.loadVisible()
}

// floatingStep handles the next/previous floating actions, which go
// through the external jump path rather than the pager.
func (v *ReaderView) floatingStep(forward bool) tea.Cmd {
	if forward {
		if !v.controller.CanGoNext() {
			v.statusMsg = "End of the Bible"
			return nil
		}
		v.controller.GoNext()
	} else {
		if !v.controller.CanGoPrevious() {
			v.statusMsg = "Beginning of the Bible"
			return nil
		}
		v.controller.GoPrevious()
	}
	v.resetScroll()
	return v.loadVisible()
}

func (v *ReaderView) resetScroll() {
	v.offset = 0
	v.cursor = 1
	v.selectMode = false
}

func (v *ReaderView) handleChapterLoaded(msg chapterLoadedMsg) (View, tea.Cmd) {
	delete(v.inflight, msg.pos)
	cur, _ := v.controller.Current()
	if msg.err != nil {
		if msg.pos == cur {
			v.loading = false
			v.err = msg.err
		}
		v.logger.Debugf("reader: failed to load %s: %v", chapterDisplayName(msg.pos), msg.err)
		return v, nil
	}
	v.cache[msg.pos] = msg.content
	if msg.pos == cur {
		v.loading = false
		v.err = nil
		v.wrapContent()
		v.reloadAnnotations()
	}
	return v, nil
}

func (v *ReaderView) addBookmark() tea.Cmd {
	cur, ok := v.controller.Current()
	if !ok {
		return nil
	}
	verse := 0
	if v.selectMode {
		verse = v.cursor
	}
	id, err := v.local.AddBookmark(cur.BookID, cur.ChapterNumber, verse, "")
	if err != nil {
		return SendError(err)
	}
	if err := v.local.EnqueueOp(storage.EntityBookmark, id); err != nil {
		return SendError(err)
	}
	if verse > 0 {
		v.statusMsg = fmt.Sprintf("Bookmarked %s:%d", chapterDisplayName(cur), verse)
	} else {
		v.statusMsg = "Bookmarked " + chapterDisplayName(cur)
	}
	return nil
}

func (v *ReaderView) addHighlight() tea.Cmd {
	if !v.selectMode {
		v.statusMsg = "Select a verse first (v)"
		return nil
	}
	cur, ok := v.controller.Current()
	if !ok {
		return nil
	}
	id, err := v.local.AddHighlight(cur.BookID, cur.ChapterNumber, v.cursor, v.cursor, "yellow")
	if err != nil {
		return SendError(err)
	}
	if err := v.local.EnqueueOp(storage.EntityHighlight, id); err != nil {
		return SendError(err)
	}
	v.reloadAnnotations()
	v.statusMsg = fmt.Sprintf("Highlighted %s:%d", chapterDisplayName(cur), v.cursor)
	return nil
}

func (v *ReaderView) openMarks() {
	marks, err := v.local.AllBookmarks()
	if err != nil {
		v.statusMsg = "Failed to load bookmarks"
		v.logger.Debugf("reader: failed to load bookmarks: %v", err)
		return
	}
	v.marks = marks
	v.markCursor = 0
	v.showMarks = true
}

// updateMarks handles the bookmark list overlay
func (v *ReaderView) updateMarks(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		v.showMarks = false
	case "j", "down":
		if v.markCursor < len(v.marks)-1 {
			v.markCursor++
		}
	case "k", "up":
		if v.markCursor > 0 {
			v.markCursor--
		}
	case "g", "home":
		v.markCursor = 0
	case "G", "end":
		if len(v.marks) > 0 {
			v.markCursor = len(v.marks) - 1
		}
	case "enter":
		if v.markCursor < len(v.marks) {
			bm := v.marks[v.markCursor]
			v.showMarks = false
			return v, v.Jump(models.ChapterPosition{BookID: bm.BookID, ChapterNumber: bm.Chapter})
		}
	case "d", "x":
		if v.markCursor < len(v.marks) {
			if err := v.local.DeleteBookmark(v.marks[v.markCursor].ID); err != nil {
				return v, SendError(err)
			}
			v.marks = append(v.marks[:v.markCursor], v.marks[v.markCursor+1:]...)
			if v.markCursor >= len(v.marks) && v.markCursor > 0 {
				v.markCursor--
			}
		}
	}
	return v, nil
}

func (v *ReaderView) updateNoteInput(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.noteMode = false
		v.noteInput = ""
	case "enter":
		v.noteMode = false
		body := strings.TrimSpace(v.noteInput)
		v.noteInput = ""
		if body == "" {
			return v, nil
		}
		cur, ok := v.controller.Current()
		if !ok {
			return v, nil
		}
		id, err := v.local.AddNote(cur.BookID, cur.ChapterNumber, body)
		if err != nil {
			return v, SendError(err)
		}
		if err := v.local.EnqueueOp(storage.EntityNote, id); err != nil {
			return v, SendError(err)
		}
		v.statusMsg = "Note saved"
	case "backspace":
		if len(v.noteInput) > 0 {
			runes := []rune(v.noteInput)
			v.noteInput = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			v.noteInput += msg.String()
		}
	}
	return v, nil
}

func (v *ReaderView) toggleExplanation() tea.Cmd {
	v.showExplain = !v.showExplain
	if !v.showExplain {
		return nil
	}
	cur, ok := v.controller.Current()
	if !ok {
		return nil
	}
	if v.explainCache[cur] != nil || v.explainBusy {
		return nil
	}
	v.explainBusy = true
	return v.loadExplanation(cur)
}

func (v *ReaderView) reloadAnnotations() {
	cur, ok := v.controller.Current()
	if !ok {
		return
	}
	hs, err := v.local.HighlightsForChapter(cur.BookID, cur.ChapterNumber)
	if err != nil {
		v.logger.Debugf("reader: failed to load highlights: %v", err)
		return
	}
	v.highlights = hs
}

// wrapContent flows the current chapter's verses into display lines,
// remembering which verse each line belongs to.
func (v *ReaderView) wrapContent() {
	v.lines = nil
	v.verseAt = nil
	cur, ok := v.controller.Current()
	if !ok {
		return
	}
	content := v.cache[cur]
	if content == nil {
		return
	}
	maxWidth := v.width - 8
	if maxWidth < 20 {
		maxWidth = 20
	}
	for _, verse := range content.Verses {
		prefix := fmt.Sprintf("%3d ", verse.Number)
		indent := strings.Repeat(" ", len(prefix))
		words := strings.Fields(verse.Text)
		line := prefix
		for _, word := range words {
			if len(line)+1+len(word) > maxWidth && len(line) > len(indent) {
				v.lines = append(v.lines, line)
				v.verseAt = append(v.verseAt, verse.Number)
				line = indent
			}
			if strings.HasSuffix(line, " ") || line == prefix {
				line += word
			} else {
				line += " " + word
			}
		}
		v.lines = append(v.lines, line)
		v.verseAt = append(v.verseAt, verse.Number)
	}
	if v.offset > max(0, len(v.lines)-v.visibleLines()) {
		v.offset = max(0, len(v.lines)-v.visibleLines())
	}
}

func (v *ReaderView) scroll(delta int) {
	v.offset += delta
	maxOffset := max(0, len(v.lines)-v.visibleLines())
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *ReaderView) moveCursor(delta int) {
	cur, ok := v.controller.Current()
	if !ok {
		return
	}
	content := v.cache[cur]
	if content == nil || len(content.Verses) == 0 {
		return
	}
	last := content.Verses[len(content.Verses)-1].Number
	v.cursor += delta
	if v.cursor < 1 {
		v.cursor = 1
	}
	if v.cursor > last {
		v.cursor = last
	}
	v.scrollCursorIntoView()
}

func (v *ReaderView) scrollCursorIntoView() {
	for i, verse := range v.verseAt {
		if verse == v.cursor {
			if i < v.offset {
				v.offset = i
			}
			if i >= v.offset+v.visibleLines() {
				v.offset = i - v.visibleLines() + 1
			}
			return
		}
	}
}

func (v *ReaderView) firstVisibleVerse() int {
	if v.offset < len(v.verseAt) {
		return v.verseAt[v.offset]
	}
	return 1
}

func (v *ReaderView) visibleLines() int {
	reserved := 4
	if v.showExplain {
		reserved += v.explainHeight()
	}
	return max(1, v.height-reserved)
}

func (v *ReaderView) explainHeight() int {
	return max(4, v.height/3)
}

func (v *ReaderView) isHighlighted(verse int) bool {
	for _, h := range v.highlights {
		if verse >= h.VerseStart && verse <= h.VerseEnd {
			return true
		}
	}
	return false
}

// View implements View
func (v *ReaderView) View() string {
	if v.showMarks {
		return v.renderMarks()
	}

	var b strings.Builder
	b.WriteString(v.renderHeader() + "\n")

	if v.loading {
		b.WriteString(lipgloss.Place(v.width, v.visibleLines(), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("Loading...")))
		b.WriteString("\n" + v.renderFooter())
		return b.String()
	}
	if v.err != nil {
		b.WriteString(lipgloss.Place(v.width, v.visibleLines(), lipgloss.Center, lipgloss.Center,
			styles.ErrorStyle.Render("Error: "+v.err.Error())))
		b.WriteString("\n" + v.renderFooter())
		return b.String()
	}

	shown := 0
	for i := v.offset; i < min(v.offset+v.visibleLines(), len(v.lines)); i++ {
		line := v.lines[i]
		verse := v.verseAt[i]
		switch {
		case v.selectMode && verse == v.cursor:
			line = styles.VerseSelected.Render(line)
		case v.isHighlighted(verse):
			line = styles.HighlightedVerse.Render(line)
		}
		b.WriteString(styles.ReaderContent.Render(line) + "\n")
		shown++
	}
	for ; shown < v.visibleLines(); shown++ {
		b.WriteString("\n")
	}

	if v.showExplain {
		b.WriteString(v.renderExplanation() + "\n")
	}
	if v.noteMode {
		b.WriteString(styles.HelpKey.Render("note: ") + v.noteInput + "_")
	} else {
		b.WriteString(v.renderFooter())
	}
	return b.String()
}

func (v *ReaderView) renderHeader() string {
	_, name := v.navStore.Current()
	title := styles.ReaderHeader.Render(" " + styles.TruncateText(name, v.width/2) + " ")

	strip := v.renderStrip()
	gap := v.width - lipgloss.Width(title) - lipgloss.Width(strip)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + strip
}

// renderStrip shows the loaded pager slots with the center marked.
func (v *ReaderView) renderStrip() string {
	window, ci := v.controller.Window()
	parts := make([]string, 0, len(window))
	for i, pos := range window {
		label := fmt.Sprintf("%s %d", abbrevBook(pos.BookID), pos.ChapterNumber)
		if i == ci {
			parts = append(parts, styles.StripCenter.Render("["+label+"]"))
		} else {
			parts = append(parts, styles.StripSlot.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func abbrevBook(bookID int) string {
	name := bible.Name(bookID)
	runes := []rune(name)
	if len(runes) <= 3 {
		return name
	}
	return string(runes[:3])
}

// renderMarks renders the bookmark list overlay
func (v *ReaderView) renderMarks() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Bookmarks") + "\n\n")

	if len(v.marks) == 0 {
		b.WriteString(styles.MutedText.Render("No bookmarks yet.\n\nPress B to add one."))
	} else {
		maxVisible := max(3, v.height-10)
		offset := 0
		if v.markCursor >= maxVisible {
			offset = v.markCursor - maxVisible + 1
		}
		for i := offset; i < min(offset+maxVisible, len(v.marks)); i++ {
			bm := v.marks[i]
			label := chapterDisplayName(models.ChapterPosition{BookID: bm.BookID, ChapterNumber: bm.Chapter})
			if bm.Verse > 0 {
				label = fmt.Sprintf("%s:%d", label, bm.Verse)
			}
			if i == v.markCursor {
				b.WriteString(styles.ListItemSelected.Render("▸ "+label) + "\n")
			} else {
				b.WriteString(styles.ListItem.Render("  "+label) + "\n")
			}
		}
	}

	b.WriteString("\n" + styles.Help.Render("j/k navigate • enter go • d delete • esc close"))

	dialog := styles.Dialog.Width(min(50, v.width-4)).Render(b.String())
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, dialog)
}

func (v *ReaderView) renderExplanation() string {
	cur, _ := v.controller.Current()
	ex := v.explainCache[cur]
	title := styles.PanelTitle.Render("Explanation")
	body := styles.MutedText.Render("Loading...")
	if ex != nil {
		body = ex.Body
	}
	height := v.explainHeight()
	lines := strings.Split(wordWrap(body, v.width-4), "\n")
	if len(lines) > height-1 {
		lines = lines[:height-1]
	}
	return styles.Panel.Render(title + "\n" + strings.Join(lines, "\n"))
}

func (v *ReaderView) renderFooter() string {
	if v.statusMsg != "" {
		return styles.FooterBar.Width(v.width).Render(styles.SecondaryText.Render(v.statusMsg))
	}

	prevKey := styles.HelpKey.Render("h")
	nextKey := styles.HelpKey.Render("l")
	if !v.controller.CanGoPrevious() {
		prevKey = styles.MutedText.Render("h")
	}
	if !v.controller.CanGoNext() {
		nextKey = styles.MutedText.Render("l")
	}

	pulse := ""
	if v.pulsed {
		pulse = styles.SecondaryText.Render("· ")
		v.pulsed = false
	}

	help := []string{
		pulse + prevKey + "/" + nextKey + styles.Help.Render(" page"),
		styles.HelpKey.Render("n/p") + styles.Help.Render(" chapter"),
		styles.HelpKey.Render("j/k") + styles.Help.Render(" scroll"),
		styles.HelpKey.Render("v") + styles.Help.Render(" verse"),
		styles.HelpKey.Render("b/B/H/N") + styles.Help.Render(" marks"),
		styles.HelpKey.Render("e") + styles.Help.Render(" explain"),
		styles.HelpKey.Render("t") + styles.Help.Render(" go to"),
	}
	return styles.FooterBar.Width(v.width).Render(strings.Join(help, "  "))
}

// SetSize implements View
func (v *ReaderView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.wrapContent()
}

func wordWrap(s string, width int) string {
	if width < 10 {
		width = 10
	}
	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > width {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
