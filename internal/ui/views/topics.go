package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/verse-mate/versemate-tui/internal/api"
	"github.com/verse-mate/versemate-tui/internal/logging"
	"github.com/verse-mate/versemate-tui/internal/nav"
	"github.com/verse-mate/versemate-tui/internal/ui/styles"
	"github.com/verse-mate/versemate-tui/pkg/models"
)

// TopicsView pages through the topic index as a closed loop: stepping
// past the last topic lands on the first and vice versa, so the
// next/previous actions never disable.
type TopicsView struct {
	client     *api.Client
	logger     logging.Logger
	router     nav.Router
	windowSize int

	ordered    []models.TopicListItem
	navStore   *nav.Store[models.TopicListItem]
	controller *nav.Controller[models.TopicListItem]

	// Content
	cache    map[uuid.UUID]*models.TopicContent
	inflight map[uuid.UUID]bool
	lines    []string
	offset   int

	// Jump requested before the topic list arrived
	pendingJump *uuid.UUID

	loading   bool
	err       error
	pulsed    bool
	statusMsg string

	// Explanation panel
	showExplain  bool
	explainCache map[uuid.UUID]*models.Explanation
	explainBusy  bool

	width  int
	height int
}

// NewTopicsView creates the topic reader. The controller is built
// once the topic index has loaded.
func NewTopicsView(client *api.Client, logger logging.Logger, router nav.Router, windowSize int) *TopicsView {
	return &TopicsView{
		client:       client,
		logger:       logger,
		router:       router,
		windowSize:   windowSize,
		cache:        make(map[uuid.UUID]*models.TopicContent),
		inflight:     make(map[uuid.UUID]bool),
		explainCache: make(map[uuid.UUID]*models.Explanation),
		width:        80,
		height:       24,
	}
}

// SetPage implements nav.PagerHandle. The view reads the window from
// the controller every frame, so there is no pager state to move.
func (v *TopicsView) SetPage(int) {}

// SetPageWithoutAnimation implements nav.PagerHandle.
func (v *TopicsView) SetPageWithoutAnimation(int) {}

// Topics returns the flattened topic index, for the picker.
func (v *TopicsView) Topics() []models.TopicListItem {
	return v.ordered
}

// Jump moves the reader to an externally chosen topic.
func (v *TopicsView) Jump(topic models.TopicListItem) tea.Cmd {
	if v.controller == nil {
		id := topic.TopicID
		v.pendingJump = &id
		return nil
	}
	v.navStore.Jump(topic, topic.Name)
	v.offset = 0
	return v.loadVisible()
}

// JumpID queues a jump by topic ID, used when restoring a route
// before the index is available.
func (v *TopicsView) JumpID(id uuid.UUID) tea.Cmd {
	if v.controller != nil {
		for _, t := range v.ordered {
			if t.TopicID == id {
				return v.Jump(t)
			}
		}
		return nil
	}
	v.pendingJump = &id
	return nil
}

// Close releases the pager's pending route sync.
func (v *TopicsView) Close() {
	if v.controller != nil {
		v.controller.Close()
	}
}

// Message types
type topicsLoadedMsg struct {
	topics []models.TopicListItem
	err    error
}

type topicContentLoadedMsg struct {
	id      uuid.UUID
	content *models.TopicContent
	err     error
}

type topicExplanationLoadedMsg struct {
	id          uuid.UUID
	explanation *models.Explanation
	err         error
}

// Init implements View
func (v *TopicsView) Init() tea.Cmd {
	if v.controller != nil {
		clear(v.inflight)
		return v.loadVisible()
	}
	v.loading = true
	return func() tea.Msg {
		topics, err := v.client.GetTopics()
		return topicsLoadedMsg{topics: topics, err: err}
	}
}

// Update implements View
func (v *TopicsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		v.statusMsg = ""
		return v.handleKey(msg)
	case topicsLoadedMsg:
		return v.handleTopicsLoaded(msg)
	case topicContentLoadedMsg:
		return v.handleContentLoaded(msg)
	case topicExplanationLoadedMsg:
		v.explainBusy = false
		if msg.err != nil {
			v.statusMsg = "Explanation unavailable: " + msg.err.Error()
			return v, nil
		}
		v.explainCache[msg.id] = msg.explanation
		return v, nil
	}
	return v, nil
}

func (v *TopicsView) handleTopicsLoaded(msg topicsLoadedMsg) (View, tea.Cmd) {
	v.loading = false
	if msg.err != nil {
		v.err = msg.err
		return v, nil
	}
	v.ordered = nav.FlattenTopics(msg.topics)
	if len(v.ordered) == 0 {
		v.err = nil
		return v, nil
	}

	start := v.ordered[0]
	if v.pendingJump != nil {
		for _, t := range v.ordered {
			if t.TopicID == *v.pendingJump {
				start = t
				break
			}
		}
		v.pendingJump = nil
		// The queued jump resolves before the controller exists, so
		// the route push that normally rides on jump handling runs
		// here.
		v.router.Push(nav.TopicRoutePath(start))
	}

	next, prev := nav.TopicSteppers(v.ordered)
	v.navStore = nav.NewStore(start, start.Name)
	v.controller = nav.NewController(nav.ControllerConfig[models.TopicListItem]{
		Store:       v.navStore,
		WindowSize:  v.windowSize,
		BuildWindow: nav.TopicWindowBuilder(v.ordered),
		Next:        next,
		Prev:        prev,
		RoutePath:   nav.TopicRoutePath,
		DisplayName: func(t models.TopicListItem) string { return t.Name },
		Router:      v.router,
		Haptics:     funcHaptics{fn: func() { v.pulsed = true }},
		Logger:      v.logger,
	})
	v.controller.AttachPager(v)
	return v, v.loadVisible()
}

func (v *TopicsView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	if v.controller == nil {
		if msg.String() == "t" {
			return v, SwitchTo(ViewPicker)
		}
		return v, nil
	}
	switch msg.String() {
	case "j", "down":
		v.scroll(1)
	case "k", "up":
		v.scroll(-1)
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
		v.controller.GoNext()
		v.offset = 0
		return v, v.loadVisible()
	case "p":
		v.controller.GoPrevious()
		v.offset = 0
		return v, v.loadVisible()
	case "e":
		return v, v.toggleExplanation()
	case "esc":
		v.showExplain = false
	case "t":
		return v, SwitchTo(ViewPicker)
	}
	return v, nil
}

func (v *TopicsView) swipe(delta int) tea.Cmd {
	_, ci := v.controller.Window()
	v.controller.BeginSwipe()
	v.controller.PageSettled(ci + delta)
	v.offset = 0
	return v.loadVisible()
}

func (v *TopicsView) loadVisible() tea.Cmd {
	window, ci := v.controller.Window()
	var cmds []tea.Cmd
	order := make([]models.TopicListItem, 0, len(window))
	if ci >= 0 && ci < len(window) {
		order = append(order, window[ci])
	}
	for i, t := range window {
		if i != ci {
			order = append(order, t)
		}
	}
	for _, t := range order {
		if v.cache[t.TopicID] != nil || v.inflight[t.TopicID] {
			continue
		}
		v.inflight[t.TopicID] = true
		cmds = append(cmds, v.loadTopic(t.TopicID))
	}
	if cur, ok := v.controller.Current(); ok {
		if v.cache[cur.TopicID] == nil {
			v.loading = true
		} else {
			v.loading = false
			v.wrapContent()
		}
	}
	return tea.Batch(cmds...)
}

func (v *TopicsView) loadTopic(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		content, err := v.client.GetTopic(id)
		return topicContentLoadedMsg{id: id, content: content, err: err}
	}
}

func (v *TopicsView) handleContentLoaded(msg topicContentLoadedMsg) (View, tea.Cmd) {
	delete(v.inflight, msg.id)
	cur, _ := v.controller.Current()
	if msg.err != nil {
		if msg.id == cur.TopicID {
			v.loading = false
			v.err = msg.err
		}
		v.logger.Debugf("topics: failed to load %s: %v", msg.id, msg.err)
		return v, nil
	}
	v.cache[msg.id] = msg.content
	if msg.id == cur.TopicID {
		v.loading = false
		v.err = nil
		v.wrapContent()
	}
	return v, nil
}

func (v *TopicsView) toggleExplanation() tea.Cmd {
	v.showExplain = !v.showExplain
	if !v.showExplain {
		return nil
	}
	cur, ok := v.controller.Current()
	if !ok {
		return nil
	}
	if v.explainCache[cur.TopicID] != nil || v.explainBusy {
		return nil
	}
	v.explainBusy = true
	id := cur.TopicID
	return func() tea.Msg {
		ex, err := v.client.GetTopicExplanation(id)
		return topicExplanationLoadedMsg{id: id, explanation: ex, err: err}
	}
}

func (v *TopicsView) wrapContent() {
	v.lines = nil
	cur, ok := v.controller.Current()
	if !ok {
		return
	}
	content := v.cache[cur.TopicID]
	if content == nil {
		return
	}
	width := v.width - 6
	var text strings.Builder
	if content.Summary != "" {
		text.WriteString(content.Summary + "\n\n")
	}
	text.WriteString(content.Body)
	v.lines = strings.Split(wordWrap(text.String(), width), "\n")
	if v.offset > max(0, len(v.lines)-v.visibleLines()) {
		v.offset = max(0, len(v.lines)-v.visibleLines())
	}
}

func (v *TopicsView) scroll(delta int) {
	v.offset += delta
	maxOffset := max(0, len(v.lines)-v.visibleLines())
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *TopicsView) visibleLines() int {
	reserved := 4
	if v.showExplain {
		reserved += v.explainHeight()
	}
	return max(1, v.height-reserved)
}

func (v *TopicsView) explainHeight() int {
	return max(4, v.height/3)
}

// View implements View
func (v *TopicsView) View() string {
	if v.controller == nil {
		if v.loading {
			return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
				styles.MutedText.Render("Loading topics..."))
		}
		if v.err != nil {
			return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
				styles.ErrorStyle.Render("Error: "+v.err.Error()))
		}
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No topics available"))
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
		b.WriteString(styles.ReaderContent.Render(v.lines[i]) + "\n")
		shown++
	}
	for ; shown < v.visibleLines(); shown++ {
		b.WriteString("\n")
	}

	if v.showExplain {
		b.WriteString(v.renderExplanation() + "\n")
	}
	b.WriteString(v.renderFooter())
	return b.String()
}

func (v *TopicsView) renderHeader() string {
	cur, _ := v.controller.Current()
	label := cur.Name
	if cur.Category != "" {
		label = cur.Category + " · " + label
	}
	title := styles.ReaderHeader.Render(" " + styles.TruncateText(label, v.width/2) + " ")

	strip := v.renderStrip()
	gap := v.width - lipgloss.Width(title) - lipgloss.Width(strip)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + strip
}

func (v *TopicsView) renderStrip() string {
	window, ci := v.controller.Window()
	parts := make([]string, 0, len(window))
	for i, t := range window {
		label := styles.TruncateText(t.Name, 10)
		if i == ci {
			parts = append(parts, styles.StripCenter.Render("["+label+"]"))
		} else {
			parts = append(parts, styles.StripSlot.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (v *TopicsView) renderExplanation() string {
	cur, _ := v.controller.Current()
	ex := v.explainCache[cur.TopicID]
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

func (v *TopicsView) renderFooter() string {
	if v.statusMsg != "" {
		return styles.FooterBar.Width(v.width).Render(styles.SecondaryText.Render(v.statusMsg))
	}

	pulse := ""
	if v.pulsed {
		pulse = styles.SecondaryText.Render("· ")
		v.pulsed = false
	}

	help := []string{
		pulse + styles.HelpKey.Render("h/l") + styles.Help.Render(" page"),
		styles.HelpKey.Render("n/p") + styles.Help.Render(" topic"),
		styles.HelpKey.Render("j/k") + styles.Help.Render(" scroll"),
		styles.HelpKey.Render("e") + styles.Help.Render(" explain"),
		styles.HelpKey.Render("t") + styles.Help.Render(" go to"),
	}
	return styles.FooterBar.Width(v.width).Render(strings.Join(help, "  "))
}

// SetSize implements View
func (v *TopicsView) SetSize(width, height int) {
	v.width = width
	v.height = height
	if v.controller != nil {
		v.wrapContent()
	}
}
