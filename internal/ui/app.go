package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verse-mate/versemate-tui/internal/api"
	"github.com/verse-mate/versemate-tui/internal/bible"
	"github.com/verse-mate/versemate-tui/internal/config"
	"github.com/verse-mate/versemate-tui/internal/logging"
	"github.com/verse-mate/versemate-tui/internal/storage"
	"github.com/verse-mate/versemate-tui/internal/ui/styles"
	"github.com/verse-mate/versemate-tui/internal/ui/views"
	"github.com/verse-mate/versemate-tui/pkg/models"
)

// App is the main application model
type App struct {
	config *config.Config
	client *api.Client
	local  *storage.Store
	logger logging.Logger
	router *Router
	keys   KeyMap

	currentView views.ViewType
	prevView    views.ViewType

	width  int
	height int

	bibleView  *views.ReaderView
	topicsView *views.TopicsView
	pickerView *views.PickerView

	err      error
	showHelp bool
}

// capturer is implemented by views that consume raw key input, so
// global bindings like q must stand down.
type capturer interface {
	CapturingInput() bool
}

// NewApp creates a new application instance. The last saved route
// decides which reader opens and where it is anchored.
func NewApp(cfg *config.Config, client *api.Client, local *storage.Store, logger logging.Logger) *App {
	router := NewRouter(local, logger)

	start := models.ChapterPosition{BookID: 1, ChapterNumber: 1}
	current := views.ViewBible

	app := &App{
		config:      cfg,
		client:      client,
		local:       local,
		logger:      logger,
		router:      router,
		keys:        DefaultKeyMap(),
		currentView: current,
		width:       80,
		height:      24,
	}

	app.topicsView = views.NewTopicsView(client, logger, router, cfg.WindowSize)
	app.pickerView = views.NewPickerView(client)

	if lastRoute, err := local.LastRoute(); err == nil && lastRoute != "" {
		if pos, topicID, isTopic, ok := ParseRoute(lastRoute); ok {
			if isTopic {
				app.currentView = views.ViewTopics
				app.topicsView.JumpID(topicID)
			} else if bible.ByID(pos.BookID) != nil {
				start = pos
			}
		}
	}

	app.bibleView = views.NewReaderView(client, local, logger, router, cfg.WindowSize, start)
	return app
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.getCurrentView().Init(),
		tea.SetWindowTitle("versemate"),
	)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.bibleView.SetSize(msg.Width, msg.Height)
		a.topicsView.SetSize(msg.Width, msg.Height)
		a.pickerView.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if !a.inputActive() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, a.quit()

			case key.Matches(msg, a.keys.Help):
				a.showHelp = !a.showHelp
				return a, nil

			case key.Matches(msg, a.keys.Bible):
				if a.currentView != views.ViewBible {
					return a.switchView(views.ViewBible)
				}
				return a, nil

			case key.Matches(msg, a.keys.Topics):
				if a.currentView != views.ViewTopics {
					return a.switchView(views.ViewTopics)
				}
				return a, nil

			case key.Matches(msg, a.keys.Escape):
				if a.showHelp {
					a.showHelp = false
					return a, nil
				}
				if a.currentView == views.ViewPicker {
					return a.switchView(a.prevView)
				}
			}
		} else if msg.String() == "ctrl+c" {
			return a, a.quit()
		}

	case views.OpenChapterMsg:
		// The jump handler pushes the route once the jump lands.
		cmd := a.bibleView.Jump(msg.Position)
		model, switchCmd := a.switchView(views.ViewBible)
		return model, tea.Batch(cmd, switchCmd)

	case views.OpenTopicMsg:
		cmd := a.topicsView.Jump(msg.Topic)
		model, switchCmd := a.switchView(views.ViewTopics)
		return model, tea.Batch(cmd, switchCmd)

	case views.ErrorMsg:
		a.err = msg.Err
		return a, nil

	case views.ClearErrorMsg:
		a.err = nil
		return a, nil

	case views.SwitchViewMsg:
		return a.switchView(msg.View)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.currentView {
	case views.ViewBible:
		updated, c := a.bibleView.Update(msg)
		a.bibleView = updated.(*views.ReaderView)
		cmd = c
	case views.ViewTopics:
		updated, c := a.topicsView.Update(msg)
		a.topicsView = updated.(*views.TopicsView)
		cmd = c
	case views.ViewPicker:
		updated, c := a.pickerView.Update(msg)
		a.pickerView = updated.(*views.PickerView)
		cmd = c
	}
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// quit flushes pending route syncs before stopping the program.
func (a *App) quit() tea.Cmd {
	a.bibleView.Close()
	a.topicsView.Close()
	return tea.Quit
}

// inputActive reports whether the current view is consuming raw keys.
func (a *App) inputActive() bool {
	if c, ok := a.getCurrentView().(capturer); ok {
		return c.CapturingInput()
	}
	return false
}

// View implements tea.Model
func (a *App) View() string {
	var content string
	switch a.currentView {
	case views.ViewBible:
		content = a.bibleView.View()
	case views.ViewTopics:
		content = a.topicsView.View()
	case views.ViewPicker:
		content = a.pickerView.View()
	default:
		content = "Unknown view"
	}

	if a.err != nil {
		errorBar := styles.ErrorStyle.Render("Error: " + a.err.Error())
		content = lipgloss.JoinVertical(lipgloss.Left, content, errorBar)
	}

	if a.showHelp {
		content = a.renderHelp()
	}

	return content
}

// switchView changes the current view and initializes it
func (a *App) switchView(view views.ViewType) (*App, tea.Cmd) {
	a.prevView = a.currentView
	a.currentView = view
	a.err = nil
	return a, a.getCurrentView().Init()
}

// getCurrentView returns the current view model
func (a *App) getCurrentView() views.View {
	switch a.currentView {
	case views.ViewTopics:
		return a.topicsView
	case views.ViewPicker:
		return a.pickerView
	default:
		return a.bibleView
	}
}

// renderHelp renders the help overlay
func (a *App) renderHelp() string {
	help := styles.Dialog.Width(60).Render(
		styles.DialogTitle.Render("Keyboard Shortcuts") + "\n\n" +
			styles.HelpKey.Render("Paging") + "\n" +
			"  h/l     Previous/next page\n" +
			"  n/p     Next/previous chapter or topic\n\n" +
			styles.HelpKey.Render("Reading") + "\n" +
			"  j/k     Scroll down/up\n" +
			"  Ctrl+d  Half page down\n" +
			"  Ctrl+u  Half page up\n" +
			"  g/G     Top/bottom\n" +
			"  e       Toggle explanation panel\n\n" +
			styles.HelpKey.Render("Annotations") + "\n" +
			"  v       Verse select mode\n" +
			"  b       List bookmarks\n" +
			"  B       Bookmark chapter or verse\n" +
			"  H       Highlight selected verse\n" +
			"  N       Add a note\n\n" +
			styles.HelpKey.Render("Navigation") + "\n" +
			"  t       Go to book/chapter or topic\n" +
			"  1/2     Bible / Topics\n" +
			"  Tab     Switch picker tabs\n\n" +
			styles.HelpKey.Render("General") + "\n" +
			"  q       Quit\n" +
			"  Esc     Back/close\n" +
			"  ?       Toggle help\n",
	)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		help,
	)
}
