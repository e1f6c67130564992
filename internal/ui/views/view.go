package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verse-mate/versemate-tui/pkg/models"
)

// ViewType represents different screens in the application
type ViewType int

const (
	ViewBible ViewType = iota
	ViewTopics
	ViewPicker
)

// String returns the name of the view
func (v ViewType) String() string {
	switch v {
	case ViewBible:
		return "Bible"
	case ViewTopics:
		return "Topics"
	case ViewPicker:
		return "Go To"
	default:
		return "Unknown"
	}
}

// View is the interface that all views must implement
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Message types for inter-view communication

// OpenChapterMsg is sent when a chapter is selected in the picker
type OpenChapterMsg struct {
	Position models.ChapterPosition
}

// OpenTopicMsg is sent when a topic is selected in the picker
type OpenTopicMsg struct {
	Topic models.TopicListItem
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the current error
type ClearErrorMsg struct{}

// SwitchViewMsg requests a view switch
type SwitchViewMsg struct {
	View ViewType
}

// SendError creates an error message command
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// SwitchTo creates a command to switch views
func SwitchTo(view ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: view}
	}
}
