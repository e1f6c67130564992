package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	Background = lipgloss.Color("#1F2937") // Dark gray
	Foreground = lipgloss.Color("#F9FAFB") // Light gray
	Border     = lipgloss.Color("#374151") // Gray border

	// Title bar
	TitleBar = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Padding(0, 1).
			Bold(true)

	// Status bar at bottom
	StatusBar = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted)

	HelpKey = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	SecondaryText = lipgloss.NewStyle().
			Foreground(Secondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true).
			Padding(0, 1)

	// List styles
	ListItem = lipgloss.NewStyle().
			Foreground(Foreground).
			Padding(0, 2)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Primary).
				Padding(0, 2).
				Bold(true)

	ListItemDimmed = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2)

	// Reader styles
	ReaderContent = lipgloss.NewStyle().
			Foreground(Foreground).
			Padding(0, 2)

	ReaderHeader = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Padding(0, 1).
			Bold(true)

	VerseNumber = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	VerseSelected = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Border).
			Bold(true)

	HighlightedVerse = lipgloss.NewStyle().
				Background(lipgloss.Color("#78350F")).
				Foreground(Foreground)

	// Window strip showing the loaded pager slots
	StripSlot = lipgloss.NewStyle().
			Foreground(Muted)

	StripCenter = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Dialog/Modal styles
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Explanation panel
	Panel = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Secondary).
		Padding(0, 1)

	PanelTitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Footer bar
	FooterBar = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	CategoryLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// ApplyTheme adjusts the shared palette for the named theme. Unknown
// names leave the default dark palette in place.
func ApplyTheme(name string) {
	switch name {
	case "light":
		Background = lipgloss.Color("#F9FAFB")
		Foreground = lipgloss.Color("#111827")
		Muted = lipgloss.Color("#9CA3AF")
		Border = lipgloss.Color("#D1D5DB")
	case "sepia":
		Background = lipgloss.Color("#F4ECD8")
		Foreground = lipgloss.Color("#5B4636")
		Muted = lipgloss.Color("#A89884")
		Border = lipgloss.Color("#D8C9A3")
	default:
		return
	}
	rebind()
}

// rebind refreshes the styles that captured palette colors at init.
func rebind() {
	ReaderContent = ReaderContent.Foreground(Foreground)
	ListItem = ListItem.Foreground(Foreground)
	ListItemDimmed = ListItemDimmed.Foreground(Muted)
	MutedText = MutedText.Foreground(Muted)
	Help = Help.Foreground(Muted)
	StatusBar = StatusBar.Foreground(Muted)
	FooterBar = FooterBar.Foreground(Muted)
	VerseSelected = VerseSelected.Background(Border).Foreground(Foreground)
}

// TruncateText shortens s to at most maxWidth runes, appending an
// ellipsis when it was cut.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-1]) + "…"
}
