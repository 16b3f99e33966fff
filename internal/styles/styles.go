// Package styles defines the shared lipgloss styles for the diff pane.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red
	Info    = lipgloss.Color("#3B82F6") // Blue
	Accent  = lipgloss.Color("#F59E0B") // Amber

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	// Subtle diff backgrounds for syntax-highlighted lines
	DiffAddBg    = lipgloss.Color("#0D2818") // Very subtle dark green
	DiffRemoveBg = lipgloss.Color("#2D1A1A") // Very subtle dark red
)

// Diff line styles
var (
	DiffAdd = lipgloss.NewStyle().
		Foreground(Success)

	DiffRemove = lipgloss.NewStyle().
			Foreground(Error)

	DiffContext = lipgloss.NewStyle().
			Foreground(TextMuted)

	DiffHeader = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	DiffHunk = lipgloss.NewStyle().
			Foreground(Primary)
)

// Word-diff segment styles. Changed segments get a background so the
// changed span stands out inside an already-colored line.
var (
	WordAdd = lipgloss.NewStyle().
		Foreground(Success).
		Background(DiffAddBg).
		Bold(true)

	WordRemove = lipgloss.NewStyle().
			Foreground(Error).
			Background(DiffRemoveBg).
			Bold(true)
)

// Search highlight styles
var (
	MatchHighlight = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(Accent)

	MatchCurrent = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(Success).
			Bold(true)
)

// Chrome styles
var (
	LineNumber = lipgloss.NewStyle().
			Foreground(TextMuted)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgSecondary)

	StatusMode = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	SearchBar = lipgloss.NewStyle().
			Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)
)
