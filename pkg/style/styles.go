package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Headings
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// Rule listing
var (
	RuleNameStyle = lipgloss.NewStyle().
			Foreground(RuleNameColor).
			Bold(true)

	DisabledStyle = MutedStyle.
			Strikethrough(true)

	ReplacementStyle = lipgloss.NewStyle().
				Foreground(ReplacementColor)

	PatternStyle = lipgloss.NewStyle().
			Foreground(PatternColor)
)

// Markers in front of each listed rule and warning
var (
	EnabledIndicator  = lipgloss.NewStyle().Foreground(EnabledColor).Bold(true).Render("✓")
	DisabledIndicator = MutedStyle.Render("○")
	WarningIndicator  = WarningStyle.Render("!")
)

// Indent pads s by two spaces per level
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
