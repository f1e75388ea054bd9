package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// tagPattern matches one [tag]text[/tag] span. Spans do not nest.
var tagPattern = regexp.MustCompile(`\[([a-z]+)\](.*?)\[/([a-z]+)\]`)

var tagStyles = map[string]lipgloss.Style{
	"title":    TitleStyle,
	"subtitle": SubtitleStyle,
	"muted":    MutedStyle,
}

// Render styles every [tag]text[/tag] span of text. Unknown tags and
// mismatched pairs are left as written.
func Render(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(span string) string {
		m := tagPattern.FindStringSubmatch(span)
		style, ok := tagStyles[m[1]]
		if !ok || m[1] != m[3] {
			return span
		}
		return style.Render(m[2])
	})
}
