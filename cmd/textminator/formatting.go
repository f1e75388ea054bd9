package textminator

import (
	"os"
	"strings"
	"sync"
	"text/template"

	"github.com/gpak-tools/textminator/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var templateFuncsOnce sync.Once

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !ui.IsTerminal(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	upper := strings.ToUpper(s)
	if !ui.IsTerminal(os.Stdout) {
		return upper
	}
	return pterm.Bold.Sprint(upper)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates.
// Cobra keeps them globally, so they are registered once per process.
func initTemplateFormatting() {
	templateFuncsOnce.Do(func() {
		cobra.AddTemplateFuncs(template.FuncMap{
			"bold":      formatBold,
			"upper":     formatUpper,
			"boldUpper": formatBoldUpper,
		})
	})
}
