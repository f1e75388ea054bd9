package style

import (
	"fmt"
	"strings"

	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/gpak-tools/textminator/pkg/types"
	"github.com/gpak-tools/textminator/pkg/ui"
	"github.com/pterm/pterm"
)

// Renderer defines the interface for rendering CLI diagnostics
type Renderer interface {
	// RenderRules renders the effective rules in execution order
	RenderRules(source string, rules []*types.Rule) string
	RenderError(err error) string
	RenderWarning(msg string) string
}

// NewRenderer returns the renderer for a resolved format. JSON has no
// styled form and falls back to plain text.
func NewRenderer(format ui.Format) Renderer {
	if format == ui.FormatTerminal {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderRules renders the rule list with one styled block per rule
func (r *TerminalRenderer) RenderRules(source string, rules []*types.Rule) string {
	var result strings.Builder

	result.WriteString(Render("[subtitle]Config source:[/subtitle] "))
	result.WriteString(PathStyle.Render(source))
	result.WriteString("\n\n")
	result.WriteString(Render("[subtitle]Loaded rules in execution order:[/subtitle]"))
	result.WriteString("\n")

	if len(rules) == 0 {
		result.WriteString(Indent(Render("[muted](no rules loaded)[/muted]"), 1))
		return result.String()
	}

	for _, rule := range rules {
		indicator, name := EnabledIndicator, RuleNameStyle.Render(rule.Name())
		if !rule.Enabled() {
			indicator, name = DisabledIndicator, DisabledStyle.Render(rule.Name())
		}

		result.WriteString(fmt.Sprintf("  %s %s %s\n", indicator, name, MutedStyle.Render(fmt.Sprintf("(order %d)", rule.Order()))))
		result.WriteString(fmt.Sprintf("      regex  : %s\n", PatternStyle.Render(rule.Pattern().String())))
		result.WriteString(fmt.Sprintf("      replace: %s\n", ReplacementStyle.Render(rule.Replacement())))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	// Coded errors show their code next to the prefix
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s %s %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			err.Error())
	}

	// Generic error
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderWarning renders a warning line
func (r *TerminalRenderer) RenderWarning(msg string) string {
	return fmt.Sprintf("%s %s", WarningIndicator, WarningStyle.Render(msg))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderRules renders the rule list in the layout of the original tool
func (r *PlainRenderer) RenderRules(source string, rules []*types.Rule) string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("Config source: %s\n\n", source))
	result.WriteString("Loaded rules in execution order:\n")

	if len(rules) == 0 {
		result.WriteString("  (no rules loaded)")
		return result.String()
	}

	for _, rule := range rules {
		result.WriteString(fmt.Sprintf("  %s\n", rule.Name()))
		result.WriteString(fmt.Sprintf("    order  : %d\n", rule.Order()))
		result.WriteString(fmt.Sprintf("    enabled: %t\n", rule.Enabled()))
		result.WriteString(fmt.Sprintf("    regex  : %s\n", rule.Pattern().String()))
		result.WriteString(fmt.Sprintf("    replace: %s\n", rule.Replacement()))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

// RenderWarning renders a plain warning line
func (r *PlainRenderer) RenderWarning(msg string) string {
	return fmt.Sprintf("Warning: %s", msg)
}
