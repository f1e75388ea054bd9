// Package ui decides how textminator presents diagnostics: rich terminal
// output, plain text, or JSON. Sanitized text itself is never styled.
package ui
