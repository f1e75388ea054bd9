package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/gpak-tools/textminator/pkg/paths"
	"github.com/gpak-tools/textminator/pkg/style"
	"github.com/gpak-tools/textminator/pkg/ui"
	"github.com/pterm/pterm"
)

// Report is the end-of-run summary
type Report struct {
	Entries []Entry
	Elapsed time.Duration
	Lines   int64
	// Total is the sum of all rule counts
	Total int64
}

// NewReport builds a report from a collector; a nil collector yields a
// report without entries
func NewReport(c *Collector, elapsed time.Duration, lines int64) Report {
	r := Report{Elapsed: elapsed, Lines: lines}
	if c != nil {
		r.Entries = c.Snapshot()
		r.Total = c.Total()
	}
	return r
}

// Render writes the report in the given format. FormatAuto is resolved
// against w.
func (r Report) Render(w io.Writer, format ui.Format) error {
	switch ui.Resolve(format, w) {
	case ui.FormatJSON:
		return r.renderJSON(w)
	case ui.FormatTerminal:
		return r.renderTerminal(w)
	default:
		return r.renderText(w)
	}
}

func (r Report) header() []string {
	return []string{
		fmt.Sprintf("  elapsed time:     %.3f s", r.Elapsed.Seconds()),
		fmt.Sprintf("  total file lines: %d", r.Lines),
	}
}

func (r Report) renderText(w io.Writer) error {
	out := paths.ToolName + " stats:\n"
	for _, line := range r.header() {
		out += line + "\n"
	}
	out += "\n"

	if len(r.Entries) == 0 {
		out += "  no rules and/or no matches\n"
	} else {
		out += "  rules:\n"
		for _, e := range r.Entries {
			out += fmt.Sprintf("    %-25s %d\n", e.Name, e.Count)
		}
	}

	return write(w, out)
}

func (r Report) renderTerminal(w io.Writer) error {
	out := style.Render("[title]"+paths.ToolName+" stats:[/title]") + "\n"
	for _, line := range r.header() {
		out += line + "\n"
	}
	out += "\n"

	if len(r.Entries) == 0 {
		out += style.MutedStyle.Render("  no rules and/or no matches") + "\n"
		return write(w, out)
	}

	data := pterm.TableData{{"rule", "matches"}}
	for _, e := range r.Entries {
		data = append(data, []string{e.Name, strconv.FormatInt(e.Count, 10)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render stats table")
	}

	return write(w, out+table+"\n")
}

type jsonReport struct {
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Lines          int64   `json:"lines"`
	Replacements   int64   `json:"replacements"`
	Rules          []Entry `json:"rules"`
}

func (r Report) renderJSON(w io.Writer) error {
	entries := r.Entries
	if entries == nil {
		entries = []Entry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{ElapsedSeconds: r.Elapsed.Seconds(), Lines: r.Lines, Replacements: r.Total, Rules: entries}); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write stats")
	}
	return nil
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write stats")
	}
	return nil
}
