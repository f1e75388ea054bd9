package stats

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/gpak-tools/textminator/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportText(t *testing.T) {
	t.Run("with_rules", func(t *testing.T) {
		c := NewCollector("email", "ipv4")
		c.Add("email", 3)

		var buf bytes.Buffer
		require.NoError(t, NewReport(c, 1234*time.Millisecond, 42).Render(&buf, ui.FormatText))

		expected := "textminator stats:\n" +
			"  elapsed time:     1.234 s\n" +
			"  total file lines: 42\n" +
			"\n" +
			"  rules:\n" +
			"    email                     3\n" +
			"    ipv4                      0\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("no_entries", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewReport(nil, 0, 0).Render(&buf, ui.FormatText))

		assert.Contains(t, buf.String(), "  no rules and/or no matches\n")
		assert.NotContains(t, buf.String(), "rules:")
	})

	t.Run("auto_on_buffer_is_text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewReport(NewCollector("email"), 0, 1).Render(&buf, ui.FormatAuto))

		assert.Contains(t, buf.String(), "    email                     0\n")
	})
}

func TestReportTerminal(t *testing.T) {
	c := NewCollector("email", "ipv4")
	c.Add("ipv4", 12)

	var buf bytes.Buffer
	require.NoError(t, NewReport(c, time.Second, 7).Render(&buf, ui.FormatTerminal))

	out := buf.String()
	assert.Contains(t, out, "textminator stats:")
	assert.Contains(t, out, "total file lines: 7")
	assert.Contains(t, out, "ipv4")
	assert.Contains(t, out, "12")
}

func TestReportJSON(t *testing.T) {
	c := NewCollector("email")
	c.Add("email", 2)

	var buf bytes.Buffer
	require.NoError(t, NewReport(c, 1500*time.Millisecond, 9).Render(&buf, ui.FormatJSON))

	var got struct {
		ElapsedSeconds float64 `json:"elapsed_seconds"`
		Lines          int64   `json:"lines"`
		Replacements   int64   `json:"replacements"`
		Rules          []Entry `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.InDelta(t, 1.5, got.ElapsedSeconds, 0.0001)
	assert.Equal(t, int64(9), got.Lines)
	assert.Equal(t, int64(2), got.Replacements)
	assert.Equal(t, []Entry{{"email", 2}}, got.Rules)

	buf.Reset()
	require.NoError(t, NewReport(nil, 0, 0).Render(&buf, ui.FormatJSON))
	assert.Contains(t, buf.String(), `"rules": []`)
	assert.Contains(t, buf.String(), `"replacements": 0`)
}
