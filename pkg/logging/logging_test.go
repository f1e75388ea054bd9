package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zerolog.Level
	}{
		{0, zerolog.ErrorLevel},
		{1, zerolog.WarnLevel},
		{2, zerolog.InfoLevel},
		{3, zerolog.DebugLevel},
		{7, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelForVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { SetupLogger(Options{Console: &bytes.Buffer{}}) })

	t.Run("default_hides_warnings", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLogger(Options{Console: &buf})

		log.Warn().Msg("duplicate order")
		log.Error().Msg("boom")

		assert.NotContains(t, buf.String(), "duplicate order")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("single_v_shows_warnings", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLogger(Options{Verbosity: 1, Console: &buf})

		log.Warn().Msg("duplicate order")
		log.Info().Msg("rules loaded")

		assert.Contains(t, buf.String(), "duplicate order")
		assert.NotContains(t, buf.String(), "rules loaded")
	})

	t.Run("quiet_overrides_verbosity", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLogger(Options{Verbosity: 3, Quiet: true, Console: &buf})

		log.Warn().Msg("duplicate order")

		assert.Empty(t, buf.String())
	})

	t.Run("trace_is_independent", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLogger(Options{Trace: true, Console: &buf})

		tracer := TraceLogger()
		tracer.Trace().Str("rule", "email").Int("matches", 2).Msg("Rule matched")
		log.Info().Msg("rules loaded")

		assert.Contains(t, buf.String(), "Rule matched")
		assert.NotContains(t, buf.String(), "rules loaded")
	})

	t.Run("trace_disabled_by_default", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLogger(Options{Verbosity: 3, Console: &buf})

		tracer := TraceLogger()
		tracer.Trace().Msg("Rule matched")

		assert.NotContains(t, buf.String(), "Rule matched")
	})

	t.Run("log_file_receives_json", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "nested", "textminator.log")
		SetupLogger(Options{Verbosity: 1, LogFile: logPath, Console: &bytes.Buffer{}})

		log.Warn().Str("rule", "email").Msg("Property enabled is missing")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"rule":"email"`)
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(Options{Verbosity: 2, Console: &buf})
	t.Cleanup(func() { SetupLogger(Options{Console: &bytes.Buffer{}}) })

	logger := GetLogger("config")
	logger.Info().Msg("Load rules")

	assert.Contains(t, buf.String(), "config")
	assert.Contains(t, buf.String(), "Load rules")
}
