package textminator

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gpak-tools/textminator/pkg/config"
	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with stdin and returns what it wrote
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const customRules = `secret.regex=s3cr3t
secret.replacement=<SECRET>
secret.order=1
secret.enabled=true
`

func TestSanitizeStdinWithBuiltinRules(t *testing.T) {
	stdout, stderr, err := execute(t, "mail bob@example.com from 10.0.0.1\n")
	require.NoError(t, err)

	assert.Equal(t, "mail <EMAIL> from <IPV4>\n", stdout)
	assert.Empty(t, stderr)
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "rules.properties", customRules)
	disabled := writeFile(t, dir, "disabled.properties", strings.Replace(customRules, "enabled=true", "enabled=false", 1))

	tests := []struct {
		name     string
		stdin    string
		args     []string
		exitCode int
	}{
		{name: "success", stdin: "a s3cr3t\n", args: []string{"-c", rules}, exitCode: errors.ExitOK},
		{name: "empty_input", stdin: "", args: []string{"-c", rules}, exitCode: errors.ExitEmptyInput},
		{name: "no_match", stdin: "nothing here\n", args: []string{"-c", rules}, exitCode: errors.ExitNoMatch},
		{name: "missing_config", stdin: "x\n", args: []string{"-c", filepath.Join(dir, "nope.properties")}, exitCode: errors.ExitConfig},
		{name: "all_disabled", stdin: "x\n", args: []string{"-c", disabled}, exitCode: errors.ExitConfig},
		{name: "missing_input", args: []string{"-c", rules, "-i", filepath.Join(dir, "nope.txt")}, exitCode: errors.ExitError},
		{name: "bad_stats_format", stdin: "s3cr3t\n", args: []string{"-c", rules, "--stats-format", "xml"}, exitCode: errors.ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			assert.Equal(t, tt.exitCode, errors.ExitCode(err))
		})
	}
}

func TestConfigExample(t *testing.T) {
	stdout, _, err := execute(t, "", "--config-example")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultConfigContent(), stdout)
}

func TestConfigInfo(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		stdout, stderr, err := execute(t, "", "--config-info")
		require.NoError(t, err)

		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Config source: "+MsgBuiltinSource)
		assert.Contains(t, stderr, "Loaded rules in execution order:")
		assert.Less(t, strings.Index(stderr, "email"), strings.Index(stderr, "ipv6"))
	})

	t.Run("custom", func(t *testing.T) {
		rules := writeFile(t, t.TempDir(), "rules.properties", customRules)

		_, stderr, err := execute(t, "", "--config-info", "-c", rules)
		require.NoError(t, err)

		assert.Contains(t, stderr, "Config source: "+rules)
		assert.Contains(t, stderr, "replace: <SECRET>")
	})

	t.Run("quiet_suppresses", func(t *testing.T) {
		_, stderr, err := execute(t, "", "--config-info", "-q")
		require.NoError(t, err)

		assert.Empty(t, stderr)
	})
}

func TestStats(t *testing.T) {
	rules := writeFile(t, t.TempDir(), "rules.properties", customRules)

	t.Run("text", func(t *testing.T) {
		stdout, stderr, err := execute(t, "s3cr3t s3cr3t\nplain\n", "-c", rules, "--stats")
		require.NoError(t, err)

		assert.Equal(t, "<SECRET> <SECRET>\nplain\n", stdout)
		assert.Contains(t, stderr, "textminator stats:")
		assert.Contains(t, stderr, "total file lines: 2")
		assert.Regexp(t, `secret\s+2`, stderr)
	})

	t.Run("json", func(t *testing.T) {
		_, stderr, err := execute(t, "s3cr3t\n", "-c", rules, "-s", "--stats-format", "json")
		require.NoError(t, err)

		var report struct {
			Lines int64 `json:"lines"`
			Rules []struct {
				Name  string `json:"name"`
				Count int64  `json:"count"`
			} `json:"rules"`
		}
		require.NoError(t, json.Unmarshal([]byte(stderr), &report))
		assert.Equal(t, int64(1), report.Lines)
		require.Len(t, report.Rules, 1)
		assert.Equal(t, "secret", report.Rules[0].Name)
		assert.Equal(t, int64(1), report.Rules[0].Count)
	})

	t.Run("quiet_suppresses", func(t *testing.T) {
		stdout, stderr, err := execute(t, "s3cr3t\n", "-c", rules, "-s", "-q")
		require.NoError(t, err)

		assert.Equal(t, "<SECRET>\n", stdout)
		assert.Empty(t, stderr)
	})
}

func TestDryRun(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "rules.properties", customRules)
	out := filepath.Join(dir, "out.txt")

	stdout, stderr, err := execute(t, "s3cr3t\n", "-c", rules, "--dry-run", "-o", out)
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "textminator stats:")
	assert.NoFileExists(t, out)
}

func TestOutputFile(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "rules.properties", customRules)
	in := writeFile(t, dir, "in.txt", "key=s3cr3t\n")
	out := filepath.Join(dir, "out.txt")

	t.Run("written", func(t *testing.T) {
		stdout, _, err := execute(t, "", "-c", rules, "-i", in, "-o", out)
		require.NoError(t, err)

		assert.Empty(t, stdout)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "key=<SECRET>\n", string(data))
	})

	t.Run("exists_without_force", func(t *testing.T) {
		_, _, err := execute(t, "", "-c", rules, "-i", in, "-o", out)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrOutputExists))
	})

	t.Run("exists_with_force", func(t *testing.T) {
		require.NoError(t, os.WriteFile(out, []byte("stale\n"), 0644))

		_, _, err := execute(t, "", "-c", rules, "-i", in, "-o", out, "-f")
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "key=<SECRET>\n", string(data))
	})

	t.Run("existing_output_checked_before_rules", func(t *testing.T) {
		_, _, err := execute(t, "", "-c", filepath.Join(dir, "nope.properties"), "-i", in, "-o", out)
		assert.True(t, errors.IsErrorCode(err, errors.ErrOutputExists))
	})

	t.Run("no_match_leaves_no_file", func(t *testing.T) {
		plain := writeFile(t, dir, "plain.txt", "nothing\n")
		fresh := filepath.Join(dir, "fresh.txt")

		_, _, err := execute(t, "", "-c", rules, "-i", plain, "-o", fresh)
		assert.Equal(t, errors.ExitNoMatch, errors.ExitCode(err))
		assert.NoFileExists(t, fresh)
	})
}

func TestForceWithoutOutputWarns(t *testing.T) {
	rules := writeFile(t, t.TempDir(), "rules.properties", customRules)

	t.Run("shown_by_default", func(t *testing.T) {
		stdout, stderr, err := execute(t, "s3cr3t\n", "-c", rules, "-f")
		require.NoError(t, err)

		assert.Equal(t, "<SECRET>\n", stdout)
		assert.Equal(t, "Warning: "+MsgWarnForceWithoutOutput+"\n", stderr)
	})

	t.Run("quiet_suppresses", func(t *testing.T) {
		_, stderr, err := execute(t, "s3cr3t\n", "-c", rules, "-f", "-q")
		require.NoError(t, err)

		assert.Empty(t, stderr)
	})
}

func TestConfigFromEnvironment(t *testing.T) {
	rules := writeFile(t, t.TempDir(), "rules.properties", customRules)
	t.Setenv("TEXTMINATOR_CONFIG", rules)

	stdout, _, err := execute(t, "s3cr3t\n")
	require.NoError(t, err)

	assert.Equal(t, "<SECRET>\n", stdout)
}

func TestInvalidEnvironmentSetting(t *testing.T) {
	t.Setenv("TEXTMINATOR_QUIET", "maybe")

	_, _, err := execute(t, "x\n")
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfig, errors.ExitCode(err))
}

func TestRulesCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		stdout, _, err := execute(t, "", "rules")
		require.NoError(t, err)

		assert.Contains(t, stdout, "Config source: "+MsgBuiltinSource)
		assert.Contains(t, stdout, "uuid")
	})

	t.Run("json_keeps_order", func(t *testing.T) {
		stdout, _, err := execute(t, "", "rules", "--format", "json")
		require.NoError(t, err)

		var docs []struct {
			Name  string `json:"name"`
			Order int    `json:"order"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &docs))
		require.Len(t, docs, 4)
		assert.Equal(t, "email", docs[0].Name)
		assert.Equal(t, "ipv6", docs[3].Name)
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, _, err := execute(t, "", "rules", "--format", "xml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	for _, ext := range []string{"toml", "yaml", "properties"} {
		t.Run("round_trip_"+ext, func(t *testing.T) {
			src := writeFile(t, t.TempDir(), "rules.properties", customRules+"\ndigits.regex=(\\d{4})-(\\d{4})\ndigits.replacement=$2-$1\ndigits.order=2\ndigits.enabled=false\n")

			exported, _, err := execute(t, "", "rules", "-c", src, "--format", ext)
			require.NoError(t, err)

			dst := writeFile(t, t.TempDir(), "rules."+ext, exported)
			original, _, err := execute(t, "", "rules", "-c", src, "--format", "json")
			require.NoError(t, err)
			reloaded, _, err := execute(t, "", "rules", "-c", dst, "--format", "json")
			require.NoError(t, err)

			assert.JSONEq(t, original, reloaded)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "textminator "))
}

func TestHelpTopics(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		stdout, _, err := execute(t, "", "help", "topics")
		require.NoError(t, err)

		assert.Contains(t, stdout, "exit-codes")
		assert.Contains(t, stdout, "rule-syntax")
		assert.Contains(t, stdout, "--dry-run")
	})

	t.Run("rule_syntax_topic", func(t *testing.T) {
		stdout, _, err := execute(t, "", "help", "rule-syntax")
		require.NoError(t, err)

		assert.Contains(t, stdout, "capture")
	})

	t.Run("option_topic", func(t *testing.T) {
		stdout, _, err := execute(t, "", "help", "--dry-run")
		require.NoError(t, err)

		assert.NotEmpty(t, stdout)
	})

	t.Run("command_help", func(t *testing.T) {
		stdout, _, err := execute(t, "", "help", "rules")
		require.NoError(t, err)

		assert.Contains(t, stdout, "--format")
		assert.NotContains(t, stdout, "capture")
	})
}
