package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gpak-tools/textminator/pkg/errors"
)

// Environment variable names
const (
	// EnvStateDir overrides the XDG state directory for textminator
	EnvStateDir = "TEXTMINATOR_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names. These are part of the tool's contract with rule authors and
// must not change between releases.
const (
	// ToolName is the command name
	ToolName = "textminator"

	// DefaultConfigFileName is the rule file probed next to the executable
	DefaultConfigFileName = ToolName + ".properties"

	// LogFileName is the name of the log file
	LogFileName = ToolName + ".log"
)

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved so that a linked binary finds its own rule file.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to locate executable")
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}

// AdjacentConfigPath returns the path of the rule file that sits next to
// the binary in dir.
func AdjacentConfigPath(dir string) string {
	return filepath.Join(dir, DefaultConfigFileName)
}

// StateDir returns the directory for textminator state such as logs.
// TEXTMINATOR_STATE_DIR wins over $XDG_STATE_HOME/textminator.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, ToolName)
}

// DefaultLogFile returns the log file used by a bare --log-file flag
func DefaultLogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
