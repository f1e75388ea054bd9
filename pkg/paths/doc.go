// Package paths provides centralized path handling for textminator.
//
// It owns the fixed file names the tool relies on and the locations derived
// from the environment:
//
//   - the directory of the running executable, probed for textminator.properties
//   - the XDG state directory, used for the optional log file
//
// # Environment Variables
//
//   - TEXTMINATOR_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/textminator)
package paths
