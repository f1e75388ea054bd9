package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls how the global logger is configured
type Options struct {
	// Verbosity is the number of -v flags: 0 errors, 1 warnings, 2 info, 3+ debug
	Verbosity int
	// Quiet limits output to errors and overrides Verbosity
	Quiet bool
	// Trace enables the per-rule match tracer independently of Verbosity
	Trace bool
	// LogFile, when set, receives JSON log lines in addition to the console
	LogFile string
	// Console overrides the console destination (stderr by default)
	Console io.Writer
}

var traceLogger = zerolog.Nop()

// LevelForVerbosity maps a -v count to a zerolog level
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.ErrorLevel
	case 1:
		return zerolog.WarnLevel
	case 2:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// SetupLogger configures the global logger and the trace logger.
// Console output goes to stderr so that sanitized text on stdout stays clean.
func SetupLogger(opts Options) {
	level := LevelForVerbosity(opts.Verbosity)
	if opts.Quiet {
		level = zerolog.ErrorLevel
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    false,
	}

	writers := []io.Writer{consoleWriter}

	var fileErr error
	if opts.LogFile != "" {
		logFileHandle, err := setupLogFile(opts.LogFile)
		if err == nil {
			writers = append(writers, logFileHandle)
		}
		fileErr = err
	}

	// Per-logger levels decide; the global floor must not hide trace events
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	multi := io.MultiWriter(writers...)
	base := zerolog.New(multi).With().Timestamp().Logger()

	log.Logger = base.Level(level)

	// Add caller information for debug level
	if level <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if opts.Trace {
		traceLogger = base.Level(zerolog.TraceLevel).With().Str("component", "trace").Logger()
	} else {
		traceLogger = zerolog.Nop()
	}

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.LogFile).Msg("Failed to create log file, logging to console only")
	}

	log.Debug().
		Int("verbosity", opts.Verbosity).
		Bool("quiet", opts.Quiet).
		Bool("trace", opts.Trace).
		Str("logFile", opts.LogFile).
		Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// TraceLogger returns the rule tracer; it is disabled unless SetupLogger
// was called with Trace enabled.
func TraceLogger() zerolog.Logger {
	return traceLogger
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
