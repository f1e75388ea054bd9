// Package runner drives a sanitizer over an input stream and owns the
// run-level outcomes: empty input, no match, and output placement.
package runner

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/gpak-tools/textminator/pkg/logging"
	"github.com/gpak-tools/textminator/pkg/output"
	"github.com/gpak-tools/textminator/pkg/sanitizer"
	"github.com/gpak-tools/textminator/pkg/stats"
	"github.com/spf13/afero"
)

// Scanner buffer sizes
const (
	initialBufferSize = 64 * 1024
	MaxLineSize       = 10 * 1024 * 1024
)

// Options describes one run
type Options struct {
	// InputPath is read when set, otherwise Stdin
	InputPath string
	// OutputPath receives the result atomically when set, otherwise Stdout
	OutputPath string
	// Force allows replacing an existing OutputPath
	Force bool
	// Interactive marks stdin as a terminal; an empty interactive session is
	// not an error
	Interactive bool

	Stdin  io.Reader
	Stdout io.Writer
	// FS is the filesystem for input and output files, the OS by default
	FS afero.Fs
}

// Result summarizes a finished run
type Result struct {
	Lines   int64
	Matched bool
	Elapsed time.Duration
	Stats   *stats.Collector
}

// Run sanitizes every line of the input. The output file, if any, is only
// put in place when the run succeeded.
func Run(opts Options, s *sanitizer.Sanitizer) (*Result, error) {
	logger := logging.GetLogger("runner")
	fsys := opts.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	// Validate the destination before reading anything
	writeFile := opts.OutputPath != "" && !s.SuppressOutput()
	if writeFile {
		if err := output.Check(fsys, opts.OutputPath, opts.Force); err != nil {
			return nil, err
		}
	}

	in, closeIn, err := openInput(fsys, opts)
	if err != nil {
		return nil, err
	}
	defer closeIn()

	var out io.Writer = io.Discard
	var file *output.File
	switch {
	case writeFile:
		file, err = output.Create(fsys, opts.OutputPath, opts.Force)
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Discard() }()
		out = file
	case !s.SuppressOutput():
		out = opts.Stdout
		if out == nil {
			out = os.Stdout
		}
	}

	start := time.Now()
	logger.Info().Int("rules", len(s.Rules())).Msg("Start processing")

	result, err := process(in, out, s)
	if err != nil {
		return nil, err
	}
	result.Elapsed = time.Since(start)
	result.Stats = s.Statistics()

	if result.Lines == 0 && !opts.Interactive {
		return result, errors.New(errors.ErrEmptyInput, "input was empty")
	}
	if !result.Matched {
		return result, errors.New(errors.ErrNoMatch, "no match found")
	}

	done := logger.Info().Int64("lines", result.Lines).Dur("elapsed", result.Elapsed)
	if result.Stats != nil {
		done = done.Int64("replacements", result.Stats.Total())
	}
	done.Msg("Processing finished")

	if file != nil {
		logger.Info().Str("path", file.Path()).Msg("Writing output file")
		if err := file.Commit(); err != nil {
			return result, err
		}
	}

	return result, nil
}

func openInput(fsys afero.Fs, opts Options) (io.Reader, func(), error) {
	if opts.InputPath == "" {
		if opts.Stdin == nil {
			return os.Stdin, func() {}, nil
		}
		return opts.Stdin, func() {}, nil
	}

	f, err := fsys.Open(opts.InputPath)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open input file %s", opts.InputPath).
			WithDetail("path", opts.InputPath)
	}
	return f, func() { _ = f.Close() }, nil
}

func process(in io.Reader, out io.Writer, s *sanitizer.Sanitizer) (*Result, error) {
	logger := logging.GetLogger("runner")
	tracer := logging.TraceLogger()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, initialBufferSize), MaxLineSize)

	w := bufio.NewWriter(out)
	result := &Result{}

	for scanner.Scan() {
		result.Lines++
		tracer.Trace().Int64("line", result.Lines).Msg("Sanitize line")

		res := s.SanitizeLine(scanner.Text())
		if res.Changed {
			result.Matched = true
		}

		if _, err := w.WriteString(res.Line); err != nil {
			return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
		}
		if err := w.WriteByte('\n'); err != nil {
			return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to read input after line %d", result.Lines)
	}

	if err := w.Flush(); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
	}

	logger.Debug().Int64("lines", result.Lines).Bool("matched", result.Matched).Msg("Input consumed")
	return result, nil
}
