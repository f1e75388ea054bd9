package main

import (
	"fmt"
	"os"

	"github.com/gpak-tools/textminator/cmd/textminator"
	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/gpak-tools/textminator/pkg/style"
	"github.com/gpak-tools/textminator/pkg/ui"
)

func main() {
	rootCmd := textminator.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		r := style.NewRenderer(ui.DetectFormat(os.Stderr))
		fmt.Fprintln(os.Stderr, r.RenderError(err))
		os.Exit(errors.ExitCode(err))
	}
}
