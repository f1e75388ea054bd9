package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/gpak-tools/textminator/cmd/textminator"
	"github.com/gpak-tools/textminator/internal/version"
)

func main() {
	rootCmd := textminator.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TEXTMINATOR",
		Section: "1",
		Source:  "textminator " + version.Version,
		Manual:  "textminator manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
