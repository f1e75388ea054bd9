package textminator

import (
	"fmt"
	"io"
	"os"

	"github.com/gpak-tools/textminator/internal/version"
	"github.com/gpak-tools/textminator/pkg/cobrax/topics"
	"github.com/gpak-tools/textminator/pkg/config"
	"github.com/gpak-tools/textminator/pkg/logging"
	"github.com/gpak-tools/textminator/pkg/output"
	"github.com/gpak-tools/textminator/pkg/paths"
	"github.com/gpak-tools/textminator/pkg/runner"
	"github.com/gpak-tools/textminator/pkg/sanitizer"
	"github.com/gpak-tools/textminator/pkg/stats"
	"github.com/gpak-tools/textminator/pkg/style"
	"github.com/gpak-tools/textminator/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// rootOptions holds the parsed root flags
type rootOptions struct {
	configPath    string
	configExample bool
	configInfo    bool

	input  string
	output string
	force  bool

	stats       bool
	dryRun      bool
	quiet       bool
	verbosity   int
	trace       bool
	logFile     string
	statsFormat string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	settings, settingsErr := config.LoadSettings()
	if settingsErr != nil {
		settings = &config.Settings{StatsFormat: ui.FormatAuto.String()}
	}

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     paths.ToolName,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(logging.Options{
				Verbosity: opts.verbosity,
				Quiet:     opts.quiet,
				Trace:     opts.trace,
				LogFile:   paths.ExpandHome(opts.logFile),
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if settingsErr != nil {
				return fmt.Errorf(MsgErrSettings, settingsErr)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSanitize(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Configuration
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", settings.Config, MsgFlagConfig)
	rootCmd.Flags().BoolVar(&opts.configExample, "config-example", false, MsgFlagConfigExample)
	rootCmd.Flags().BoolVar(&opts.configInfo, "config-info", false, MsgFlagConfigInfo)

	// Input / Output
	rootCmd.Flags().StringVarP(&opts.input, "input", "i", "", MsgFlagInput)
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().BoolVarP(&opts.force, "force", "f", false, MsgFlagForce)

	// Diagnostics
	rootCmd.Flags().BoolVarP(&opts.stats, "stats", "s", false, MsgFlagStats)
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&opts.statsFormat, "stats-format", settings.StatsFormat, MsgFlagStatsFormat)
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", settings.Quiet, MsgFlagQuiet)
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.trace, "trace", settings.Trace, MsgFlagTrace)
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", settings.LogFile, MsgFlagLogFile)
	rootCmd.PersistentFlags().Lookup("log-file").NoOptDefVal = paths.DefaultLogFile()

	rootCmd.Flags().SortFlags = false
	rootCmd.PersistentFlags().SortFlags = false

	_ = rootCmd.RegisterFlagCompletionFunc("stats-format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.String()))

	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Markdown topics are rendered with glamour on a terminal
	topicOpts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewRenderer(ui.IsTerminal(os.Stdout)),
	}
	if _, err := topics.Initialize(rootCmd, helpTopics(), topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// runSanitize is the default action: load rules and sanitize the input
func runSanitize(cmd *cobra.Command, opts *rootOptions) error {
	if opts.configExample {
		_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
		return err
	}

	statsFormat, err := ui.ParseFormat(opts.statsFormat)
	if err != nil {
		return fmt.Errorf(MsgErrStatsFormat, err)
	}

	if opts.force && opts.output == "" && !opts.quiet {
		w, r := diagnostics(cmd)
		fmt.Fprintln(w, r.RenderWarning(MsgWarnForceWithoutOutput))
	}

	outputPath := paths.ExpandHome(opts.output)
	if outputPath != "" && !opts.dryRun {
		if err := output.Check(afero.NewOsFs(), outputPath, opts.force); err != nil {
			return err
		}
	}

	set, err := loadRules(opts)
	if err != nil {
		return err
	}

	if opts.configInfo {
		if !opts.quiet {
			printRules(cmd, set)
		}
		return nil
	}

	s := sanitizer.New(set.Rules, opts.stats, opts.dryRun, sanitizer.WithTraceLogger(logging.TraceLogger()))

	runOpts := runner.Options{
		InputPath:  paths.ExpandHome(opts.input),
		OutputPath: outputPath,
		Force:      opts.force,
		Stdin:      cmd.InOrStdin(),
		Stdout:     cmd.OutOrStdout(),
	}
	if opts.input == "" {
		if f, ok := cmd.InOrStdin().(*os.File); ok {
			runOpts.Interactive = ui.IsTerminal(f)
		}
	}

	res, err := runner.Run(runOpts, s)
	if err != nil {
		return err
	}

	if (opts.stats || opts.dryRun) && !opts.quiet {
		report := stats.NewReport(res.Stats, res.Elapsed, res.Lines)
		return report.Render(cmd.ErrOrStderr(), statsFormat)
	}

	return nil
}

func loadRules(opts *rootOptions) (*config.RuleSet, error) {
	log.Info().Msg("Load rules")
	return config.LoadRules(opts.configPath)
}

// sourceLabel names a rule source the way --config-info prints it
func sourceLabel(source config.Source) string {
	if source.Path == "" {
		return MsgBuiltinSource
	}
	return source.Path
}

// diagnostics returns stderr and the renderer matching it
func diagnostics(cmd *cobra.Command) (io.Writer, style.Renderer) {
	w := cmd.ErrOrStderr()
	return w, style.NewRenderer(ui.Resolve(ui.FormatAuto, w))
}

// printRules writes the --config-info listing to stderr
func printRules(cmd *cobra.Command, set *config.RuleSet) {
	w, r := diagnostics(cmd)
	fmt.Fprintln(w, r.RenderRules(sourceLabel(set.Source), set.Rules))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
