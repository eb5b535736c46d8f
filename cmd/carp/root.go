package carp

import (
	"io"
	"os"

	"github.com/arthur-debert/carp/internal/version"
	"github.com/arthur-debert/carp/pkg/config"
	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/filesystem"
	"github.com/arthur-debert/carp/pkg/logging"
	"github.com/arthur-debert/carp/pkg/merge"
	"github.com/arthur-debert/carp/pkg/report"
	"github.com/arthur-debert/carp/pkg/ui"
	"github.com/arthur-debert/carp/pkg/viewer"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbosity     int
	dryRun        bool
	dirPrefix     string
	format        string
	noColor       bool
	configFile    string
	printConfig   bool
	printDefaults bool
	leaveLimit    int
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    renderMarkdown(MsgRootLong),
		Example: MsgRootExample,
		Version: version.String(),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, opts.noColor)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVarP(&opts.dirPrefix, "dir-prefix", "d", "", MsgFlagDirPrefix)
	flags.StringVar(&opts.format, "format", "", MsgFlagFormat)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.BoolVar(&opts.printConfig, "print-config", false, MsgFlagPrintConfig)
	flags.BoolVar(&opts.printDefaults, "print-defaults", false, MsgFlagPrintDefaults)
	flags.IntVar(&opts.leaveLimit, "leave-limit", 0, MsgFlagLeaveLimit)

	// Flags after the first PATH are still flags; "--" ends them.
	flags.SetInterspersed(true)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(MsgVersionTemplate)

	return rootCmd
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := logging.GetLogger("cmd.carp")
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	// Defaults do not depend on the user's file, which may be the thing
	// being repaired.
	if opts.printDefaults {
		_, err := io.WriteString(out, config.DefaultsContent())
		return err
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		Overrides:  overrides(cmd, opts),
	})
	if err != nil {
		return err
	}

	if opts.printConfig {
		data, err := cfg.TOML()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if len(args) == 0 {
		_ = cmd.Usage()
		return errors.New(errors.ErrInvalidInput, MsgErrNoPaths)
	}

	format, err := ui.ParseFormat(cfg.Report.Format)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "bad report format")
	}
	format = resolveFormat(format, out, opts.noColor)

	console := ui.NewConsole(out, errOut, useColor(format, errOut, opts.noColor))
	renderer, err := report.NewRenderer(format, console, cfg.Report.LeaveLimit)
	if err != nil {
		return err
	}

	merger, err := merge.New(merge.Options{
		FS:        filesystem.NewOS(),
		Config:    cfg,
		Console:   console,
		Renderer:  renderer,
		Asker:     ui.NewPrompter(cmd.InOrStdin(), console),
		Viewer:    viewer.NewExternal(cfg.Viewer.Command, errOut),
		DirPrefix: opts.dirPrefix,
		DryRun:    opts.dryRun,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Strs("paths", args).
		Str("format", format.String()).
		Bool("dryRun", opts.dryRun).
		Msg("Starting merge")

	summary, runErr := merger.Run(cmd.Context(), args)

	if len(args) > 1 || format == ui.FormatJSON {
		if err := renderer.RenderSummary(summary); err != nil {
			logger.Error().Err(err).Msg("Failed to render summary")
		}
	}
	return runErr
}

// overrides maps explicitly set flags onto config keys.
func overrides(cmd *cobra.Command, opts *rootOptions) map[string]interface{} {
	o := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		o["report.format"] = opts.format
	}
	if cmd.Flags().Changed("leave-limit") {
		o["report.leave_limit"] = opts.leaveLimit
	}
	return o
}

// resolveFormat settles FormatAuto against the report stream.
func resolveFormat(format ui.Format, out io.Writer, noColor bool) ui.Format {
	if file, ok := out.(*os.File); ok {
		return format.Resolve(file, noColor)
	}
	if format == ui.FormatAuto {
		return ui.FormatText
	}
	return format.Resolve(nil, noColor)
}

// useColor decides whether the console styles its output: always for the
// styled report format, otherwise when the status stream supports it.
func useColor(format ui.Format, errOut io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	if format == ui.FormatTerminal {
		return true
	}
	file, ok := errOut.(*os.File)
	return ok && ui.ColorSupported(file)
}

// Describe renders an Execute error for the operator. The operator's own
// abort is not an error worth printing.
func Describe(err error) string {
	if err == nil || errors.IsErrorCode(err, errors.ErrAborted) {
		return ""
	}
	return "Error: " + errors.Describe(err)
}
