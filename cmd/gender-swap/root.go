package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gender-swap/internal/batch"
	"gender-swap/internal/config"
	"gender-swap/internal/diagnostic"
	"gender-swap/internal/genderlist"
	"gender-swap/internal/logging"
	"gender-swap/internal/report"
	"gender-swap/internal/sheet"
)

var errNoGenderList = errors.New("no gender list given: use --gender-list or set gender_list in the config")

// app holds the flag values and the state built before a command runs.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath   string
	verbose      bool
	logLevel     string
	logFormat    string
	genderList   string
	inputDir     string
	outputDir    string
	processNames bool
	workers      int
	extensions   []string

	cfg       *config.Config
	logger    *zap.Logger
	newLogger func(level, format string, verbose bool) (*zap.Logger, error)
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:       out,
		errOut:    errOut,
		newLogger: logging.New,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gender-swap",
		Short: "Gender LARP character sheets from a gender list",
		Long: `gender-swap resolves gender-conditional markup in character sheets.

A gender list assigns every numbered character a gender and the order in
which gendered alternatives are written for that character:

  Alice: 3: female/male: male

Sheets then use tokens such as "[3: she/he]", which become "he" for Alice.
File names like "3.Alice.Bob.txt" can be gendered the same way.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format (console or json)")
	pf.StringVarP(&a.genderList, "gender-list", "g", "", "gender list file (.txt lines or .yaml)")

	root.AddCommand(
		a.swapCmd(),
		a.previewCmd(),
		a.nameCmd(),
		a.checkCmd(),
		a.listCmd(),
		a.watchCmd(),
	)

	return root
}

// addRunFlags registers the flags shared by commands that process directories.
func (a *app) addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&a.inputDir, "input", "i", "", "directory holding the input sheets")
	f.StringVarP(&a.outputDir, "output", "o", "", "directory for the gendered sheets")
	f.BoolVarP(&a.processNames, "process-names", "p", false, "also gender file names")
	f.IntVar(&a.workers, "workers", 0, "sheets processed at once")
	f.StringSliceVar(&a.extensions, "ext", nil, "accepted file extensions (default txt,rtf)")
}

// setup loads the configuration, applies flags on top and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("gender-list") {
		cfg.GenderList = a.genderList
	}

	if flags.Changed("input") {
		cfg.InputDir = a.inputDir
	}

	if flags.Changed("output") {
		cfg.OutputDir = a.outputDir
	}

	if flags.Changed("process-names") {
		cfg.ProcessFileNames = a.processNames
	}

	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}

	if flags.Changed("ext") {
		cfg.Extensions = a.extensions
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := a.newLogger(cfg.Log.Level, cfg.Log.Format, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

// loadDefinitions reads the configured gender list and logs its diagnostics.
// Malformed lines are logged and skipped; a list without any character fails.
func (a *app) loadDefinitions() (*genderlist.Definitions, *diagnostic.Diagnostics, error) {
	if a.cfg.GenderList == "" {
		return nil, nil, errNoGenderList
	}

	a.logger.Info("loading gender list", zap.String("file", a.cfg.GenderList))

	defs, diags, err := genderlist.LoadFile(a.cfg.GenderList, nil)
	if defs == nil {
		return nil, diags, err
	}

	if err != nil {
		a.logger.Error("gender list has malformed lines", zap.Error(err))
	}

	a.logDiagnostics(diags)

	if defs.Len() == 0 {
		return nil, diags, fmt.Errorf("%s: %w", a.cfg.GenderList, batch.ErrNoDefinitions)
	}

	a.logger.Debug("gender list loaded", zap.Int("characters", defs.Len()))

	return defs, diags, nil
}

func (a *app) transformer(defs *genderlist.Definitions) *sheet.Transformer {
	return sheet.New(defs, a.cfg.Extensions)
}

func (a *app) printer() *report.Printer {
	return report.New(a.out)
}

func (a *app) logDiagnostics(diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	for _, d := range diags.All() {
		fields := []zap.Field{
			zap.Stringer("kind", d.Kind),
			zap.String("location", d.Location),
		}

		if d.Character != diagnostic.NoCharacter {
			fields = append(fields, zap.Int("character", d.Character))
		}

		if len(d.Suggestions) > 0 {
			fields = append(fields, zap.Strings("suggestions", d.Suggestions))
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			a.logger.Error(d.Message, fields...)
		case diagnostic.DiagnosticWarning:
			a.logger.Warn(d.Message, fields...)
		default:
			a.logger.Info(d.Message, fields...)
		}
	}
}
