package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gender-swap/internal/batch"
	"gender-swap/internal/diagnostic"
	"gender-swap/internal/genderlist"
	"gender-swap/internal/watch"
)

var errCheckFailed = errors.New("check found problems")

func (a *app) swapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Gender every sheet in the input directory",
		Long: `Reads the sheets directly inside the input directory whose names start
with a defined character number, resolves their gender tokens and writes
them to the output directory, which is created if needed and must differ
from the input directory.`,
		Example: "  gender-swap swap -g genderList.txt -i ./sheets -o ./gendered -p",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.swapOnce(cmd.Context())
		},
	}

	a.addRunFlags(cmd)

	return cmd
}

func (a *app) runner() (*batch.Runner, error) {
	defs, _, err := a.loadDefinitions()
	if err != nil {
		return nil, err
	}

	return batch.NewRunner(a.transformer(defs), batch.Options{
		InputDir:         a.cfg.InputDir,
		OutputDir:        a.cfg.OutputDir,
		ProcessFileNames: a.cfg.ProcessFileNames,
		Workers:          a.cfg.Workers,
	}, a.logger)
}

func (a *app) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview FILE",
		Short: "Print the gendered text of one sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, _, err := a.loadDefinitions()
			if err != nil {
				return err
			}

			text, diags, err := batch.Preview(a.transformer(defs), args[0])
			if err != nil {
				return err
			}

			a.logDiagnostics(diags)

			_, err = fmt.Fprint(cmd.OutOrStdout(), text)

			return err
		},
	}
}

func (a *app) nameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name NAME...",
		Short: "Print gendered file names",
		Example: `  gender-swap name -g genderList.txt 3.Alice.Bob.txt
  3.Bob.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, _, err := a.loadDefinitions()
			if err != nil {
				return err
			}

			t := a.transformer(defs)

			for _, arg := range args {
				dir, base := filepath.Split(arg)

				name, diags := t.Name(base)
				a.logDiagnostics(diags)

				if _, err := fmt.Fprintln(cmd.OutOrStdout(), dir+name); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&a.extensions, "ext", nil, "accepted file extensions (default txt,rtf)")

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [FILE|DIR...]",
		Short: "Lint the gender list and sheets without writing anything",
		Long: `Loads the gender list and resolves every sheet given as an argument, or
every sheet in the input directory, reporting all diagnostics. Nothing is
written. The command fails when the gender list has malformed lines, or on
any warning with --strict.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, diags, err := a.loadDefinitions()
			if defs == nil {
				if diags != nil {
					_ = a.printer().Diagnostics(diags)
				}

				return err
			}

			rep, err := a.lint(cmd.Context(), defs, args)
			if err != nil {
				return err
			}

			all := diagnostic.New(nil)
			all.Merge(diags)
			all.Merge(rep.Diagnostics)

			if err := a.printer().Diagnostics(all); err != nil {
				return err
			}

			if all.HasErrors() || (strict && len(all.Warnings) > 0) {
				return fmt.Errorf("%w: %d errors, %d warnings", errCheckFailed, len(all.Errors), len(all.Warnings))
			}

			return nil
		},
	}

	a.addRunFlags(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings too")

	return cmd
}

func (a *app) lint(ctx context.Context, defs *genderlist.Definitions, paths []string) (*batch.Report, error) {
	r, err := batch.NewRunner(a.transformer(defs), batch.Options{
		InputDir:         a.cfg.InputDir,
		ProcessFileNames: a.cfg.ProcessFileNames,
		Workers:          a.cfg.Workers,
		DryRun:           true,
	}, a.logger)
	if err != nil {
		return nil, err
	}

	if len(paths) > 0 {
		return r.RunFiles(ctx, paths)
	}

	return r.Run(ctx)
}

func (a *app) listCmd() *cobra.Command {
	var (
		canonical bool
		writeTo   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the characters of the gender list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs, _, err := a.loadDefinitions()
			if err != nil {
				return err
			}

			if writeTo != "" {
				if err := genderlist.WriteFile(defs, writeTo); err != nil {
					return err
				}

				a.logger.Info("wrote gender list", zap.String("file", writeTo), zap.Int("characters", defs.Len()))
			}

			if canonical {
				_, err := fmt.Fprint(cmd.OutOrStdout(), genderlist.Format(defs))
				return err
			}

			return a.printer().Definitions(defs)
		},
	}

	cmd.Flags().BoolVar(&canonical, "canonical", false, "print the list in the canonical line format")
	cmd.Flags().StringVarP(&writeTo, "write", "w", "", "write the canonical list to this file")

	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run swap, then run it again whenever a sheet or the gender list changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if a.cfg.GenderList == "" {
				return errNoGenderList
			}

			if err := a.swapOnce(ctx); err != nil {
				return err
			}

			listPath := filepath.Clean(a.cfg.GenderList)
			inputDir := filepath.Clean(a.cfg.InputDir)
			accepts := a.transformer(nil).Accepts

			w, err := watch.New(
				[]string{inputDir, filepath.Dir(listPath)},
				a.cfg.Watch.Debounce,
				func(path string) bool {
					return path == listPath || (filepath.Dir(path) == inputDir && accepts(filepath.Base(path)))
				},
				a.logger,
			)
			if err != nil {
				return err
			}

			a.logger.Info("watching for changes",
				zap.String("input_dir", inputDir),
				zap.String("gender_list", listPath))

			return w.Run(ctx, func(ctx context.Context, changed []string) error {
				a.logger.Info("change detected", zap.Strings("files", changed))
				return a.swapOnce(ctx)
			})
		},
	}

	a.addRunFlags(cmd)

	return cmd
}

// swapOnce reloads the gender list and runs a full swap.
func (a *app) swapOnce(ctx context.Context) error {
	r, err := a.runner()
	if err != nil {
		return err
	}

	rep, err := r.Run(ctx)
	if err != nil {
		return err
	}

	a.logDiagnostics(rep.Diagnostics)

	return a.printer().Summary(rep)
}
