package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sirkon/typelabel/internal/config"
	"github.com/sirkon/typelabel/internal/derive"
	"github.com/sirkon/typelabel/internal/emit"
)

// deriveFlags are shared by derive and check. Values override the config
// only when set explicitly.
type deriveFlags struct {
	dir    string
	output string
	tests  bool
	mode   config.ConstMode
}

func (f *deriveFlags) register(flags *pflag.FlagSet) {
	f.mode = config.ConstModeAuto

	flags.StringVar(&f.dir, "dir", "", "directory package patterns are relative to")
	flags.StringVarP(&f.output, "output", "o", config.DefaultOutput, "name of generated label files")
	flags.BoolVar(&f.tests, "tests", false, "also derive labels of types declared in _test.go files")
	flags.Var(&f.mode, "const", "label constant mode: auto, exported or none")
}

func (f *deriveFlags) apply(flags *pflag.FlagSet, cfg config.Config) (config.Config, error) {
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("tests") {
		cfg.Tests = f.tests
	}
	if flags.Changed("const") {
		cfg.Const = f.mode
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid options")
	}

	return cfg, nil
}

func (a *app) deriveCommand() *cobra.Command {
	var flags deriveFlags

	cmd := &cobra.Command{
		Use:   "derive [packages]",
		Short: "Generate labels of annotated types",
		Long: `derive loads packages, the current one by default, and writes label files
for types annotated with

	//typelabel:derive
	//typelabel:label = "My label"

Nothing is written when any annotation has errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.apply(cmd.Flags(), a.cfg)
			if err != nil {
				return err
			}

			files, err := a.derive(cmd.Context(), cfg, flags.dir, args)
			if err != nil {
				return err
			}

			return emit.Write(a.logger, files)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

func (a *app) checkCommand() *cobra.Command {
	var flags deriveFlags

	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Check annotations and generated label files without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.apply(cmd.Flags(), a.cfg)
			if err != nil {
				return err
			}

			files, err := a.derive(cmd.Context(), cfg, flags.dir, args)
			if err != nil {
				return err
			}

			stale, err := emit.Stale(files)
			if err != nil {
				return err
			}
			for _, f := range stale {
				state := "out of date"
				switch _, serr := os.Stat(f.Path); {
				case f.Source == nil:
					state = "no longer needed"
				case errors.Is(serr, os.ErrNotExist):
					state = "missing"
				}
				fmt.Fprintf(a.stdout, "%s: %s\n", f.Path, state)
			}
			if len(stale) > 0 {
				return errors.WithHint(
					errors.Newf("%d label files are not up to date", len(stale)),
					"run labelgen derive",
				)
			}

			return nil
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

func (a *app) derive(ctx context.Context, cfg config.Config, dir string, patterns []string) ([]emit.File, error) {
	res, err := derive.NewGenerator(cfg, a.logger).Run(ctx, dir, patterns...)
	if errors.Is(err, derive.ErrDiagnostics) {
		if perr := res.Reporter.PrintSummary(a.stderr, res.Fset); perr != nil {
			return nil, errors.Wrap(perr, "print diagnostics")
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return res.Outputs, nil
}
