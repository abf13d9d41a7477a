// Package cli implements the labelgen command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sirkon/typelabel/internal/config"
	"github.com/sirkon/typelabel/internal/derive"
)

const programName = "labelgen"

type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the labelgen command writing to the given streams.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
	}

	root := &cobra.Command{
		Use:   programName,
		Short: "Bind string labels to Go types",
		Long: `labelgen generates TypeLabel methods binding string labels to Go types.

Declare a label for a type by name:

	//go:generate labelgen decl --type Baz --label "baz label"

or annotate types and derive labels for the whole package:

	//typelabel:derive
	//typelabel:label = "My label"
	type MyStruct struct{}

	//go:generate labelgen derive`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to config file, "+config.DefaultFile+" is used when present")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.declCommand())
	root.AddCommand(a.deriveCommand())
	root.AddCommand(a.checkCommand())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(
		slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
			Level: level,
		}),
	).With("component", programName, "command", cmd.Name())

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("config loaded", slog.String("output", cfg.Output), slog.String("const", cfg.Const.String()))

	return nil
}

// Execute runs labelgen with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// PrintError writes the error and its hints. Annotation diagnostics have
// been printed already, only the summary line is written for them.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %s\n", programName, err)
	if errors.Is(err, derive.ErrDiagnostics) {
		return
	}

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
}
