package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sirkon/typelabel/internal/config"
	"github.com/sirkon/typelabel/internal/decl"
	"github.com/sirkon/typelabel/internal/emit"
)

func (a *app) declCommand() *cobra.Command {
	opts := decl.Options{
		Const: config.ConstModeAuto,
	}

	cmd := &cobra.Command{
		Use:   "decl --type T --label L",
		Short: "Bind a label to a type given by name",
		Long: `decl writes a file with the TypeLabel method of the type, returning the
label. The package is not loaded, its name is taken from $GOPACKAGE when run
by go generate, or from the package clause of the first Go file in --dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if !flags.Changed("const") {
				opts.Const = a.cfg.Const
			}
			if opts.Package == "" {
				opts.Package = os.Getenv("GOPACKAGE")
			}
			opts.BuildTags = a.cfg.BuildTags

			file, err := decl.Generate(opts)
			if err != nil {
				return errors.Wrap(err, "declare label")
			}

			return emit.Write(a.logger, []emit.File{file})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Type, "type", "t", "", "name of the labeled type")
	flags.StringVarP(&opts.Label, "label", "l", "", "label of the type")
	flags.StringVarP(&opts.Output, "output", "o", "", "output file, <lowercased type>_label.go by default")
	flags.StringVar(&opts.Package, "package", "", "package name, detected when empty")
	flags.StringVar(&opts.Dir, "dir", ".", "package directory")
	flags.Var(&opts.Const, "const", "label constant mode: auto, exported or none")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}
