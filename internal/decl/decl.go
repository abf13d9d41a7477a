// Package decl renders a label binding for a type given by name, without
// loading or type checking the package it belongs to.
package decl

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sirkon/typelabel/internal/config"
	"github.com/sirkon/typelabel/internal/emit"
)

// GeneratorName is the command named in headers of declared files.
const GeneratorName = "labelgen decl"

// Options of a declaration.
type Options struct {
	// Dir is the package directory, the current one when empty.
	Dir string

	// Package overrides the package name found in Dir.
	Package string

	// Type is the name of the labeled type.
	Type string

	// Label is the label value.
	Label string

	// Output is the file name, <lowercased type>_label.go by default.
	Output string

	// Const is the constant declaration mode.
	Const config.ConstMode

	// BuildTags of the generated file.
	BuildTags []string
}

// DefaultOutput returns the default file name for the type.
func DefaultOutput(typeName string) string {
	return strings.ToLower(typeName) + "_label.go"
}

// Generate renders the file binding the label to the type.
func Generate(opts Options) (emit.File, error) {
	if !token.IsIdentifier(opts.Type) {
		return emit.File{}, errors.WithHint(
			errors.Newf("type name %q is not an identifier", opts.Type),
			"pass the name of a type declared in the package, e.g. -type Foo",
		)
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	pkgName := opts.Package
	if pkgName == "" {
		var err error
		pkgName, err = PackageName(dir)
		if err != nil {
			return emit.File{}, errors.Wrap(err, "detect package name")
		}
	}

	output := opts.Output
	if output == "" {
		output = DefaultOutput(opts.Type)
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(dir, output)
	}

	mode := opts.Const
	if mode == config.ConstModeInvalid {
		mode = config.ConstModeAuto
	}

	src, err := emit.Source(emit.Options{
		Package:   pkgName,
		Generator: GeneratorName,
		Const:     mode,
		BuildTags: opts.BuildTags,
		Filename:  output,
	}, []emit.Binding{{Type: opts.Type, Label: opts.Label}})
	if err != nil {
		return emit.File{}, errors.Wrapf(err, "render label of %s", opts.Type)
	}

	return emit.File{Path: output, Source: src}, nil
}

// PackageName reads the package clause of the first non-test Go file in dir,
// in lexical order.
func PackageName(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "read directory %s", dir)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	fset := token.NewFileSet()
	for _, name := range names {
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err != nil {
			continue
		}

		return file.Name.Name, nil
	}

	return "", errors.WithHint(
		errors.Newf("no Go files in %s", dir),
		"pass the package name with -package",
	)
}
