// Package emit renders label bindings into Go source.
package emit

import (
	"bytes"
	"fmt"
	"go/token"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"

	"github.com/sirkon/typelabel/internal/config"
)

// Method is the name of the generated accessor.
const Method = "TypeLabel"

// Binding pairs a type with its label.
type Binding struct {
	// Type is the type name.
	Type string

	// TypeParams are names of the type parameters of a generic type.
	TypeParams []string

	// Label is the unquoted label value.
	Label string
}

// Options control the generated file.
type Options struct {
	// Package is the package clause name.
	Package string

	// Generator is the command named in the "Code generated" header.
	Generator string

	// Const is the constant declaration mode.
	Const config.ConstMode

	// BuildTags are joined with && into a //go:build line.
	BuildTags []string

	// Filename is used for formatting diagnostics only.
	Filename string
}

// ConstName returns the name of the label constant for the type, or an empty
// string when no constant is declared.
func ConstName(typeName string, mode config.ConstMode) string {
	switch mode {
	case config.ConstModeNone:
		return ""
	case config.ConstModeExported:
		r, size := utf8.DecodeRuneInString(typeName)
		return string(unicode.ToUpper(r)) + typeName[size:] + "Label"
	default:
		return typeName + "Label"
	}
}

// Source renders bindings sorted by type name into a formatted Go file.
func Source(opts Options, bindings []Binding) ([]byte, error) {
	if !token.IsIdentifier(opts.Package) {
		return nil, errors.Newf("invalid package name %q", opts.Package)
	}

	sorted := slices.Clone(bindings)
	slices.SortFunc(sorted, func(a, b Binding) int {
		return strings.Compare(a.Type, b.Type)
	})

	var buf bytes.Buffer
	if len(opts.BuildTags) > 0 {
		fmt.Fprintf(&buf, "//go:build %s\n\n", buildExpr(opts.BuildTags))
	}
	fmt.Fprintf(&buf, "// Code generated by %q; DO NOT EDIT.\n\n", opts.Generator)
	fmt.Fprintf(&buf, "package %s\n", opts.Package)

	for i, b := range sorted {
		if !token.IsIdentifier(b.Type) {
			return nil, errors.Newf("invalid type name %q", b.Type)
		}
		if i > 0 && sorted[i-1].Type == b.Type {
			return nil, errors.Newf("duplicate label for type %s", b.Type)
		}

		writeBinding(&buf, opts.Const, b)
	}

	filename := opts.Filename
	if filename == "" {
		filename = config.DefaultOutput
	}
	res, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "format generated source")
	}

	return res, nil
}

func writeBinding(buf *bytes.Buffer, mode config.ConstMode, b Binding) {
	receiver := b.Type
	if len(b.TypeParams) > 0 {
		receiver += "[" + strings.Join(b.TypeParams, ", ") + "]"
	}

	literal := strconv.Quote(b.Label)
	name := ConstName(b.Type, mode)
	if name == "" {
		fmt.Fprintf(buf, "\n// %s returns the type label of %s.\n", Method, b.Type)
		fmt.Fprintf(buf, "func (%s) %s() string { return %s }\n", receiver, Method, literal)
		return
	}

	fmt.Fprintf(buf, "\n// %s is the type label of %s.\n", name, b.Type)
	fmt.Fprintf(buf, "const %s = %s\n", name, literal)
	fmt.Fprintf(buf, "\n// %s returns %s.\n", Method, name)
	fmt.Fprintf(buf, "func (%s) %s() string { return %s }\n", receiver, Method, name)
}

func buildExpr(tags []string) string {
	if len(tags) == 1 {
		return tags[0]
	}

	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "(" + tag + ")"
	}

	return strings.Join(parts, " && ")
}
