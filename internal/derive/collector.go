// Package derive finds types requesting a derived label and turns their
// annotations into label bindings.
package derive

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/sirkon/typelabel/internal/config"
	"github.com/sirkon/typelabel/internal/directive"
	"github.com/sirkon/typelabel/internal/emit"
	"github.com/sirkon/typelabel/internal/labelrules"
	"github.com/sirkon/typelabel/internal/report"
)

// Options of a Collector.
type Options struct {
	// Const is the constant declaration mode of the generated code.
	Const config.ConstMode

	// Skip reports whether the file holds previously generated labels.
	// Such files are neither inspected nor treated as conflicting.
	Skip func(filename string) bool
}

// Target is a type with a valid label annotation.
type Target struct {
	emit.Binding

	Spec       *ast.TypeSpec
	Annotation directive.Label

	// Filename of the declaring file.
	Filename string
}

// Test reports whether the type is declared in a _test.go file.
func (t Target) Test() bool {
	return strings.HasSuffix(t.Filename, "_test.go")
}

// Collector gathers derive targets and reports annotation mistakes.
type Collector struct {
	fset       *token.FileSet
	opts       Options
	directives *report.ReporterPhase
	types      *report.ReporterPhase
}

// NewCollector creates a collector reporting into r.
func NewCollector(fset *token.FileSet, r *report.Reporter, opts Options) *Collector {
	if opts.Const == config.ConstModeInvalid {
		opts.Const = config.ConstModeAuto
	}

	return &Collector{
		fset:       fset,
		opts:       opts,
		directives: r.Phase(report.ReportDirective),
		types:      r.Phase(report.ReportType),
	}
}

// Collect inspects all files and applies type-checked restrictions when
// type information is given.
func (c *Collector) Collect(files []*ast.File, pkg *types.Package, info *types.Info) []Target {
	var targets []Target
	for _, file := range files {
		targets = append(targets, c.File(file)...)
	}

	return c.Check(pkg, info, targets)
}

// File returns derive targets of a single file. Typelabel directives not
// attached to a package level type declaration are reported as orphans.
func (c *Collector) File(file *ast.File) []Target {
	filename := c.fset.Position(file.Package).Filename
	if c.skip(filename) {
		return nil
	}

	var (
		targets  []Target
		consumed = map[*ast.CommentGroup]bool{}
	)
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && !gen.Lparen.IsValid() {
				doc = gen.Doc
			}
			if doc == nil {
				continue
			}
			consumed[doc] = true

			label, ok := directive.Inspect(c.directives, ts.Name, doc)
			if !ok {
				continue
			}

			targets = append(targets, Target{
				Binding: emit.Binding{
					Type:       ts.Name.Name,
					TypeParams: typeParams(ts),
					Label:      label.Value,
				},
				Spec:       ts,
				Annotation: label,
				Filename:   filename,
			})
		}
	}

	for _, group := range file.Comments {
		if consumed[group] {
			continue
		}

		for _, d := range directive.All(group) {
			if d.Kind == directive.KindUnknown {
				directive.ReportUnknown(c.directives, d)
				continue
			}

			c.directives.Report(
				labelrules.Orphan(),
				"typelabel directive must annotate a package level type declaration",
				d.Pos(),
				d.End(),
			)
		}
	}

	return targets
}

// Check drops targets that cannot carry the generated declarations and
// reports why. Targets are returned as is when info is nil.
func (c *Collector) Check(pkg *types.Package, info *types.Info, targets []Target) []Target {
	if info == nil {
		return targets
	}

	var (
		res    []Target
		consts = map[string]Target{}
	)
	for _, t := range targets {
		if !c.checkTarget(pkg, info, t) {
			continue
		}

		if name := emit.ConstName(t.Type, c.opts.Const); name != "" {
			if prev, ok := consts[name]; ok {
				c.types.Report(
					labelrules.Conflict(),
					fmt.Sprintf("label constant %s of type %s is also generated for type %s", name, t.Type, prev.Type),
					t.Spec.Name.Pos(),
					t.Spec.Name.End(),
				)
				continue
			}
			consts[name] = t
		}

		res = append(res, t)
	}

	return res
}

func (c *Collector) checkTarget(pkg *types.Package, info *types.Info, t Target) bool {
	name := t.Spec.Name
	fail := func(rule labelrules.Rule, format string, a ...any) bool {
		c.types.Report(rule, fmt.Sprintf(format, a...), name.Pos(), name.End())
		return false
	}

	if t.Spec.Assign.IsValid() {
		return fail(labelrules.NotDerivable(), "cannot derive Label for alias %s, derive it on the aliased type instead", name.Name)
	}

	obj, ok := info.Defs[name].(*types.TypeName)
	if !ok || obj == nil {
		return true
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return true
	}

	switch u := named.Underlying().(type) {
	case *types.Interface:
		return fail(labelrules.NotDerivable(), "cannot derive Label for interface type %s", name.Name)
	case *types.Pointer:
		return fail(labelrules.NotDerivable(), "cannot derive Label for pointer type %s", name.Name)
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if u.Field(i).Name() == emit.Method {
				return fail(labelrules.Conflict(), "type %s has field %s, cannot add method with the same name", name.Name, emit.Method)
			}
		}
	}

	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		if m.Name() == emit.Method && !c.skipPos(m.Pos()) {
			return fail(labelrules.Conflict(), "type %s already declares method %s at %s", name.Name, emit.Method, c.fset.Position(m.Pos()))
		}
	}

	constName := emit.ConstName(name.Name, c.opts.Const)
	if constName == "" || pkg == nil {
		return true
	}
	if o := pkg.Scope().Lookup(constName); o != nil && !c.skipPos(o.Pos()) {
		return fail(labelrules.Conflict(), "%s is already declared in package %s at %s", constName, pkg.Name(), c.fset.Position(o.Pos()))
	}

	return true
}

func (c *Collector) skip(filename string) bool {
	return c.opts.Skip != nil && c.opts.Skip(filename)
}

func (c *Collector) skipPos(pos token.Pos) bool {
	return c.skip(c.fset.Position(pos).Filename)
}

func typeParams(ts *ast.TypeSpec) []string {
	if ts.TypeParams == nil {
		return nil
	}

	var res []string
	for _, field := range ts.TypeParams.List {
		for _, n := range field.Names {
			res = append(res, n.Name)
		}
	}

	return res
}
