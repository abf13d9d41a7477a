// Package labelcheck defines an Analyzer that validates typelabel
// annotations of a package.
//
// It reports the same diagnostics as "labelgen derive" at the exact
// positions of the offending tokens, so mistakes in
//
//	//typelabel:derive
//	//typelabel:label = "My label"
//	type MyStruct struct {
//
// show up in go vet and in editors before labels are generated. With the
// -stale flag it also reports missing, out of date and no longer needed
// generated files and offers the fixed content as a suggested fix. The
// -output, -const, -tests and -build_tags flags must match the labelgen
// configuration of the package for this check to agree with labelgen.
package labelcheck

import (
	"bytes"
	"fmt"
	"go/ast"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/typelabel/internal/config"
	"github.com/sirkon/typelabel/internal/derive"
	"github.com/sirkon/typelabel/internal/emit"
	"github.com/sirkon/typelabel/internal/labelrules"
	"github.com/sirkon/typelabel/internal/report"
)

const doc = `labelcheck validates //typelabel:derive and //typelabel:label annotations`

// Analyzer is the main entry point for the checker.
var Analyzer = &analysis.Analyzer{
	Name:     "labelcheck",
	Doc:      doc,
	URL:      "https://pkg.go.dev/github.com/sirkon/typelabel/labelcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var (
	settings   = config.Default()
	checkStale bool
)

func init() {
	Analyzer.Flags.StringVar(&settings.Output, "output", config.DefaultOutput, "name of generated label files")
	Analyzer.Flags.Var(&settings.Const, "const", "label constant mode: auto, exported or none")
	Analyzer.Flags.BoolVar(&settings.Tests, "tests", false, "labels of types declared in _test.go files are generated too")
	Analyzer.Flags.Var(tagList{&settings.BuildTags}, "build_tags", "comma separated build constraints of generated label files")
	Analyzer.Flags.BoolVar(&checkStale, "stale", false, "report missing or out of date generated label files")
}

// tagList is a comma separated list flag.
type tagList struct {
	tags *[]string
}

func (l tagList) String() string {
	if l.tags == nil {
		return ""
	}

	return strings.Join(*l.tags, ",")
}

func (l tagList) Set(s string) error {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	*l.tags = tags

	return nil
}

func run(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	cfg := settings
	cfg.BuildTags = append([]string(nil), settings.BuildTags...)

	var r report.Reporter
	collector := derive.NewCollector(pass.Fset, &r, derive.Options{
		Const: cfg.Const,
		Skip: func(filename string) bool {
			return cfg.IsOutput(filepath.Base(filename))
		},
	})

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
	}

	var targets []derive.Target
	pector.Preorder(nodeFilter, func(node ast.Node) {
		n := node.(*ast.File) // Only files are passed with this filter.

		targets = append(targets, collector.File(n)...)
	})
	targets = collector.Check(pass.Pkg, pass.TypesInfo, targets)

	for _, rep := range r.Reports() {
		pass.Report(analysis.Diagnostic{
			Pos:      rep.Pos,
			End:      rep.End,
			Category: rep.RuleCode.Code(),
			Message:  rep.Message,
		})
	}

	if checkStale && r.Len() == 0 {
		if err := checkOutputs(pass, cfg, targets); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// checkOutputs compares generated files of the package with what labelgen
// would render for the targets. Labels of test types are only checked when
// they are generated.
func checkOutputs(pass *analysis.Pass, cfg config.Config, targets []derive.Target) error {
	var regular, tests []derive.Target
	for _, t := range targets {
		if t.Test() {
			tests = append(tests, t)
		} else {
			regular = append(regular, t)
		}
	}

	existing := map[string]*ast.File{}
	for _, f := range pass.Files {
		filename := pass.Fset.Position(f.Package).Filename
		if cfg.IsOutput(filepath.Base(filename)) {
			existing[filepath.Base(filename)] = f
		}
	}

	groups := []struct {
		name    string
		targets []derive.Target
		enabled bool
	}{
		{name: cfg.Output, targets: regular, enabled: true},
		{name: cfg.TestOutput(), targets: tests, enabled: cfg.Tests},
	}
	for _, group := range groups {
		if !group.enabled {
			continue
		}

		file, ok := existing[group.name]
		if len(group.targets) == 0 {
			if ok {
				if err := checkLeftover(pass, group.name, file); err != nil {
					return err
				}
			}
			continue
		}

		bindings := make([]emit.Binding, len(group.targets))
		for i, t := range group.targets {
			bindings[i] = t.Binding
		}

		src, err := emit.Source(emit.Options{
			Package:   pass.Pkg.Name(),
			Generator: derive.GeneratorName,
			Const:     cfg.Const,
			BuildTags: cfg.BuildTags,
			Filename:  group.name,
		}, bindings)
		if err != nil {
			return errors.Wrapf(err, "render %s", group.name)
		}

		anchor := group.targets[0].Annotation
		if !ok {
			pass.Report(analysis.Diagnostic{
				Pos:      anchor.Pos,
				End:      anchor.End,
				Category: labelrules.Stale().Code(),
				Message:  fmt.Sprintf("label file %s is missing, run %s", group.name, derive.GeneratorName),
			})
			continue
		}

		filename := pass.Fset.Position(file.Package).Filename
		content, err := pass.ReadFile(filename)
		if err != nil {
			return errors.Wrapf(err, "read %s", filename)
		}
		if bytes.Equal(content, src) {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:      anchor.Pos,
			End:      anchor.End,
			Category: labelrules.Stale().Code(),
			Message:  fmt.Sprintf("label file %s is out of date, run %s", group.name, derive.GeneratorName),
			SuggestedFixes: []analysis.SuggestedFix{
				{
					Message: "Regenerate " + group.name,
					TextEdits: []analysis.TextEdit{
						{
							Pos:     file.FileStart,
							End:     file.FileEnd,
							NewText: src,
						},
					},
				},
			},
		})
	}

	return nil
}

// checkLeftover reports a derived file no type requests labels from anymore.
func checkLeftover(pass *analysis.Pass, name string, file *ast.File) error {
	filename := pass.Fset.Position(file.Package).Filename
	content, err := pass.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "read %s", filename)
	}
	if !derive.IsDerived(content) {
		return nil
	}

	pass.Report(analysis.Diagnostic{
		Pos:      file.Package,
		End:      file.Name.End(),
		Category: labelrules.Stale().Code(),
		Message:  fmt.Sprintf("label file %s is no longer needed, no type of the package requests a derived label", name),
		SuggestedFixes: []analysis.SuggestedFix{
			{
				Message: "Empty " + name,
				TextEdits: []analysis.TextEdit{
					{
						Pos: file.FileStart,
						End: file.FileEnd,
					},
				},
			},
		},
	})

	return nil
}
