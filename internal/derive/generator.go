package derive

import (
	"bytes"
	"context"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"

	"github.com/sirkon/typelabel/internal/config"
	"github.com/sirkon/typelabel/internal/emit"
	"github.com/sirkon/typelabel/internal/report"
)

// GeneratorName is the command named in headers of derived files.
const GeneratorName = "labelgen derive"

// ErrDiagnostics is returned when label annotations have errors. Nothing is
// generated in this case, diagnostics are in Result.Reporter.
var ErrDiagnostics = errors.New("label annotations have errors")

var generatedMarker = []byte(`// Code generated by "` + GeneratorName + `"; DO NOT EDIT.`)

// Result of a generator run.
type Result struct {
	Outputs  []emit.File
	Fset     *token.FileSet
	Reporter *report.Reporter
}

// Generator derives labels for packages.
type Generator struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewGenerator creates a generator. A nil logger discards everything.
func NewGenerator(cfg config.Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Generator{
		cfg:    cfg,
		logger: logger,
	}
}

// Skip reports whether the file is one of the generated outputs.
func (g *Generator) Skip(filename string) bool {
	return g.cfg.IsOutput(filepath.Base(filename))
}

// Run loads packages matching patterns relative to dir and renders their
// label files. When any diagnostic is reported it returns ErrDiagnostics and
// no outputs.
func (g *Generator) Run(ctx context.Context, dir string, patterns ...string) (*Result, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	res := &Result{
		Fset:     token.NewFileSet(),
		Reporter: &report.Reporter{},
	}
	pcfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Fset:    res.Fset,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedSyntax |
			packages.NeedTypes |
			packages.NeedTypesInfo,
		Tests: g.cfg.Tests,
	}

	g.logger.Debug("loading packages", slog.String("dir", dir), slog.Any("patterns", patterns))
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "load packages")
	}

	pkgs = selectVariants(pkgs)
	if len(pkgs) == 0 {
		return nil, errors.WithHint(
			errors.Newf("no packages matched %s", strings.Join(patterns, " ")),
			"run labelgen from a package directory or pass package patterns",
		)
	}

	var outputs []emit.File
	for _, pkg := range pkgs {
		if err := g.checkErrors(pkg); err != nil {
			return nil, err
		}

		outs, err := g.pkg(res, pkg)
		if err != nil {
			return nil, errors.Wrapf(err, "generate labels for %s", pkg.PkgPath)
		}
		outputs = append(outputs, outs...)
	}

	if n := res.Reporter.Len(); n > 0 {
		g.logger.Debug("label annotations have errors", slog.Int("count", n))
		return res, ErrDiagnostics
	}

	res.Outputs = outputs
	return res, nil
}

func (g *Generator) checkErrors(pkg *packages.Package) error {
	for _, e := range pkg.Errors {
		if e.Kind == packages.TypeError {
			// Generated declarations may be missing yet.
			g.logger.Debug("ignoring type error", slog.String("package", pkg.PkgPath), slog.String("error", e.Msg))
			continue
		}

		return errors.WithHint(
			errors.Newf("package %s: %s", pkg.PkgPath, e),
			"labelgen needs packages that can be listed and parsed",
		)
	}

	return nil
}

func (g *Generator) pkg(res *Result, pkg *packages.Package) ([]emit.File, error) {
	if len(pkg.GoFiles) == 0 {
		return nil, nil
	}
	dir := filepath.Dir(pkg.GoFiles[0])

	collector := NewCollector(res.Fset, res.Reporter, Options{
		Const: g.cfg.Const,
		Skip:  g.Skip,
	})
	targets := collector.Collect(pkg.Syntax, pkg.Types, pkg.TypesInfo)
	g.logger.Debug("collected labels", slog.String("package", pkg.PkgPath), slog.Int("count", len(targets)))

	var regular, tests []emit.Binding
	for _, t := range targets {
		if t.Test() {
			tests = append(tests, t.Binding)
		} else {
			regular = append(regular, t.Binding)
		}
	}

	groups := []struct {
		name     string
		bindings []emit.Binding
		enabled  bool
	}{
		{name: g.cfg.Output, bindings: regular, enabled: true},
		{name: g.cfg.TestOutput(), bindings: tests, enabled: g.cfg.Tests},
	}

	var outputs []emit.File
	for _, group := range groups {
		if !group.enabled {
			continue
		}

		path := filepath.Join(dir, group.name)
		if len(group.bindings) == 0 {
			if isDerived(path) {
				outputs = append(outputs, emit.File{Path: path})
			}
			continue
		}

		src, err := emit.Source(emit.Options{
			Package:   pkg.Name,
			Generator: GeneratorName,
			Const:     g.cfg.Const,
			BuildTags: g.cfg.BuildTags,
			Filename:  path,
		}, group.bindings)
		if err != nil {
			return nil, errors.Wrapf(err, "render %s", path)
		}

		outputs = append(outputs, emit.File{Path: path, Source: src})
	}

	return outputs, nil
}

// selectVariants keeps one variant per package, preferring the one compiled
// with its in-package tests. External test packages and test mains are dropped.
func selectVariants(pkgs []*packages.Package) []*packages.Package {
	var (
		order  []string
		byPath = map[string]*packages.Package{}
	)
	for _, p := range pkgs {
		if strings.HasSuffix(p.PkgPath, ".test") || strings.HasSuffix(p.Name, "_test") {
			continue
		}

		prev, ok := byPath[p.PkgPath]
		if !ok {
			order = append(order, p.PkgPath)
			byPath[p.PkgPath] = p
			continue
		}
		if prev.ForTest == "" && p.ForTest != "" {
			byPath[p.PkgPath] = p
		}
	}

	res := make([]*packages.Package, 0, len(order))
	for _, path := range order {
		res = append(res, byPath[path])
	}

	return res
}

func isDerived(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	return IsDerived(data)
}

// IsDerived reports whether the file content was written by labelgen derive.
func IsDerived(content []byte) bool {
	return bytes.Contains(content, generatedMarker)
}
