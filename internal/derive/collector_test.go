package derive

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/typelabel/internal/config"
	"github.com/sirkon/typelabel/internal/labelrules"
	"github.com/sirkon/typelabel/internal/report"
)

type checked struct {
	fset  *token.FileSet
	files []*ast.File
	pkg   *types.Package
	info  *types.Info
}

func check(t *testing.T, sources map[string]string) checked {
	t.Helper()

	res := checked{fset: token.NewFileSet()}
	for name, src := range sources {
		file, err := parser.ParseFile(res.fset, name, src, parser.ParseComments)
		require.NoError(t, err)
		res.files = append(res.files, file)
	}

	res.info = &types.Info{
		Defs: map[*ast.Ident]types.Object{},
		Uses: map[*ast.Ident]types.Object{},
	}
	conf := types.Config{Error: func(error) {}}
	res.pkg, _ = conf.Check("sample", res.fset, res.files, res.info)

	return res
}

func collect(t *testing.T, opts Options, sources map[string]string) ([]Target, []report.Report) {
	t.Helper()

	c := check(t, sources)
	var r report.Reporter
	targets := NewCollector(c.fset, &r, opts).Collect(c.files, c.pkg, c.info)
	return targets, r.Reports()
}

func skipOutputs(name string) bool {
	return config.Default().IsOutput(filepath.Base(name))
}

func TestCollectTargets(t *testing.T) {
	targets, reps := collect(t, Options{Skip: skipOutputs}, map[string]string{
		"types.go": `package sample

//typelabel:derive
//typelabel:label = "foo label"
type Foo struct{}

type (
	// Pair is generic.
	//typelabel:derive
	//typelabel:label = "pair"
	Pair[K comparable, V any] struct{}

	Plain int
)

type NotDerived struct{}
`,
		"types_test.go": `package sample

//typelabel:derive
//typelabel:label = "test only"
type testOnly struct{}
`,
	})
	require.Empty(t, reps)
	require.Len(t, targets, 3)

	byType := map[string]Target{}
	for _, target := range targets {
		byType[target.Type] = target
	}

	assert.Equal(t, "foo label", byType["Foo"].Annotation.Value)
	assert.False(t, byType["Foo"].Test())
	assert.Equal(t, []string{"K", "V"}, byType["Pair"].TypeParams)
	assert.Equal(t, "pair", byType["Pair"].Binding.Label)
	assert.True(t, byType["testOnly"].Test())
}

func TestCollectDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		rule labelrules.Rule
		text string
	}{
		{
			name: "missing",
			src:  "//typelabel:derive\ntype Missing struct{}\n",
			rule: labelrules.MissingLabel(),
			text: "missing label annotation",
		},
		{
			name: "number",
			src:  "//typelabel:derive\n//typelabel:label = 42\ntype Number struct{}\n",
			rule: labelrules.WrongValueKind(),
			text: "expected a string label",
		},
		{
			name: "list form",
			src:  "//typelabel:derive\n//typelabel:label(\"list\")\ntype List struct{}\n",
			rule: labelrules.WrongShape(),
			text: "expected name value syntax",
		},
		{
			name: "on function",
			src:  "//typelabel:derive\nfunc notAType() {}\n",
			rule: labelrules.Orphan(),
			text: "must annotate a package level type declaration",
		},
		{
			name: "on grouped declaration",
			src:  "//typelabel:derive\ntype (\n\tA struct{}\n\tB struct{}\n)\n",
			rule: labelrules.Orphan(),
			text: "must annotate a package level type declaration",
		},
		{
			name: "local type",
			src:  "func f() {\n\t//typelabel:derive\n\ttype local struct{}\n\t_ = local{}\n}\n",
			rule: labelrules.Orphan(),
			text: "must annotate a package level type declaration",
		},
		{
			name: "unknown directive outside type",
			src:  "//typelabel:labl = \"x\"\nvar v int\n",
			rule: labelrules.UnknownDirective(),
			text: `"labl"`,
		},
		{
			name: "interface",
			src:  "//typelabel:derive\n//typelabel:label = \"iface\"\ntype Iface interface{ Do() }\n",
			rule: labelrules.NotDerivable(),
			text: "interface type Iface",
		},
		{
			name: "pointer",
			src:  "//typelabel:derive\n//typelabel:label = \"ptr\"\ntype Ptr *int\n",
			rule: labelrules.NotDerivable(),
			text: "pointer type Ptr",
		},
		{
			name: "alias",
			src:  "type Real struct{}\n\n//typelabel:derive\n//typelabel:label = \"alias\"\ntype Alias = Real\n",
			rule: labelrules.NotDerivable(),
			text: "alias Alias",
		},
		{
			name: "method conflict",
			src:  "//typelabel:derive\n//typelabel:label = \"manual\"\ntype Manual struct{}\n\nfunc (Manual) TypeLabel() string { return \"manual\" }\n",
			rule: labelrules.Conflict(),
			text: "already declares method TypeLabel",
		},
		{
			name: "field conflict",
			src:  "//typelabel:derive\n//typelabel:label = \"field\"\ntype Field struct{ TypeLabel string }\n",
			rule: labelrules.Conflict(),
			text: "has field TypeLabel",
		},
		{
			name: "const conflict",
			src:  "//typelabel:derive\n//typelabel:label = \"const\"\ntype Const struct{}\n\nconst ConstLabel = \"taken\"\n",
			rule: labelrules.Conflict(),
			text: "ConstLabel is already declared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets, reps := collect(t, Options{Skip: skipOutputs}, map[string]string{
				"types.go": "package sample\n\n" + tt.src,
			})
			assert.Empty(t, targets)
			require.Len(t, reps, 1, "reports: %v", reps)
			assert.Equal(t, tt.rule, reps[0].RuleCode)
			assert.Contains(t, reps[0].Message, tt.text)
		})
	}
}

func TestCollectGeneratedFileIgnored(t *testing.T) {
	targets, reps := collect(t, Options{Skip: skipOutputs}, map[string]string{
		"types.go": "package sample\n\n//typelabel:derive\n//typelabel:label = \"foo label\"\ntype Foo struct{}\n",
		"label_gen.go": `// Code generated by "labelgen derive"; DO NOT EDIT.

package sample

//typelabel:derive
const FooLabel = "old label"

func (Foo) TypeLabel() string { return FooLabel }
`,
	})
	require.Empty(t, reps)
	require.Len(t, targets, 1)
	assert.Equal(t, "foo label", targets[0].Binding.Label)
}

func TestCollectConstModes(t *testing.T) {
	src := map[string]string{
		"types.go": "package sample\n\n//typelabel:derive\n//typelabel:label = \"lower\"\ntype foo struct{}\n\n//typelabel:derive\n//typelabel:label = \"upper\"\ntype Foo struct{}\n",
	}

	targets, reps := collect(t, Options{Const: config.ConstModeAuto}, src)
	require.Empty(t, reps)
	assert.Len(t, targets, 2)

	targets, reps = collect(t, Options{Const: config.ConstModeExported}, src)
	require.Len(t, reps, 1)
	assert.Equal(t, labelrules.Conflict(), reps[0].RuleCode)
	assert.Contains(t, reps[0].Message, "FooLabel")
	assert.Len(t, targets, 1)

	targets, reps = collect(t, Options{Const: config.ConstModeNone}, src)
	require.Empty(t, reps)
	assert.Len(t, targets, 2)
}

func TestCollectWithoutTypes(t *testing.T) {
	c := check(t, map[string]string{
		"types.go": "package sample\n\n//typelabel:derive\n//typelabel:label = \"iface\"\ntype Iface interface{}\n",
	})

	var r report.Reporter
	targets := NewCollector(c.fset, &r, Options{}).Collect(c.files, nil, nil)
	assert.Empty(t, r.Reports())
	assert.Len(t, targets, 1)
}
