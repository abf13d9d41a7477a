package directive

import (
	"fmt"
	"go/ast"

	"github.com/sirkon/typelabel/internal/labelrules"
	"github.com/sirkon/typelabel/internal/report"
)

// Inspect validates the directives found in the doc comment of the type
// declared with the given name. It returns the parsed label and true only
// when the type requests a derived label and nothing was reported for it.
//
// A type without a derive request gets no label; label annotations on it are
// reported as orphans.
func Inspect(r *report.ReporterPhase, name *ast.Ident, doc *ast.CommentGroup) (Label, bool) {
	var (
		derive    *Directive
		deriveIdx int
		labels    []Directive
		labelIdx  []int
		failed    bool
	)

	all := All(doc)
	for i, d := range all {
		switch d.Kind {
		case KindDerive:
			if derive != nil {
				r.Report(labelrules.Duplicate(), "duplicate "+Prefix+DeriveName+" request", d.Pos(), d.End())
				failed = true
				continue
			}
			derive = &all[i]
			deriveIdx = commentIndex(doc, d)
			if !checkNoArgs(r, d) {
				failed = true
			}

		case KindLabel:
			labels = append(labels, d)
			labelIdx = append(labelIdx, commentIndex(doc, d))

		default:
			ReportUnknown(r, d)
			failed = true
		}
	}

	if derive == nil {
		for _, d := range labels {
			r.Report(
				labelrules.Orphan(),
				fmt.Sprintf("label annotation without a %s%s request on type %s", Prefix, DeriveName, name.Name),
				d.Pos(),
				d.End(),
			)
		}
		return Label{}, false
	}

	if len(labels) == 0 {
		r.Report(
			labelrules.MissingLabel(),
			"missing label annotation, e.g. "+Example,
			name.Pos(),
			name.End(),
		)
		return Label{}, false
	}

	for _, d := range labels[1:] {
		r.Report(
			labelrules.Duplicate(),
			"duplicate label annotation, only one "+Prefix+LabelName+" is allowed per type",
			d.Pos(),
			d.End(),
		)
		failed = true
	}

	first := labels[0]
	if labelIdx[0] != deriveIdx+1 {
		r.Report(
			labelrules.Misplaced(),
			fmt.Sprintf("label annotation must be on the line immediately after %s%s", Prefix, DeriveName),
			first.Pos(),
			first.End(),
		)
		failed = true
	}

	label, err := ParseLabel(first)
	if err != nil {
		r.Report(err.Rule, err.Message, err.Pos, err.End)
		return Label{}, false
	}

	return label, !failed
}

// ReportUnknown reports a directive with an unknown name.
func ReportUnknown(r *report.ReporterPhase, d Directive) {
	r.Report(
		labelrules.UnknownDirective(),
		fmt.Sprintf(
			"unknown typelabel directive %q, expected %s%s or %s%s",
			d.Name, Prefix, DeriveName, Prefix, LabelName,
		),
		d.Pos(),
		d.End(),
	)
}

// checkNoArgs makes sure the derive request carries nothing but comments.
func checkNoArgs(r *report.ReporterPhase, d Directive) bool {
	toks, serr := tokenize(d.Args)
	if serr == nil && len(toks) == 0 {
		return true
	}

	r.Report(
		labelrules.UnknownDirective(),
		Prefix+DeriveName+" takes no arguments",
		d.ArgsPos(),
		d.End(),
	)
	return false
}

func commentIndex(doc *ast.CommentGroup, d Directive) int {
	for i, c := range doc.List {
		if c == d.Comment {
			return i
		}
	}

	return -1
}
