// Package directive finds and validates typelabel directive comments.
//
// A type requests a derived label with two directive comments placed in its
// doc comment, the label annotation directly below the derive request:
//
//	//typelabel:derive
//	//typelabel:label = "My label"
//	type MyStruct struct {
//
// The annotation value is tokenized with go/scanner, so every diagnostic
// points at the exact offending token of the comment.
package directive

import (
	"go/ast"
	"go/scanner"
	"go/token"
	"strings"
	"unicode"
)

// Directive prefix and names.
const (
	Prefix     = "//typelabel:"
	DeriveName = "derive"
	LabelName  = "label"
)

// Example is the canonical label annotation shown in diagnostics.
const Example = Prefix + LabelName + ` = "My label"`

// Kind tells what a directive comment requests.
type Kind int

const (
	KindInvalid Kind = iota
	KindDerive
	KindLabel
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindDerive:
		return DeriveName
	case KindLabel:
		return LabelName
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Directive is a single typelabel directive comment.
type Directive struct {
	Kind    Kind
	Name    string
	Comment *ast.Comment

	// Args is the comment text following the directive name.
	Args string
}

// Pos returns the position of the directive comment.
func (d Directive) Pos() token.Pos {
	return d.Comment.Slash
}

// End returns the position right after the directive comment.
func (d Directive) End() token.Pos {
	return d.Comment.End()
}

// ArgsPos returns the position of the first byte of Args.
func (d Directive) ArgsPos() token.Pos {
	return d.Comment.Slash + token.Pos(len(d.Comment.Text)-len(d.Args))
}

// Find reports whether the comment is a typelabel directive and decodes it.
func Find(c *ast.Comment) (Directive, bool) {
	if !strings.HasPrefix(c.Text, Prefix) {
		return Directive{}, false
	}

	rest := c.Text[len(Prefix):]
	i := strings.IndexFunc(rest, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-'
	})
	if i < 0 {
		i = len(rest)
	}

	d := Directive{
		Kind:    KindUnknown,
		Name:    rest[:i],
		Comment: c,
		Args:    rest[i:],
	}
	switch d.Name {
	case DeriveName:
		d.Kind = KindDerive
	case LabelName:
		d.Kind = KindLabel
	}

	return d, true
}

// All returns every typelabel directive of the comment group in source order.
func All(group *ast.CommentGroup) []Directive {
	if group == nil {
		return nil
	}

	var res []Directive
	for _, c := range group.List {
		if d, ok := Find(c); ok {
			res = append(res, d)
		}
	}

	return res
}

type argToken struct {
	tok token.Token
	lit string
	off int
}

func (t argToken) text() string {
	if t.lit != "" {
		return t.lit
	}

	return t.tok.String()
}

// tokenize splits directive arguments into Go tokens. Comments and
// automatically inserted semicolons are dropped.
func tokenize(src string) ([]argToken, *scanner.Error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(src))

	var (
		s        scanner.Scanner
		firstErr *scanner.Error
	)
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if firstErr == nil {
			firstErr = &scanner.Error{Pos: pos, Msg: msg}
		}
	}, 0)

	var res []argToken
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		res = append(res, argToken{
			tok: tok,
			lit: lit,
			off: file.Offset(pos),
		})
	}

	return res, firstErr
}
