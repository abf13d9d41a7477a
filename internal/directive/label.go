package directive

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/sirkon/typelabel/internal/labelrules"
)

// Label is a successfully parsed label annotation.
type Label struct {
	// Value is the unquoted label.
	Value string

	// Literal is the string literal as written in the annotation.
	Literal string

	// Pos and End delimit the literal.
	Pos token.Pos
	End token.Pos
}

// Error is a diagnostic about a malformed directive.
type Error struct {
	Rule    labelrules.Rule
	Pos     token.Pos
	End     token.Pos
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ParseLabel interprets a label annotation of the form
//
//	//typelabel:label = "My label"
//
// Both interpreted and raw string literals are accepted.
func ParseLabel(d Directive) (Label, *Error) {
	base := d.ArgsPos()
	toks, serr := tokenize(d.Args)
	if serr != nil {
		pos := base + token.Pos(serr.Pos.Offset)
		return Label{}, unparseable(pos, d.End())
	}

	if len(toks) == 0 {
		return Label{}, wrongShape(d)
	}

	at := func(t argToken) (token.Pos, token.Pos) {
		pos := base + token.Pos(t.off)
		return pos, pos + token.Pos(len(t.text()))
	}

	switch toks[0].tok {
	case token.ASSIGN:
	case token.LPAREN, token.STRING, token.COLON:
		return Label{}, wrongShape(d)
	default:
		pos, end := at(toks[0])
		return Label{}, unparseable(pos, end)
	}

	if len(toks) < 2 {
		return Label{}, unparseable(d.Pos(), d.End())
	}

	value := toks[1]
	pos, end := at(value)
	if value.tok != token.STRING {
		return Label{}, &Error{
			Rule:    labelrules.WrongValueKind(),
			Pos:     pos,
			End:     end,
			Message: pointAt("expected a string label, e.g. ", `"My label"`, "i.e. this part needs to be a string, with quotes!"),
		}
	}

	if len(toks) > 2 {
		epos, eend := at(toks[2])
		return Label{}, unparseable(epos, eend)
	}

	unquoted, err := strconv.Unquote(value.lit)
	if err != nil {
		return Label{}, unparseable(pos, end)
	}

	return Label{
		Value:   unquoted,
		Literal: value.lit,
		Pos:     pos,
		End:     end,
	}, nil
}

func wrongShape(d Directive) *Error {
	return &Error{
		Rule: labelrules.WrongShape(),
		Pos:  d.Pos(),
		End:  d.End(),
		Message: pointAt(
			"expected name value syntax, e.g. ",
			" = ",
			fmt.Sprintf(`i.e. this eq sign is needed, not %s%s("My label")`, Prefix, LabelName),
		),
	}
}

func unparseable(pos, end token.Pos) *Error {
	return &Error{
		Rule:    labelrules.Unparseable(),
		Pos:     pos,
		End:     end,
		Message: UnparseableMessage,
	}
}

// UnparseableMessage is the guidance given when a label annotation cannot be parsed at all.
var UnparseableMessage = strings.Join([]string{
	"error parsing label annotation.",
	"",
	"Your label annotation belongs in the doc comment of the type deriving Label,",
	"on the line just below " + Prefix + DeriveName + ".",
	"e.g.",
	"\t" + Prefix + DeriveName,
	"\t" + Example,
	"\ttype MyStruct struct {",
}, "\n")

// pointAt renders the example annotation after lead and draws carets under
// the last occurrence of part, followed by the note.
func pointAt(lead, part, note string) string {
	line := lead + Example
	i := strings.LastIndex(line, part)
	if i < 0 {
		return line + "\n" + note
	}

	return line + "\n" + strings.Repeat(" ", i) + strings.Repeat("^", len(part)) + " " + note
}
