// Package labelrules defines the canonical rule codes (LBL-series) reported by typelabel tools.
// Each rule represents a distinct way a label annotation can be wrong.
//
// Rule numbering scheme:
//
//	001–009  Annotation syntax and placement
//	010–019  Type-checked restrictions
//	020–029  Generated output state
package labelrules

import "fmt"

// Rule represents a typelabel rule code (LBL-series).
type Rule int

const (
	ruleInvalid Rule = iota

	LBL001MissingLabel
	LBL002WrongValueKind
	LBL003WrongShape
	LBL004Unparseable
	LBL005Misplaced
	LBL006Duplicate
	LBL007Orphan
	LBL008UnknownDirective
	LBL010NotDerivable
	LBL011Conflict
	LBL020Stale
)

// String returns the canonical code and short name of the rule.
// Example: "LBL001: MissingLabel"
func (r Rule) String() string {
	switch r {
	case LBL001MissingLabel:
		return "LBL001: MissingLabel"
	case LBL002WrongValueKind:
		return "LBL002: WrongValueKind"
	case LBL003WrongShape:
		return "LBL003: WrongShape"
	case LBL004Unparseable:
		return "LBL004: Unparseable"
	case LBL005Misplaced:
		return "LBL005: Misplaced"
	case LBL006Duplicate:
		return "LBL006: Duplicate"
	case LBL007Orphan:
		return "LBL007: Orphan"
	case LBL008UnknownDirective:
		return "LBL008: UnknownDirective"
	case LBL010NotDerivable:
		return "LBL010: NotDerivable"
	case LBL011Conflict:
		return "LBL011: Conflict"
	case LBL020Stale:
		return "LBL020: Stale"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Code returns just the numeric code of the rule, like "LBL001".
func (r Rule) Code() string {
	v := r.String()
	if len(v) < 6 || v[:3] != "LBL" {
		return v
	}

	return v[:6]
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case LBL001MissingLabel:
		return "Derive request without a label annotation."
	case LBL002WrongValueKind:
		return "Label annotation value must be a string literal."
	case LBL003WrongShape:
		return "Label annotation must use name = value syntax."
	case LBL004Unparseable:
		return "Label annotation cannot be parsed."
	case LBL005Misplaced:
		return "Label annotation must directly follow the derive request."
	case LBL006Duplicate:
		return "Only one label annotation per type is allowed."
	case LBL007Orphan:
		return "Typelabel directive is not attached to a deriving type declaration."
	case LBL008UnknownDirective:
		return "Unknown or malformed typelabel directive."
	case LBL010NotDerivable:
		return "Label cannot be derived for aliases, interfaces and pointer types."
	case LBL011Conflict:
		return "Generated declarations collide with existing ones."
	case LBL020Stale:
		return "Generated label file is missing or out of date."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors.

func MissingLabel() Rule     { return LBL001MissingLabel }
func WrongValueKind() Rule   { return LBL002WrongValueKind }
func WrongShape() Rule       { return LBL003WrongShape }
func Unparseable() Rule      { return LBL004Unparseable }
func Misplaced() Rule        { return LBL005Misplaced }
func Duplicate() Rule        { return LBL006Duplicate }
func Orphan() Rule           { return LBL007Orphan }
func UnknownDirective() Rule { return LBL008UnknownDirective }
func NotDerivable() Rule     { return LBL010NotDerivable }
func Conflict() Rule         { return LBL011Conflict }
func Stale() Rule            { return LBL020Stale }
