// Package labelrules defines the canonical LBL-series rule codes of typelabel.
//
// Every diagnostic produced by the label generator and by the labelcheck
// analyzer carries one of these codes, so the same mistake is reported with
// the same identity in go vet and labelgen output alike.
//
// # Structure
//
// Rule codes follow the format “LBL<NNN>: <Name>”:
//
//	001–009  Annotation syntax and placement
//	010–019  Type-checked restrictions
//	020–029  Generated output state
//
// Example:
//
//	labelrules.LBL001MissingLabel.String()      → "LBL001: MissingLabel"
//	labelrules.LBL001MissingLabel.Description() → "Derive request without a label annotation."
//
// Rule identifiers are stable; never renumber existing codes.
package labelrules
