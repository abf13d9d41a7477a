// Package typelabel binds a fixed string label to a Go type.
//
// A type has a label when it implements [Label]:
//
//	func (MyStruct) TypeLabel() string { return "My label" }
//
// The method can be written by hand or generated by labelgen, either for a
// type given by name
//
//	//go:generate labelgen decl --type MyStruct --label "My label"
//
// or for every annotated type of a package
//
//	//typelabel:derive
//	//typelabel:label = "My label"
//	type MyStruct struct{}
//
//	//go:generate labelgen derive
//
// Both generators also declare the label as a constant, MyStructLabel in the
// examples above. The labelcheck analyzer reports annotation mistakes at the
// position of the offending token and can be run with go vet.
//
// The label is a property of the type, not of a value. [Of] returns it
// without an instance, which makes labels usable in generic code that has
// nothing to call the method on, see [ParseError].
package typelabel

//go:generate go run ./cmd/labelgen derive --tests
//go:generate go run ./cmd/labelgen decl --type Baz --label "baz label" --output baz_label_test.go
