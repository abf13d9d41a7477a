// Package basic holds derive targets for generator tests.
package basic

// Foo is labeled by derive.
//
//typelabel:derive
//typelabel:label = "foo label"
type Foo struct {
	Name string
}

//typelabel:derive
//typelabel:label = `pair of "things"`
type pair[K comparable, V any] struct {
	key   K
	value V
}

// Plain has no label.
type Plain int
