package derived

//typelabel:derive
//typelabel:label = "foo label"
type Foo struct{}

// Pair is documented.
//
//typelabel:derive
//typelabel:label = `pair of "things"`
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type (
	//typelabel:derive
	//typelabel:label = "grouped"
	Grouped int

	Plain string
)

// Unlabeled types are left alone.
type Unlabeled struct{}
