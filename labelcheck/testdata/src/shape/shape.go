package shape

//typelabel:derive
type Missing struct{} // want "missing label annotation"

//typelabel:derive
//typelabel:label = 42 // want "expected a string label"
type Number struct{}

//typelabel:derive
//typelabel:label("My label") // want "expected name value syntax"
type ListForm struct{}

//typelabel:derive
//typelabel:label = "a" "b" // want "error parsing label annotation"
type TwoValues struct{}

//typelabel:derive
//typelabel:label = // want "error parsing label annotation"
type NoValue struct{}

//typelabel:derive
//typelabel:label = "fine"
type Fine struct{}
