package stale

//typelabel:derive
//typelabel:label = "new label" // want "label file label_gen.go is out of date"
type Foo struct{}
