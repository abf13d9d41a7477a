package missingfile

//typelabel:derive
//typelabel:label = "foo label" // want "label file label_gen.go is missing"
type Foo struct{}
