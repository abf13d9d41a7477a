package uptodate

//typelabel:derive
//typelabel:label = "foo label"
type Foo struct{}
