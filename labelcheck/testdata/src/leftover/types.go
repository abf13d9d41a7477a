package leftover

type Foo struct{}
