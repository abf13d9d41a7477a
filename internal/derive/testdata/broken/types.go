package broken

//typelabel:derive
type Missing struct{}

//typelabel:derive
//typelabel:label = 42
type Number struct{}

//typelabel:derive
//typelabel:label = "fine"
type Fine struct{}
