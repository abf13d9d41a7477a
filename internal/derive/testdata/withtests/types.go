package withtests

//typelabel:derive
//typelabel:label = "regular"
type Regular struct{}
