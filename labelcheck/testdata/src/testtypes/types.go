package testtypes

//typelabel:derive
//typelabel:label = "regular"
type Regular struct{}
