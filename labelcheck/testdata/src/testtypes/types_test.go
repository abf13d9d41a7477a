package testtypes

//typelabel:derive
//typelabel:label = "fixture"
type fixture struct{}
