package withtests

//typelabel:derive
//typelabel:label = "fixture"
type fixture struct{}
