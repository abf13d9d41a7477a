package testlabels

//typelabel:derive
//typelabel:label = "fixture" // want "label file label_gen_test.go is missing"
type fixture struct{}
