package typeerr

//typelabel:derive
//typelabel:label = "not generated yet"
type Foo struct{}

// Describe uses the method labelgen is about to generate.
func Describe() string {
	return Foo{}.TypeLabel()
}
